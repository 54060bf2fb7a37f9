package indicators

// EWMA is a streaming exponential moving average seeded with the first
// price, smoothing factor 2/(period+1). Ready becomes true once period
// prices have been seen; the value itself is defined from the first update.
type EWMA struct {
	period int
	alpha  float64
	value  float64
	count  int
}

func NewEWMA(period int) *EWMA {
	return &EWMA{
		period: period,
		alpha:  2.0 / float64(period+1),
	}
}

func (e *EWMA) Update(price float64) {
	if e.count == 0 {
		e.value = price
	} else {
		e.value = (price-e.value)*e.alpha + e.value
	}
	e.count++
}

func (e *EWMA) Ready() bool {
	return e.count >= e.period
}

func (e *EWMA) Value() float64 {
	if e.count == 0 {
		return 0
	}
	return e.value
}

func (e *EWMA) Count() int {
	return e.count
}

func (e *EWMA) Reset() {
	e.value = 0
	e.count = 0
}
