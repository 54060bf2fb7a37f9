package indicators

// Wilder maintains RSI over Wilder-smoothed average gain and loss. The first
// price only seeds the previous-price state; the next period deltas feed a
// simple average, and every delta after that applies the exponential update
// with weight 1/period. Ready turns true one update after the initial
// averages exist, so the first evaluated value already reflects a smoothed
// step.
type Wilder struct {
	period  int
	prev    float64
	hasPrev bool
	warm    int
	sumGain float64
	sumLoss float64
	avgGain float64
	avgLoss float64
	ready   bool
}

func NewWilder(period int) *Wilder {
	return &Wilder{period: period}
}

func (w *Wilder) Update(price float64) {
	if !w.hasPrev {
		w.prev = price
		w.hasPrev = true
		return
	}

	delta := price - w.prev
	w.prev = price

	var gain, loss float64
	if delta > 0 {
		gain = delta
	} else {
		loss = -delta
	}

	if w.warm < w.period {
		w.sumGain += gain
		w.sumLoss += loss
		w.warm++
		if w.warm == w.period {
			w.avgGain = w.sumGain / float64(w.period)
			w.avgLoss = w.sumLoss / float64(w.period)
		}
		return
	}

	n := float64(w.period)
	w.avgGain = (w.avgGain*(n-1) + gain) / n
	w.avgLoss = (w.avgLoss*(n-1) + loss) / n
	w.ready = true
}

func (w *Wilder) Ready() bool {
	return w.ready
}

// Value returns RSI in [0, 100]. A zero average loss saturates at 100.
func (w *Wilder) Value() float64 {
	if !w.ready {
		return 0
	}
	if w.avgLoss == 0 {
		return 100
	}
	rs := w.avgGain / w.avgLoss
	return 100 - 100/(1+rs)
}

func (w *Wilder) Reset() {
	*w = Wilder{period: w.period}
}
