package market

// Series is an append-only, ordered collection of ticks. It grows by
// geometric doubling (amortized O(1) append), never shrinks, and is treated
// as immutable once ingestion finishes so any number of strategy runs can
// iterate it concurrently.
type Series struct {
	ticks []Tick
}

// NewSeries returns an empty series with room for capacity ticks.
func NewSeries(capacity int) *Series {
	if capacity < 0 {
		capacity = 0
	}
	return &Series{ticks: make([]Tick, 0, capacity)}
}

func (s *Series) Append(t Tick) {
	s.ticks = append(s.ticks, t)
}

func (s *Series) Len() int {
	return len(s.ticks)
}

// At returns the tick at index i. Out-of-range indices are a programming
// error and panic like any slice access.
func (s *Series) At(i int) Tick {
	return s.ticks[i]
}

// Iterator returns a fresh iterator over the series in insertion order.
// Every iterator observes the identical ticks and indices regardless of how
// many prior runs consumed the series.
func (s *Series) Iterator() *Iterator {
	return &Iterator{s: s, idx: -1}
}

type Iterator struct {
	s   *Series
	idx int
}

// Next advances the iterator and reports whether a tick is available.
func (it *Iterator) Next() bool {
	if it.idx+1 >= len(it.s.ticks) {
		return false
	}
	it.idx++
	return true
}

func (it *Iterator) Index() int {
	return it.idx
}

func (it *Iterator) Tick() Tick {
	return it.s.ticks[it.idx]
}
