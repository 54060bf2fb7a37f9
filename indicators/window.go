package indicators

import "math"

// Window is a fixed-size circular buffer of float64 samples with a running
// sum. Pushing past capacity evicts the oldest sample. Min, Max, and
// Variance scan the buffer; Mean uses the running sum.
type Window struct {
	buf  []float64
	head int
	n    int
	sum  float64
}

func NewWindow(size int) *Window {
	if size < 1 {
		size = 1
	}
	return &Window{buf: make([]float64, size)}
}

func (w *Window) Push(v float64) {
	if w.n == len(w.buf) {
		w.sum -= w.buf[w.head]
	} else {
		w.n++
	}
	w.buf[w.head] = v
	w.sum += v
	w.head = (w.head + 1) % len(w.buf)
}

func (w *Window) Len() int {
	return w.n
}

func (w *Window) Full() bool {
	return w.n == len(w.buf)
}

func (w *Window) Sum() float64 {
	return w.sum
}

func (w *Window) Mean() float64 {
	if w.n == 0 {
		return 0
	}
	return w.sum / float64(w.n)
}

func (w *Window) Min() float64 {
	if w.n == 0 {
		return 0
	}
	min := math.Inf(1)
	for i := 0; i < w.n; i++ {
		if v := w.at(i); v < min {
			min = v
		}
	}
	return min
}

func (w *Window) Max() float64 {
	if w.n == 0 {
		return 0
	}
	max := math.Inf(-1)
	for i := 0; i < w.n; i++ {
		if v := w.at(i); v > max {
			max = v
		}
	}
	return max
}

// Variance is the population variance, recomputed over the whole buffer on
// every call. Incrementally maintained sum-of-squares is not bit-identical
// under floating point, so the full pass is kept on purpose.
func (w *Window) Variance() float64 {
	if w.n == 0 {
		return 0
	}
	mean := w.Mean()
	var acc float64
	for i := 0; i < w.n; i++ {
		d := w.at(i) - mean
		acc += d * d
	}
	return acc / float64(w.n)
}

func (w *Window) StdDev() float64 {
	return math.Sqrt(w.Variance())
}

func (w *Window) Reset() {
	w.head = 0
	w.n = 0
	w.sum = 0
}

// at returns the i-th oldest sample.
func (w *Window) at(i int) float64 {
	if w.n < len(w.buf) {
		return w.buf[i]
	}
	return w.buf[(w.head+i)%len(w.buf)]
}
