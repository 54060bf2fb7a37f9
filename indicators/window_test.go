package indicators

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindowRolling(t *testing.T) {
	t.Parallel()

	w := NewWindow(3)
	assert.False(t, w.Full())
	assert.Equal(t, 0.0, w.Mean())

	w.Push(1)
	w.Push(2)
	assert.False(t, w.Full())
	assert.Equal(t, 2, w.Len())
	assert.InDelta(t, 1.5, w.Mean(), 1e-12)

	w.Push(3)
	assert.True(t, w.Full())
	assert.InDelta(t, 2.0, w.Mean(), 1e-12)

	// Eviction: oldest sample (1) drops out.
	w.Push(10)
	assert.True(t, w.Full())
	assert.InDelta(t, 5.0, w.Mean(), 1e-12)
	assert.Equal(t, 2.0, w.Min())
	assert.Equal(t, 10.0, w.Max())
}

func TestWindowMatchesNaiveStats(t *testing.T) {
	t.Parallel()

	prices := []float64{10, 11, 9, 12, 8, 15, 7, 13, 14, 6, 11.5, 9.25}
	const period = 5

	w := NewWindow(period)
	for i, p := range prices {
		w.Push(p)
		if i+1 < period {
			continue
		}

		// Naive recomputation over the last period prices.
		last := prices[i+1-period : i+1]
		var sum float64
		for _, v := range last {
			sum += v
		}
		mean := sum / period

		var variance float64
		mn, mx := math.Inf(1), math.Inf(-1)
		for _, v := range last {
			d := v - mean
			variance += d * d
			mn = math.Min(mn, v)
			mx = math.Max(mx, v)
		}
		variance /= period

		assert.InDelta(t, mean, w.Mean(), 1e-9, "tick %d", i)
		assert.InDelta(t, variance, w.Variance(), 1e-9, "tick %d", i)
		assert.InDelta(t, math.Sqrt(variance), w.StdDev(), 1e-9, "tick %d", i)
		assert.Equal(t, mn, w.Min(), "tick %d", i)
		assert.Equal(t, mx, w.Max(), "tick %d", i)
	}
}

func TestWindowReset(t *testing.T) {
	t.Parallel()

	w := NewWindow(2)
	w.Push(5)
	w.Push(6)
	w.Reset()
	assert.Equal(t, 0, w.Len())
	assert.Equal(t, 0.0, w.Sum())

	w.Push(3)
	assert.InDelta(t, 3.0, w.Mean(), 1e-12)
}

func TestWindowConstantSeries(t *testing.T) {
	t.Parallel()

	w := NewWindow(4)
	for i := 0; i < 8; i++ {
		w.Push(42)
	}
	assert.Equal(t, 0.0, w.Variance())
	assert.Equal(t, 0.0, w.StdDev())
	assert.Equal(t, 42.0, w.Min())
	assert.Equal(t, 42.0, w.Max())
}
