package indicators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWilderWarmup(t *testing.T) {
	t.Parallel()

	w := NewWilder(3)

	// Seed tick plus three deltas: averages exist but Ready waits one more.
	for _, p := range []float64{10, 11, 10.5, 11.5} {
		w.Update(p)
		assert.False(t, w.Ready())
		assert.Equal(t, 0.0, w.Value())
	}

	w.Update(12)
	assert.True(t, w.Ready())
}

func TestWilderRSIValues(t *testing.T) {
	t.Parallel()

	w := NewWilder(3)
	for _, p := range []float64{10, 11, 10.5, 11.5, 12} {
		w.Update(p)
	}
	// avgGain=(2/3*2+0.5)/3, avgLoss=(1/6*2)/3 -> RS=5.5
	assert.InDelta(t, 84.6154, w.Value(), 0.001)

	w.Update(11)
	// Gain and loss averages land equal -> RS=1 -> RSI=50.
	assert.InDelta(t, 50.0, w.Value(), 0.001)
}

func TestWilderAllGainsSaturates(t *testing.T) {
	t.Parallel()

	w := NewWilder(3)
	for _, p := range []float64{10, 11, 12, 13, 14, 15} {
		w.Update(p)
	}
	assert.True(t, w.Ready())
	assert.Equal(t, 100.0, w.Value())
}

func TestWilderReset(t *testing.T) {
	t.Parallel()

	w := NewWilder(2)
	for _, p := range []float64{10, 11, 9, 12} {
		w.Update(p)
	}
	assert.True(t, w.Ready())

	w.Reset()
	assert.False(t, w.Ready())
	assert.Equal(t, 0.0, w.Value())
}
