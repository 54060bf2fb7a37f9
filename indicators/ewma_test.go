package indicators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEWMASeedAndSmoothing(t *testing.T) {
	t.Parallel()

	e := NewEWMA(3) // alpha = 0.5
	assert.False(t, e.Ready())
	assert.Equal(t, 0.0, e.Value())

	e.Update(10)
	assert.InDelta(t, 10.0, e.Value(), 1e-12) // seeded with first price
	assert.False(t, e.Ready())

	e.Update(12)
	assert.InDelta(t, 11.0, e.Value(), 1e-12)
	assert.False(t, e.Ready())

	e.Update(11)
	assert.InDelta(t, 11.0, e.Value(), 1e-12)
	assert.True(t, e.Ready())
}

func TestEWMAMatchesRecurrence(t *testing.T) {
	t.Parallel()

	prices := []float64{100, 101, 99, 103, 98, 104, 97}
	const period = 4
	alpha := 2.0 / float64(period+1)

	e := NewEWMA(period)
	want := prices[0]
	for i, p := range prices {
		e.Update(p)
		if i > 0 {
			want = (p-want)*alpha + want
		}
		assert.InDelta(t, want, e.Value(), 1e-12, "tick %d", i)
	}
}

func TestEWMAReset(t *testing.T) {
	t.Parallel()

	e := NewEWMA(2)
	e.Update(5)
	e.Update(7)
	assert.True(t, e.Ready())

	e.Reset()
	assert.False(t, e.Ready())
	assert.Equal(t, 0, e.Count())
	e.Update(3)
	assert.InDelta(t, 3.0, e.Value(), 1e-12)
}

func TestStreamingContract(t *testing.T) {
	t.Parallel()

	// Each primitive satisfies the shared streaming contract.
	for _, s := range []Streaming{NewEWMA(3), NewWilder(3)} {
		s.Update(1)
		s.Reset()
		assert.False(t, s.Ready())
		assert.Equal(t, 0.0, s.Value())
	}
}
