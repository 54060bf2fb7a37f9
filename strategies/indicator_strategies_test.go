package strategies

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEMACrossing(t *testing.T) {
	t.Parallel()

	s := NewEMA(2) // alpha = 2/3
	feed(s, 10, 11, 9, 12)

	// EMA after tick 1 is 10.667: enter at 11. After tick 2 it is 9.556:
	// exit at 9. Tick 3 re-enters and stays open.
	trades := s.Trades()
	require.Len(t, trades, 1)
	assert.Equal(t, 11.0, trades[0].EntryPrice)
	assert.Equal(t, 9.0, trades[0].ExitPrice)
}

func TestDualMACrossover(t *testing.T) {
	t.Parallel()

	s := NewDualMA(2, 3)
	assert.Equal(t, "DualMA(2,3)", s.Name())

	feed(s, 10, 8, 12, 6)

	// Fast crosses above slow on the 12 tick, below again on the 6 tick.
	trades := s.Trades()
	require.Len(t, trades, 1)
	assert.Equal(t, 12.0, trades[0].EntryPrice)
	assert.Equal(t, 6.0, trades[0].ExitPrice)
}

func TestMACDSignalCross(t *testing.T) {
	t.Parallel()

	s := NewMACD(1, 2, 2)
	feed(s, 10, 12, 11, 14, 8)

	trades := s.Trades()
	require.Len(t, trades, 1)
	assert.Equal(t, 14.0, trades[0].EntryPrice)
	assert.Equal(t, 8.0, trades[0].ExitPrice)
}

func TestRSIOversoldOverbought(t *testing.T) {
	t.Parallel()

	s := NewRSI(2, 30, 70)
	feed(s, 10, 9, 8, 7, 8, 9)

	// Straight decline drives RSI to 0: enter at 7. The recovery lifts RSI
	// to 75: exit at 9.
	trades := s.Trades()
	require.Len(t, trades, 1)
	assert.Equal(t, 7.0, trades[0].EntryPrice)
	assert.Equal(t, 9.0, trades[0].ExitPrice)
}

func TestStochasticSaturation(t *testing.T) {
	t.Parallel()

	s := NewStochastic(3, 2, 2, 20, 80)
	feed(s, 10, 9, 8, 7, 12, 13)

	// Close-only ticks: a falling price is always the window minimum, so
	// %K pins at 0 and enters at 7; the rally pins it at 100 and exits at 13.
	trades := s.Trades()
	require.Len(t, trades, 1)
	assert.Equal(t, 7.0, trades[0].EntryPrice)
	assert.Equal(t, 13.0, trades[0].ExitPrice)

	// %K is pinned at the top of the range; %D lags over its window.
	assert.InDelta(t, 100.0, s.K(), 1e-12)
	assert.InDelta(t, 75.0, s.D(), 1e-12)
}

func TestBollingerBandTouches(t *testing.T) {
	t.Parallel()

	s := NewBollinger(3, 1)
	feed(s, 10, 10, 10, 20)

	// A flat window collapses the bands onto the mean, so price == lower
	// band enters at 10; the spike to 20 clears the upper band and exits.
	trades := s.Trades()
	require.Len(t, trades, 1)
	assert.Equal(t, 10.0, trades[0].EntryPrice)
	assert.Equal(t, 20.0, trades[0].ExitPrice)
	assert.InDelta(t, 10.0, trades[0].ProfitLoss, 1e-12)
}

func TestATRBreakout(t *testing.T) {
	t.Parallel()

	s := NewATRBreakout(2, 1)
	feed(s, 10, 11, 12, 9)

	// Rising ticks stay within ATR of the trailing high: enter at 12.
	// The drop to 9 lands below trailing low + ATR: exit at 9.
	trades := s.Trades()
	require.Len(t, trades, 1)
	assert.Equal(t, 12.0, trades[0].EntryPrice)
	assert.Equal(t, 9.0, trades[0].ExitPrice)
}

func TestZScoreAsymmetricExit(t *testing.T) {
	t.Parallel()

	s := NewZScore(3, 1)
	feed(s, 10, 10, 10, 4, 9)

	// Flat prices give sigma=0 and z=0 (no entry). The drop to 4 is z=-1.41:
	// enter. 9 is above the new rolling mean (z>0): exit at mean reversion,
	// well short of +threshold.
	trades := s.Trades()
	require.Len(t, trades, 1)
	assert.Equal(t, 4.0, trades[0].EntryPrice)
	assert.Equal(t, 9.0, trades[0].ExitPrice)
}
