package strategies

import (
	"fmt"

	"github.com/rustyeddy/ticklab/indicators"
	"github.com/rustyeddy/ticklab/market"
)

// RSI is a mean-reversion strategy on the Relative Strength Index: it buys
// oversold (RSI below the low bound) and sells overbought (RSI above the
// high bound). The smoothing is Wilder's: a simple average over the first
// period deltas, exponential with weight 1/period after that.
type RSI struct {
	book
	period int
	low    float64
	high   float64
	rsi    *indicators.Wilder
}

func NewRSI(period int, low, high float64) *RSI {
	return &RSI{
		period: period,
		low:    low,
		high:   high,
		rsi:    indicators.NewWilder(period),
	}
}

func (s *RSI) Name() string {
	return fmt.Sprintf("RSI(%d,%g,%g)", s.period, s.low, s.high)
}

func (s *RSI) OnTick(t market.Tick, idx int) {
	s.rsi.Update(t.Price)
	if !s.rsi.Ready() {
		return
	}

	v := s.rsi.Value()
	if !s.long && v < s.low {
		s.enter(t)
	} else if s.long && v > s.high {
		s.exit(t)
	}
}

func (s *RSI) Finalize() {}
