package strategies

import (
	"fmt"
	"math"

	"github.com/rustyeddy/ticklab/indicators"
	"github.com/rustyeddy/ticklab/market"
)

// ATRBreakout enters when price closes within ATR*multiplier of the trailing
// high and exits within ATR*multiplier of the trailing low. With close-only
// ticks the true range degenerates to |price - prevPrice|; entry resets the
// trailing high to the current price and exit resets the trailing low.
type ATRBreakout struct {
	book
	period     int
	multiplier float64

	tr       *indicators.Window
	prev     float64
	havePrev bool

	recentHigh float64
	recentLow  float64
}

func NewATRBreakout(period int, multiplier float64) *ATRBreakout {
	return &ATRBreakout{
		period:     period,
		multiplier: multiplier,
		tr:         indicators.NewWindow(period),
	}
}

func (s *ATRBreakout) Name() string {
	return fmt.Sprintf("ATRBreakout(%d,%g)", s.period, s.multiplier)
}

func (s *ATRBreakout) OnTick(t market.Tick, idx int) {
	if !s.havePrev {
		s.prev = t.Price
		s.havePrev = true
		s.recentHigh = t.Price
		s.recentLow = t.Price
		return
	}

	s.tr.Push(math.Abs(t.Price - s.prev))
	s.prev = t.Price

	if t.Price > s.recentHigh {
		s.recentHigh = t.Price
	}
	if t.Price < s.recentLow {
		s.recentLow = t.Price
	}

	if !s.tr.Full() {
		return
	}
	atr := s.tr.Mean()

	if !s.long && t.Price > s.recentHigh-atr*s.multiplier {
		s.enter(t)
		s.recentHigh = t.Price
	} else if s.long && t.Price < s.recentLow+atr*s.multiplier {
		s.exit(t)
		s.recentLow = t.Price
	}
}

func (s *ATRBreakout) Finalize() {}
