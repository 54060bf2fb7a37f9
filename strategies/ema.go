package strategies

import (
	"fmt"

	"github.com/rustyeddy/ticklab/indicators"
	"github.com/rustyeddy/ticklab/market"
)

// EMA is the exponential-average twin of SMA. The average is seeded with the
// first price; signals are suppressed until period ticks have been seen.
type EMA struct {
	book
	period int
	ema    *indicators.EWMA
}

func NewEMA(period int) *EMA {
	return &EMA{
		period: period,
		ema:    indicators.NewEWMA(period),
	}
}

func (s *EMA) Name() string {
	return fmt.Sprintf("EMA(%d)", s.period)
}

func (s *EMA) OnTick(t market.Tick, idx int) {
	s.ema.Update(t.Price)
	if !s.ema.Ready() {
		return
	}

	v := s.ema.Value()
	if !s.long && t.Price > v {
		s.enter(t)
	} else if s.long && t.Price < v {
		s.exit(t)
	}
}

func (s *EMA) Finalize() {}
