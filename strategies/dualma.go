package strategies

import (
	"fmt"

	"github.com/rustyeddy/ticklab/indicators"
	"github.com/rustyeddy/ticklab/market"
)

// DualMA trades fast/slow EMA crossovers: a bullish cross (fast was at or
// below slow, now above) opens, the bearish cross closes. Both averages are
// seeded with the first price and the slow period gates warm-up.
type DualMA struct {
	book
	fastPeriod int
	slowPeriod int
	fast       *indicators.EWMA
	slow       *indicators.EWMA

	prevFast float64
	prevSlow float64
	havePrev bool
}

func NewDualMA(fastPeriod, slowPeriod int) *DualMA {
	return &DualMA{
		fastPeriod: fastPeriod,
		slowPeriod: slowPeriod,
		fast:       indicators.NewEWMA(fastPeriod),
		slow:       indicators.NewEWMA(slowPeriod),
	}
}

func (s *DualMA) Name() string {
	return fmt.Sprintf("DualMA(%d,%d)", s.fastPeriod, s.slowPeriod)
}

func (s *DualMA) OnTick(t market.Tick, idx int) {
	s.fast.Update(t.Price)
	s.slow.Update(t.Price)

	f := s.fast.Value()
	sl := s.slow.Value()

	if s.slow.Count() >= s.slowPeriod && s.havePrev {
		if !s.long && s.prevFast <= s.prevSlow && f > sl {
			s.enter(t)
		} else if s.long && s.prevFast >= s.prevSlow && f < sl {
			s.exit(t)
		}
	}

	s.prevFast = f
	s.prevSlow = sl
	s.havePrev = true
}

func (s *DualMA) Finalize() {}
