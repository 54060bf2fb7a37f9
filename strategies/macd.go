package strategies

import (
	"fmt"

	"github.com/rustyeddy/ticklab/indicators"
	"github.com/rustyeddy/ticklab/market"
)

// MACD trades signal-line crossovers of the MACD line (fast EMA minus slow
// EMA). The signal line is an EMA of the MACD seeded at the tick the MACD
// first counts as defined (slow-period ticks in); crossings are evaluated
// with hysteresis against the previous tick so a touch does not trigger.
type MACD struct {
	book
	fastPeriod   int
	slowPeriod   int
	signalPeriod int

	fast        *indicators.EWMA
	slow        *indicators.EWMA
	signalAlpha float64
	signal      float64
	count       int

	prevMACD   float64
	prevSignal float64
	havePrev   bool
}

func NewMACD(fastPeriod, slowPeriod, signalPeriod int) *MACD {
	return &MACD{
		fastPeriod:   fastPeriod,
		slowPeriod:   slowPeriod,
		signalPeriod: signalPeriod,
		fast:         indicators.NewEWMA(fastPeriod),
		slow:         indicators.NewEWMA(slowPeriod),
		signalAlpha:  2.0 / float64(signalPeriod+1),
	}
}

func (s *MACD) Name() string {
	return fmt.Sprintf("MACD(%d,%d,%d)", s.fastPeriod, s.slowPeriod, s.signalPeriod)
}

func (s *MACD) OnTick(t market.Tick, idx int) {
	s.count++
	s.fast.Update(t.Price)
	s.slow.Update(t.Price)

	macd := s.fast.Value() - s.slow.Value()

	switch {
	case s.count == s.slowPeriod:
		s.signal = macd
	case s.count > s.slowPeriod:
		s.signal = (macd-s.signal)*s.signalAlpha + s.signal
	default:
		return
	}

	if s.count >= s.slowPeriod+s.signalPeriod && s.havePrev {
		if !s.long && s.prevMACD <= s.prevSignal && macd > s.signal {
			s.enter(t)
		} else if s.long && s.prevMACD >= s.prevSignal && macd < s.signal {
			s.exit(t)
		}
	}

	s.prevMACD = macd
	s.prevSignal = s.signal
	s.havePrev = true
}

func (s *MACD) Finalize() {}
