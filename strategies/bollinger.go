package strategies

import (
	"fmt"

	"github.com/rustyeddy/ticklab/indicators"
	"github.com/rustyeddy/ticklab/market"
)

// Bollinger buys touches of the lower band (mean - k sigma) and sells
// touches of the upper band. Sigma is the population standard deviation,
// recomputed in full over the window each tick.
type Bollinger struct {
	book
	period int
	k      float64
	win    *indicators.Window
}

func NewBollinger(period int, numStdDev float64) *Bollinger {
	return &Bollinger{
		period: period,
		k:      numStdDev,
		win:    indicators.NewWindow(period),
	}
}

func (s *Bollinger) Name() string {
	return fmt.Sprintf("Bollinger(%d,%g)", s.period, s.k)
}

func (s *Bollinger) OnTick(t market.Tick, idx int) {
	s.win.Push(t.Price)
	if !s.win.Full() {
		return
	}

	mean := s.win.Mean()
	sigma := s.win.StdDev()
	lower := mean - s.k*sigma
	upper := mean + s.k*sigma

	if !s.long && t.Price <= lower {
		s.enter(t)
	} else if s.long && t.Price >= upper {
		s.exit(t)
	}
}

func (s *Bollinger) Finalize() {}
