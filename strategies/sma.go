package strategies

import (
	"fmt"

	"github.com/rustyeddy/ticklab/indicators"
	"github.com/rustyeddy/ticklab/market"
)

// SMA trades price crossings of a simple moving average: long when the price
// is above the average, flat when it falls back below.
type SMA struct {
	book
	period int
	win    *indicators.Window
}

func NewSMA(period int) *SMA {
	return &SMA{
		period: period,
		win:    indicators.NewWindow(period),
	}
}

func (s *SMA) Name() string {
	return fmt.Sprintf("SMA(%d)", s.period)
}

func (s *SMA) OnTick(t market.Tick, idx int) {
	s.win.Push(t.Price)
	if !s.win.Full() {
		return
	}

	avg := s.win.Mean()
	if !s.long && t.Price > avg {
		s.enter(t)
	} else if s.long && t.Price < avg {
		s.exit(t)
	}
}

func (s *SMA) Finalize() {}
