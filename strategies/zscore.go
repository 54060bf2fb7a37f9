package strategies

import (
	"fmt"

	"github.com/rustyeddy/ticklab/indicators"
	"github.com/rustyeddy/ticklab/market"
)

// ZScore buys when price sits more than threshold standard deviations below
// the rolling mean and exits as soon as it reverts above the mean (z > 0).
// The exit is deliberately asymmetric with the entry.
type ZScore struct {
	book
	period    int
	threshold float64
	win       *indicators.Window
}

func NewZScore(period int, threshold float64) *ZScore {
	return &ZScore{
		period:    period,
		threshold: threshold,
		win:       indicators.NewWindow(period),
	}
}

func (s *ZScore) Name() string {
	return fmt.Sprintf("ZScore(%d,%g)", s.period, s.threshold)
}

func (s *ZScore) OnTick(t market.Tick, idx int) {
	s.win.Push(t.Price)
	if !s.win.Full() {
		return
	}

	sigma := s.win.StdDev()
	z := 0.0
	if sigma > 0 {
		z = (t.Price - s.win.Mean()) / sigma
	}

	if !s.long && z < -s.threshold {
		s.enter(t)
	} else if s.long && z > 0 {
		s.exit(t)
	}
}

func (s *ZScore) Finalize() {}
