package strategies

import (
	"github.com/rustyeddy/ticklab/market"
)

// VWAP trades around the cumulative volume-weighted average price since the
// start of the series (no window): long below VWAP, flat above. Signals are
// strict inequalities, so a price exactly at VWAP never transitions, and no
// signal is evaluated until cumulative volume is nonzero.
type VWAP struct {
	book
	sumPV float64
	sumV  float64
}

func NewVWAP() *VWAP {
	return &VWAP{}
}

func (s *VWAP) Name() string {
	return "VWAP"
}

func (s *VWAP) OnTick(t market.Tick, idx int) {
	s.sumPV += t.Price * float64(t.Volume)
	s.sumV += float64(t.Volume)
	if s.sumV == 0 {
		return
	}

	vwap := s.sumPV / s.sumV
	if !s.long && t.Price < vwap {
		s.enter(t)
	} else if s.long && t.Price > vwap {
		s.exit(t)
	}
}

func (s *VWAP) Finalize() {}
