package strategies

import (
	"fmt"

	"github.com/rustyeddy/ticklab/indicators"
	"github.com/rustyeddy/ticklab/market"
)

// Stochastic trades the smoothed %K oscillator: long when it drops below the
// low bound, flat when it rises above the high bound. Ticks carry a single
// price, so that price stands in for high, low, and close; %K saturates at
// 0 or 100 whenever the current price is the window extremum. Keep it that
// way: switching to OHLC changes trade counts.
type Stochastic struct {
	book
	period  int
	smoothK int
	smoothD int
	low     float64
	high    float64

	prices *indicators.Window
	kWin   *indicators.Window
	dWin   *indicators.Window
}

func NewStochastic(period, smoothK, smoothD int, low, high float64) *Stochastic {
	return &Stochastic{
		period:  period,
		smoothK: smoothK,
		smoothD: smoothD,
		low:     low,
		high:    high,
		prices:  indicators.NewWindow(period),
		kWin:    indicators.NewWindow(smoothK),
		dWin:    indicators.NewWindow(smoothD),
	}
}

func (s *Stochastic) Name() string {
	return fmt.Sprintf("Stochastic(%d,%d,%d)", s.period, s.smoothK, s.smoothD)
}

func (s *Stochastic) OnTick(t market.Tick, idx int) {
	s.prices.Push(t.Price)
	if !s.prices.Full() {
		return
	}

	lo, hi := s.prices.Min(), s.prices.Max()
	k := 0.0
	if hi > lo {
		k = (t.Price - lo) / (hi - lo) * 100
	}
	s.kWin.Push(k)
	if !s.kWin.Full() {
		return
	}

	smoothed := s.kWin.Mean()
	s.dWin.Push(smoothed)

	if !s.long && smoothed < s.low {
		s.enter(t)
	} else if s.long && smoothed > s.high {
		s.exit(t)
	}
}

// K returns the current smoothed %K, or 0 before warm-up.
func (s *Stochastic) K() float64 {
	if !s.kWin.Full() {
		return 0
	}
	return s.kWin.Mean()
}

// D returns %D, the smoothed-%K average over the smoothD window.
func (s *Stochastic) D() float64 {
	return s.dWin.Mean()
}

func (s *Stochastic) Finalize() {}
