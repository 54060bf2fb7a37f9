// Package strategies contains the tick-replay trading strategies. Each
// strategy is an independent state machine over the same tick series: it
// maintains bounded rolling statistics, holds at most one simulated long
// position, and records completed round-trips in its trade ledger.
package strategies

import (
	"fmt"
	"strings"
	"time"

	"github.com/rustyeddy/ticklab/market"
)

// Trade is one completed long round-trip.
type Trade struct {
	EntryTime     time.Time
	EntryPrice    float64
	ExitTime      time.Time
	ExitPrice     float64
	ProfitLoss    float64 // ExitPrice - EntryPrice
	ProfitLossPct float64 // ProfitLoss / EntryPrice * 100
}

// TickStrategy is the minimal interface a backtest strategy must implement.
// OnTick is called exactly once per tick in increasing index order and must
// not look ahead. Finalize is called exactly once after the last tick; it
// does not close an open position. Trades is stable after Finalize.
type TickStrategy interface {
	Name() string
	OnTick(t market.Tick, idx int)
	Finalize()
	Trades() []Trade
}

// Params carries the union of tunable parameters the strategies accept.
// Zero fields fall back to the defaults below when built ByName.
type Params struct {
	Period  int
	Fast    int
	Slow    int
	Signal  int
	SmoothK int
	SmoothD int

	Low        float64
	High       float64
	StdDev     float64
	Multiplier float64
	Threshold  float64
}

func DefaultParams() Params {
	return Params{
		Period:     20,
		Fast:       12,
		Slow:       26,
		Signal:     9,
		SmoothK:    3,
		SmoothD:    3,
		Low:        30,
		High:       70,
		StdDev:     2,
		Multiplier: 1.5,
		Threshold:  2,
	}
}

// ByName builds a fresh strategy instance from a family name and parameters.
func ByName(name string, p Params) (TickStrategy, error) {
	d := DefaultParams()
	if p.Period <= 0 {
		p.Period = d.Period
	}
	if p.Fast <= 0 {
		p.Fast = d.Fast
	}
	if p.Slow <= 0 {
		p.Slow = d.Slow
	}
	if p.Signal <= 0 {
		p.Signal = d.Signal
	}
	if p.SmoothK <= 0 {
		p.SmoothK = d.SmoothK
	}
	if p.SmoothD <= 0 {
		p.SmoothD = d.SmoothD
	}
	if p.Low <= 0 {
		p.Low = d.Low
	}
	if p.High <= 0 {
		p.High = d.High
	}
	if p.StdDev <= 0 {
		p.StdDev = d.StdDev
	}
	if p.Multiplier <= 0 {
		p.Multiplier = d.Multiplier
	}
	if p.Threshold <= 0 {
		p.Threshold = d.Threshold
	}

	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sma":
		return NewSMA(p.Period), nil
	case "ema":
		return NewEMA(p.Period), nil
	case "dualma", "dual-ma":
		return NewDualMA(p.Fast, p.Slow), nil
	case "rsi":
		return NewRSI(p.Period, p.Low, p.High), nil
	case "macd":
		return NewMACD(p.Fast, p.Slow, p.Signal), nil
	case "stochastic", "stoch":
		return NewStochastic(p.Period, p.SmoothK, p.SmoothD, p.Low, p.High), nil
	case "bollinger":
		return NewBollinger(p.Period, p.StdDev), nil
	case "atr", "atr-breakout":
		return NewATRBreakout(p.Period, p.Multiplier), nil
	case "zscore", "z-score":
		return NewZScore(p.Period, p.Threshold), nil
	case "vwap":
		return NewVWAP(), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q (supported: %s)", name, strings.Join(Families(), ", "))
	}
}

// Families lists the strategy family names understood by ByName, in sweep
// order.
func Families() []string {
	return []string{"sma", "ema", "dualma", "rsi", "macd", "stochastic", "bollinger", "atr", "zscore", "vwap"}
}
