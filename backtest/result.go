// Package backtest reduces trade ledgers to performance results and drives
// parameter sweeps of the strategies over a shared tick series.
package backtest

import (
	"sort"

	"github.com/rustyeddy/ticklab/strategies"
)

// Result is the immutable performance summary of one strategy run.
type Result struct {
	Strategy    string
	Trades      int
	Wins        int
	WinRate     float64 // percent
	TotalPL     float64
	AvgPL       float64
	LargestWin  float64
	LargestLoss float64
	Sharpe      float64
	MaxDrawdown float64 // non-positive
}

// RunResult pairs a result with the trade ledger that produced it.
type RunResult struct {
	Result
	Ledger []strategies.Trade
}

// SortByTotalPL orders results best-first by total P&L, name ascending on
// ties so output is deterministic regardless of execution order.
func SortByTotalPL(rs []RunResult) {
	sort.SliceStable(rs, func(i, j int) bool {
		if rs[i].TotalPL != rs[j].TotalPL {
			return rs[i].TotalPL > rs[j].TotalPL
		}
		return rs[i].Strategy < rs[j].Strategy
	})
}
