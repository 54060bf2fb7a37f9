package backtest

import (
	"math"

	"github.com/rustyeddy/ticklab/strategies"
)

// Analyze reduces a completed trade ledger to a Result. It is a pure
// function: the ledger is not modified and repeated calls yield identical
// results. An empty ledger produces the zero summary.
func Analyze(name string, trades []strategies.Trade) Result {
	res := Result{Strategy: name, Trades: len(trades)}
	if len(trades) == 0 {
		return res
	}

	for _, tr := range trades {
		res.TotalPL += tr.ProfitLoss
		if tr.ProfitLoss > 0 {
			res.Wins++
		}
		if tr.ProfitLoss > res.LargestWin {
			res.LargestWin = tr.ProfitLoss
		}
		if tr.ProfitLoss < res.LargestLoss {
			res.LargestLoss = tr.ProfitLoss
		}
	}
	res.WinRate = float64(res.Wins) / float64(len(trades)) * 100
	res.AvgPL = res.TotalPL / float64(len(trades))
	res.Sharpe = sharpe(trades)
	res.MaxDrawdown = maxDrawdown(trades)
	return res
}

// sharpe is the per-trade approximation: mean percentage return divided by
// the population standard deviation of the same series, zero risk-free rate.
func sharpe(trades []strategies.Trade) float64 {
	n := float64(len(trades))
	var mean float64
	for _, tr := range trades {
		mean += tr.ProfitLossPct
	}
	mean /= n

	var variance float64
	for _, tr := range trades {
		d := tr.ProfitLossPct - mean
		variance += d * d
	}
	variance /= n

	if variance == 0 {
		return 0
	}
	return mean / math.Sqrt(variance)
}

// maxDrawdown walks the ledger in trade order, accumulating realized equity
// against its running peak. The result is min(equity - peak), a non-positive
// number starting from zero equity.
func maxDrawdown(trades []strategies.Trade) float64 {
	var equity, peak, dd float64
	for _, tr := range trades {
		equity += tr.ProfitLoss
		if equity > peak {
			peak = equity
		}
		if equity-peak < dd {
			dd = equity - peak
		}
	}
	return dd
}
