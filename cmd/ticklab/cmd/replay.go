package cmd

import (
	"fmt"
	"time"

	"github.com/rustyeddy/ticklab/backtest"
	"github.com/rustyeddy/ticklab/market/data"
	"github.com/rustyeddy/ticklab/strategies"
	"github.com/spf13/cobra"
)

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Replay one strategy over a tick file and print its trades",
	Long: `Replay runs a single strategy with a single parameter tuple over a
tick file, then prints the completed trade ledger and its summary.

Example:
  ticklab replay --ticks data/ticks.csv --strategy rsi --period 14 --low 30 --high 70`,
	RunE: runReplay,
}

var (
	rpTicksPath string
	rpStrategy  string
	rpParams    strategies.Params
)

func init() {
	rootCmd.AddCommand(replayCmd)

	replayCmd.Flags().StringVarP(&rpTicksPath, "ticks", "t", "", "path to tick file (required)")
	replayCmd.Flags().StringVarP(&rpStrategy, "strategy", "s", "sma", "strategy family")

	replayCmd.Flags().IntVar(&rpParams.Period, "period", 0, "indicator period")
	replayCmd.Flags().IntVar(&rpParams.Fast, "fast", 0, "fast period (dualma, macd)")
	replayCmd.Flags().IntVar(&rpParams.Slow, "slow", 0, "slow period (dualma, macd)")
	replayCmd.Flags().IntVar(&rpParams.Signal, "signal", 0, "signal period (macd)")
	replayCmd.Flags().IntVar(&rpParams.SmoothK, "smooth-k", 0, "%K smoothing (stochastic)")
	replayCmd.Flags().IntVar(&rpParams.SmoothD, "smooth-d", 0, "%D smoothing (stochastic)")
	replayCmd.Flags().Float64Var(&rpParams.Low, "low", 0, "oversold bound (rsi, stochastic)")
	replayCmd.Flags().Float64Var(&rpParams.High, "high", 0, "overbought bound (rsi, stochastic)")
	replayCmd.Flags().Float64Var(&rpParams.StdDev, "stddev", 0, "band width in standard deviations (bollinger)")
	replayCmd.Flags().Float64Var(&rpParams.Multiplier, "mult", 0, "ATR multiplier (atr)")
	replayCmd.Flags().Float64Var(&rpParams.Threshold, "threshold", 0, "entry z-score (zscore)")

	replayCmd.MarkFlagRequired("ticks")
}

func runReplay(cmd *cobra.Command, args []string) error {
	strat, err := strategies.ByName(rpStrategy, rpParams)
	if err != nil {
		return err
	}

	series, stats, err := data.Load(rpTicksPath)
	if err != nil {
		return fmt.Errorf("load ticks: %w", err)
	}
	if stats.Skipped > 0 {
		log.Warn().Int("skipped", stats.Skipped).Msg("malformed rows dropped")
	}

	it := series.Iterator()
	for it.Next() {
		strat.OnTick(it.Tick(), it.Index())
	}
	strat.Finalize()

	trades := strat.Trades()
	res := backtest.Analyze(strat.Name(), trades)

	fmt.Printf("%s over %d ticks\n\n", res.Strategy, series.Len())
	for i, tr := range trades {
		fmt.Printf("%3d  %s -> %s  entry=%.4f exit=%.4f pl=%+.4f (%+.2f%%)\n",
			i+1,
			tr.EntryTime.Format(time.RFC3339), tr.ExitTime.Format(time.RFC3339),
			tr.EntryPrice, tr.ExitPrice, tr.ProfitLoss, tr.ProfitLossPct)
	}

	fmt.Printf("\ntrades=%d wins=%d win_rate=%.2f%% total_pl=%.4f avg_pl=%.4f sharpe=%.3f max_dd=%.4f\n",
		res.Trades, res.Wins, res.WinRate, res.TotalPL, res.AvgPL, res.Sharpe, res.MaxDrawdown)
	return nil
}
