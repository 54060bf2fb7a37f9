package cmd

import (
	"github.com/rs/zerolog"
	"github.com/rustyeddy/ticklab/pkg/logger"
	"github.com/spf13/cobra"
)

var (
	logLevel string
	log      zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "ticklab",
	Short: "Replay tick data through technical-indicator strategies",
	Long: `Ticklab replays a time-ordered tick file through a set of stateful
technical-indicator strategies, sweeps each strategy across a fixed parameter
grid, and ranks the runs by total P&L.

It provides tools for:
  - Sweeping ten indicator families (SMA, EMA, DualMA, RSI, MACD,
    Stochastic, Bollinger, ATR breakout, Z-score, VWAP) over a tick file
  - Replaying a single strategy and inspecting its trade ledger
  - Journaling results and trades to CSV or SQLite`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log = logger.New(logLevel)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
}
