package cmd

import (
	"fmt"
	"time"

	"github.com/rustyeddy/ticklab/backtest"
	"github.com/rustyeddy/ticklab/config"
	"github.com/rustyeddy/ticklab/journal"
	"github.com/rustyeddy/ticklab/market/data"
	"github.com/rustyeddy/ticklab/pkg/id"
	"github.com/spf13/cobra"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Sweep every strategy family across its parameter grid",
	Long: `Sweep loads a tick file, replays it through every (family, parameter
tuple) combination of the fixed grid, and prints the runs ranked by total
P&L. Results and trade ledgers can be journaled to CSV files or SQLite.

Example:
  ticklab sweep --ticks data/ticks.csv --workers 4 --db sweeps.sqlite`,
	RunE: runSweep,
}

var (
	swConfigPath string
	swTicksPath  string
	swWorkers    int
	swTop        int
	swFamilies   []string
	swResultsCSV string
	swTradesCSV  string
	swDBPath     string
)

func init() {
	rootCmd.AddCommand(sweepCmd)

	sweepCmd.Flags().StringVarP(&swConfigPath, "config", "c", "", "path to YAML/JSON config file")
	sweepCmd.Flags().StringVarP(&swTicksPath, "ticks", "t", "", "path to tick file (time,price,volume; .gz/.lzma supported)")
	sweepCmd.Flags().IntVarP(&swWorkers, "workers", "w", 1, "parallel strategy runs")
	sweepCmd.Flags().IntVar(&swTop, "top", 10, "number of ranked results to print (0 = all)")
	sweepCmd.Flags().StringSliceVarP(&swFamilies, "strategies", "s", nil, "strategy families to run (default all)")
	sweepCmd.Flags().StringVar(&swResultsCSV, "results-csv", "", "write ranked results to this CSV file")
	sweepCmd.Flags().StringVar(&swTradesCSV, "trades-csv", "", "write trade ledgers to this CSV file")
	sweepCmd.Flags().StringVarP(&swDBPath, "db", "d", "", "journal results and trades to this SQLite database")
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := sweepConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.Data.Path == "" {
		return fmt.Errorf("tick file required (--ticks or data.path in config)")
	}

	series, stats, err := data.Load(cfg.Data.Path)
	if err != nil {
		return fmt.Errorf("load ticks: %w", err)
	}
	if stats.Skipped > 0 {
		log.Warn().Int("skipped", stats.Skipped).Msg("malformed rows dropped")
	}
	log.Info().Str("path", cfg.Data.Path).Int("ticks", series.Len()).Msg("ticks loaded")

	jobs := backtest.FilterFamilies(backtest.Grid(), cfg.Sweep.Strategies)
	runner := &backtest.Runner{Series: series, Workers: cfg.Sweep.Workers}

	started := time.Now()
	results, err := runner.Run(jobs)
	if err != nil {
		return err
	}
	log.Info().Int("runs", len(results)).Dur("elapsed", time.Since(started)).Msg("sweep complete")

	runID := id.New()
	if err := journalSweep(cfg, runID, cfg.Data.Path, series.Len(), started, results); err != nil {
		return err
	}

	printRanked(results, cfg.Sweep.Top)
	return nil
}

// sweepConfig merges the optional config file with explicit flag overrides.
func sweepConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if swConfigPath != "" {
		var err error
		if cfg, err = config.LoadFromFile(swConfigPath); err != nil {
			return nil, err
		}
	}

	if swTicksPath != "" {
		cfg.Data.Path = swTicksPath
	}
	if cmd.Flags().Changed("workers") {
		cfg.Sweep.Workers = swWorkers
	}
	if cmd.Flags().Changed("top") {
		cfg.Sweep.Top = swTop
	}
	if len(swFamilies) > 0 {
		cfg.Sweep.Strategies = swFamilies
	}
	if swResultsCSV != "" || swTradesCSV != "" {
		cfg.Journal = config.JournalConfig{Type: "csv", ResultsFile: swResultsCSV, TradesFile: swTradesCSV}
	}
	if swDBPath != "" {
		cfg.Journal = config.JournalConfig{Type: "sqlite", DBPath: swDBPath}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func journalSweep(cfg *config.Config, runID, source string, ticks int, started time.Time, results []backtest.RunResult) error {
	var j journal.Journal
	switch cfg.Journal.Type {
	case "", "none":
		return nil
	case "csv":
		cj, err := journal.NewCSV(cfg.Journal.ResultsFile, cfg.Journal.TradesFile)
		if err != nil {
			return fmt.Errorf("open csv journal: %w", err)
		}
		j = cj
	case "sqlite":
		sj, err := journal.NewSQLite(cfg.Journal.DBPath)
		if err != nil {
			return fmt.Errorf("open db: %w", err)
		}
		if err := sj.BeginRun(runID, source, ticks, started); err != nil {
			sj.Close()
			return fmt.Errorf("record run: %w", err)
		}
		j = sj
	}
	defer j.Close()

	for _, r := range results {
		if err := j.RecordResult(journal.ResultRecord{
			RunID:       runID,
			Strategy:    r.Strategy,
			Trades:      r.Trades,
			Wins:        r.Wins,
			WinRate:     r.WinRate,
			TotalPL:     r.TotalPL,
			AvgPL:       r.AvgPL,
			LargestWin:  r.LargestWin,
			LargestLoss: r.LargestLoss,
			Sharpe:      r.Sharpe,
			MaxDrawdown: r.MaxDrawdown,
		}); err != nil {
			return err
		}
		for _, tr := range r.Ledger {
			if err := j.RecordTrade(journal.TradeRecord{
				RunID:         runID,
				Strategy:      r.Strategy,
				EntryTime:     tr.EntryTime,
				EntryPrice:    tr.EntryPrice,
				ExitTime:      tr.ExitTime,
				ExitPrice:     tr.ExitPrice,
				ProfitLoss:    tr.ProfitLoss,
				ProfitLossPct: tr.ProfitLossPct,
			}); err != nil {
				return err
			}
		}
	}

	log.Info().Str("run_id", runID).Str("journal", cfg.Journal.Type).Msg("sweep journaled")
	return nil
}

func printRanked(results []backtest.RunResult, top int) {
	if top <= 0 || top > len(results) {
		top = len(results)
	}

	fmt.Printf("%-4s %-22s %7s %8s %12s %12s %8s %12s\n",
		"#", "strategy", "trades", "win%", "total P&L", "avg P&L", "sharpe", "max DD")
	for i, r := range results[:top] {
		fmt.Printf("%-4d %-22s %7d %7.2f%% %12.4f %12.4f %8.3f %12.4f\n",
			i+1, r.Strategy, r.Trades, r.WinRate, r.TotalPL, r.AvgPL, r.Sharpe, r.MaxDrawdown)
	}
}
