package journal

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"
)

// CSVJournal writes results and trades to two CSV files with fixed headers.
type CSVJournal struct {
	results *csv.Writer
	trades  *csv.Writer
	rf, tf  *os.File
}

var (
	resultsHeader = []string{"run_id", "strategy", "trades", "wins", "win_rate", "total_pl", "avg_pl", "largest_win", "largest_loss", "sharpe", "max_drawdown"}
	tradesHeader  = []string{"run_id", "strategy", "entry_time", "entry_price", "exit_time", "exit_price", "profit_loss", "profit_loss_pct"}
)

func NewCSV(resultsPath, tradesPath string) (*CSVJournal, error) {
	rf, err := os.Create(resultsPath)
	if err != nil {
		return nil, err
	}
	tf, err := os.Create(tradesPath)
	if err != nil {
		rf.Close()
		return nil, err
	}

	rw := csv.NewWriter(rf)
	tw := csv.NewWriter(tf)

	if err := rw.Write(resultsHeader); err != nil {
		return nil, err
	}
	if err := tw.Write(tradesHeader); err != nil {
		return nil, err
	}
	rw.Flush()
	if err := rw.Error(); err != nil {
		return nil, err
	}
	tw.Flush()
	if err := tw.Error(); err != nil {
		return nil, err
	}

	return &CSVJournal{results: rw, trades: tw, rf: rf, tf: tf}, nil
}

func (j *CSVJournal) RecordResult(r ResultRecord) error {
	j.results.Write([]string{
		r.RunID,
		r.Strategy,
		strconv.Itoa(r.Trades),
		strconv.Itoa(r.Wins),
		f(r.WinRate),
		f(r.TotalPL),
		f(r.AvgPL),
		f(r.LargestWin),
		f(r.LargestLoss),
		f(r.Sharpe),
		f(r.MaxDrawdown),
	})
	j.results.Flush()
	return j.results.Error()
}

func (j *CSVJournal) RecordTrade(t TradeRecord) error {
	j.trades.Write([]string{
		t.RunID,
		t.Strategy,
		t.EntryTime.Format(time.RFC3339),
		f(t.EntryPrice),
		t.ExitTime.Format(time.RFC3339),
		f(t.ExitPrice),
		f(t.ProfitLoss),
		f(t.ProfitLossPct),
	})
	j.trades.Flush()
	return j.trades.Error()
}

func (j *CSVJournal) Close() error {
	j.results.Flush()
	j.trades.Flush()
	if err := j.results.Error(); err != nil {
		return err
	}
	if err := j.trades.Error(); err != nil {
		return err
	}
	if err := j.rf.Close(); err != nil {
		return err
	}
	return j.tf.Close()
}

func f(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
