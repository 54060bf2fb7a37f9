// Package journal persists sweep results and trade ledgers, either as CSV
// files or a SQLite database. The core never writes here directly; the CLI
// feeds it immutable records after a sweep completes.
package journal

import "time"

// TradeRecord is one completed round-trip as persisted.
type TradeRecord struct {
	RunID         string
	Strategy      string
	EntryTime     time.Time
	EntryPrice    float64
	ExitTime      time.Time
	ExitPrice     float64
	ProfitLoss    float64
	ProfitLossPct float64
}

// ResultRecord is one strategy run's performance summary as persisted.
type ResultRecord struct {
	RunID       string
	Strategy    string
	Trades      int
	Wins        int
	WinRate     float64
	TotalPL     float64
	AvgPL       float64
	LargestWin  float64
	LargestLoss float64
	Sharpe      float64
	MaxDrawdown float64
}

type Journal interface {
	RecordResult(ResultRecord) error
	RecordTrade(TradeRecord) error
	Close() error
}
