package journal

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteJournal stores runs, results, and trades in a SQLite database so
// sweeps can be compared after the fact.
type SQLiteJournal struct {
	db    *sql.DB
	runID string
}

func NewSQLite(path string) (*SQLiteJournal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}
	return &SQLiteJournal{db: db}, nil
}

// BeginRun records the sweep itself and pins the run ID used by subsequent
// RecordResult/RecordTrade calls.
func (j *SQLiteJournal) BeginRun(runID, source string, ticks int, started time.Time) error {
	_, err := j.db.Exec(`
		INSERT INTO runs (run_id, source, ticks, started)
		VALUES (?, ?, ?, ?)`,
		runID, source, ticks, started.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return err
	}
	j.runID = runID
	return nil
}

func (j *SQLiteJournal) RecordResult(r ResultRecord) error {
	if r.RunID == "" {
		r.RunID = j.runID
	}
	_, err := j.db.Exec(`
		INSERT INTO results
		(run_id, strategy, trades, wins, win_rate, total_pl, avg_pl, largest_win, largest_loss, sharpe, max_drawdown)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.Strategy, r.Trades, r.Wins, r.WinRate, r.TotalPL,
		r.AvgPL, r.LargestWin, r.LargestLoss, r.Sharpe, r.MaxDrawdown,
	)
	return err
}

func (j *SQLiteJournal) RecordTrade(t TradeRecord) error {
	if t.RunID == "" {
		t.RunID = j.runID
	}
	_, err := j.db.Exec(`
		INSERT INTO trades
		(run_id, strategy, entry_time, entry_price, exit_time, exit_price, profit_loss, profit_loss_pct)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		t.RunID, t.Strategy,
		t.EntryTime.UTC().Format(time.RFC3339), t.EntryPrice,
		t.ExitTime.UTC().Format(time.RFC3339), t.ExitPrice,
		t.ProfitLoss, t.ProfitLossPct,
	)
	return err
}

// ListResults returns the results of a run ranked by total P&L descending.
func (j *SQLiteJournal) ListResults(runID string) ([]ResultRecord, error) {
	rows, err := j.db.Query(`
		SELECT run_id, strategy, trades, wins, win_rate, total_pl, avg_pl, largest_win, largest_loss, sharpe, max_drawdown
		FROM results
		WHERE run_id = ?
		ORDER BY total_pl DESC, strategy ASC`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ResultRecord
	for rows.Next() {
		var r ResultRecord
		if err := rows.Scan(
			&r.RunID, &r.Strategy, &r.Trades, &r.Wins, &r.WinRate,
			&r.TotalPL, &r.AvgPL, &r.LargestWin, &r.LargestLoss,
			&r.Sharpe, &r.MaxDrawdown,
		); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// ListTrades returns one strategy's ledger for a run, in close order.
func (j *SQLiteJournal) ListTrades(runID, strategy string) ([]TradeRecord, error) {
	rows, err := j.db.Query(`
		SELECT run_id, strategy, entry_time, entry_price, exit_time, exit_price, profit_loss, profit_loss_pct
		FROM trades
		WHERE run_id = ? AND strategy = ?
		ORDER BY exit_time ASC`, runID, strategy)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TradeRecord
	for rows.Next() {
		var t TradeRecord
		var entry, exit string
		if err := rows.Scan(
			&t.RunID, &t.Strategy, &entry, &t.EntryPrice,
			&exit, &t.ExitPrice, &t.ProfitLoss, &t.ProfitLossPct,
		); err != nil {
			return nil, err
		}
		if t.EntryTime, err = time.Parse(time.RFC3339, entry); err != nil {
			return nil, fmt.Errorf("bad entry_time %q: %w", entry, err)
		}
		if t.ExitTime, err = time.Parse(time.RFC3339, exit); err != nil {
			return nil, fmt.Errorf("bad exit_time %q: %w", exit, err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (j *SQLiteJournal) Close() error {
	return j.db.Close()
}
