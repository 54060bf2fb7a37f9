package journal

const Schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id TEXT PRIMARY KEY,
	source TEXT NOT NULL,
	ticks INTEGER NOT NULL,
	started DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS results (
	run_id TEXT NOT NULL,
	strategy TEXT NOT NULL,
	trades INTEGER NOT NULL,
	wins INTEGER NOT NULL,
	win_rate REAL NOT NULL,
	total_pl REAL NOT NULL,
	avg_pl REAL NOT NULL,
	largest_win REAL NOT NULL,
	largest_loss REAL NOT NULL,
	sharpe REAL NOT NULL,
	max_drawdown REAL NOT NULL,
	PRIMARY KEY (run_id, strategy)
);

CREATE TABLE IF NOT EXISTS trades (
	run_id TEXT NOT NULL,
	strategy TEXT NOT NULL,
	entry_time DATETIME NOT NULL,
	entry_price REAL NOT NULL,
	exit_time DATETIME NOT NULL,
	exit_price REAL NOT NULL,
	profit_loss REAL NOT NULL,
	profit_loss_pct REAL NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_results_run ON results(run_id);
CREATE INDEX IF NOT EXISTS idx_trades_run_strategy ON trades(run_id, strategy);
`
