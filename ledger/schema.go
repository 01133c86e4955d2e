// ledger/schema.go
package ledger

// Notionals can occupy the full unsigned 64-bit range, so they are stored
// as their two's-complement bit pattern (SQLite INTEGER is signed 64-bit)
// and cast back on read.
const Schema = `
CREATE TABLE IF NOT EXISTS trades (
	account TEXT NOT NULL,
	token_id TEXT NOT NULL,
	group_id INTEGER NOT NULL,
	instrument_id INTEGER NOT NULL,
	swap_type INTEGER NOT NULL,
	start_block INTEGER NOT NULL,
	duration INTEGER NOT NULL,
	notional INTEGER NOT NULL,
	PRIMARY KEY (account, token_id)
);

CREATE INDEX IF NOT EXISTS idx_trades_account ON trades(account);

CREATE TABLE IF NOT EXISTS runs (
	run_id TEXT PRIMARY KEY,
	account TEXT NOT NULL,
	block INTEGER NOT NULL,
	haircut_bps INTEGER NOT NULL,
	created DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_runs_account ON runs(account);

CREATE TABLE IF NOT EXISTS requirements (
	run_id TEXT NOT NULL,
	currency TEXT NOT NULL,
	npv INTEGER NOT NULL,
	requirement INTEGER NOT NULL,
	ladder TEXT NOT NULL,
	FOREIGN KEY (run_id) REFERENCES runs(run_id)
);

CREATE INDEX IF NOT EXISTS idx_requirements_run ON requirements(run_id);
`
