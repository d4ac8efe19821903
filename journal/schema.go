// journal/schema.go
package journal

const Schema = `
CREATE TABLE IF NOT EXISTS sessions (
	id TEXT PRIMARY KEY,
	seq INTEGER NOT NULL,
	date TEXT NOT NULL,
	game_type TEXT NOT NULL,
	stakes TEXT NOT NULL,
	buy_in TEXT NOT NULL,
	cash_out TEXT NOT NULL,
	net TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_sessions_seq ON sessions(seq);
`
