package store

// schemaSQL creates the estimate cache tables. The cache holds token
// estimates per transcript file, never rendered output.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS estimates (
	transcript_path TEXT PRIMARY KEY,
	mtime_ns        INTEGER NOT NULL,
	size_bytes      INTEGER NOT NULL,
	token_estimate  INTEGER NOT NULL,
	updated_at      TEXT NOT NULL
);
`
