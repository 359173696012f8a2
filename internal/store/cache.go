// Package store provides a SQLite-backed cache for transcript token
// estimates, so repeated renders of the same session skip the full
// transcript parse.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Cache provides SQLite-backed estimate caching. WAL mode keeps concurrent
// renderer processes from blocking each other.
type Cache struct {
	db *sql.DB
}

// Open opens or creates the cache database at the given path.
func Open(dbPath string) (*Cache, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating cache dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=busy_timeout(250)")
	if err != nil {
		return nil, fmt.Errorf("opening cache db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Cache{db: db}, nil
}

// Close closes the cache database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Get returns the cached token estimate for a transcript. The hit is valid
// only when the stored mtime and size still match the file on disk.
func (c *Cache) Get(path string, mtimeNs, sizeBytes int64) (int64, bool) {
	var storedMtime, storedSize, tokens int64
	err := c.db.QueryRow(
		"SELECT mtime_ns, size_bytes, token_estimate FROM estimates WHERE transcript_path = ?",
		path,
	).Scan(&storedMtime, &storedSize, &tokens)
	if err != nil {
		return 0, false
	}
	if storedMtime != mtimeNs || storedSize != sizeBytes {
		return 0, false
	}
	return tokens, true
}

// Put stores a token estimate with the file identity it was computed from.
func (c *Cache) Put(path string, mtimeNs, sizeBytes, tokens int64) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := c.db.Exec(`INSERT OR REPLACE INTO estimates
		(transcript_path, mtime_ns, size_bytes, token_estimate, updated_at)
		VALUES (?, ?, ?, ?, ?)`,
		path, mtimeNs, sizeBytes, tokens, now,
	)
	return err
}

// Prune removes entries whose transcript no longer exists on disk.
func (c *Cache) Prune() (int, error) {
	rows, err := c.db.Query("SELECT transcript_path FROM estimates")
	if err != nil {
		return 0, err
	}
	defer func() { _ = rows.Close() }()

	var stale []string
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			return 0, err
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			stale = append(stale, path)
		}
	}
	if err := rows.Err(); err != nil {
		return 0, err
	}

	for _, path := range stale {
		if _, err := c.db.Exec("DELETE FROM estimates WHERE transcript_path = ?", path); err != nil {
			return 0, err
		}
	}
	return len(stale), nil
}

// Count returns the number of cached estimates.
func (c *Cache) Count() (int, error) {
	var count int
	err := c.db.QueryRow("SELECT COUNT(*) FROM estimates").Scan(&count)
	return count, err
}
