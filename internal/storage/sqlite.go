// internal/storage/sqlite.go
//
// SQLite-backed Provider.
// Responsibilities:
//   - Opening the database with safe defaults (WAL, busy timeout, foreign keys).
//   - Creating the kv table if missing (idempotent).
//   - Upsert/read of opaque blobs keyed by name.
//
// Read/write failures degrade to "blob absent" with a logged warning; the
// game core always has a default to fall back to.

package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

type sqliteStore struct {
	db *sql.DB
}

// NewSQLite opens (and creates if missing) a SQLite database file and
// prepares the kv table.
//
//   - Ensures the parent directory exists for relative DSNs (e.g. ./data/app.db).
//   - Configures busy timeout and WAL journaling mode.
//   - Enforces foreign keys.
func NewSQLite(dsn string) (Provider, func() error, error) {
	// Ensure directory exists for ./data/app.db, etc.
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, nil, err
	}
	if _, err := db.Exec(`PRAGMA foreign_keys = ON; PRAGMA journal_mode = WAL;`); err != nil {
		return nil, nil, fmt.Errorf("set pragmas: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);`); err != nil {
		return nil, nil, fmt.Errorf("create kv: %w", err)
	}
	return &sqliteStore{db: db}, db.Close, nil
}

func (s *sqliteStore) Get(key string) (string, bool) {
	var v string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key=?`, key).Scan(&v)
	if err == sql.ErrNoRows {
		return "", false
	}
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("storage read failed")
		return "", false
	}
	return v, true
}

func (s *sqliteStore) Set(key, value string) {
	_, err := s.db.Exec(`INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value=excluded.value`, key, value)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("storage write failed")
	}
}
