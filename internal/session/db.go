// Package session persists local state across runs: one bearer token
// per portal scope plus per-entity view preferences. Backed by a small
// SQLite file.
package session

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS sessions (
		scope      TEXT PRIMARY KEY CHECK (scope IN ('admin', 'client')),
		token      TEXT NOT NULL,
		updated_at TEXT NOT NULL DEFAULT (datetime('now'))
	)`,
	`CREATE TABLE IF NOT EXISTS view_prefs (
		entity           TEXT PRIMARY KEY,
		entries_per_page INTEGER NOT NULL DEFAULT 10,
		compact          INTEGER NOT NULL DEFAULT 0
	)`,
}

// OpenDB opens the session database at the given path, creating parent
// directories as needed. ":memory:" opens an in-memory database. WAL and
// foreign keys are enabled and migrations run idempotently.
func OpenDB(path string) (*sql.DB, error) {
	if path != ":memory:" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return db, nil
}

// DefaultDBPath resolves the session database location: $ARBEIT_DB or
// ~/.arbeit/arbeit.db.
func DefaultDBPath() (string, error) {
	if p := os.Getenv("ARBEIT_DB"); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".arbeit", "arbeit.db"), nil
}
