// Package history persists per-asset conversion outcomes to SQLite so
// repeated batch runs stay auditable.
package history

import (
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

//go:embed sql/001_initial.sql
var initialSQL string

// Entry is one recorded conversion outcome.
type Entry struct {
	ID         int64
	Asset      string
	SourcePath string
	Outcome    string
	Reason     string
	CreatedAt  time.Time
}

// Store records conversion outcomes.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the history database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	if _, err := db.Exec(initialSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate history db: %w", err)
	}
	return &Store{db: db}, nil
}

// NewStore wraps an existing database handle (tests).
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Migrate applies the schema to the wrapped handle.
func (s *Store) Migrate() error {
	if _, err := s.db.Exec(initialSQL); err != nil {
		return fmt.Errorf("migrate history db: %w", err)
	}
	return nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record persists one terminal job outcome.
func (s *Store) Record(asset, sourcePath, outcome, reason string) error {
	_, err := s.db.Exec(`
		INSERT INTO conversions (asset, source_path, outcome, reason)
		VALUES (?, ?, ?, ?)`,
		asset, sourcePath, outcome, reason,
	)
	if err != nil {
		return fmt.Errorf("insert conversion: %w", err)
	}
	return nil
}

// Recent returns the latest entries, newest first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	rows, err := s.db.Query(`
		SELECT id, asset, source_path, outcome, reason, created_at
		FROM conversions
		ORDER BY id DESC
		LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query conversions: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Asset, &e.SourcePath, &e.Outcome, &e.Reason, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan conversion: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Counts returns the number of recorded conversions per outcome.
func (s *Store) Counts() (map[string]int, error) {
	rows, err := s.db.Query(`SELECT outcome, COUNT(*) FROM conversions GROUP BY outcome`)
	if err != nil {
		return nil, fmt.Errorf("count conversions: %w", err)
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var outcome string
		var n int
		if err := rows.Scan(&outcome, &n); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		out[outcome] = n
	}
	return out, rows.Err()
}
