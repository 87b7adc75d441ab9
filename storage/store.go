// Package storage keeps finished runs in a SQLite database through the
// pure-Go modernc.org/sqlite driver.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/milk9111/jumpdontdie/config"
)

// Store persists runs and answers high score queries.
type Store struct {
	db *sql.DB
}

// Run is one finished play session.
type Run struct {
	ID        int64
	Level     string
	Distance  int
	Jumps     int
	CreatedAt time.Time
}

const timeLayout = "2006-01-02 15:04:05"

// Open creates or opens the database at path, creating parent directories.
// ":memory:" opens a private in-memory database.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		path = config.ExpandHome(path)
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("storage: create directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: open database: %w", err)
	}
	// one connection keeps ":memory:" a single database
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: connect: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migrate: %w", err)
	}
	return store, nil
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level TEXT NOT NULL,
			distance INTEGER NOT NULL,
			jumps INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(level, distance DESC);
	`)
	return err
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SaveRun records a run and returns its id.
func (s *Store) SaveRun(run Run) (int64, error) {
	if run.Level == "" {
		return 0, fmt.Errorf("storage: save run: empty level")
	}
	res, err := s.db.Exec(
		"INSERT INTO runs (level, distance, jumps) VALUES (?, ?, ?)",
		run.Level, run.Distance, run.Jumps,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: save run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: save run: last insert id: %w", err)
	}
	return id, nil
}

// Best returns the longest distance recorded for level, or 0.
func (s *Store) Best(level string) (int, error) {
	var best sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(distance) FROM runs WHERE level = ?", level).Scan(&best)
	if err != nil {
		return 0, fmt.Errorf("storage: best: %w", err)
	}
	if !best.Valid {
		return 0, nil
	}
	return int(best.Int64), nil
}

// Top returns up to limit runs for level, longest first. Ties keep the
// earlier run ahead.
func (s *Store) Top(level string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(
		`SELECT id, level, distance, jumps, created_at
		 FROM runs
		 WHERE level = ?
		 ORDER BY distance DESC, id ASC
		 LIMIT ?`,
		level, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: top: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Level, &r.Distance, &r.Jumps, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: top: scan: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: top: %w", err)
	}
	return runs, nil
}

// Levels lists every level with at least one recorded run.
func (s *Store) Levels() ([]string, error) {
	rows, err := s.db.Query("SELECT DISTINCT level FROM runs ORDER BY level")
	if err != nil {
		return nil, fmt.Errorf("storage: levels: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var level string
		if err := rows.Scan(&level); err != nil {
			return nil, fmt.Errorf("storage: levels: scan: %w", err)
		}
		out = append(out, level)
	}
	return out, rows.Err()
}

func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(timeLayout, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
