// Package storage keeps the run ledger: every finished run of the current
// process, held in an in-memory SQLite database. Nothing is written to disk.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Ledger records finished runs. It is safe for concurrent use; all access
// goes through a single connection.
type Ledger struct {
	db *sql.DB
}

// RunResult is one finished run.
type RunResult struct {
	ID       int64
	Player   string // Local user or SSH user name
	Score    int
	Cause    string // What ended the run: "floor" or "obstacle"
	Duration time.Duration
	EndedAt  time.Time
}

// Summary aggregates the runs of one player or of everyone.
type Summary struct {
	Runs     int
	Best     int
	Average  float64
	LastRun  time.Time // Zero when there are no runs
	Playtime time.Duration
}

// OpenMemory creates an empty in-memory ledger.
func OpenMemory() (*Ledger, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Every connection to :memory: is a separate database
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	l := &Ledger{db: db}
	if err := l.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return l, nil
}

// migrate creates the schema.
func (l *Ledger) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player TEXT NOT NULL,
			score INTEGER NOT NULL,
			cause TEXT NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			ended_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(score DESC, ended_at);
		CREATE INDEX IF NOT EXISTS idx_runs_player ON runs(player, score DESC);
	`
	_, err := l.db.Exec(schema)
	return err
}

// Close releases the database. The recorded runs are gone afterwards.
func (l *Ledger) Close() error {
	if l.db != nil {
		return l.db.Close()
	}
	return nil
}

// RecordRun stores a finished run and returns its ID.
// A zero EndedAt is replaced by the current time.
func (l *Ledger) RecordRun(r RunResult) (int64, error) {
	if r.EndedAt.IsZero() {
		r.EndedAt = time.Now()
	}
	res, err := l.db.Exec(
		"INSERT INTO runs (player, score, cause, duration_ms, ended_at) VALUES (?, ?, ?, ?, ?)",
		r.Player, r.Score, r.Cause, r.Duration.Milliseconds(), r.EndedAt.UnixMilli(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record run: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopRuns returns the best runs, highest score first. Ties go to the
// earlier run.
func (l *Ledger) TopRuns(limit int) ([]RunResult, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := l.db.Query(
		`SELECT id, player, score, cause, duration_ms, ended_at
		 FROM runs
		 ORDER BY score DESC, ended_at ASC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunResult
	for rows.Next() {
		var (
			r          RunResult
			durationMs int64
			endedAtMs  int64
		)
		if err := rows.Scan(&r.ID, &r.Player, &r.Score, &r.Cause, &durationMs, &endedAtMs); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationMs) * time.Millisecond
		r.EndedAt = time.UnixMilli(endedAtMs)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// Best returns the highest recorded score, or 0 if there are no runs.
func (l *Ledger) Best() (int, error) {
	var score sql.NullInt64
	if err := l.db.QueryRow("SELECT MAX(score) FROM runs").Scan(&score); err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// Summary aggregates all runs.
func (l *Ledger) Summary() (Summary, error) {
	return l.summarize("1 = 1")
}

// PlayerSummary aggregates the runs of one player.
func (l *Ledger) PlayerSummary(player string) (Summary, error) {
	return l.summarize("player = ?", player)
}

func (l *Ledger) summarize(where string, args ...any) (Summary, error) {
	var (
		s          Summary
		lastMs     int64
		playtimeMs int64
	)
	err := l.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(MAX(ended_at), 0), COALESCE(SUM(duration_ms), 0)
		 FROM runs WHERE `+where,
		args...,
	).Scan(&s.Runs, &s.Best, &s.Average, &lastMs, &playtimeMs)
	if err != nil {
		return Summary{}, fmt.Errorf("storage: cannot summarize runs: %w", err)
	}

	if s.Runs > 0 {
		s.LastRun = time.UnixMilli(lastMs)
	}
	s.Playtime = time.Duration(playtimeMs) * time.Millisecond
	return s, nil
}
