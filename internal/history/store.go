package history

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jfmyers9/tunecheck/internal/suite"
	_ "modernc.org/sqlite"
)

// failureSep joins failure messages in one column; testify messages span lines
const failureSep = "\x1e"

// Store keeps a persistent history of suite runs using SQLite
type Store struct {
	db *sql.DB
}

// Run is a summary row for one recorded run
type Run struct {
	ID       string
	Started  time.Time
	Finished time.Time
	Passed   int
	Failed   int
	Skipped  int
}

// ScenarioResult is one recorded scenario outcome
type ScenarioResult struct {
	RunID    string
	Scenario string
	Kind     string
	Passed   bool
	Skipped  bool
	Failures []string
	Duration time.Duration
}

// NewStore opens (or creates) a history database at dbPath
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// A single connection keeps :memory: databases consistent
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 10000",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA journal_mode = WAL",
		"PRAGMA temp_store = MEMORY",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			started INTEGER NOT NULL,
			finished INTEGER NOT NULL,
			passed INTEGER NOT NULL,
			failed INTEGER NOT NULL,
			skipped INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			scenario TEXT NOT NULL,
			kind TEXT NOT NULL,
			passed BOOLEAN NOT NULL,
			skipped BOOLEAN NOT NULL DEFAULT 0,
			failures TEXT,
			duration_ms INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started);
		CREATE INDEX IF NOT EXISTS idx_results_run ON results(run_id, position);
	`

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Record stores a run report and all of its scenario results
func (s *Store) Record(ctx context.Context, report *suite.Report) error {
	passed, failed, skipped := report.Counts()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, started, finished, passed, failed, skipped)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		report.ID,
		report.Started.UnixMilli(),
		report.Finished.UnixMilli(),
		passed, failed, skipped,
	)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO results (run_id, position, scenario, kind, passed, skipped, failures, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for i, res := range report.Results {
		var failures sql.NullString
		if len(res.Failures) > 0 {
			failures = sql.NullString{String: strings.Join(res.Failures, failureSep), Valid: true}
		}
		_, err := stmt.ExecContext(ctx,
			report.ID,
			i,
			res.Scenario,
			string(res.Kind),
			res.Passed,
			res.Skipped,
			failures,
			res.Duration.Milliseconds(),
		)
		if err != nil {
			return fmt.Errorf("failed to insert result %s: %w", res.Scenario, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// Recent returns the most recent runs, newest first
// A limit <= 0 returns all runs
func (s *Store) Recent(ctx context.Context, limit int) ([]Run, error) {
	query := `
		SELECT id, started, finished, passed, failed, skipped
		FROM runs
		ORDER BY started DESC
	`

	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var started, finished int64

		if err := rows.Scan(&r.ID, &started, &finished, &r.Passed, &r.Failed, &r.Skipped); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}

		r.Started = time.UnixMilli(started)
		r.Finished = time.UnixMilli(finished)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating runs: %w", err)
	}

	return runs, nil
}

// Results returns the scenario results of a run in execution order
func (s *Store) Results(ctx context.Context, runID string) ([]ScenarioResult, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT run_id, scenario, kind, passed, skipped, COALESCE(failures, ''), duration_ms
		FROM results
		WHERE run_id = ?
		ORDER BY position ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query results: %w", err)
	}
	defer rows.Close()

	var results []ScenarioResult
	for rows.Next() {
		var r ScenarioResult
		var failures string
		var durationMS int64

		err := rows.Scan(&r.RunID, &r.Scenario, &r.Kind, &r.Passed, &r.Skipped, &failures, &durationMS)
		if err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}

		if failures != "" {
			r.Failures = strings.Split(failures, failureSep)
		}
		r.Duration = time.Duration(durationMS) * time.Millisecond
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating results: %w", err)
	}

	return results, nil
}

// Cleanup removes runs older than maxAge along with their results
func (s *Store) Cleanup(ctx context.Context, maxAge time.Duration) (int64, error) {
	cutoff := time.Now().Add(-maxAge).UnixMilli()

	result, err := s.db.ExecContext(ctx, "DELETE FROM runs WHERE started < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup old runs: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return deleted, nil
}
