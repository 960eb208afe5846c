// Package store persists finished exam results to a local SQLite database.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"

	"github.com/tanmay/physiq/internal/exam"
)

// Store is the results history database.
type Store struct {
	db *sql.DB
}

// Result is one finished exam, as stored in history.
type Result struct {
	ExamID        string
	CandidateName string
	TakenAt       time.Time
	Score         int
	Total         int
	Percentage    float64
	Correct       int
	Incorrect     int
	Unanswered    int
	TimeTaken     time.Duration
	Expired       bool
}

const schema = `
CREATE TABLE IF NOT EXISTS results (
	id              INTEGER PRIMARY KEY AUTOINCREMENT,
	exam_id         TEXT    NOT NULL,
	candidate_name  TEXT    NOT NULL DEFAULT '',
	taken_at        TEXT    NOT NULL,
	score           INTEGER NOT NULL,
	total           INTEGER NOT NULL,
	percentage      REAL    NOT NULL,
	correct         INTEGER NOT NULL,
	incorrect       INTEGER NOT NULL,
	unanswered      INTEGER NOT NULL,
	time_taken_secs INTEGER NOT NULL,
	expired         INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_results_taken_at ON results (taken_at DESC);
`

// Open creates a Store connected to the SQLite database at dsn.
// It applies recommended pragmas and creates the schema.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// AppendResult records a finished exam in history.
func (s *Store) AppendResult(ctx context.Context, r Result) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO results (
			exam_id, candidate_name, taken_at, score, total, percentage,
			correct, incorrect, unanswered, time_taken_secs, expired
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ExamID, r.CandidateName, r.TakenAt.UTC().Format(time.RFC3339),
		r.Score, r.Total, r.Percentage,
		r.Correct, r.Incorrect, r.Unanswered,
		int64(r.TimeTaken.Seconds()), boolToInt(r.Expired),
	)
	if err != nil {
		return fmt.Errorf("insert result: %w", err)
	}
	return nil
}

// ListResults returns the most recent results, newest first.
// limit <= 0 returns everything.
func (s *Store) ListResults(ctx context.Context, limit int) ([]Result, error) {
	query := `
		SELECT exam_id, candidate_name, taken_at, score, total, percentage,
		       correct, incorrect, unanswered, time_taken_secs, expired
		FROM results
		ORDER BY taken_at DESC, id DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var takenAt string
		var timeTakenSecs int64
		var expired int
		if err := rows.Scan(
			&r.ExamID, &r.CandidateName, &takenAt, &r.Score, &r.Total, &r.Percentage,
			&r.Correct, &r.Incorrect, &r.Unanswered, &timeTakenSecs, &expired,
		); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, takenAt); err == nil {
			r.TakenAt = t
		}
		r.TimeTaken = time.Duration(timeTakenSecs) * time.Second
		r.Expired = expired != 0
		results = append(results, r)
	}
	return results, rows.Err()
}

// ResultFromReport builds a history row from a scored session.
func ResultFromReport(session *exam.Session, report exam.ScoreReport) Result {
	return Result{
		ExamID:        session.ExamID,
		CandidateName: session.Config.CandidateName,
		TakenAt:       session.StartedAt,
		Score:         report.Score,
		Total:         report.Total,
		Percentage:    report.Percentage,
		Correct:       report.Correct,
		Incorrect:     report.Incorrect,
		Unanswered:    report.Unanswered,
		TimeTaken:     report.TimeTaken,
		Expired:       session.Expired,
	}
}

// applyPragmas configures SQLite for single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. PHYSIQ_DB environment variable
// 2. $XDG_DATA_HOME/physiq/physiq.db
// 3. ~/.local/share/physiq/physiq.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("PHYSIQ_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "physiq", "physiq.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
