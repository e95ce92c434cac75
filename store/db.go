package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"tracelog/session"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const (
	// Database configuration
	DBFileName         = "tracelog.db"
	sqliteMaxVariables = 999

	// timeLayout is fixed width so stored timestamps sort lexically.
	timeLayout = "2006-01-02T15:04:05.000000000Z"
)

// ErrRunNotFound indicates that no run has the requested id.
var ErrRunNotFound = errors.New("run not found")

var runColumns = []string{
	"id", "algorithm", "size", "trace_path", "ascii", "result", "lines", "started_at", "finished_at",
}

func insertOrReplaceBatch(db *sql.DB, table string, columns []string, rows [][]any) error {
	if len(rows) == 0 {
		return nil
	}

	columnCount := len(columns)
	if columnCount == 0 {
		return fmt.Errorf("no columns provided for %s", table)
	}
	if columnCount > sqliteMaxVariables {
		return fmt.Errorf("column count %d exceeds SQLite limit %d for %s", columnCount, sqliteMaxVariables, table)
	}

	values := make([]string, columnCount)
	for i := range values {
		values[i] = "?"
	}
	plHolder := "(" + strings.Join(values, ",") + ")"
	batchSize := sqliteMaxVariables / columnCount

	for start := 0; start < len(rows); start += batchSize {
		end := min(start+batchSize, len(rows))

		placeholders := make([]string, 0, end-start)
		args := make([]any, 0, columnCount*(end-start))

		for _, row := range rows[start:end] {
			if len(row) != columnCount {
				return fmt.Errorf("expected %d values for %s insert, got %d", columnCount, table, len(row))
			}
			placeholders = append(placeholders, plHolder)
			args = append(args, row...)
		}

		query := fmt.Sprintf(
			"INSERT OR REPLACE INTO %s(%s) VALUES %s",
			table,
			strings.Join(columns, ", "),
			strings.Join(placeholders, ","),
		)
		session.Debugf("SQL: insert %d rows into %s", end-start, table)
		if _, err := db.Exec(query, args...); err != nil {
			return fmt.Errorf("failed to insert into %s: %w", table, err)
		}
	}

	return nil
}

// DBPath is the runtime-configured SQLite file path. If empty, DBFileName is used.
var DBPath string

// SetDBPath sets a custom SQLite file path. Empty resets to default.
func SetDBPath(path string) {
	DBPath = path
}

// Path returns the SQLite file InitDatabase opens.
func Path() string {
	if DBPath != "" {
		return DBPath
	}
	return DBFileName
}

// InitDatabase creates and initializes the SQLite database with required tables
func InitDatabase() (*sql.DB, error) {
	path := Path()
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := createTables(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return db, nil
}

// createTables creates all required database tables if they don't exist
func createTables(db *sql.DB) error {
	tables := []string{
		`CREATE TABLE IF NOT EXISTS trace_runs (
			id TEXT PRIMARY KEY,
			algorithm TEXT NOT NULL,
			size INTEGER NOT NULL,
			trace_path TEXT,
			ascii BOOLEAN,
			result TEXT,
			lines INTEGER,
			started_at TEXT NOT NULL,
			finished_at TEXT
		)`,
	}

	for _, query := range tables {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	// indexes
	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_trace_runs_started_at ON trace_runs(started_at)`,
	}
	for _, idx := range indexes {
		if _, err := db.Exec(idx); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return nil
}

// NewRun returns a run with a fresh id, started now.
func NewRun(algorithm string, size int, tracePath string, ascii bool) Run {
	return Run{
		ID:        uuid.NewString(),
		Algorithm: algorithm,
		Size:      size,
		TracePath: tracePath,
		ASCII:     ascii,
		StartedAt: formatTime(time.Now()),
	}
}

// Finish stamps the run with its result, the number of trace lines written and the finish time.
func (r *Run) Finish(result string, lines int) {
	r.Result = result
	r.Lines = lines
	r.FinishedAt = formatTime(time.Now())
}

// RecordRun stores or replaces a single run.
func RecordRun(db *sql.DB, run Run) error {
	return RecordRuns(db, []Run{run})
}

// RecordRuns stores or replaces runs in batches.
func RecordRuns(db *sql.DB, runs []Run) error {
	if db == nil {
		return fmt.Errorf("database connection is required to record runs")
	}
	rows := make([][]any, 0, len(runs))
	for _, r := range runs {
		if r.ID == "" {
			return fmt.Errorf("run for %s has no id", r.Algorithm)
		}
		rows = append(rows, []any{
			r.ID, r.Algorithm, r.Size, r.TracePath, r.ASCII, r.Result, r.Lines, r.StartedAt, r.FinishedAt,
		})
	}
	return insertOrReplaceBatch(db, "trace_runs", runColumns, rows)
}

// formatTime renders t in UTC, or "" for the zero time.
func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(timeLayout)
}
