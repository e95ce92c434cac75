package store

import (
	"database/sql"
	"errors"
	"fmt"

	"tracelog/session"
)

// Run is one traced demo execution.
type Run struct {
	ID         string `json:"id" yaml:"id"`
	Algorithm  string `json:"algorithm" yaml:"algorithm"`
	Size       int    `json:"size" yaml:"size"`
	TracePath  string `json:"trace_path" yaml:"trace_path"`
	ASCII      bool   `json:"ascii" yaml:"ascii"`
	Result     string `json:"result" yaml:"result"`
	Lines      int    `json:"lines" yaml:"lines"`
	StartedAt  string `json:"started_at" yaml:"started_at"`
	FinishedAt string `json:"finished_at" yaml:"finished_at"`
}

const selectRuns = `SELECT id, algorithm, size, trace_path, ascii, result, lines, started_at, finished_at FROM trace_runs`

// FetchRuns retrieves runs newest first. A limit of zero or less returns all runs.
func FetchRuns(db *sql.DB, limit int) ([]Run, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is required to fetch runs")
	}
	query := selectRuns + ` ORDER BY started_at DESC, id`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	session.Debugf("SQL: %s", query)
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var records []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate run rows: %w", err)
	}
	return records, nil
}

// FetchRun retrieves a single run by id.
func FetchRun(db *sql.DB, id string) (Run, error) {
	if db == nil {
		return Run{}, fmt.Errorf("database connection is required to fetch a run")
	}
	query := selectRuns + ` WHERE id = ?`
	session.Debugf("SQL: %s", query)
	r, err := scanRun(db.QueryRow(query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	return r, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (Run, error) {
	var r Run
	var tracePath, result, finishedAt sql.NullString
	var ascii sql.NullBool
	var lines sql.NullInt64
	err := row.Scan(&r.ID, &r.Algorithm, &r.Size, &tracePath, &ascii, &result, &lines, &r.StartedAt, &finishedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, err
	}
	if err != nil {
		return Run{}, fmt.Errorf("failed to scan run row: %w", err)
	}
	r.TracePath = tracePath.String
	r.ASCII = ascii.Bool
	r.Result = result.String
	r.Lines = int(lines.Int64)
	r.FinishedAt = finishedAt.String
	return r, nil
}
