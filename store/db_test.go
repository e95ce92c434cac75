package store

import (
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// Every pooled connection would otherwise get its own in-memory database.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	if err := createTables(db); err != nil {
		t.Fatalf("Failed to create tables: %v", err)
	}
	return db
}

func TestInitDatabase(t *testing.T) {
	origPath := DBPath
	t.Cleanup(func() { SetDBPath(origPath) })
	SetDBPath(filepath.Join(t.TempDir(), "test_db.sqlite"))

	db, err := InitDatabase()
	if err != nil {
		t.Fatalf("InitDatabase failed: %v", err)
	}
	defer db.Close()

	var tableName string
	err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", "trace_runs").Scan(&tableName)
	if err != nil {
		t.Fatalf("Table trace_runs was not created: %v", err)
	}

	// Re-running table creation must be harmless.
	if err := createTables(db); err != nil {
		t.Fatalf("createTables is not idempotent: %v", err)
	}
}

func TestRecordAndFetchRuns(t *testing.T) {
	db := openTestDB(t)

	older := NewRun("factorial", 5, "/tmp/a.log", true)
	older.StartedAt = formatTime(time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC))
	older.Finish("120", 42)

	newer := NewRun("hanoi", 3, "", false)
	newer.StartedAt = formatTime(time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC))

	if err := RecordRun(db, older); err != nil {
		t.Fatalf("RecordRun failed: %v", err)
	}
	if err := RecordRun(db, newer); err != nil {
		t.Fatalf("RecordRun failed: %v", err)
	}

	runs, err := FetchRuns(db, 0)
	if err != nil {
		t.Fatalf("FetchRuns failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].ID != newer.ID || runs[1].ID != older.ID {
		t.Fatalf("expected newest first, got %s then %s", runs[0].Algorithm, runs[1].Algorithm)
	}
	if runs[1] != older {
		t.Fatalf("stored run does not match:\n got  %+v\n want %+v", runs[1], older)
	}

	limited, err := FetchRuns(db, 1)
	if err != nil {
		t.Fatalf("FetchRuns with limit failed: %v", err)
	}
	if len(limited) != 1 || limited[0].ID != newer.ID {
		t.Fatalf("unexpected limited result: %+v", limited)
	}

	got, err := FetchRun(db, older.ID)
	if err != nil {
		t.Fatalf("FetchRun failed: %v", err)
	}
	if got.Result != "120" || got.Lines != 42 || !got.ASCII {
		t.Fatalf("unexpected run %+v", got)
	}

	if _, err := FetchRun(db, "missing"); !errors.Is(err, ErrRunNotFound) {
		t.Fatalf("expected ErrRunNotFound, got %v", err)
	}
}

func TestRecordRunReplaces(t *testing.T) {
	db := openTestDB(t)

	run := NewRun("fibonacci", 4, "trace.log", false)
	if err := RecordRun(db, run); err != nil {
		t.Fatal(err)
	}
	run.Finish("3", 17)
	if err := RecordRun(db, run); err != nil {
		t.Fatal(err)
	}

	runs, err := FetchRuns(db, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected the run to be replaced, got %d rows", len(runs))
	}
	if runs[0].Result != "3" || runs[0].FinishedAt == "" {
		t.Fatalf("expected finished run, got %+v", runs[0])
	}
}

func TestRecordRunsBatches(t *testing.T) {
	db := openTestDB(t)

	runs := make([]Run, 250)
	for i := range runs {
		runs[i] = NewRun("factorial", i%20, fmt.Sprintf("trace-%d.log", i), false)
	}
	if err := RecordRuns(db, runs); err != nil {
		t.Fatalf("RecordRuns failed: %v", err)
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM trace_runs`).Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != len(runs) {
		t.Fatalf("expected %d rows, got %d", len(runs), count)
	}
}

func TestRecordRunsRejectsMissingID(t *testing.T) {
	db := openTestDB(t)
	if err := RecordRun(db, Run{Algorithm: "hanoi"}); err == nil {
		t.Fatal("expected error for run without id")
	}
	if err := RecordRun(nil, NewRun("hanoi", 1, "", false)); err == nil {
		t.Fatal("expected error for nil database")
	}
}

func TestFormatTime(t *testing.T) {
	if got := formatTime(time.Time{}); got != "" {
		t.Errorf("Expected empty string for zero time, got '%s'", got)
	}
	a := formatTime(time.Date(2026, 1, 1, 0, 0, 5, 100_000_000, time.UTC))
	b := formatTime(time.Date(2026, 1, 1, 0, 0, 5, 120_000_000, time.UTC))
	if !(a < b) {
		t.Errorf("expected %q to sort before %q", a, b)
	}
}
