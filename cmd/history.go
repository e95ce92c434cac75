package cmd

import (
	"fmt"

	"tracelog/store"
)

// HistoryCmd lists recorded demo runs.
type HistoryCmd struct {
	Limit  int    `default:"20" help:"Maximum number of runs to show (0 for all)"`
	Format string `default:"table" help:"Output format (table|json|yaml)"`
}

// Run implements the history command execution
func (h *HistoryCmd) Run(cli *CLI) error {
	if h.Limit < 0 {
		return fmt.Errorf("--limit must be zero or a positive integer")
	}
	format, err := store.ParseOutputFormat(h.Format)
	if err != nil {
		return err
	}

	if _, err := cli.Config(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	db, err := store.InitDatabase()
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	return store.ViewRuns(stdout, db, store.ViewOptions{Format: format, Limit: h.Limit})
}
