package store

import (
	"database/sql"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// writeTableHeader writes a tab-separated header row followed by a matching underline row.
// Example: writeTableHeader(w, "ID", "Algorithm") outputs:
// ID	Algorithm
// --	---------
func writeTableHeader(w io.Writer, columns ...string) {
	if len(columns) == 0 {
		return
	}
	fmt.Fprintln(w, strings.Join(columns, "\t"))

	under := make([]string, len(columns))
	for i, col := range columns {
		width := utf8.RuneCountInString(col)
		if width <= 0 {
			width = 1
		}
		under[i] = strings.Repeat("-", width)
	}
	fmt.Fprintln(w, strings.Join(under, "\t"))
}

// ViewRuns writes recorded runs to w, newest first.
func ViewRuns(w io.Writer, db *sql.DB, opts ViewOptions) error {
	records, err := FetchRuns(db, opts.Limit)
	if err != nil {
		return err
	}
	if records == nil {
		records = []Run{}
	}

	tableFn := func(w io.Writer) error {
		if len(records) == 0 {
			fmt.Fprintln(w, "No runs recorded.")
			return nil
		}
		writeTableHeader(w, "ID", "Algorithm", "N", "Result", "Lines", "Started", "Trace")

		for _, r := range records {
			trace := r.TracePath
			if trace == "" {
				trace = "(stderr)"
			}
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%d\t%s\t%s\n",
				shortID(r.ID),
				r.Algorithm,
				r.Size,
				r.Result,
				r.Lines,
				r.StartedAt,
				trace,
			)
		}
		return nil
	}

	return renderByFormat(w, opts.formatOrDefault(), tableFn, records)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
