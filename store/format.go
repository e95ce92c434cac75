package store

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// OutputFormat represents the supported rendering format for view results.
type OutputFormat string

const (
	// FormatTable renders output as tab-separated text tables (default).
	FormatTable OutputFormat = "table"
	// FormatJSON renders output as JSON.
	FormatJSON OutputFormat = "json"
	// FormatYAML renders output as YAML.
	FormatYAML OutputFormat = "yaml"
)

// ViewOptions controls how ViewRuns renders results.
type ViewOptions struct {
	Format OutputFormat
	// Limit caps the number of rows; zero or less means no limit.
	Limit int
}

// ParseOutputFormat converts a raw string into an OutputFormat, defaulting to table.
func ParseOutputFormat(raw string) (OutputFormat, error) {
	switch OutputFormat(strings.TrimSpace(strings.ToLower(raw))) {
	case "", FormatTable:
		return FormatTable, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML:
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported format: %s", raw)
	}
}

func (o ViewOptions) formatOrDefault() OutputFormat {
	if o.Format == "" {
		return FormatTable
	}
	return o.Format
}

func renderByFormat(w io.Writer, format OutputFormat, tableFn func(io.Writer) error, payload any) error {
	switch format {
	case FormatTable:
		if tableFn == nil {
			return nil
		}
		return tableFn(w)
	case FormatJSON:
		return WriteJSON(w, payload)
	case FormatYAML:
		return WriteYAML(w, payload)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// WriteJSON writes payload to w as indented JSON.
func WriteJSON(w io.Writer, payload any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(payload); err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return nil
}

// WriteYAML writes payload to w as YAML.
func WriteYAML(w io.Writer, payload any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(payload); err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to flush YAML: %w", err)
	}
	return nil
}
