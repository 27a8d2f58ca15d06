package climb

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// OutputFormat selects how rendered rows are written.
type OutputFormat string

const (
	// OutputFormatDefault is the human-readable table
	OutputFormatDefault OutputFormat = "default"

	// OutputFormatJSONL writes one JSON object per row
	OutputFormatJSONL OutputFormat = "jsonl"
)

// ParseOutputFormat validates an --output flag value.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch OutputFormat(s) {
	case OutputFormatDefault, OutputFormatJSONL:
		return OutputFormat(s), nil
	default:
		return "", fmt.Errorf("unknown output format: %s", s)
	}
}

// Write writes rows in the given format.
func Write(w io.Writer, format OutputFormat, rows []Row) error {
	if format == OutputFormatJSONL {
		return FormatJSONL(w, rows)
	}
	FormatTable(w, rows)
	return nil
}

// FormatTable writes rows as a formatted table to the provided writer.
// The table includes columns: ID, NAME, CODES, GRADE and DISCIPLINES.
// Returns the number of rows formatted.
func FormatTable(w io.Writer, rows []Row) int {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No climbs found")
		return 0
	}

	// Print header row
	fmt.Fprintf(w, "%-10s %-24s %-10s %-14s %s\n",
		"ID", "NAME", "CODES", "GRADE", "DISCIPLINES")
	fmt.Fprintf(w, "%-10s %-24s %-10s %-14s %s\n",
		"----------", "------------------------", "----------", "--------------", "------------------------------")

	// Print data rows
	for _, r := range rows {
		fmt.Fprintf(w, "%-10s %-24s %-10s %-14s %s\n",
			formatID(r.ID),
			truncate(r.Name, 24),
			orDash(r.Codes),
			orDash(truncate(r.Grade, 14)),
			orDash(strings.Join(r.Names, ", ")),
		)
	}

	// Print count
	countMsg := "climb"
	if len(rows) != 1 {
		countMsg = "climbs"
	}
	fmt.Fprintf(w, "\n%d %s rendered\n", len(rows), countMsg)

	return len(rows)
}

// FormatJSONL writes rows as line-delimited JSON (JSONL) to the provided writer.
// Each row is written as a single JSON object on its own line.
func FormatJSONL(w io.Writer, rows []Row) error {
	for _, r := range rows {
		if r.Names == nil {
			r.Names = []string{}
		}

		data, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("failed to marshal climb to JSON: %w", err)
		}

		_, err = fmt.Fprintf(w, "%s\n", string(data))
		if err != nil {
			return fmt.Errorf("failed to write JSONL output: %w", err)
		}
	}

	return nil
}

// formatID truncates climb ID to first 8 characters for compact display.
func formatID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// truncate shortens s to limit runes, marking the cut with "...".
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-3]) + "..."
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
