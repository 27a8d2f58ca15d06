package printer

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
)

func init() {
	// Force color output even when not connected to TTY
	// Users can disable with NO_COLOR environment variable
	if os.Getenv("NO_COLOR") == "" {
		color.NoColor = false
	}
}

var (
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed, color.Bold)
)

// Warning prints a warning message in yellow with a warning emoji prefix
func Warning(w io.Writer, format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if !strings.HasPrefix(msg, "⚠️") {
		yellow.Fprintf(w, "⚠️  %s", msg)
	} else {
		yellow.Fprint(w, msg)
	}
}

// Error creates a formatted error message with title, explanation, and suggestions
// Prints the formatted error to w with colors and returns a simple error for Cobra
func Error(w io.Writer, title string, explanation string, suggestions []string) error {
	return ErrorWithContext(w, title, explanation, nil, suggestions)
}

// ErrorWithContext creates a formatted error with context details, printed in key order
// Prints the formatted error to w with colors and returns a simple error for Cobra
func ErrorWithContext(w io.Writer, title string, explanation string, context map[string]string, suggestions []string) error {
	// Print title in red
	red.Fprintf(w, "%s\n\n", title)

	// Print explanation
	if explanation != "" {
		fmt.Fprintf(w, "%s\n", explanation)
	}

	// Print context details
	if len(context) > 0 {
		keys := make([]string, 0, len(context))
		for key := range context {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		fmt.Fprintf(w, "\n")
		for _, key := range keys {
			fmt.Fprintf(w, "  %s: %s\n", key, context[key])
		}
	}

	// Print suggestions
	if len(suggestions) > 0 {
		fmt.Fprintf(w, "\n")
		if len(suggestions) == 1 {
			fmt.Fprintf(w, "%s\n", suggestions[0])
		} else {
			fmt.Fprintf(w, "Either:\n")
			for i, suggestion := range suggestions {
				fmt.Fprintf(w, "  %d. %s\n", i+1, suggestion)
			}
		}
	}

	// Return simple error for Cobra (won't be printed due to SilenceErrors)
	return fmt.Errorf("%s", title)
}
