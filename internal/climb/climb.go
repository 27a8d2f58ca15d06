// Package climb validates climb documents and renders their disciplines and
// grades for display.
package climb

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dyluth/belay/pkg/discipline"
	"github.com/dyluth/belay/pkg/grade"
	"github.com/google/uuid"
)

// Climb is a single route or problem as exchanged in JSONL documents.
type Climb struct {
	ID          string            `json:"id"`          // UUID
	Name        string            `json:"name"`        // Display name of the route
	Disciplines discipline.Record `json:"disciplines"` // Type tag and unknown fields are dropped on decode
	Grades      grade.Values      `json:"grades"`      // Scale canonical name → grade
}

// Validate checks if the Climb has valid field values.
func (c *Climb) Validate() error {
	if !isValidUUID(c.ID) {
		return fmt.Errorf("invalid climb ID: not a valid UUID")
	}

	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("climb name cannot be empty")
	}

	return nil
}

// Row is the rendered form of a Climb.
type Row struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Codes string   `json:"codes"`
	Names []string `json:"names"`
	Grade string   `json:"grade"`
}

// Render converts c into a Row using rd for the grade string.
func Render(rd *grade.Renderer, c *Climb, ctx grade.Context) Row {
	return Row{
		ID:    c.ID,
		Name:  c.Name,
		Codes: discipline.CodesString(c.Disciplines),
		Names: discipline.Names(c.Disciplines),
		Grade: rd.String(c.Grades, c.Disciplines, ctx),
	}
}

// LineError reports an invalid document in a JSONL stream.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// IsLineError checks if an error is a LineError.
func IsLineError(err error) bool {
	_, ok := err.(*LineError)
	return ok
}

// ReadJSONL decodes one Climb per non-blank line of r and validates it.
// It stops at the first invalid line and returns a *LineError.
func ReadJSONL(r io.Reader) ([]*Climb, error) {
	var climbs []*Climb

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		c := &Climb{}
		if err := json.Unmarshal([]byte(text), c); err != nil {
			return nil, &LineError{Line: line, Err: fmt.Errorf("failed to parse climb: %w", err)}
		}
		if err := c.Validate(); err != nil {
			return nil, &LineError{Line: line, Err: err}
		}
		climbs = append(climbs, c)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read climbs: %w", err)
	}

	return climbs, nil
}

// isValidUUID checks if a string is a valid UUID format.
func isValidUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
