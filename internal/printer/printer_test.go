package printer

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withoutColor(t *testing.T) {
	t.Helper()
	previous := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = previous })
}

func TestError(t *testing.T) {
	withoutColor(t)

	t.Run("returns error with title", func(t *testing.T) {
		var buf bytes.Buffer
		err := Error(&buf, "Test Error", "This is a test error", []string{})
		require.Error(t, err)
		require.Equal(t, "Test Error", err.Error())
		assert.Equal(t, "Test Error\n\nThis is a test error\n", buf.String())
	})

	t.Run("single suggestion printed as is", func(t *testing.T) {
		var buf bytes.Buffer
		err := Error(&buf, "Test Error", "Explanation", []string{"Try this fix"})
		require.Equal(t, "Test Error", err.Error())
		assert.Contains(t, buf.String(), "\nTry this fix\n")
		assert.NotContains(t, buf.String(), "Either:")
	})

	t.Run("multiple suggestions are numbered", func(t *testing.T) {
		var buf bytes.Buffer
		err := Error(&buf, "Test Error", "Explanation", []string{
			"First option",
			"Second option",
		})
		require.Equal(t, "Test Error", err.Error())
		assert.Contains(t, buf.String(), "Either:\n  1. First option\n  2. Second option\n")
	})
}

func TestErrorWithContext(t *testing.T) {
	withoutColor(t)

	var buf bytes.Buffer
	context := map[string]string{
		"Line": "3",
		"File": "climbs.jsonl",
	}
	err := ErrorWithContext(&buf, "Test Error", "Explanation", context, nil)
	require.Error(t, err)
	require.Equal(t, "Test Error", err.Error())
	assert.Contains(t, buf.String(), "  File: climbs.jsonl\n  Line: 3\n", "context is printed in key order")
}

func TestWarning(t *testing.T) {
	withoutColor(t)

	var buf bytes.Buffer
	Warning(&buf, "unrecognized code %q\n", "X")
	assert.Equal(t, "⚠️  unrecognized code \"X\"\n", buf.String())

	buf.Reset()
	Warning(&buf, "⚠️ already prefixed\n")
	assert.Equal(t, "⚠️ already prefixed\n", buf.String())
}
