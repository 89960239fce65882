package search

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractContext(t *testing.T) {
	long := strings.Repeat("a", 100) + "needle" + strings.Repeat("b", 100)

	t.Run("match in the middle gets both markers", func(t *testing.T) {
		window := extractContext(long, 100, len("needle"))
		assert.True(t, strings.HasPrefix(window, "..."))
		assert.True(t, strings.HasSuffix(window, "..."))
		assert.Contains(t, window, "needle")
		// 75 chars each side plus the match itself plus two markers.
		assert.Len(t, window, 75+len("needle")+75+6)
	})

	t.Run("match at the start omits leading marker", func(t *testing.T) {
		text := "needle" + strings.Repeat("b", 100)
		window := extractContext(text, 0, len("needle"))
		assert.False(t, strings.HasPrefix(window, "..."))
		assert.True(t, strings.HasSuffix(window, "..."))
	})

	t.Run("match at the end omits trailing marker", func(t *testing.T) {
		text := strings.Repeat("a", 100) + "needle"
		window := extractContext(text, 100, len("needle"))
		assert.True(t, strings.HasPrefix(window, "..."))
		assert.False(t, strings.HasSuffix(window, "..."))
	})

	t.Run("short text has no markers", func(t *testing.T) {
		text := "short text with needle inside"
		window := extractContext(text, strings.Index(text, "needle"), len("needle"))
		assert.Equal(t, text, window)
	})

	t.Run("deterministic", func(t *testing.T) {
		first := extractContext(long, 100, 6)
		second := extractContext(long, 100, 6)
		assert.Equal(t, first, second)
	})

	t.Run("offset clamped to text bounds", func(t *testing.T) {
		window := extractContext("tiny", 10, 4)
		assert.Equal(t, "...", window)
	})
}

func TestFragmentAt(t *testing.T) {
	text := "The quarterly revenue report shows revenue growth in Q1 2023."

	t.Run("fragment runs from match to window end", func(t *testing.T) {
		first := fragmentAt(text, 14, len("revenue"))
		assert.True(t, strings.HasPrefix(first, "revenue report"))
	})

	t.Run("distinct occurrences produce distinct fragments", func(t *testing.T) {
		first := fragmentAt(text, 14, len("revenue"))
		second := fragmentAt(text, 35, len("revenue"))
		assert.NotEqual(t, first, second)
	})

	t.Run("clamped at text end", func(t *testing.T) {
		frag := fragmentAt("abc", 1, 2)
		assert.Equal(t, "bc", frag)
	})
}
