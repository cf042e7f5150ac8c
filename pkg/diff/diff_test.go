package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinesIdenticalContent(t *testing.T) {
	doc := []byte("theme: default\nlog:\n  level: info\n")

	assert.Empty(t, Lines(doc, doc, "defaults", "effective"))
	added, removed := Changed(doc, doc)
	assert.Zero(t, added)
	assert.Zero(t, removed)
}

func TestLinesSingleValueChange(t *testing.T) {
	before := []byte("select:\n  offset: 1\n  placement: bottom-start\n")
	after := []byte("select:\n  offset: 1\n  placement: top-end\n")

	result := Lines(before, after, "defaults", "effective")

	lines := strings.Split(strings.TrimSuffix(result, "\n"), "\n")
	require.Equal(t, []string{
		"--- defaults",
		"+++ effective",
		" select:",
		"   offset: 1",
		"-  placement: bottom-start",
		"+  placement: top-end",
	}, lines)

	added, removed := Changed(before, after)
	assert.Equal(t, 1, added)
	assert.Equal(t, 1, removed)
}

func TestLinesAppendedSection(t *testing.T) {
	before := []byte("theme: default\n")
	after := []byte("theme: default\ntoast:\n  duration: 3s\n")

	result := Lines(before, after, "a", "b")

	assert.Contains(t, result, " theme: default\n")
	assert.Contains(t, result, "+toast:\n")
	assert.Contains(t, result, "+  duration: 3s\n")
	assert.NotContains(t, result, "\n-")

	added, removed := Changed(before, after)
	assert.Equal(t, 2, added)
	assert.Zero(t, removed)
}

func TestLinesMissingTrailingNewline(t *testing.T) {
	result := Lines([]byte("a\nb"), []byte("a\nc"), "x", "y")

	assert.Contains(t, result, "-b\n")
	assert.Contains(t, result, "+c\n")
}
