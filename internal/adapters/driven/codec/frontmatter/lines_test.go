package frontmatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestLineIndex_Position tests offset to line/column conversion
func TestLineIndex_Position(t *testing.T) {
	idx := newLineIndex("ab\ncde\n\nf")

	tests := []struct {
		off    int
		line   int
		column int
	}{
		{0, 1, 1},
		{1, 1, 2},
		{2, 1, 3},
		{3, 2, 1},
		{5, 2, 3},
		{7, 3, 1},
		{8, 4, 1},
		{99, 4, 2},
	}

	for _, tt := range tests {
		pos := idx.position(tt.off)
		assert.Equal(t, tt.line, pos.Line, "offset %d", tt.off)
		assert.Equal(t, tt.column, pos.Column, "offset %d", tt.off)
	}
	assert.Equal(t, 4, idx.lines())
}

// TestLineIndex_Offset tests the inverse conversion
func TestLineIndex_Offset(t *testing.T) {
	idx := newLineIndex("ab\ncde\n")

	assert.Equal(t, 0, idx.offset(1, 1))
	assert.Equal(t, 4, idx.offset(2, 2))
	assert.Equal(t, 7, idx.offset(9, 1))
}

// TestLineIndex_Snippet tests snippets stay within one line
func TestLineIndex_Snippet(t *testing.T) {
	text := "short\n" + "0123456789012345678901234567890123456789\n"
	idx := newLineIndex(text)

	assert.Equal(t, "short", idx.snippet(2))

	s := idx.snippet(6 + 20)
	assert.Len(t, s, snippetWidth)
	assert.Equal(t, "567890123456789012345678901234", s)
}
