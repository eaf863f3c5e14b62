package frontmatter

import (
	"sort"

	"github.com/custodia-labs/doc-doctor/internal/core/domain"
)

// snippetWidth is the number of bytes of context attached to errors.
const snippetWidth = 30

// lineIndex holds the byte offset at which each line starts.
type lineIndex struct {
	text   string
	starts []int
}

func newLineIndex(text string) *lineIndex {
	starts := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &lineIndex{text: text, starts: starts}
}

// lines returns the number of lines.
func (li *lineIndex) lines() int {
	return len(li.starts)
}

// position converts a byte offset to a 1-indexed line and column.
func (li *lineIndex) position(off int) domain.Position {
	off = li.clamp(off)
	line := sort.Search(len(li.starts), func(i int) bool { return li.starts[i] > off })
	return domain.Position{
		Line:   line,
		Column: off - li.starts[line-1] + 1,
		Offset: off,
	}
}

// offset converts a 1-indexed line and column to a byte offset.
func (li *lineIndex) offset(line, column int) int {
	if line < 1 {
		line = 1
	}
	if line > len(li.starts) {
		return len(li.text)
	}
	if column < 1 {
		column = 1
	}
	return li.clamp(li.starts[line-1] + column - 1)
}

// lineEnd returns the offset of the terminator of the line holding off.
func (li *lineIndex) lineEnd(off int) int {
	pos := li.position(off)
	if pos.Line < len(li.starts) {
		end := li.starts[pos.Line] - 1
		if end > 0 && li.text[end-1] == '\r' {
			end--
		}
		return end
	}
	return len(li.text)
}

// snippet returns up to snippetWidth bytes of the line around off.
func (li *lineIndex) snippet(off int) string {
	off = li.clamp(off)
	pos := li.position(off)
	lineStart := li.starts[pos.Line-1]
	end := li.lineEnd(off)

	start := off - snippetWidth/2
	if start < lineStart {
		start = lineStart
	}
	if start+snippetWidth < end {
		end = start + snippetWidth
	}
	if start > end {
		return ""
	}
	return li.text[start:end]
}

func (li *lineIndex) clamp(off int) int {
	switch {
	case off < 0:
		return 0
	case off > len(li.text):
		return len(li.text)
	default:
		return off
	}
}
