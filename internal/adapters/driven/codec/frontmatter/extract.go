package frontmatter

import (
	"strings"

	"github.com/custodia-labs/doc-doctor/internal/core/domain"
)

// fence is the header delimiter line.
const fence = "---"

// extract locates the header region of text.
func extract(text string, idx *lineIndex) (domain.Span, error) {
	first, rest, hasNewline := strings.Cut(text, "\n")
	if strings.TrimSuffix(first, "\r") != fence {
		e := domain.NewError(domain.KindParse, domain.ErrNoFrontmatter,
			"document does not start with a %q line", fence)
		e.Suggestion = "add a header: a line containing only --- then key: value lines, closed by another ---"
		return domain.Span{}, e
	}
	if !hasNewline {
		return domain.Span{}, unclosed(idx)
	}

	start := len(first) + 1
	off := start
	line := 2
	for off <= len(text) {
		lineText, after, more := strings.Cut(rest, "\n")
		if strings.TrimSuffix(lineText, "\r") == fence {
			body := off + len(lineText)
			if more {
				body++
			}
			return domain.Span{
				Raw:        text[start:off],
				Start:      start,
				End:        off,
				StartLine:  1,
				EndLine:    line,
				BodyOffset: body,
			}, nil
		}
		if !more {
			break
		}
		off += len(lineText) + 1
		rest = after
		line++
	}
	return domain.Span{}, unclosed(idx)
}

func unclosed(idx *lineIndex) *domain.Error {
	e := domain.NewError(domain.KindParse, domain.ErrInvalidDelimiters,
		"header opened on line 1 is never closed")
	pos := idx.position(0)
	e.Position = &pos
	e.Snippet = idx.snippet(0)
	e.Suggestion = "close the header with a line containing only ---"
	return e
}
