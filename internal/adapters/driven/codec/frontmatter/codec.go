package frontmatter

import (
	"errors"

	"github.com/custodia-labs/doc-doctor/internal/core/domain"
	"github.com/custodia-labs/doc-doctor/internal/core/ports/driven"
)

// Ensure Codec implements the interface.
var _ driven.Codec = (*Codec)(nil)

// Codec reads and writes YAML front-matter. It holds no state and is
// safe for concurrent use.
type Codec struct{}

// New creates a front-matter codec.
func New() *Codec {
	return &Codec{}
}

// Extract locates the header of text.
func (c *Codec) Extract(text string) (domain.Span, error) {
	return extract(text, newLineIndex(text))
}

// Parse locates and decodes the header of text.
func (c *Codec) Parse(text string, opts domain.ParseOptions) (*domain.ParsedDocument, error) {
	idx := newLineIndex(text)
	span, err := extract(text, idx)
	if err != nil {
		return nil, err
	}

	d := &decoder{idx: idx, span: span, opts: opts}
	props, err := d.decode()
	if err != nil {
		return nil, err
	}
	return &domain.ParsedDocument{
		Properties:  props,
		Span:        span,
		Diagnostics: d.diags,
	}, nil
}

// Serialize writes props as the header of original.
// The body after the closing fence is kept byte-for-byte; a document
// without a header gets a new one followed by a blank line.
func (c *Codec) Serialize(original string, props domain.Properties) (string, error) {
	header, err := encode(props)
	if err != nil {
		return "", err
	}

	span, err := c.Extract(original)
	switch {
	case err == nil:
		return header + original[span.BodyOffset:], nil
	case errors.Is(err, domain.ErrNoFrontmatter):
		return header + "\n" + original, nil
	default:
		return "", err
	}
}
