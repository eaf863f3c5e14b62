package driven

import "github.com/custodia-labs/doc-doctor/internal/core/domain"

// DocumentParser locates and decodes a document's metadata header.
// Implementations are stateless and safe for concurrent use.
type DocumentParser interface {
	// Extract locates the header without decoding it.
	// Returns domain.ErrNoFrontmatter or domain.ErrInvalidDelimiters when
	// the fences are missing.
	Extract(text string) (domain.Span, error)

	// Parse decodes the header into properties.
	// Errors are *domain.Error values carrying a position when known.
	Parse(text string, opts domain.ParseOptions) (*domain.ParsedDocument, error)
}

// DocumentWriter re-emits properties into a document.
type DocumentWriter interface {
	// Serialize replaces the header of original with props, preserving the
	// body byte-for-byte. A document without a header gets a new one
	// followed by a blank line.
	Serialize(original string, props domain.Properties) (string, error)
}

// Codec is a parser that doubles as a writer.
type Codec interface {
	DocumentParser
	DocumentWriter
}
