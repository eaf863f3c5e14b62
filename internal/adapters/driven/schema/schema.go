// Package schema embeds the JSON schemas describing document headers
// and stubs. The schemas are informational; the codec enforces the rules.
package schema

import (
	_ "embed"

	"github.com/custodia-labs/doc-doctor/internal/core/ports/driven"
)

//go:embed schemas/frontmatter.schema.json
var frontmatterSchema string

//go:embed schemas/stub.schema.json
var stubSchema string

// Ensure Provider implements the interface.
var _ driven.SchemaProvider = (*Provider)(nil)

// Provider serves the embedded schemas.
type Provider struct{}

// NewProvider creates a schema provider.
func NewProvider() *Provider {
	return &Provider{}
}

// FrontmatterSchema returns the header schema.
func (p *Provider) FrontmatterSchema() string {
	return frontmatterSchema
}

// StubsSchema returns the stub schema.
func (p *Provider) StubsSchema() string {
	return stubSchema
}
