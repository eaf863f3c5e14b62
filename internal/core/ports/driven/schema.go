package driven

// SchemaProvider supplies JSON schema text compiled into the binary.
type SchemaProvider interface {
	// FrontmatterSchema returns the schema of the metadata header.
	FrontmatterSchema() string

	// StubsSchema returns the schema of a single stub.
	StubsSchema() string
}
