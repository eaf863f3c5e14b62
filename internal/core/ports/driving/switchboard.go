package driving

import (
	"time"

	"github.com/custodia-labs/doc-doctor/internal/core/domain"
)

// Switchboard is the single entry point for every front-end.
// Every method is safe for concurrent use. Returned errors are *domain.Error.
type Switchboard interface {
	// ParseDocument decodes the header of text.
	ParseDocument(text string) (*domain.ParsedDocument, error)

	// AnalyzeDocument parses text and computes every score.
	AnalyzeDocument(text string) (*domain.Analysis, error)

	// ValidateDocument checks text and reports findings.
	// It never fails; an unparseable document yields an invalid result.
	ValidateDocument(text string, strict bool) *domain.ValidationResult

	// ListStubs returns the stubs matching filter, in document order.
	ListStubs(text string, filter domain.StubFilter) ([]domain.IndexedStub, error)

	// FindStubAnchors scans the body for ^id markers.
	FindStubAnchors(text string) (*domain.AnchorReport, error)

	// AddStub appends a stub and returns the new text and its index.
	AddStub(text string, spec domain.StubSpec) (*domain.AddStubResult, error)

	// ResolveStub removes the stub at index.
	// Indices greater than index shift down by one.
	ResolveStub(text string, index int) (*domain.ResolveStubResult, error)

	// UpdateStub applies the set fields of update to the stub at index.
	UpdateStub(text string, index int, update domain.StubUpdate) (*domain.StubEditResult, error)

	// LinkStubAnchor adds an inline anchor to a stub. Linking twice is a no-op.
	LinkStubAnchor(text string, index int, anchorID string) (*domain.StubEditResult, error)

	// UnlinkStubAnchor removes an inline anchor. Absent anchors are a no-op.
	UnlinkStubAnchor(text string, index int, anchorID string) (*domain.StubEditResult, error)

	// InitDocument stamps identity fields, creating a header when missing.
	InitDocument(text string, opts domain.InitOptions) (*domain.InitResult, error)

	// CalcHealth computes health for the given refinement and stubs.
	CalcHealth(refinement float64, stubs []domain.Stub) domain.HealthScore

	// CalcUsefulness compares refinement against the audience gate.
	CalcUsefulness(refinement float64, audience domain.Audience) domain.Usefulness

	// CalcDimensions computes every per-document score as of now.
	CalcDimensions(props domain.Properties, now time.Time) domain.StateDimensions

	// CalcVectorPhysics computes the ranking quantities of one stub.
	CalcVectorPhysics(stub domain.Stub, ctx domain.StubContext) domain.VectorPhysics

	// FrontmatterSchema returns the header JSON schema.
	FrontmatterSchema() string

	// StubsSchema returns the stub JSON schema.
	StubsSchema() string

	// Config returns the configuration in effect.
	Config() *domain.Config

	// UsingDefaults reports whether configuration fell back to defaults.
	UsingDefaults() bool
}
