package mcp

import (
	"time"

	"github.com/custodia-labs/doc-doctor/internal/core/domain"
	"github.com/custodia-labs/doc-doctor/internal/core/ports/driving"
)

// Ensure mockSwitchboard implements the interface.
var _ driving.Switchboard = (*mockSwitchboard)(nil)

// mockSwitchboard is a mock implementation of driving.Switchboard.
// It records the last text and arguments it was called with.
type mockSwitchboard struct {
	parsed     *domain.ParsedDocument
	analysis   *domain.Analysis
	validation *domain.ValidationResult
	stubs      []domain.IndexedStub
	anchors    *domain.AnchorReport
	addResult  *domain.AddStubResult
	resolved   *domain.ResolveStubResult
	edited     *domain.StubEditResult
	initResult *domain.InitResult
	health     domain.HealthScore
	usefulness domain.Usefulness
	dimensions domain.StateDimensions
	physics    domain.VectorPhysics
	config     *domain.Config
	defaults   bool
	err        error

	lastText     string
	lastStrict   bool
	lastIndex    int
	lastAnchor   string
	lastFilter   domain.StubFilter
	lastSpec     domain.StubSpec
	lastUpdate   domain.StubUpdate
	lastInit     domain.InitOptions
	lastStubs    []domain.Stub
	lastAudience domain.Audience
	lastNow      time.Time
	lastContext  domain.StubContext
	lastStub     domain.Stub
}

func (m *mockSwitchboard) ParseDocument(text string) (*domain.ParsedDocument, error) {
	m.lastText = text
	return m.parsed, m.err
}

func (m *mockSwitchboard) AnalyzeDocument(text string) (*domain.Analysis, error) {
	m.lastText = text
	return m.analysis, m.err
}

func (m *mockSwitchboard) ValidateDocument(text string, strict bool) *domain.ValidationResult {
	m.lastText = text
	m.lastStrict = strict
	if m.validation == nil {
		return &domain.ValidationResult{IsValid: true}
	}
	return m.validation
}

func (m *mockSwitchboard) ListStubs(text string, filter domain.StubFilter) ([]domain.IndexedStub, error) {
	m.lastText = text
	m.lastFilter = filter
	return m.stubs, m.err
}

func (m *mockSwitchboard) FindStubAnchors(text string) (*domain.AnchorReport, error) {
	m.lastText = text
	if m.anchors == nil && m.err == nil {
		return &domain.AnchorReport{}, nil
	}
	return m.anchors, m.err
}

func (m *mockSwitchboard) AddStub(text string, spec domain.StubSpec) (*domain.AddStubResult, error) {
	m.lastText = text
	m.lastSpec = spec
	return m.addResult, m.err
}

func (m *mockSwitchboard) ResolveStub(text string, index int) (*domain.ResolveStubResult, error) {
	m.lastText = text
	m.lastIndex = index
	return m.resolved, m.err
}

func (m *mockSwitchboard) UpdateStub(text string, index int, update domain.StubUpdate) (*domain.StubEditResult, error) {
	m.lastText = text
	m.lastIndex = index
	m.lastUpdate = update
	return m.edited, m.err
}

func (m *mockSwitchboard) LinkStubAnchor(text string, index int, anchorID string) (*domain.StubEditResult, error) {
	m.lastText = text
	m.lastIndex = index
	m.lastAnchor = anchorID
	return m.edited, m.err
}

func (m *mockSwitchboard) UnlinkStubAnchor(text string, index int, anchorID string) (*domain.StubEditResult, error) {
	m.lastText = text
	m.lastIndex = index
	m.lastAnchor = anchorID
	return m.edited, m.err
}

func (m *mockSwitchboard) InitDocument(text string, opts domain.InitOptions) (*domain.InitResult, error) {
	m.lastText = text
	m.lastInit = opts
	return m.initResult, m.err
}

func (m *mockSwitchboard) CalcHealth(refinement float64, stubs []domain.Stub) domain.HealthScore {
	m.lastStubs = stubs
	return m.health
}

func (m *mockSwitchboard) CalcUsefulness(refinement float64, audience domain.Audience) domain.Usefulness {
	m.lastAudience = audience
	return m.usefulness
}

func (m *mockSwitchboard) CalcDimensions(_ domain.Properties, now time.Time) domain.StateDimensions {
	m.lastNow = now
	return m.dimensions
}

func (m *mockSwitchboard) CalcVectorPhysics(stub domain.Stub, ctx domain.StubContext) domain.VectorPhysics {
	m.lastStub = stub
	m.lastContext = ctx
	return m.physics
}

func (m *mockSwitchboard) FrontmatterSchema() string {
	return `{"title":"frontmatter"}`
}

func (m *mockSwitchboard) StubsSchema() string {
	return `{"title":"stub"}`
}

func (m *mockSwitchboard) Config() *domain.Config {
	if m.config == nil {
		return domain.DefaultConfig()
	}
	return m.config
}

func (m *mockSwitchboard) UsingDefaults() bool {
	return m.defaults
}
