package services

import (
	"time"

	"github.com/custodia-labs/doc-doctor/internal/adapters/driven/codec/frontmatter"
	"github.com/custodia-labs/doc-doctor/internal/adapters/driven/schema"
	"github.com/custodia-labs/doc-doctor/internal/core/domain"
)

// --- Mock implementations ---

// mockParser implements driven.DocumentParser for testing.
type mockParser struct {
	doc *domain.ParsedDocument
	err error
}

func (m *mockParser) Extract(_ string) (domain.Span, error) {
	if m.err != nil {
		return domain.Span{}, m.err
	}
	return m.doc.Span, nil
}

func (m *mockParser) Parse(_ string, _ domain.ParseOptions) (*domain.ParsedDocument, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.doc, nil
}

// mockWriter implements driven.DocumentWriter for testing.
type mockWriter struct {
	err   error
	calls int
}

func (m *mockWriter) Serialize(original string, _ domain.Properties) (string, error) {
	m.calls++
	if m.err != nil {
		return "", m.err
	}
	return original, nil
}

// mockConfig implements driven.ConfigProvider for testing.
type mockConfig struct {
	cfg      *domain.Config
	defaults bool
}

func (m *mockConfig) Config() *domain.Config { return m.cfg }

func (m *mockConfig) UsingDefaults() bool { return m.defaults }

// fixedNow is the clock used by switchboards built in tests.
var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// newTestSwitchboard wires the real codec and schemas.
func newTestSwitchboard() *Switchboard {
	codec := frontmatter.New()
	sb := NewSwitchboard(codec, codec, schema.NewProvider(), nil)
	sb.SetClock(func() time.Time { return fixedNow })
	return sb
}
