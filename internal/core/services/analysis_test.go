package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/doc-doctor/internal/adapters/driven/codec/frontmatter"
	"github.com/custodia-labs/doc-doctor/internal/adapters/driven/schema"
	"github.com/custodia-labs/doc-doctor/internal/core/domain"
)

// TestParseDocument_Basic tests the parse-basic scenario
func TestParseDocument_Basic(t *testing.T) {
	doc, err := newTestSwitchboard().ParseDocument(parseBasic)
	require.NoError(t, err)

	assert.Equal(t, "T", doc.Properties.Title)
	assert.Equal(t, domain.Unit(0.75), doc.Properties.Refinement)
	assert.Equal(t, domain.AudienceInternal, doc.Properties.Audience)
	assert.Empty(t, doc.Properties.Stubs)
}

// TestParseDocument_Errors tests boundary errors keep their kind
func TestParseDocument_Errors(t *testing.T) {
	sb := newTestSwitchboard()

	tests := []struct {
		name     string
		text     string
		sentinel error
	}{
		{"no header", "# hello", domain.ErrNoFrontmatter},
		{"unclosed", "---\ntitle: x\n", domain.ErrInvalidDelimiters},
		{"out of range", "---\nrefinement: 1.5\n---\n", domain.ErrOutOfRange},
		{"bad audience", "---\naudience: friend\n---\n", domain.ErrInvalidEnumValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sb.ParseDocument(tt.text)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.sentinel))
			de, ok := domain.AsError(err)
			require.True(t, ok)
			assert.Equal(t, domain.KindParse, de.Kind)
		})
	}
}

// TestAnalyzeDocument tests the aggregate result
func TestAnalyzeDocument(t *testing.T) {
	modified := fixedNow.AddDate(0, 0, -7).Format(time.RFC3339)
	text := "---\ntitle: A\nrefinement: 0.8\nform: transient\naudience: internal\nmodified: " + modified + `
extra_key: kept
stubs:
  - type: expand
    description: low
    priority: low
  - type: source
    description: high
    stub_form: blocking
    priority: critical
---
body
`
	a, err := newTestSwitchboard().AnalyzeDocument(text)
	require.NoError(t, err)

	assert.InDelta(t, 0.8*0.7+0.3*(1-0.12), a.Health.Score, 1e-9)
	assert.InDelta(t, a.Health.Score, a.Dimensions.Health, 1e-12)
	assert.True(t, a.Dimensions.Usefulness.IsUseful)
	assert.InDelta(t, 0.5, a.Dimensions.Freshness, 0.005)
	assert.InDelta(t, 0.9, a.Dimensions.Trust, 1e-9)

	assert.Equal(t, 2, a.Stubs.Total)
	assert.Equal(t, 1, a.Stubs.Blocking)
	assert.Equal(t, 1, a.Stubs.ByFamily[domain.VectorFamilyRetrieval])

	require.Len(t, a.Ranked, 2)
	assert.Equal(t, 1, a.Ranked[0].Index)

	require.Len(t, a.Warnings, 1)
	assert.Equal(t, "/extra_key", a.Warnings[0].Field)
	assert.Equal(t, fixedNow, a.AnalyzedAt)
	assert.False(t, a.UsingDefaults)
}

// TestAnalyzeDocument_UsingDefaults tests the config flag is surfaced
func TestAnalyzeDocument_UsingDefaults(t *testing.T) {
	codec := frontmatter.New()
	sb := NewSwitchboard(codec, codec, schema.NewProvider(), &mockConfig{cfg: domain.DefaultConfig(), defaults: true})

	a, err := sb.AnalyzeDocument(parseBasic)
	require.NoError(t, err)
	assert.True(t, a.UsingDefaults)
	assert.True(t, sb.UsingDefaults())
}

// TestCalc tests the calculation pass-throughs
func TestCalc(t *testing.T) {
	sb := newTestSwitchboard()

	assert.InDelta(t, 0.86, sb.CalcHealth(0.8, nil).Score, 0.01)
	assert.InDelta(t, 0.854, sb.CalcHealth(0.8, []domain.Stub{domain.NewStub("x", "")}).Score, 0.01)
	assert.InDelta(t, 1.0, sb.CalcHealth(7, nil).Score, 1e-9)

	u := sb.CalcUsefulness(0.70, domain.AudienceInternal)
	assert.True(t, u.IsUseful)
	assert.InDelta(t, 0, u.Margin, 1e-9)
	assert.False(t, sb.CalcUsefulness(0.6999, domain.AudienceInternal).IsUseful)

	p := domain.NewProperties()
	p.Refinement = 0.8
	d := sb.CalcDimensions(p, time.Time{})
	assert.Equal(t, 1.0, d.Freshness)
	assert.Equal(t, 1.0, d.ComplianceFit)

	v := sb.CalcVectorPhysics(domain.NewStub("expand", ""), domain.StubContext{HasControversy: true})
	assert.InDelta(t, 0.3, v.Friction, 1e-9)
}

// TestCustomConfig tests scoring follows an injected configuration
func TestCustomConfig(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Health = domain.HealthWeights{Refinement: 1, Stubs: 0}
	codec := frontmatter.New()
	sb := NewSwitchboard(codec, codec, schema.NewProvider(), StaticConfig(cfg))

	assert.InDelta(t, 0.8, sb.CalcHealth(0.8, nil).Score, 1e-9)
	assert.Same(t, cfg, sb.Config())
}

// TestSchemas tests the schema pass-throughs
func TestSchemas(t *testing.T) {
	sb := newTestSwitchboard()
	assert.Contains(t, sb.FrontmatterSchema(), "refinement")
	assert.Contains(t, sb.StubsSchema(), "stub_form")
}
