package summary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/doc-doctor/internal/core/domain"
)

func sampleAnalysis() *domain.Analysis {
	p := domain.NewProperties()
	p.Title = "Getting started"
	p.Refinement = 0.8
	return &domain.Analysis{
		Properties: p,
		Health:     domain.HealthScore{Score: 0.74},
		Dimensions: domain.StateDimensions{
			Trust:     0.9,
			Freshness: 1,
			Usefulness: domain.Usefulness{
				Gate:     0.5,
				IsUseful: true,
			},
		},
	}
}

func TestNewView(t *testing.T) {
	v := NewView(nil)

	require.NotNil(t, v)
	assert.Nil(t, v.Analysis())
	assert.Contains(t, v.View(), "No analysis")
}

func TestView_Scores(t *testing.T) {
	v := NewView(nil)
	v.SetWidth(120)
	v.SetAnalysis(sampleAnalysis())

	view := v.View()

	assert.Contains(t, view, "Getting started")
	assert.Contains(t, view, "health 0.74")
	assert.Contains(t, view, "refinement 0.80")
	assert.Contains(t, view, "trust 0.90")
	assert.Contains(t, view, "freshness 1.00")
	assert.Contains(t, view, "useful")
	assert.Contains(t, view, "(gate 0.50)")
	assert.NotContains(t, view, "blocking")
}

func TestView_Flags(t *testing.T) {
	a := sampleAnalysis()
	a.Properties.Title = ""
	a.Dimensions.Usefulness.IsUseful = false
	a.Stubs.Blocking = 2
	a.UsingDefaults = true
	a.Warnings = []domain.Diagnostic{{Severity: domain.SeverityWarning, Message: "unknown key"}}

	v := NewView(nil)
	v.SetAnalysis(a)
	view := v.View()

	assert.Contains(t, view, "(Untitled)")
	assert.Contains(t, view, "not useful")
	assert.Contains(t, view, "2 blocking stub(s)")
	assert.Contains(t, view, "using built-in defaults")
	assert.Contains(t, view, "warning: unknown key")
}
