package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/doc-doctor/internal/core/domain"
)

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()

	require.NotNil(t, theme)
	assert.Equal(t, lipgloss.Color("#7C3AED"), theme.Primary)
	assert.Equal(t, lipgloss.Color("#F38BA8"), theme.Error)
}

func TestNewStyles_NilTheme(t *testing.T) {
	s := NewStyles(nil)

	require.NotNil(t, s)
	assert.Equal(t, DefaultTheme(), s.Theme())
}

func TestNewStyles_CustomTheme(t *testing.T) {
	theme := DefaultTheme()
	theme.Primary = lipgloss.Color("#000000")

	s := NewStyles(theme)

	assert.Same(t, theme, s.Theme())
}

func TestStyles_Score(t *testing.T) {
	s := DefaultStyles()

	tests := []struct {
		name  string
		value float64
		want  lipgloss.Style
	}{
		{"perfect", 1.0, s.Success},
		{"good threshold", GoodScore, s.Success},
		{"fair", 0.5, s.Warning},
		{"fair threshold", FairScore, s.Warning},
		{"poor", 0.1, s.Error},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want.GetForeground(), s.Score(tt.value).GetForeground())
		})
	}
}

func TestStyles_Form(t *testing.T) {
	s := DefaultStyles()

	assert.True(t, s.Form(domain.StubFormBlocking).GetBold())
	assert.Equal(t, s.Warning.GetForeground(), s.Form(domain.StubFormStructural).GetForeground())
	assert.Equal(t, s.Muted.GetForeground(), s.Form(domain.StubFormTransient).GetForeground())
}
