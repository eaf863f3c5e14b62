// Package summary provides the document summary view for the TUI.
package summary

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/doc-doctor/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/doc-doctor/internal/core/domain"
)

// View renders the header of the stub browser: the document title and
// its scores.
type View struct {
	styles   *styles.Styles
	analysis *domain.Analysis
	width    int
}

// NewView creates a new summary view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{styles: s, width: 80}
}

// SetAnalysis sets the analysis to display.
func (v *View) SetAnalysis(a *domain.Analysis) {
	v.analysis = a
}

// Analysis returns the analysis being displayed.
func (v *View) Analysis() *domain.Analysis {
	return v.analysis
}

// SetWidth sets the render width.
func (v *View) SetWidth(width int) {
	v.width = width
}

// View renders the summary.
func (v *View) View() string {
	if v.analysis == nil {
		return v.styles.Muted.Render("No analysis")
	}
	a := v.analysis
	p := a.Properties

	title := p.Title
	if title == "" {
		title = "(Untitled)"
	}

	var b strings.Builder
	b.WriteString(v.styles.Subtitle.Render(title))
	b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  %s · %s · %s", p.Form, p.Audience, p.Origin)))
	b.WriteString("\n")

	useful := v.styles.Error.Render("not useful")
	if a.Dimensions.Usefulness.IsUseful {
		useful = v.styles.Success.Render("useful")
	}
	b.WriteString(strings.Join([]string{
		v.score("health", a.Health.Score),
		v.score("refinement", p.Refinement.Float64()),
		v.score("trust", a.Dimensions.Trust),
		v.score("freshness", a.Dimensions.Freshness),
		useful + v.styles.Muted.Render(fmt.Sprintf(" (gate %.2f)", a.Dimensions.Usefulness.Gate)),
	}, "  "))

	if a.Stubs.Blocking > 0 {
		b.WriteString("\n")
		b.WriteString(v.styles.Blocking.Render(fmt.Sprintf("%d blocking stub(s)", a.Stubs.Blocking)))
	}
	if a.UsingDefaults {
		b.WriteString("\n")
		b.WriteString(v.styles.Warning.Render("configuration rejected; using built-in defaults"))
	}
	for _, w := range a.Warnings {
		b.WriteString("\n")
		b.WriteString(v.styles.Warning.Render("warning: " + w.Message))
	}

	return b.String()
}

// score renders one labelled unit value.
func (v *View) score(label string, value float64) string {
	return v.styles.Muted.Render(label+" ") + v.styles.Score(value).Render(fmt.Sprintf("%.2f", value))
}
