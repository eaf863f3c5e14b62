// Package detail provides the selected-stub detail view for the TUI.
package detail

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/doc-doctor/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/doc-doctor/internal/core/domain"
)

// View shows every field of one ranked stub with its physics.
type View struct {
	styles *styles.Styles
	stub   *domain.RankedStub
	width  int
}

// NewView creates a new detail view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{styles: s, width: 80}
}

// SetStub sets the stub to display. Nil clears the view.
func (v *View) SetStub(rs *domain.RankedStub) {
	v.stub = rs
}

// SetWidth sets the render width.
func (v *View) SetWidth(width int) {
	v.width = width
}

// View renders the detail pane.
func (v *View) View() string {
	if v.stub == nil {
		return v.styles.Muted.Render("No stub selected")
	}

	lines := v.buildContent()
	content := strings.Join(lines, "\n")

	w := v.width - 4
	if w < 20 {
		w = 20
	}
	return v.styles.Border.Width(w).Render(content)
}

// buildContent builds the content lines for display.
func (v *View) buildContent() []string {
	s := v.stub.Stub
	ph := v.stub.Physics

	lines := []string{
		v.styles.Title.Render(fmt.Sprintf("Stub [%d]", v.stub.Index)),
		v.formatField("Type", s.Type),
		v.formatField("Description", s.Description),
		v.formatField("Form", v.styles.Form(s.Form).Render(s.Form.String())),
		v.formatField("Priority", s.Priority.String()),
		v.formatField("Origin", s.Origin.String()),
	}
	if s.Anchor != "" {
		lines = append(lines, v.formatField("Anchor", s.Anchor))
	}
	if len(s.InlineAnchors) > 0 {
		lines = append(lines, v.formatField("Inline", "^"+strings.Join(s.InlineAnchors, " ^")))
	}
	if len(s.Assignees) > 0 {
		lines = append(lines, v.formatField("Assignees", strings.Join(s.Assignees, ", ")))
	}
	if len(s.Dependencies) > 0 {
		lines = append(lines, v.formatField("Depends on", strings.Join(s.Dependencies, ", ")))
	}

	physics := fmt.Sprintf("%s  urgency %.2f  impact %.2f  complexity %.2f",
		ph.Family, ph.Urgency, ph.Impact, ph.Complexity)
	energy := fmt.Sprintf("potential %.2f  friction %.2f  magnitude %.2f",
		ph.PotentialEnergy, ph.Friction, ph.Magnitude)
	if ph.Forecast != nil {
		energy += fmt.Sprintf("  forecast %.1f", *ph.Forecast)
	}
	lines = append(lines, "",
		v.formatField("Vector", physics),
		v.formatField("Energy", v.styles.Muted.Render(energy)))

	return lines
}

// formatField formats a field for display.
func (v *View) formatField(label, value string) string {
	return fmt.Sprintf("%-12s %s", label+":", value)
}
