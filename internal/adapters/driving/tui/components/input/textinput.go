// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/doc-doctor/internal/adapters/driving/tui/styles"
)

// maxDescription bounds a stub description typed in the editor.
const maxDescription = 512

// DescriptionInput wraps a bubbles textinput for editing a stub description.
type DescriptionInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	label     string
	width     int
}

// NewDescriptionInput creates a new, blurred description editor.
func NewDescriptionInput(s *styles.Styles) *DescriptionInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "Describe what is missing..."
	ti.CharLimit = maxDescription
	ti.Width = 50

	return &DescriptionInput{
		textinput: ti,
		styles:    s,
		label:     "Description",
		width:     50,
	}
}

// Init initialises the editor.
func (d *DescriptionInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (d *DescriptionInput) Update(msg tea.Msg) (*DescriptionInput, tea.Cmd) {
	var cmd tea.Cmd
	d.textinput, cmd = d.textinput.Update(msg)
	return d, cmd
}

// View renders the editor.
func (d *DescriptionInput) View() string {
	label := d.styles.Title.Render(d.label + ": ")
	field := d.styles.InputField.Render(d.textinput.View())
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, label, field)
}

// Open loads value into the editor and focuses it.
func (d *DescriptionInput) Open(label, value string) tea.Cmd {
	if label != "" {
		d.label = label
	}
	d.textinput.SetValue(value)
	d.textinput.CursorEnd()
	return d.textinput.Focus()
}

// Close blurs the editor and clears it.
func (d *DescriptionInput) Close() {
	d.textinput.Blur()
	d.textinput.Reset()
}

// Value returns the current input value.
func (d *DescriptionInput) Value() string {
	return d.textinput.Value()
}

// Focused returns whether the editor is open.
func (d *DescriptionInput) Focused() bool {
	return d.textinput.Focused()
}

// SetWidth sets the width of the editor.
func (d *DescriptionInput) SetWidth(width int) {
	d.width = width
	// Account for label and border
	inputWidth := width - len(d.label) - 8
	if inputWidth < 20 {
		inputWidth = 20
	}
	d.textinput.Width = inputWidth
}

// Width returns the current width.
func (d *DescriptionInput) Width() int {
	return d.width
}
