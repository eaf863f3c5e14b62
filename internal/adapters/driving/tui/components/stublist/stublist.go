// Package stublist provides the ranked stub list component for the TUI.
package stublist

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/doc-doctor/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/doc-doctor/internal/core/domain"
)

// linesPerStub is the height of one rendered entry.
const linesPerStub = 2

// List displays ranked stubs in a navigable list.
type List struct {
	stubs    []domain.RankedStub
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// New creates a new stub list component.
func New(s *styles.Styles) *List {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &List{
		styles: s,
		width:  80,
		height: 10,
	}
}

// Init initialises the list.
func (l *List) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (l *List) Update(msg tea.Msg) (*List, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			l.MoveUp()
		case "down", "j":
			l.MoveDown()
		}
	}
	return l, nil
}

// View renders the list.
func (l *List) View() string {
	header := l.styles.Subtitle.Render(fmt.Sprintf("Stubs (%d)", len(l.stubs)))
	if len(l.stubs) == 0 {
		return header + "\n" + l.styles.Muted.Render("No stubs. Nothing left to do.")
	}

	visible := (l.height - 1) / linesPerStub
	if visible < 1 {
		visible = 1
	}

	start := 0
	if l.selected >= visible {
		start = l.selected - visible + 1
	}
	end := start + visible
	if end > len(l.stubs) {
		end = len(l.stubs)
	}

	lines := make([]string, 0, (end-start)*linesPerStub+1)
	lines = append(lines, header)
	for i := start; i < end; i++ {
		lines = append(lines, l.renderStub(i, &l.stubs[i]))
	}
	return strings.Join(lines, "\n")
}

// renderStub formats one ranked stub as a title line and a detail line.
func (l *List) renderStub(pos int, rs *domain.RankedStub) string {
	indicator := "  "
	if pos == l.selected {
		indicator = "> "
	}

	desc := rs.Stub.Description
	maxDesc := l.width - len(rs.Stub.Type) - 16
	if maxDesc < 10 {
		maxDesc = 10
	}
	if len(desc) > maxDesc {
		desc = desc[:maxDesc-3] + "..."
	}

	title := fmt.Sprintf("%s[%d] %s: %s", indicator, rs.Index, rs.Stub.Type, desc)
	if pos == l.selected {
		title = l.styles.Selected.Render(title)
	} else {
		title = l.styles.Normal.Render(title)
	}

	detail := "    " +
		l.styles.Form(rs.Stub.Form).Render(rs.Stub.Form.String()) +
		l.styles.Muted.Render(fmt.Sprintf("  %s  %s  magnitude %.2f",
			rs.Stub.Priority, rs.Physics.Family, rs.Physics.Magnitude))

	return title + "\n" + detail
}

// SetStubs replaces the list, keeping the selection on the stub with
// document index keep when it is still present.
func (l *List) SetStubs(stubs []domain.RankedStub, keep int) {
	l.stubs = stubs
	for i := range stubs {
		if stubs[i].Index == keep {
			l.selected = i
			return
		}
	}
	if l.selected >= len(stubs) {
		l.selected = len(stubs) - 1
	}
	if l.selected < 0 {
		l.selected = 0
	}
}

// Stubs returns the current stubs.
func (l *List) Stubs() []domain.RankedStub {
	return l.stubs
}

// Selected returns the list position of the selection.
func (l *List) Selected() int {
	return l.selected
}

// SelectedStub returns the selected stub, or nil if the list is empty.
func (l *List) SelectedStub() *domain.RankedStub {
	if l.selected < 0 || l.selected >= len(l.stubs) {
		return nil
	}
	return &l.stubs[l.selected]
}

// MoveUp moves selection up.
func (l *List) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
}

// MoveDown moves selection down.
func (l *List) MoveDown() {
	if l.selected < len(l.stubs)-1 {
		l.selected++
	}
}

// SetSize sets the list dimensions.
func (l *List) SetSize(width, height int) {
	l.width = width
	l.height = height
}
