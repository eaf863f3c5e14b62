package cli

import (
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	goodStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	badStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// styler colours output only when writing to a terminal.
type styler struct {
	enabled bool
}

func newStyler(w io.Writer) styler {
	f, ok := w.(*os.File)
	return styler{enabled: ok && term.IsTerminal(int(f.Fd()))}
}

func (s styler) render(style lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}
	return style.Render(text)
}

func (s styler) heading(text string) string { return s.render(headingStyle, text) }
func (s styler) good(text string) string    { return s.render(goodStyle, text) }
func (s styler) warn(text string) string    { return s.render(warnStyle, text) }
func (s styler) bad(text string) string     { return s.render(badStyle, text) }
func (s styler) dim(text string) string     { return s.render(dimStyle, text) }

// score renders a [0, 1] score coloured by band.
func (s styler) score(v float64) string {
	text := formatScore(v)
	switch {
	case v >= 0.8:
		return s.good(text)
	case v >= 0.5:
		return s.warn(text)
	default:
		return s.bad(text)
	}
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
