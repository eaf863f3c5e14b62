package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/doc-doctor/internal/adapters/driving/tui"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui <file>",
	Short: "Browse and edit a document's stubs interactively",
	Long: `Launch the interactive stub browser for one document.

The browser shows the document's scores and its stubs ranked by vector
magnitude. Edits are applied to a working copy and written back on save.

Controls:
  ↑/k, ↓/j - Navigate stubs
  x        - Resolve (remove) the selected stub
  p        - Cycle priority
  f        - Cycle stub form
  e        - Edit description (enter applies, esc cancels)
  s        - Save
  R        - Reload from disk, discarding edits
  ?        - Toggle help
  q        - Quit`,
	Args: cobra.ExactArgs(1),
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if args[0] == stdinPath {
		return fmt.Errorf("tui needs a file path, not stdin")
	}

	sb, err := services()
	if err != nil {
		return err
	}

	app, err := tui.NewApp(tui.NewPorts(sb, tui.NewFileStore(args[0])))
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	// Set up context from command
	app.WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
