// Package cli implements the doc-doctor command line.
//
// Commands read a Markdown document from a path (or "-" for stdin), call
// the switchboard, and print the result. Editing commands write the new
// text back to the file unless --dry-run is given.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/doc-doctor/internal/core/ports/driving"
	"github.com/custodia-labs/doc-doctor/internal/logger"
)

// Builder constructs the switchboard once global flags are parsed.
// configPath is the value of --config and may be empty.
type Builder func(configPath string) (driving.Switchboard, error)

// StarterWriter writes a starter configuration file and returns its path.
type StarterWriter func(project bool, format string) (string, error)

var (
	version = "dev"

	builder       Builder
	switchboard   driving.Switchboard
	starterWriter StarterWriter

	verbose    bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "doc-doctor",
	Short: "Assess and edit Markdown document metadata",
	Long: `doc-doctor reads the YAML header of a Markdown document, scores the
document's health, usefulness, trust and freshness, and edits the stubs
(tracked editorial gaps) recorded in it.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug logs to stderr")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "configuration file (replaces the project file)")
	// Results go to stdout so they can be piped; cobra defaults to stderr.
	rootCmd.SetOut(os.Stdout)
}

// SetVersion sets the version printed by the version command.
func SetVersion(v string) {
	version = v
}

// SetBuilder sets the function that constructs the switchboard.
func SetBuilder(b Builder) {
	builder = b
}

// SetSwitchboard sets the switchboard directly, bypassing the builder.
func SetSwitchboard(sb driving.Switchboard) {
	switchboard = sb
}

// SetStarterWriter sets the function used by `config init`.
func SetStarterWriter(w StarterWriter) {
	starterWriter = w
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with ctx, cancelling long-running
// commands (watch, scan, mcp serve, tui) when ctx is done.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// services returns the switchboard, building it on first use.
func services() (driving.Switchboard, error) {
	if switchboard != nil {
		return switchboard, nil
	}
	if builder == nil {
		return nil, errors.New("switchboard not configured")
	}
	sb, err := builder(configPath)
	if err != nil {
		return nil, fmt.Errorf("initialising: %w", err)
	}
	switchboard = sb
	return sb, nil
}
