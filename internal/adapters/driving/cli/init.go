package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/doc-doctor/internal/core/domain"
)

var initCmd = &cobra.Command{
	Use:   "init [file]",
	Short: "Stamp a document with uid, created and modified",
	Long: `Adds a header when the document has none, fills uid, title and created
when absent, and sets modified to now.`,
	Args: cobra.ExactArgs(1),
	RunE: runInit,
}

var (
	initTitle  string
	initUID    string
	initDryRun bool
)

func init() {
	initCmd.Flags().StringVar(&initTitle, "title", "", "title to set when absent (default: file name)")
	initCmd.Flags().StringVar(&initUID, "uid", "", "uid to set when absent (default: a new UUID)")
	initCmd.Flags().BoolVar(&initDryRun, "dry-run", false, "print the stamped document instead of writing it")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	sb, err := services()
	if err != nil {
		return err
	}
	text, err := readDocument(cmd, args[0])
	if err != nil {
		return err
	}

	opts := domain.InitOptions{UID: initUID, Title: initTitle}
	if opts.UID == "" {
		opts.UID = uuid.New().String()
	}
	if opts.Title == "" && args[0] != stdinPath {
		opts.Title = titleFromPath(args[0])
	}

	result, err := sb.InitDocument(text, opts)
	if err != nil {
		return fmt.Errorf("init failed: %w", err)
	}
	if err := writeDocument(cmd, args[0], text, result.Text, initDryRun); err != nil {
		return err
	}
	if !initDryRun && args[0] != stdinPath {
		verb := "Stamped"
		if result.Created {
			verb = "Added header to"
		}
		cmd.Printf("%s %s (uid %s)\n", verb, args[0], result.Properties.UID)
	}
	return nil
}

// titleFromPath turns "docs/getting-started.md" into "getting started".
func titleFromPath(path string) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return strings.NewReplacer("-", " ", "_", " ").Replace(base)
}
