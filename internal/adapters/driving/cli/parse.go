package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Print the decoded header as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	sb, err := services()
	if err != nil {
		return err
	}

	text, err := readDocument(cmd, args[0])
	if err != nil {
		return err
	}

	doc, err := sb.ParseDocument(text)
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}
	return printJSON(cmd, doc)
}
