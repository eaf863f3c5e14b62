package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var schemaCmd = &cobra.Command{
	Use:       "schema [frontmatter|stubs]",
	Short:     "Print a JSON schema",
	Long:      `Prints the JSON schema of the document header (default) or of a stub.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"frontmatter", "stubs"},
	RunE:      runSchema,
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}

func runSchema(cmd *cobra.Command, args []string) error {
	sb, err := services()
	if err != nil {
		return err
	}

	which := "frontmatter"
	if len(args) == 1 {
		which = args[0]
	}
	switch which {
	case "frontmatter":
		cmd.Print(sb.FrontmatterSchema())
	case "stubs", "stub":
		cmd.Print(sb.StubsSchema())
	default:
		return fmt.Errorf("unknown schema %q (use frontmatter or stubs)", which)
	}
	return nil
}
