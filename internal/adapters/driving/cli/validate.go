package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// ErrInvalidDocument is returned when validation reports errors,
// so the process exits non-zero.
var ErrInvalidDocument = errors.New("document is invalid")

var (
	validateStrict bool
	validateJSON   bool
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check a document header",
	Long: `Reports every problem in the document header at once, with JSON-pointer
paths (for example /stubs/2/urgency). With --strict, unknown keys are errors.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&validateStrict, "strict", false, "treat unknown keys as errors")
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "output the result as JSON")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	sb, err := services()
	if err != nil {
		return err
	}

	text, err := readDocument(cmd, args[0])
	if err != nil {
		return err
	}

	result := sb.ValidateDocument(text, validateStrict)

	if validateJSON {
		if err := printJSON(cmd, result); err != nil {
			return err
		}
	} else {
		w := cmd.OutOrStdout()
		st := newStyler(w)
		for _, d := range result.Errors {
			printDiagnostic(w, d, st)
		}
		for _, d := range result.Warnings {
			printDiagnostic(w, d, st)
		}
		summary := fmt.Sprintf("%s: %d error(s), %d warning(s)", args[0], len(result.Errors), len(result.Warnings))
		if result.IsValid {
			cmd.Println(st.good("valid") + "  " + summary)
		} else {
			cmd.Println(st.bad("invalid") + "  " + summary)
		}
	}

	if !result.IsValid {
		return ErrInvalidDocument
	}
	return nil
}
