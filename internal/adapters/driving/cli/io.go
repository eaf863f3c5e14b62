package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/doc-doctor/internal/docfile"
)

// stdinPath reads the document from standard input.
const stdinPath = "-"

// readDocument returns the text at path, or standard input for "-".
func readDocument(cmd *cobra.Command, path string) (string, error) {
	if path == stdinPath {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	return docfile.Read(path)
}

// writeDocument stores edited text. With dryRun, or when the document came
// from stdin, the text is printed instead. Unchanged text is not written.
func writeDocument(cmd *cobra.Command, path, original, text string, dryRun bool) error {
	if dryRun || path == stdinPath {
		_, err := io.WriteString(cmd.OutOrStdout(), text)
		return err
	}
	if text == original {
		return nil
	}
	return docfile.Write(path, text)
}

// printJSON writes v as indented JSON.
func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
