package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/doc-doctor/internal/core/domain"
)

var stubsCmd = &cobra.Command{
	Use:   "stubs",
	Short: "List and edit document stubs",
	Long: `Stubs are editorial gaps recorded in the document header. These commands
list them and edit them in place; use --dry-run to print the new document
instead of writing it.`,
}

var stubsListCmd = &cobra.Command{
	Use:   "list [file]",
	Short: "List stubs",
	Args:  cobra.ExactArgs(1),
	RunE:  runStubsList,
}

var stubsAddCmd = &cobra.Command{
	Use:   "add [file]",
	Short: "Append a stub",
	Args:  cobra.ExactArgs(1),
	RunE:  runStubsAdd,
}

var stubsResolveCmd = &cobra.Command{
	Use:   "resolve [file] [index]",
	Short: "Remove a resolved stub",
	Long:  `Removes the stub at index. Later stubs shift down by one.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runStubsResolve,
}

var stubsUpdateCmd = &cobra.Command{
	Use:   "update [file] [index]",
	Short: "Change a stub's description, priority or form",
	Args:  cobra.ExactArgs(2),
	RunE:  runStubsUpdate,
}

var stubsLinkCmd = &cobra.Command{
	Use:   "link [file] [index] [anchor-id]",
	Short: "Link an inline ^anchor to a stub",
	Args:  cobra.ExactArgs(3),
	RunE:  runStubsLink,
}

var stubsUnlinkCmd = &cobra.Command{
	Use:   "unlink [file] [index] [anchor-id]",
	Short: "Unlink an inline ^anchor from a stub",
	Args:  cobra.ExactArgs(3),
	RunE:  runStubsUnlink,
}

var stubsAnchorsCmd = &cobra.Command{
	Use:   "anchors [file]",
	Short: "Find ^anchors in the body and match them to stubs",
	Args:  cobra.ExactArgs(1),
	RunE:  runStubsAnchors,
}

var (
	stubsJSON   bool
	stubsDryRun bool

	listType     string
	listBlocking bool
	listPriority string

	addSpec domain.StubSpec

	updateDescription string
	updatePriority    string
	updateForm        string
)

func init() {
	stubsCmd.PersistentFlags().BoolVar(&stubsDryRun, "dry-run", false, "print the edited document instead of writing it")

	stubsListCmd.Flags().StringVar(&listType, "type", "", "only stubs of this type")
	stubsListCmd.Flags().BoolVar(&listBlocking, "blocking", false, "only blocking stubs")
	stubsListCmd.Flags().StringVar(&listPriority, "priority", "", "only stubs of this priority")
	stubsListCmd.Flags().BoolVar(&stubsJSON, "json", false, "output as JSON")

	f := stubsAddCmd.Flags()
	f.StringVarP(&addSpec.Type, "type", "t", "", "stub type, e.g. expand, verify, link (required)")
	f.StringVarP(&addSpec.Description, "description", "d", "", "what is missing (required)")
	f.StringVar(&addSpec.StubForm, "form", "", "transient, persistent, blocking or structural")
	f.StringVar(&addSpec.Priority, "priority", "", "low, medium, high or critical")
	f.StringVar(&addSpec.Origin, "origin", "", "who raised the stub")
	f.StringVar(&addSpec.Anchor, "anchor", "", "location hint")
	f.Float64("urgency", 0, "urgency in [0, 1]")
	f.Float64("impact", 0, "impact in [0, 1]")
	f.Float64("complexity", 0, "complexity in [0, 1]")
	f.StringSliceVar(&addSpec.InlineAnchors, "inline-anchor", nil, "inline ^anchor ids")
	f.StringSliceVar(&addSpec.Assignees, "assignee", nil, "assignees")
	f.StringSliceVar(&addSpec.Participants, "participant", nil, "participants")
	f.StringSliceVar(&addSpec.References, "reference", nil, "references")
	f.StringSliceVar(&addSpec.Dependencies, "dependency", nil, "dependencies")
	_ = stubsAddCmd.MarkFlagRequired("type")
	_ = stubsAddCmd.MarkFlagRequired("description")

	stubsUpdateCmd.Flags().StringVarP(&updateDescription, "description", "d", "", "new description")
	stubsUpdateCmd.Flags().StringVar(&updatePriority, "priority", "", "new priority")
	stubsUpdateCmd.Flags().StringVar(&updateForm, "form", "", "new stub form")

	stubsAnchorsCmd.Flags().BoolVar(&stubsJSON, "json", false, "output as JSON")

	stubsCmd.AddCommand(stubsListCmd)
	stubsCmd.AddCommand(stubsAddCmd)
	stubsCmd.AddCommand(stubsResolveCmd)
	stubsCmd.AddCommand(stubsUpdateCmd)
	stubsCmd.AddCommand(stubsLinkCmd)
	stubsCmd.AddCommand(stubsUnlinkCmd)
	stubsCmd.AddCommand(stubsAnchorsCmd)
	rootCmd.AddCommand(stubsCmd)
}

func runStubsList(cmd *cobra.Command, args []string) error {
	sb, err := services()
	if err != nil {
		return err
	}
	text, err := readDocument(cmd, args[0])
	if err != nil {
		return err
	}

	filter := domain.StubFilter{Type: listType, BlockingOnly: listBlocking}
	if listPriority != "" {
		p, err := domain.ParsePriority(listPriority)
		if err != nil {
			return err
		}
		filter.Priority = p
	}

	stubs, err := sb.ListStubs(text, filter)
	if err != nil {
		return fmt.Errorf("failed to list stubs: %w", err)
	}

	if stubsJSON {
		return printJSON(cmd, stubs)
	}
	if len(stubs) == 0 {
		cmd.Println("No stubs found.")
		return nil
	}

	st := newStyler(cmd.OutOrStdout())
	for _, is := range stubs {
		form := string(is.Stub.Form)
		if is.Stub.IsBlocking() {
			form = st.bad(form)
		}
		cmd.Printf("[%d] %s  %s, %s\n", is.Index, st.heading(is.Stub.Type), form, is.Stub.Priority)
		if is.Stub.Description != "" {
			cmd.Printf("    %s\n", is.Stub.Description)
		}
		if len(is.Stub.InlineAnchors) > 0 {
			cmd.Printf("    %s\n", st.dim("anchors: "+strings.Join(is.Stub.InlineAnchors, ", ")))
		}
	}
	cmd.Printf("\nTotal: %d stubs\n", len(stubs))
	return nil
}

func runStubsAdd(cmd *cobra.Command, args []string) error {
	sb, err := services()
	if err != nil {
		return err
	}
	text, err := readDocument(cmd, args[0])
	if err != nil {
		return err
	}

	spec := addSpec
	for _, q := range []struct {
		flag string
		dst  **float64
	}{
		{"urgency", &spec.Urgency},
		{"impact", &spec.Impact},
		{"complexity", &spec.Complexity},
	} {
		if !cmd.Flags().Changed(q.flag) {
			continue
		}
		v, err := cmd.Flags().GetFloat64(q.flag)
		if err != nil {
			return fmt.Errorf("getting %s flag: %w", q.flag, err)
		}
		*q.dst = &v
	}

	result, err := sb.AddStub(text, spec)
	if err != nil {
		return fmt.Errorf("failed to add stub: %w", err)
	}
	if err := writeDocument(cmd, args[0], text, result.Text, stubsDryRun); err != nil {
		return err
	}
	if !stubsDryRun && args[0] != stdinPath {
		cmd.Printf("Added stub [%d] to %s\n", result.Index, args[0])
	}
	return nil
}

func runStubsResolve(cmd *cobra.Command, args []string) error {
	sb, err := services()
	if err != nil {
		return err
	}
	index, err := parseIndex(args[1])
	if err != nil {
		return err
	}
	text, err := readDocument(cmd, args[0])
	if err != nil {
		return err
	}

	result, err := sb.ResolveStub(text, index)
	if err != nil {
		return fmt.Errorf("failed to resolve stub: %w", err)
	}
	if err := writeDocument(cmd, args[0], text, result.Text, stubsDryRun); err != nil {
		return err
	}
	if !stubsDryRun && args[0] != stdinPath {
		cmd.Printf("Resolved stub [%d] %s: %s\n", index, result.Removed.Type, result.Removed.Description)
	}
	return nil
}

func runStubsUpdate(cmd *cobra.Command, args []string) error {
	sb, err := services()
	if err != nil {
		return err
	}
	index, err := parseIndex(args[1])
	if err != nil {
		return err
	}
	text, err := readDocument(cmd, args[0])
	if err != nil {
		return err
	}

	var update domain.StubUpdate
	if cmd.Flags().Changed("description") {
		update.Description = &updateDescription
	}
	if cmd.Flags().Changed("priority") {
		p := domain.Priority(updatePriority)
		update.Priority = &p
	}
	if cmd.Flags().Changed("form") {
		f := domain.StubForm(updateForm)
		update.Form = &f
	}

	result, err := sb.UpdateStub(text, index, update)
	if err != nil {
		return fmt.Errorf("failed to update stub: %w", err)
	}
	return finishStubEdit(cmd, args[0], text, result, "Updated")
}

func runStubsLink(cmd *cobra.Command, args []string) error {
	return runAnchorEdit(cmd, args, true)
}

func runStubsUnlink(cmd *cobra.Command, args []string) error {
	return runAnchorEdit(cmd, args, false)
}

func runAnchorEdit(cmd *cobra.Command, args []string, link bool) error {
	sb, err := services()
	if err != nil {
		return err
	}
	index, err := parseIndex(args[1])
	if err != nil {
		return err
	}
	text, err := readDocument(cmd, args[0])
	if err != nil {
		return err
	}

	var result *domain.StubEditResult
	if link {
		result, err = sb.LinkStubAnchor(text, index, args[2])
		if err != nil {
			return fmt.Errorf("failed to link anchor: %w", err)
		}
		return finishStubEdit(cmd, args[0], text, result, "Linked anchor on")
	}
	result, err = sb.UnlinkStubAnchor(text, index, args[2])
	if err != nil {
		return fmt.Errorf("failed to unlink anchor: %w", err)
	}
	return finishStubEdit(cmd, args[0], text, result, "Unlinked anchor on")
}

func finishStubEdit(cmd *cobra.Command, path, original string, result *domain.StubEditResult, verb string) error {
	if err := writeDocument(cmd, path, original, result.Text, stubsDryRun); err != nil {
		return err
	}
	if !stubsDryRun && path != stdinPath {
		cmd.Printf("%s stub [%d] in %s\n", verb, result.Index, path)
	}
	return nil
}

func runStubsAnchors(cmd *cobra.Command, args []string) error {
	sb, err := services()
	if err != nil {
		return err
	}
	text, err := readDocument(cmd, args[0])
	if err != nil {
		return err
	}

	report, err := sb.FindStubAnchors(text)
	if err != nil {
		return fmt.Errorf("failed to scan anchors: %w", err)
	}
	if stubsJSON {
		return printJSON(cmd, report)
	}

	st := newStyler(cmd.OutOrStdout())
	if len(report.Anchors) == 0 {
		cmd.Println("No anchors found.")
	}
	for _, a := range report.Anchors {
		cmd.Printf("^%s  line %d\n", a.ID, a.Line)
	}
	for _, m := range report.Stubs {
		if len(m.Declared) == 0 {
			continue
		}
		cmd.Printf("[%d] %s: %d of %d anchors found", m.Index, m.Type, len(m.Found), len(m.Declared))
		if len(m.Missing) > 0 {
			cmd.Printf(", missing %s", st.bad(strings.Join(m.Missing, ", ")))
		}
		cmd.Println()
	}
	return nil
}

func parseIndex(s string) (int, error) {
	index, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid stub index %q: must be a number", s)
	}
	return index, nil
}
