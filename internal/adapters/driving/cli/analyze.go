package cli

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/doc-doctor/internal/core/domain"
)

var analyzeJSON bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Score a document",
	Long: `Parses the document header and reports health, usefulness, trust,
freshness and the stubs ranked by vector magnitude. Use "-" to read stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "output the analysis as JSON")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	sb, err := services()
	if err != nil {
		return err
	}

	text, err := readDocument(cmd, args[0])
	if err != nil {
		return err
	}

	analysis, err := sb.AnalyzeDocument(text)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if analyzeJSON {
		return printJSON(cmd, analysis)
	}
	printAnalysis(cmd.OutOrStdout(), args[0], analysis, newStyler(cmd.OutOrStdout()))
	return nil
}

func printAnalysis(w io.Writer, name string, a *domain.Analysis, st styler) {
	title := a.Properties.Title
	if title == "" {
		title = name
	}
	dims := a.Dimensions
	use := dims.Usefulness

	fmt.Fprintln(w, st.heading(title))
	fmt.Fprintf(w, "  Health       %s  (refinement %s + stubs %s, penalty %s)\n",
		st.score(a.Health.Score),
		formatScore(a.Health.RefinementComponent),
		formatScore(a.Health.StubComponent),
		formatScore(a.Health.StubPenalty))

	verdict := st.good("useful")
	if !use.IsUseful {
		verdict = st.bad("not useful")
	}
	fmt.Fprintf(w, "  Usefulness   %s vs %s gate (%s): %s, margin %+.2f\n",
		formatScore(use.Refinement), formatScore(use.Gate), use.Audience, verdict, use.Margin)
	fmt.Fprintf(w, "  Trust        %s  (%s)\n", st.score(dims.Trust), a.Properties.Origin)
	fmt.Fprintf(w, "  Freshness    %s  (%s)\n", st.score(dims.Freshness), a.Properties.Form)

	blocking := fmt.Sprintf("%d blocking", a.Stubs.Blocking)
	if a.Stubs.Blocking > 0 {
		blocking = st.bad(blocking)
	}
	fmt.Fprintf(w, "  Stubs        %d total, %s\n", a.Stubs.Total, blocking)

	if len(a.Stubs.ByFamily) > 0 {
		families := make([]string, 0, len(a.Stubs.ByFamily))
		for f := range a.Stubs.ByFamily {
			families = append(families, string(f))
		}
		sort.Strings(families)
		fmt.Fprint(w, "  Families    ")
		for _, f := range families {
			fmt.Fprintf(w, " %s=%d", f, a.Stubs.ByFamily[domain.VectorFamily(f)])
		}
		fmt.Fprintln(w)
	}

	if len(a.Ranked) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, st.heading("Ranked stubs:"))
		for _, r := range a.Ranked {
			fmt.Fprintf(w, "  [%d] %s (%s, %s) magnitude %s  %s\n",
				r.Index, r.Stub.Type, r.Stub.Form, r.Stub.Priority,
				formatScore(r.Physics.Magnitude), st.dim(r.Stub.Description))
		}
	}

	if len(a.Warnings) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, st.heading("Warnings:"))
		for _, d := range a.Warnings {
			printDiagnostic(w, d, st)
		}
	}

	if a.UsingDefaults {
		fmt.Fprintln(w)
		fmt.Fprintln(w, st.warn("(configuration rejected; using built-in defaults)"))
	}
}

func printDiagnostic(w io.Writer, d domain.Diagnostic, st styler) {
	label := st.warn(d.Code)
	if d.Severity == domain.SeverityError {
		label = st.bad(d.Code)
	}
	loc := ""
	if d.Position != nil {
		loc = fmt.Sprintf(" (%s)", d.Position)
	}
	field := ""
	if d.Field != "" {
		field = d.Field + ": "
	}
	fmt.Fprintf(w, "  %s %s%s%s\n", label, field, d.Message, loc)
	if d.Suggestion != "" {
		fmt.Fprintf(w, "      %s\n", st.dim(d.Suggestion))
	}
}
