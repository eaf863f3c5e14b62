package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/doc-doctor/internal/core/domain"
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Run a single scoring function",
	Long:  `Evaluates one scoring function and prints the result as JSON.`,
}

var calcHealthCmd = &cobra.Command{
	Use:   "health [refinement]",
	Short: "Health for a refinement and a set of stub forms",
	Args:  cobra.ExactArgs(1),
	RunE:  runCalcHealth,
}

var calcUsefulnessCmd = &cobra.Command{
	Use:   "usefulness [refinement] [audience]",
	Short: "Usefulness of a refinement for an audience",
	Args:  cobra.ExactArgs(2),
	RunE:  runCalcUsefulness,
}

var calcDimensionsCmd = &cobra.Command{
	Use:   "dimensions [file]",
	Short: "Every per-document score",
	Args:  cobra.ExactArgs(1),
	RunE:  runCalcDimensions,
}

var calcVectorCmd = &cobra.Command{
	Use:   "vector [file] [index]",
	Short: "Vector physics of one stub",
	Args:  cobra.ExactArgs(2),
	RunE:  runCalcVector,
}

var (
	calcStubForms []string
	calcAt        string

	calcControversy bool
	calcExternal    bool
)

// timeLayouts are accepted by --at.
var timeLayouts = []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

func init() {
	calcHealthCmd.Flags().StringSliceVar(&calcStubForms, "stub-forms", nil, "forms of the document's stubs, e.g. blocking,transient")
	calcDimensionsCmd.Flags().StringVar(&calcAt, "at", "", "evaluate as of this time (RFC 3339 or YYYY-MM-DD; default now)")
	calcVectorCmd.Flags().BoolVar(&calcControversy, "controversy", false, "the topic is disputed")
	calcVectorCmd.Flags().BoolVar(&calcExternal, "external-deps", false, "the stub waits on outside parties")
	calcVectorCmd.Flags().Float64("velocity", 0, "editorial velocity, work per day")
	calcVectorCmd.Flags().Float64("age-days", 0, "days since the stub was raised")

	calcCmd.AddCommand(calcHealthCmd)
	calcCmd.AddCommand(calcUsefulnessCmd)
	calcCmd.AddCommand(calcDimensionsCmd)
	calcCmd.AddCommand(calcVectorCmd)
	rootCmd.AddCommand(calcCmd)
}

func runCalcHealth(cmd *cobra.Command, args []string) error {
	sb, err := services()
	if err != nil {
		return err
	}
	refinement, err := parseFloatArg("refinement", args[0])
	if err != nil {
		return err
	}

	stubs := make([]domain.Stub, 0, len(calcStubForms))
	for _, s := range calcStubForms {
		form, err := domain.ParseStubForm(s)
		if err != nil {
			return err
		}
		stub := domain.NewStub("stub", "")
		stub.Form = form
		stubs = append(stubs, stub)
	}
	return printJSON(cmd, sb.CalcHealth(refinement, stubs))
}

func runCalcUsefulness(cmd *cobra.Command, args []string) error {
	sb, err := services()
	if err != nil {
		return err
	}
	refinement, err := parseFloatArg("refinement", args[0])
	if err != nil {
		return err
	}
	audience, err := domain.ParseAudience(args[1])
	if err != nil {
		return err
	}
	return printJSON(cmd, sb.CalcUsefulness(refinement, audience))
}

func runCalcDimensions(cmd *cobra.Command, args []string) error {
	sb, err := services()
	if err != nil {
		return err
	}

	var at time.Time
	if calcAt != "" {
		if at, err = parseTime(calcAt); err != nil {
			return err
		}
	}

	text, err := readDocument(cmd, args[0])
	if err != nil {
		return err
	}
	doc, err := sb.ParseDocument(text)
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}
	return printJSON(cmd, sb.CalcDimensions(doc.Properties, at))
}

func runCalcVector(cmd *cobra.Command, args []string) error {
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

	stubs, err := sb.ListStubs(text, domain.StubFilter{})
	if err != nil {
		return fmt.Errorf("failed to list stubs: %w", err)
	}
	if index < 0 || index >= len(stubs) {
		return domain.NewError(domain.KindStubOperation, domain.ErrStubIndexOutOfRange,
			"stub index %d out of range (document has %d stubs)", index, len(stubs))
	}

	ctx := domain.StubContext{
		HasControversy:          calcControversy,
		HasExternalDependencies: calcExternal,
	}
	if cmd.Flags().Changed("velocity") {
		v, _ := cmd.Flags().GetFloat64("velocity")
		ctx.EditorialVelocity = &v
	}
	if cmd.Flags().Changed("age-days") {
		v, _ := cmd.Flags().GetFloat64("age-days")
		ctx.AgeDays = &v
	}
	return printJSON(cmd, sb.CalcVectorPhysics(stubs[index].Stub, ctx))
}

func parseFloatArg(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: must be a number", name, s)
	}
	return v, nil
}

func parseTime(s string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time %q: use RFC 3339 or YYYY-MM-DD", s)
}
