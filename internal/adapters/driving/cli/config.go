package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or create configuration",
	Long: `Configuration is layered: built-in defaults, the user file
(<user config dir>/doc-doctor/config.yaml), then the nearest
.doc-doctor.yaml above the working directory, or the file given with --config.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the configuration in effect",
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter configuration file with the defaults",
	RunE:  runConfigInit,
}

var (
	configJSON    bool
	configFormat  string
	configProject bool
)

func init() {
	configShowCmd.Flags().BoolVar(&configJSON, "json", false, "output as JSON")
	configInitCmd.Flags().StringVar(&configFormat, "format", "yaml", "file format: yaml or toml")
	configInitCmd.Flags().BoolVar(&configProject, "project", false, "write .doc-doctor.<format> in the working directory instead of the user file")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	sb, err := services()
	if err != nil {
		return err
	}
	cfg := sb.Config()

	if configJSON {
		return printJSON(cmd, struct {
			UsingDefaults bool `json:"using_defaults"`
			Config        any  `json:"config"`
		}{sb.UsingDefaults(), cfg})
	}

	st := newStyler(cmd.OutOrStdout())
	cmd.Println(st.heading("Health weights"))
	cmd.Printf("  refinement %.2f  stubs %.2f\n", cfg.Health.Refinement, cfg.Health.Stubs)
	cmd.Println(st.heading("Audience gates"))
	cmd.Printf("  personal %.2f  internal %.2f  trusted %.2f  public %.2f\n",
		cfg.Gates.Personal, cfg.Gates.Internal, cfg.Gates.Trusted, cfg.Gates.Public)
	cmd.Println(st.heading("Stub penalties"))
	cmd.Printf("  transient %.2f  persistent %.2f  blocking %.2f  structural %.2f\n",
		cfg.StubPenalties.Transient, cfg.StubPenalties.Persistent,
		cfg.StubPenalties.Blocking, cfg.StubPenalties.Structural)
	cmd.Println(st.heading("Trust"))
	cmd.Printf("  human %.2f  collaborative %.2f  ai_assisted %.2f  imported %.2f  derived %.2f  ai %.2f\n",
		cfg.Trust.Human, cfg.Trust.Collaborative, cfg.Trust.AIAssisted,
		cfg.Trust.Imported, cfg.Trust.Derived, cfg.Trust.AI)
	cmd.Println(st.heading("Half-lives (days)"))
	cmd.Printf("  transient %s  developing %s  stable %s  evergreen %s  canonical %s\n",
		cfg.HalfLives.Transient, cfg.HalfLives.Developing, cfg.HalfLives.Stable,
		cfg.HalfLives.Evergreen, cfg.HalfLives.Canonical)
	cmd.Println(st.heading("Vector defaults"))
	urgency := "from priority"
	if cfg.Vector.DefaultUrgency != nil {
		urgency = fmt.Sprintf("%.2f", *cfg.Vector.DefaultUrgency)
	}
	cmd.Printf("  urgency %s  impact %.2f  complexity %.2f\n",
		urgency, cfg.Vector.DefaultImpact, cfg.Vector.DefaultComplexity)

	if sb.UsingDefaults() {
		cmd.Println()
		cmd.Println(st.warn("(configuration rejected; using built-in defaults)"))
	}
	return nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	if starterWriter == nil {
		return errors.New("config writer not configured")
	}
	path, err := starterWriter(configProject, configFormat)
	if err != nil {
		return fmt.Errorf("failed to write configuration: %w", err)
	}
	cmd.Printf("Wrote %s\n", path)
	return nil
}
