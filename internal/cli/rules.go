package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/example/scamcheck/internal/config"
	"github.com/example/scamcheck/internal/detector"
	"github.com/example/scamcheck/internal/rules"
	"github.com/spf13/cobra"
)

type rulesView struct {
	Rules   []rules.Rule `json:"rules"`
	Checks  []string     `json:"checks"`
	Phrases []string     `json:"referencePhrases"`
}

func newRulesCmd(loader *config.Loader) *cobra.Command {
	flags := &runtimeFlagSet{}
	var validateOnly bool

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Print the effective keyword rules, checks and reference phrases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(loader, flags.toOverrides(cmd))
			if err != nil {
				return err
			}

			set, err := loadRuleSet(cfg)
			if err != nil {
				return err
			}
			if _, err := detector.DefaultRegistry.BuildChecks(cfg.Checks); err != nil {
				return err
			}

			if validateOnly {
				fmt.Fprintf(cmd.OutOrStdout(), "OK: %d rules, %d checks, %d reference phrases\n", set.Len(), len(cfg.Checks), len(cfg.ReferencePhrases))
				return nil
			}

			view := rulesView{Rules: set.Rules(), Checks: cfg.Checks, Phrases: cfg.ReferencePhrases}
			if cfg.Output == "json" {
				return renderJSON(cmd.OutOrStdout(), view)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "TRIGGER\tCATEGORY\tEXPLANATION")
			for _, r := range view.Rules {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Trigger, r.Category, r.Explanation)
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "\nChecks:")
			for _, name := range view.Checks {
				fmt.Fprintf(cmd.OutOrStdout(), "  - %s\n", name)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "\nReference phrases:")
			for _, p := range view.Phrases {
				fmt.Fprintf(cmd.OutOrStdout(), "  - %s\n", p)
			}
			return nil
		},
	}

	bindRuntimeFlags(cmd, flags)
	cmd.Flags().BoolVar(&validateOnly, "validate", false, "Only validate the rule file and checks")

	return cmd
}
