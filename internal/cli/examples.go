package cli

import (
	"fmt"

	"github.com/example/scamcheck/internal/analysis"
	"github.com/spf13/cobra"
)

func newExamplesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "examples",
		Short: "List the built-in example messages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, ex := range analysis.Examples {
				fmt.Fprintf(cmd.OutOrStdout(), "%-14s %s\n", ex.Name+":", ex.Text)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "\nRun one with: scamcheck analyze --example \"<name>\"")
			return nil
		},
	}
}
