package cli

import (
	"github.com/example/scamcheck/internal/config"
	"github.com/spf13/cobra"
)

var version = "dev"

// Execute builds the root command tree and runs the CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	loader := &config.Loader{ConfigPath: config.DefaultConfigPath, EnvPath: config.DefaultEnvPath}
	rootOpts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "scamcheck",
		Short:         "Assess messages and voice clips for scam and impersonation red flags",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
	}
	rootCmd.SetVersionTemplate("scamcheck version {{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&rootOpts.ConfigPath, "config", config.DefaultConfigPath, "Path to scamcheck.config.yml (optional)")
	rootCmd.PersistentFlags().StringVar(&rootOpts.EnvPath, "env-file", config.DefaultEnvPath, "Path to a .env file (optional)")
	rootCmd.PersistentFlags().StringVar(&rootOpts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if rootOpts.ConfigPath != "" {
			loader.ConfigPath = rootOpts.ConfigPath
		}
		loader.EnvPath = rootOpts.EnvPath
	}

	rootCmd.AddCommand(
		newAnalyzeCmd(loader),
		newListenCmd(loader),
		newExamplesCmd(),
		newRulesCmd(loader),
		newDoctorCmd(loader),
		newReportCmd(),
	)

	return rootCmd
}

type rootOptions struct {
	ConfigPath string
	EnvPath    string
	LogLevel   string
}
