package cli

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/example/scamcheck/internal/config"
	"github.com/example/scamcheck/internal/detector"
	"github.com/example/scamcheck/internal/transcribe"
	"github.com/spf13/cobra"
)

type doctorCheck struct {
	Name   string
	Status string // "✓", "✗" or "⊘"
	Detail string
	Error  error
}

func newDoctorCmd(loader *config.Loader) *cobra.Command {
	flags := &runtimeFlagSet{}

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Validate configuration, rules and transcription credentials",
		Long: `The doctor subcommand validates the scamcheck environment:
- Go runtime version
- configuration values
- keyword rule file and structural checks
- reference phrase corpus
- speech-to-text provider credentials
- output directory (when configured)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loader.Load(flags.toOverrides(cmd))
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			checks := runDoctorChecks(&cfg)
			printDoctorReport(cmd, checks)

			for _, check := range checks {
				if check.Error != nil {
					return errors.New("doctor checks failed")
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), "\n✓ All checks passed. System is ready.")
			return nil
		},
	}

	bindRuntimeFlags(cmd, flags)
	bindTranscribeFlags(cmd, flags)

	return cmd
}

func runDoctorChecks(cfg *config.RuntimeConfig) []doctorCheck {
	checks := []doctorCheck{
		{Name: "Go Runtime", Status: "✓", Detail: fmt.Sprintf("Version %s", runtime.Version())},
		checkConfiguration(cfg),
		checkRuleSet(cfg),
		checkStructuralChecks(cfg.Checks),
		checkTranscriber(cfg),
	}

	if cfg.OutputDir != "" {
		checks = append(checks, checkOutputDirectory(cfg.OutputDir))
	}

	return checks
}

func checkConfiguration(cfg *config.RuntimeConfig) doctorCheck {
	if err := cfg.Validate(); err != nil {
		return doctorCheck{Name: "Configuration", Status: "✗", Detail: "Invalid configuration", Error: err}
	}

	return doctorCheck{
		Name:   "Configuration",
		Status: "✓",
		Detail: fmt.Sprintf("%d reference phrases, threshold=%.2f", len(cfg.ReferencePhrases), cfg.SimilarityThreshold),
	}
}

func checkRuleSet(cfg *config.RuntimeConfig) doctorCheck {
	source := "built-in"
	if cfg.RulesFile != "" {
		source = cfg.RulesFile
	}

	set, err := loadRuleSet(*cfg)
	if err != nil {
		return doctorCheck{Name: "Keyword Rules", Status: "✗", Detail: source, Error: err}
	}

	return doctorCheck{Name: "Keyword Rules", Status: "✓", Detail: fmt.Sprintf("%d rules (%s)", set.Len(), source)}
}

func checkStructuralChecks(names []string) doctorCheck {
	if len(names) == 0 {
		return doctorCheck{Name: "Structural Checks", Status: "⊘", Detail: "None enabled"}
	}

	if _, err := detector.DefaultRegistry.BuildChecks(names); err != nil {
		return doctorCheck{Name: "Structural Checks", Status: "✗", Detail: "Unknown check", Error: err}
	}

	return doctorCheck{Name: "Structural Checks", Status: "✓", Detail: fmt.Sprintf("%v", names)}
}

func checkTranscriber(cfg *config.RuntimeConfig) doctorCheck {
	provider, err := transcribe.New(transcribeSettings(*cfg), nil)
	if err != nil {
		return doctorCheck{Name: "Transcription", Status: "✗", Detail: cfg.Transcriber, Error: err}
	}
	if provider == nil {
		return doctorCheck{Name: "Transcription", Status: "⊘", Detail: "Disabled (listen unavailable)"}
	}

	if err := provider.EnsureReady(); err != nil {
		return doctorCheck{Name: "Transcription", Status: "✗", Detail: provider.Name(), Error: err}
	}

	return doctorCheck{
		Name:   "Transcription",
		Status: "✓",
		Detail: fmt.Sprintf("%s, language=%s, timeout=%s", provider.Name(), cfg.Language, cfg.TranscribeTimeout),
	}
}

func checkOutputDirectory(outputDir string) doctorCheck {
	if err := ensureOutputDir(outputDir); err != nil {
		return doctorCheck{Name: "Output Directory", Status: "✗", Detail: outputDir, Error: err}
	}

	return doctorCheck{Name: "Output Directory", Status: "✓", Detail: outputDir}
}

func printDoctorReport(cmd *cobra.Command, checks []doctorCheck) {
	fmt.Fprintln(cmd.OutOrStdout(), "Running environment diagnostics...")

	for _, check := range checks {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %-30s %s\n", check.Status, check.Name+":", check.Detail)
		if check.Error != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "   Error: %v\n", check.Error)
		}
	}
}
