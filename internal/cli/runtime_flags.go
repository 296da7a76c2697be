package cli

import (
	"time"

	"github.com/example/scamcheck/internal/config"
	"github.com/spf13/cobra"
)

// runtimeFlagSet tracks shared flags before they are converted into config overrides.
type runtimeFlagSet struct {
	phrases     string
	phrasesFile string
	rulesFile   string
	checks      string
	threshold   float64
	output      string
	outputDir   string
	formats     string
	summaryFile string
	transcriber string
	language    string
	timeout     time.Duration
}

func bindRuntimeFlags(cmd *cobra.Command, flags *runtimeFlagSet) {
	cmd.Flags().StringVar(&flags.phrases, "phrases", "", "Pipe-separated reference phrases (overrides config)")
	cmd.Flags().StringVar(&flags.phrasesFile, "phrases-file", "", "Path to a file with one reference phrase per line")
	cmd.Flags().StringVar(&flags.rulesFile, "rules-file", "", "YAML keyword rule file replacing the built-in table")
	cmd.Flags().StringVar(&flags.checks, "checks", "", "Comma-separated structural checks (call-to-action,brevity,authority)")
	cmd.Flags().Float64Var(&flags.threshold, "threshold", 0, "Similarity ratio a phrase must exceed (0-1)")
	cmd.Flags().StringVar(&flags.output, "output", "", "Output style: text or json")
	cmd.Flags().StringVar(&flags.outputDir, "output-dir", "", "Directory for result artifacts")
	cmd.Flags().StringVar(&flags.formats, "formats", "", "Comma-separated artifact formats (json,csv)")
	cmd.Flags().StringVar(&flags.summaryFile, "summary-file", "", "Optional summary JSON output path")
}

func bindTranscribeFlags(cmd *cobra.Command, flags *runtimeFlagSet) {
	cmd.Flags().StringVar(&flags.transcriber, "transcriber", "", "Speech-to-text provider: google, openai, or none")
	cmd.Flags().StringVar(&flags.language, "language", "", "Spoken language tag, e.g. en-US")
	cmd.Flags().DurationVar(&flags.timeout, "timeout", 0, "Transcription timeout")
}

func (f runtimeFlagSet) toOverrides(cmd *cobra.Command) config.Overrides {
	ov := config.Overrides{}
	changed := func(name string) bool {
		flag := cmd.Flags().Lookup(name)
		return flag != nil && flag.Changed
	}

	if changed("phrases") {
		ov.ReferencePhrases = config.ParsePhrases(f.phrases)
	}

	if changed("phrases-file") {
		ov.PhrasesFile = f.phrasesFile
	}

	if changed("rules-file") {
		ov.RulesFile = f.rulesFile
	}

	if changed("checks") {
		ov.Checks = config.ParseList(f.checks)
		ov.ChecksSet = true
	}

	if changed("threshold") {
		ov.SimilarityThreshold = f.threshold
		ov.ThresholdSet = true
	}

	if changed("output") {
		ov.Output = f.output
	}

	if changed("output-dir") {
		ov.OutputDir = f.outputDir
	}

	if changed("formats") {
		ov.Formats = config.ParseList(f.formats)
	}

	if changed("summary-file") {
		ov.SummaryFile = f.summaryFile
	}

	// --log-level is persistent on the root command.
	if changed("log-level") {
		ov.LogLevel = cmd.Flags().Lookup("log-level").Value.String()
	}

	if changed("transcriber") {
		ov.Transcriber = f.transcriber
	}

	if changed("language") {
		ov.Language = f.language
	}

	if changed("timeout") {
		ov.TranscribeTimeout = f.timeout
	}

	return ov
}
