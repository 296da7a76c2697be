package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/example/scamcheck/internal/analysis"
	"github.com/example/scamcheck/internal/config"
	"github.com/example/scamcheck/internal/events"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type inputOptions struct {
	text         string
	file         string
	example      string
	messagesFile string
	emitEvents   bool
}

func newAnalyzeCmd(loader *config.Loader) *cobra.Command {
	flags := &runtimeFlagSet{}
	in := &inputOptions{}

	cmd := &cobra.Command{
		Use:   "analyze [message...]",
		Short: "Assess a message for scam and impersonation red flags",
		Long: `Analyze scans a message for suspicious keywords, call-to-action phrasing,
unusual brevity and authority-figure mentions, compares it with known scam
phrases, and prints a risk score with prioritized next steps.

The message is taken from the arguments, --text, --file, --example, or stdin
when the only argument is "-". --messages-file analyzes one message per line.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(loader, flags.toOverrides(cmd))
			if err != nil {
				return err
			}
			logger := newLogger(cmd, cfg)

			messages, err := collectMessages(cmd, in, args)
			if err != nil {
				return err
			}

			engine, err := buildEngine(cfg, logger)
			if err != nil {
				return err
			}

			var emitter *events.Emitter
			if in.emitEvents {
				emitter = events.NewEmitter(cmd.ErrOrStderr())
			} else {
				emitter = events.NewEmitter(nil)
			}

			results, err := runAnalyses(cmd, engine, emitter, messages)
			if err != nil {
				return err
			}

			if err := render(cmd.OutOrStdout(), cfg.Output, results); err != nil {
				return err
			}

			return writeOutputs(cfg, emitter, logger, results)
		},
	}

	bindRuntimeFlags(cmd, flags)
	cmd.Flags().StringVar(&in.text, "text", "", "Message text to analyze")
	cmd.Flags().StringVar(&in.file, "file", "", "Read the message from a file (\"-\" for stdin)")
	cmd.Flags().StringVar(&in.example, "example", "", "Analyze a built-in example (see `scamcheck examples`)")
	cmd.Flags().StringVar(&in.messagesFile, "messages-file", "", "Analyze every line of a file as a separate message")
	cmd.Flags().BoolVar(&in.emitEvents, "events", false, "Write NDJSON progress events to stderr")

	return cmd
}

// collectMessages resolves the message source. Exactly one message is returned
// unless --messages-file is used; blank single messages are rejected.
func collectMessages(cmd *cobra.Command, in *inputOptions, args []string) ([]string, error) {
	if in.messagesFile != "" {
		messages, err := config.ReadLines(in.messagesFile)
		if err != nil {
			return nil, err
		}
		if len(messages) == 0 {
			return nil, fmt.Errorf("%s: %w", in.messagesFile, analysis.ErrNoText)
		}
		return messages, nil
	}

	var text string
	switch {
	case in.example != "":
		ex, err := analysis.LookupExample(in.example)
		if err != nil {
			return nil, err
		}
		text = ex.Text
	case in.text != "":
		text = in.text
	case in.file != "":
		content, err := readMessage(cmd, in.file)
		if err != nil {
			return nil, err
		}
		text = content
	case len(args) == 1 && args[0] == "-":
		content, err := readMessage(cmd, "-")
		if err != nil {
			return nil, err
		}
		text = content
	default:
		text = strings.Join(args, " ")
	}

	if err := analysis.RequireText(text); err != nil {
		return nil, err
	}
	return []string{text}, nil
}

func runAnalyses(cmd *cobra.Command, engine *analysis.Engine, emitter *events.Emitter, messages []string) ([]analysis.Result, error) {
	if err := emitter.Emit(events.Event{Type: events.TypeAnalysisStart, Message: "Starting analysis", Fields: map[string]interface{}{"messages": len(messages), "phrases": len(engine.Phrases())}}); err != nil {
		return nil, err
	}

	results, err := analysis.RunBatch(cmd.Context(), engine, messages)
	if err != nil {
		return results, err
	}

	for i := range results {
		results[i].ID = uuid.NewString()
		res := results[i]
		if err := emitter.Emit(events.Event{
			Type:       events.TypeAnalysisResult,
			AnalysisID: res.ID,
			Fields: map[string]interface{}{
				"riskScore":  res.Score,
				"riskLevel":  res.Level,
				"findings":   len(res.Findings),
				"matches":    len(res.Matches),
				"categories": res.Categories,
			},
		}); err != nil {
			return results, err
		}
	}

	return results, nil
}

func writeOutputs(cfg config.RuntimeConfig, emitter *events.Emitter, logger *logrus.Logger, results []analysis.Result) error {
	var artifacts []string
	if cfg.OutputDir != "" {
		if err := ensureOutputDir(cfg.OutputDir); err != nil {
			return err
		}

		timestamp := time.Now().UTC().Format("20060102_150405")
		for _, format := range cfg.Formats {
			path := filepath.Join(cfg.OutputDir, fmt.Sprintf("analysis_%s.%s", timestamp, format))
			if err := writeArtifact(path, format, results); err != nil {
				return err
			}
			artifacts = append(artifacts, path)
			logger.WithField("path", path).Info("Artifact written")
			if err := emitter.Emit(events.Event{Type: events.TypeArtifact, Fields: map[string]interface{}{"path": path, "format": format}}); err != nil {
				return err
			}
		}
	}

	summary := summarize(results)
	if cfg.SummaryFile != "" {
		summary["artifacts"] = artifacts
		if err := writeSummary(cfg.SummaryFile, summary); err != nil {
			return err
		}
	}

	return emitter.Emit(events.Event{Type: events.TypeBatchFinished, Message: "Analysis complete", Fields: map[string]interface{}{"messages": len(results), "artifacts": len(artifacts)}})
}

func writeArtifact(path, format string, results []analysis.Result) error {
	if err := ensureOutputDir(filepath.Dir(path)); err != nil {
		return err
	}

	switch format {
	case "json":
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return err
		}
		return os.WriteFile(path, append(data, '\n'), 0o644)
	case "csv":
		file, err := os.Create(path)
		if err != nil {
			return err
		}
		defer file.Close()

		w := csv.NewWriter(file)
		if err := w.Write([]string{"id", "riskScore", "riskLevel", "categories", "findings", "matches", "text"}); err != nil {
			return err
		}
		for _, res := range results {
			categories := make([]string, len(res.Categories))
			for i, c := range res.Categories {
				categories[i] = string(c)
			}
			record := []string{
				res.ID,
				strconv.Itoa(res.Score),
				string(res.Level),
				strings.Join(categories, ";"),
				strconv.Itoa(len(res.Findings)),
				strconv.Itoa(len(res.Matches)),
				res.Text,
			}
			if err := w.Write(record); err != nil {
				return err
			}
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return err
		}
		return file.Close()
	default:
		return fmt.Errorf("unsupported format %s", format)
	}
}

// summarize aggregates results into per-level and per-category counts.
func summarize(results []analysis.Result) map[string]interface{} {
	byLevel := map[string]int{}
	byCategory := map[string]int{}
	maxScore := 0
	for _, res := range results {
		byLevel[string(res.Level)]++
		for _, c := range res.Categories {
			byCategory[string(c)]++
		}
		if res.Score > maxScore {
			maxScore = res.Score
		}
	}

	return map[string]interface{}{
		"generatedAt": time.Now().UTC().Format(time.RFC3339),
		"messages":    len(results),
		"byLevel":     byLevel,
		"byCategory":  byCategory,
		"maxScore":    maxScore,
	}
}

func writeSummary(path string, summary map[string]interface{}) error {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return err
	}

	if err := ensureOutputDir(filepath.Dir(path)); err != nil {
		return err
	}

	return os.WriteFile(path, append(data, '\n'), 0o644)
}
