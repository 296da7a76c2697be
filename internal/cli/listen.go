package cli

import (
	"fmt"

	"github.com/example/scamcheck/internal/analysis"
	"github.com/example/scamcheck/internal/config"
	"github.com/example/scamcheck/internal/events"
	"github.com/example/scamcheck/internal/transcribe"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newListenCmd(loader *config.Loader) *cobra.Command {
	flags := &runtimeFlagSet{}
	var emitEvents bool

	cmd := &cobra.Command{
		Use:   "listen <audio-file>",
		Short: "Transcribe a voice clip and assess the transcript",
		Long: `Listen sends a short recording (wav, flac or mp3) to the configured
speech-to-text provider and analyzes the transcript like a text message.
A failed or empty transcription is reported as "no text available".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(loader, flags.toOverrides(cmd))
			if err != nil {
				return err
			}
			logger := newLogger(cmd, cfg)

			provider, err := transcribe.New(transcribeSettings(cfg), logger)
			if err != nil {
				return err
			}
			if provider == nil {
				return fmt.Errorf("%w: set --transcriber to google or openai", transcribe.ErrNotConfigured)
			}
			if err := provider.EnsureReady(); err != nil {
				return err
			}

			clip, err := transcribe.LoadClip(args[0], cfg.MaxAudioBytes)
			if err != nil {
				return err
			}

			engine, err := buildEngine(cfg, logger)
			if err != nil {
				return err
			}

			var emitter *events.Emitter
			if emitEvents {
				emitter = events.NewEmitter(cmd.ErrOrStderr())
			} else {
				emitter = events.NewEmitter(nil)
			}

			id := uuid.NewString()
			text := transcribe.NewAdapter(provider, logger, cfg.TranscribeTimeout).Transcribe(cmd.Context(), clip)
			if err := emitter.Emit(events.Event{
				Type:       events.TypeTranscription,
				AnalysisID: id,
				Fields:     map[string]interface{}{"provider": provider.Name(), "clip": clip.Name, "chars": len(text)},
			}); err != nil {
				return err
			}
			if err := analysis.RequireText(text); err != nil {
				return fmt.Errorf("could not transcribe audio %s: %w", clip.Name, err)
			}

			if cfg.Output != "json" {
				fmt.Fprintf(cmd.OutOrStdout(), "Transcript: %s\n\n", text)
			}

			res := engine.Analyze(text)
			res.ID = id
			if err := emitter.Emit(events.Event{
				Type:       events.TypeAnalysisResult,
				AnalysisID: id,
				Fields:     map[string]interface{}{"riskScore": res.Score, "riskLevel": res.Level},
			}); err != nil {
				return err
			}

			results := []analysis.Result{res}
			if err := render(cmd.OutOrStdout(), cfg.Output, results); err != nil {
				return err
			}
			return writeOutputs(cfg, emitter, logger, results)
		},
	}

	bindRuntimeFlags(cmd, flags)
	bindTranscribeFlags(cmd, flags)
	cmd.Flags().BoolVar(&emitEvents, "events", false, "Write NDJSON progress events to stderr")

	return cmd
}
