package cli

import (
	"fmt"
	"strings"

	"github.com/example/scamcheck/internal/analysis"
	"github.com/example/scamcheck/internal/config"
	"github.com/example/scamcheck/internal/detector"
	"github.com/example/scamcheck/internal/rules"
	"github.com/example/scamcheck/internal/similarity"
	"github.com/example/scamcheck/internal/transcribe"
	"github.com/sirupsen/logrus"
)

// loadRuleSet returns the rule file named in cfg, or the built-in table.
func loadRuleSet(cfg config.RuntimeConfig) (*rules.Set, error) {
	if cfg.RulesFile == "" {
		return rules.Default(), nil
	}
	return rules.LoadFile(cfg.RulesFile)
}

func buildEngine(cfg config.RuntimeConfig, logger *logrus.Logger) (*analysis.Engine, error) {
	set, err := loadRuleSet(cfg)
	if err != nil {
		return nil, err
	}

	checks, err := detector.DefaultRegistry.BuildChecks(cfg.Checks)
	if err != nil {
		return nil, err
	}

	logger.WithFields(logrus.Fields{
		"rules":     set.Len(),
		"checks":    strings.Join(cfg.Checks, ","),
		"phrases":   len(cfg.ReferencePhrases),
		"threshold": cfg.SimilarityThreshold,
	}).Debug("Analysis engine configured")

	// A nil corpus would select the built-in phrases; configuration decides here.
	phrases := cfg.ReferencePhrases
	if phrases == nil {
		phrases = []string{}
	}

	return analysis.NewEngine(
		detector.New(set, checks),
		similarity.NewMatcher(cfg.SimilarityThreshold),
		phrases,
	), nil
}

func transcribeSettings(cfg config.RuntimeConfig) transcribe.Settings {
	return transcribe.Settings{
		Provider: cfg.Transcriber,
		Google: transcribe.GoogleConfig{
			APIKey:          cfg.GoogleAPIKey,
			CredentialsFile: cfg.GoogleCredentialsFile,
			Language:        cfg.Language,
		},
		OpenAI: transcribe.OpenAIConfig{
			APIKey:   cfg.OpenAIAPIKey,
			BaseURL:  cfg.OpenAIBaseURL,
			Language: whisperLanguage(cfg.Language),
		},
	}
}

// whisperLanguage reduces a BCP-47 tag such as en-US to the ISO-639-1 code Whisper expects.
func whisperLanguage(tag string) string {
	lang, _, _ := strings.Cut(strings.TrimSpace(tag), "-")
	return strings.ToLower(lang)
}

func loadConfig(loader *config.Loader, ov config.Overrides) (config.RuntimeConfig, error) {
	cfg, err := loader.Load(ov)
	if err != nil {
		return cfg, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
