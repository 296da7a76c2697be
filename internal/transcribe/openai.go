package transcribe

import (
	"bytes"
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
)

// OpenAIConfig holds Whisper settings.
type OpenAIConfig struct {
	APIKey   string
	BaseURL  string
	Model    string
	Language string
}

// OpenAIProvider transcribes clips with the Whisper transcription endpoint.
type OpenAIProvider struct {
	logger *logrus.Logger
	config OpenAIConfig
}

// NewOpenAIProvider creates a Whisper provider.
func NewOpenAIProvider(logger *logrus.Logger, cfg OpenAIConfig) *OpenAIProvider {
	if cfg.Model == "" {
		cfg.Model = openai.Whisper1
	}
	if logger == nil {
		logger = discardLogger()
	}
	return &OpenAIProvider{logger: logger, config: cfg}
}

// Name implements Provider.
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// EnsureReady verifies that an API key is configured.
func (p *OpenAIProvider) EnsureReady() error {
	if p.config.APIKey == "" {
		return fmt.Errorf("%w: openai requires an API key", ErrNotConfigured)
	}
	return nil
}

func (p *OpenAIProvider) client() *openai.Client {
	cfg := openai.DefaultConfig(p.config.APIKey)
	if p.config.BaseURL != "" {
		cfg.BaseURL = p.config.BaseURL
	}
	return openai.NewClientWithConfig(cfg)
}

// Transcribe implements Provider.
func (p *OpenAIProvider) Transcribe(ctx context.Context, clip Clip) (string, error) {
	if err := p.EnsureReady(); err != nil {
		return "", err
	}

	p.logger.WithFields(logrus.Fields{"model": p.config.Model, "clip": clip.Name}).Debug("Sending clip to Whisper")
	resp, err := p.client().CreateTranscription(ctx, openai.AudioRequest{
		Model:    p.config.Model,
		FilePath: clip.Name,
		Reader:   bytes.NewReader(clip.Data),
		Language: p.config.Language,
	})
	if err != nil {
		return "", fmt.Errorf("whisper transcription: %w", err)
	}
	return resp.Text, nil
}
