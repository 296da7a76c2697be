package transcribe

import (
	"context"
	"fmt"
	"strings"

	speech "cloud.google.com/go/speech/apiv1"
	"cloud.google.com/go/speech/apiv1/speechpb"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"
)

// GoogleConfig holds Cloud Speech-to-Text settings.
type GoogleConfig struct {
	APIKey          string
	CredentialsFile string
	Language        string
}

// GoogleProvider transcribes clips with the synchronous Recognize API.
type GoogleProvider struct {
	logger *logrus.Logger
	config GoogleConfig
}

// NewGoogleProvider creates a Google Speech-to-Text provider.
func NewGoogleProvider(logger *logrus.Logger, cfg GoogleConfig) *GoogleProvider {
	if cfg.Language == "" {
		cfg.Language = "en-US"
	}
	if logger == nil {
		logger = discardLogger()
	}
	return &GoogleProvider{logger: logger, config: cfg}
}

// Name implements Provider.
func (p *GoogleProvider) Name() string {
	return "google"
}

// EnsureReady verifies that credentials are configured.
func (p *GoogleProvider) EnsureReady() error {
	if p.config.APIKey == "" && p.config.CredentialsFile == "" {
		return fmt.Errorf("%w: google requires an API key or credentials file", ErrNotConfigured)
	}
	return nil
}

func (p *GoogleProvider) clientOptions() []option.ClientOption {
	if p.config.APIKey != "" {
		p.logger.Debug("Using Google STT API key authentication")
		return []option.ClientOption{option.WithAPIKey(p.config.APIKey)}
	}
	p.logger.WithField("credentials_file", p.config.CredentialsFile).Debug("Using Google STT credentials file")
	return []option.ClientOption{option.WithCredentialsFile(p.config.CredentialsFile)}
}

// recognitionConfig leaves encoding and sample rate unset for WAV so the
// service reads them from the header.
func (p *GoogleProvider) recognitionConfig(clip Clip) (*speechpb.RecognitionConfig, error) {
	cfg := &speechpb.RecognitionConfig{
		LanguageCode:               p.config.Language,
		EnableAutomaticPunctuation: true,
	}
	switch clip.Format {
	case "wav":
	case "flac":
		cfg.Encoding = speechpb.RecognitionConfig_FLAC
	default:
		return nil, fmt.Errorf("%w: google cannot decode %q", ErrUnsupportedFormat, clip.Format)
	}
	return cfg, nil
}

// Transcribe implements Provider.
func (p *GoogleProvider) Transcribe(ctx context.Context, clip Clip) (string, error) {
	if err := p.EnsureReady(); err != nil {
		return "", err
	}

	recognition, err := p.recognitionConfig(clip)
	if err != nil {
		return "", err
	}

	client, err := speech.NewClient(ctx, p.clientOptions()...)
	if err != nil {
		return "", fmt.Errorf("failed to create Google Speech client: %w", err)
	}
	defer client.Close()

	resp, err := client.Recognize(ctx, &speechpb.RecognizeRequest{
		Config: recognition,
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{Content: clip.Data},
		},
	})
	if err != nil {
		return "", fmt.Errorf("google recognize: %w", err)
	}

	return joinAlternatives(resp.GetResults()), nil
}

func joinAlternatives(results []*speechpb.SpeechRecognitionResult) string {
	var parts []string
	for _, result := range results {
		alts := result.GetAlternatives()
		if len(alts) == 0 {
			continue
		}
		if text := strings.TrimSpace(alts[0].GetTranscript()); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, " ")
}
