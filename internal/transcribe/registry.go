package transcribe

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	ProviderNone   = "none"
	ProviderGoogle = "google"
	ProviderOpenAI = "openai"
)

// Settings selects and configures a provider.
type Settings struct {
	Provider string
	Google   GoogleConfig
	OpenAI   OpenAIConfig
}

// New builds the provider named in settings. "none" yields a nil provider.
func New(settings Settings, logger *logrus.Logger) (Provider, error) {
	switch strings.ToLower(strings.TrimSpace(settings.Provider)) {
	case "", ProviderNone:
		return nil, nil
	case ProviderGoogle:
		return NewGoogleProvider(logger, settings.Google), nil
	case ProviderOpenAI:
		return NewOpenAIProvider(logger, settings.OpenAI), nil
	default:
		return nil, fmt.Errorf("unknown transcription provider: %s", settings.Provider)
	}
}
