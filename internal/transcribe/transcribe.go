package transcribe

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

var (
	// ErrNotConfigured is returned when no provider or credentials are available.
	ErrNotConfigured = errors.New("transcription provider not configured")
	// ErrUnsupportedFormat is returned for audio the provider cannot decode.
	ErrUnsupportedFormat = errors.New("unsupported audio format")
)

// DefaultMaxBytes bounds the size of an audio clip read from disk.
const DefaultMaxBytes = 25 << 20

// Clip is an in-memory audio recording.
type Clip struct {
	Name   string
	Format string
	Data   []byte
}

// Provider converts audio into text.
type Provider interface {
	Name() string
	EnsureReady() error
	Transcribe(ctx context.Context, clip Clip) (string, error)
}

var formats = map[string]string{
	".wav":  "wav",
	".flac": "flac",
	".mp3":  "mp3",
}

// LoadClip reads an audio file, rejecting unknown extensions and files larger than maxBytes.
func LoadClip(path string, maxBytes int64) (Clip, error) {
	format, ok := formats[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return Clip{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}

	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return Clip{}, err
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxBytes+1))
	if err != nil {
		return Clip{}, err
	}
	if int64(len(data)) > maxBytes {
		return Clip{}, fmt.Errorf("audio file %s exceeds %d bytes", path, maxBytes)
	}
	if len(data) == 0 {
		return Clip{}, fmt.Errorf("audio file %s is empty", path)
	}

	return Clip{Name: filepath.Base(path), Format: format, Data: data}, nil
}

// Adapter bounds a provider call with a timeout and reduces every failure to an
// empty transcript; failures are logged, not returned.
type Adapter struct {
	provider Provider
	logger   *logrus.Logger
	timeout  time.Duration
}

// NewAdapter wraps a provider. A zero timeout means no deadline beyond ctx.
func NewAdapter(provider Provider, logger *logrus.Logger, timeout time.Duration) *Adapter {
	if logger == nil {
		logger = discardLogger()
	}
	return &Adapter{provider: provider, logger: logger, timeout: timeout}
}

// Transcribe returns the recognized text, or "" when nothing could be produced.
func (a *Adapter) Transcribe(ctx context.Context, clip Clip) string {
	if a.provider == nil {
		a.logger.WithError(ErrNotConfigured).Warn("Skipping transcription")
		return ""
	}

	log := a.logger.WithFields(logrus.Fields{
		"provider": a.provider.Name(),
		"clip":     clip.Name,
		"format":   clip.Format,
		"bytes":    len(clip.Data),
	})

	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	started := time.Now()
	text, err := a.provider.Transcribe(ctx, clip)
	if err != nil {
		log.WithError(err).Error("Transcription failed")
		return ""
	}

	text = strings.TrimSpace(text)
	log.WithFields(logrus.Fields{
		"duration_ms": time.Since(started).Milliseconds(),
		"chars":       len(text),
	}).Debug("Transcription complete")
	return text
}

func discardLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
