package transcribe

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	text  string
	err   error
	delay time.Duration
	calls int
}

func (f *fakeProvider) Name() string       { return "fake" }
func (f *fakeProvider) EnsureReady() error { return nil }

func (f *fakeProvider) Transcribe(ctx context.Context, clip Clip) (string, error) {
	f.calls++
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return f.text, f.err
}

func testLogger(buf *bytes.Buffer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(buf)
	logger.SetLevel(logrus.DebugLevel)
	return logger
}

func TestAdapterReturnsTrimmedText(t *testing.T) {
	provider := &fakeProvider{text: "  wire the money now \n"}
	adapter := NewAdapter(provider, nil, time.Second)

	got := adapter.Transcribe(context.Background(), Clip{Name: "a.wav", Format: "wav", Data: []byte{1}})
	assert.Equal(t, "wire the money now", got)
	assert.Equal(t, 1, provider.calls)
}

func TestAdapterSwallowsErrors(t *testing.T) {
	buf := &bytes.Buffer{}
	adapter := NewAdapter(&fakeProvider{err: errors.New("quota exceeded")}, testLogger(buf), 0)

	got := adapter.Transcribe(context.Background(), Clip{Name: "a.wav"})
	assert.Empty(t, got)
	assert.Contains(t, buf.String(), "quota exceeded")
	assert.Contains(t, buf.String(), "provider=fake")
}

func TestAdapterTimeout(t *testing.T) {
	adapter := NewAdapter(&fakeProvider{text: "late", delay: time.Second}, nil, 10*time.Millisecond)

	started := time.Now()
	got := adapter.Transcribe(context.Background(), Clip{Name: "a.wav"})
	assert.Empty(t, got)
	assert.Less(t, time.Since(started), 500*time.Millisecond)
}

func TestAdapterWithoutProvider(t *testing.T) {
	adapter := NewAdapter(nil, nil, 0)
	assert.Empty(t, adapter.Transcribe(context.Background(), Clip{}))
}

func TestLoadClip(t *testing.T) {
	dir := t.TempDir()

	wav := filepath.Join(dir, "Voice.WAV")
	require.NoError(t, os.WriteFile(wav, []byte("RIFF....WAVE"), 0o600))
	clip, err := LoadClip(wav, 0)
	require.NoError(t, err)
	assert.Equal(t, "wav", clip.Format)
	assert.Equal(t, "Voice.WAV", clip.Name)
	assert.Equal(t, []byte("RIFF....WAVE"), clip.Data)

	_, err = LoadClip(filepath.Join(dir, "notes.txt"), 0)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	big := filepath.Join(dir, "big.mp3")
	require.NoError(t, os.WriteFile(big, make([]byte, 64), 0o600))
	_, err = LoadClip(big, 32)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds 32 bytes")

	empty := filepath.Join(dir, "empty.flac")
	require.NoError(t, os.WriteFile(empty, nil, 0o600))
	_, err = LoadClip(empty, 0)
	require.Error(t, err)

	_, err = LoadClip(filepath.Join(dir, "missing.wav"), 0)
	assert.Error(t, err)
}

func TestNewProvider(t *testing.T) {
	p, err := New(Settings{Provider: "none"}, nil)
	require.NoError(t, err)
	assert.Nil(t, p)

	p, err = New(Settings{Provider: "Google"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "google", p.Name())

	p, err = New(Settings{Provider: "openai"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "openai", p.Name())

	_, err = New(Settings{Provider: "aws"}, nil)
	assert.Error(t, err)
}
