package transcribe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAITranscribe(t *testing.T) {
	var gotAuth, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"text":"Please purchase gift cards and send the codes"}`))
	}))
	defer server.Close()

	p := NewOpenAIProvider(nil, OpenAIConfig{APIKey: "sk-test", BaseURL: server.URL + "/v1"})
	text, err := p.Transcribe(context.Background(), Clip{Name: "voice.mp3", Format: "mp3", Data: []byte("ID3")})
	require.NoError(t, err)

	assert.Equal(t, "Please purchase gift cards and send the codes", text)
	assert.Equal(t, "Bearer sk-test", gotAuth)
	assert.True(t, strings.HasSuffix(gotPath, "/audio/transcriptions"), gotPath)
}

func TestOpenAITranscribeServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"message":"boom","type":"server_error"}}`))
	}))
	defer server.Close()

	p := NewOpenAIProvider(nil, OpenAIConfig{APIKey: "sk-test", BaseURL: server.URL + "/v1"})
	adapter := NewAdapter(p, nil, 0)
	assert.Empty(t, adapter.Transcribe(context.Background(), Clip{Name: "voice.wav", Format: "wav", Data: []byte("RIFF")}))
}

func TestOpenAIEnsureReady(t *testing.T) {
	assert.ErrorIs(t, NewOpenAIProvider(nil, OpenAIConfig{}).EnsureReady(), ErrNotConfigured)
	assert.NoError(t, NewOpenAIProvider(nil, OpenAIConfig{APIKey: "k"}).EnsureReady())
}
