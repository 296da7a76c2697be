package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestEnsureOutputDir(t *testing.T) {
	if err := ensureOutputDir(""); err == nil || !strings.Contains(err.Error(), "cannot be empty") {
		t.Fatalf("expected empty path error, got %v", err)
	}

	nested := filepath.Join(t.TempDir(), "level1", "level2")
	for i := 0; i < 2; i++ {
		if err := ensureOutputDir(nested); err != nil {
			t.Fatalf("ensureOutputDir() pass %d: %v", i, err)
		}
	}
	if info, err := os.Stat(nested); err != nil || !info.IsDir() {
		t.Fatalf("expected directory at %s", nested)
	}

	file := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := ensureOutputDir(file); err == nil {
		t.Fatal("expected error when path is a regular file")
	}
}

func TestReadMessage(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetIn(strings.NewReader("  Send Bitcoin now  \n"))

	got, err := readMessage(cmd, "-")
	if err != nil {
		t.Fatalf("readMessage(-) error = %v", err)
	}
	if got != "Send Bitcoin now" {
		t.Fatalf("unexpected stdin message %q", got)
	}

	path := filepath.Join(t.TempDir(), "msg.txt")
	if err := os.WriteFile(path, []byte("\nclick here\n"), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if got, err := readMessage(cmd, path); err != nil || got != "click here" {
		t.Fatalf("readMessage(file) = %q, %v", got, err)
	}

	if _, err := readMessage(cmd, filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestExcerpt(t *testing.T) {
	if got := excerpt("short", 10); got != "short" {
		t.Fatalf("excerpt() = %q", got)
	}
	if got := excerpt("ünïcödé text", 5); got != "ünïcö..." {
		t.Fatalf("excerpt() should cut on runes, got %q", got)
	}
}

func TestWhisperLanguage(t *testing.T) {
	tests := map[string]string{"en-US": "en", "DE": "de", "": "", " pt-BR ": "pt"}
	for in, want := range tests {
		if got := whisperLanguage(in); got != want {
			t.Errorf("whisperLanguage(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCollectMessagesPrecedence(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetIn(&bytes.Buffer{})

	got, err := collectMessages(cmd, &inputOptions{example: "crypto-scam", text: "ignored"}, nil)
	if err != nil || len(got) != 1 || !strings.HasPrefix(got[0], "Urgent: Your crypto wallet") {
		t.Fatalf("example should win, got %q, %v", got, err)
	}

	got, err = collectMessages(cmd, &inputOptions{}, []string{"wire", "the", "funds"})
	if err != nil || got[0] != "wire the funds" {
		t.Fatalf("args should be joined, got %q, %v", got, err)
	}

	if _, err := collectMessages(cmd, &inputOptions{}, nil); err == nil {
		t.Fatal("expected error for empty input")
	}

	if _, err := collectMessages(cmd, &inputOptions{example: "lottery"}, nil); err == nil {
		t.Fatal("expected error for unknown example")
	}
}
