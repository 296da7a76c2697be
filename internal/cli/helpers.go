package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/scamcheck/internal/config"
	"github.com/example/scamcheck/internal/logging"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func ensureOutputDir(path string) error {
	if path == "" {
		return fmt.Errorf("output directory cannot be empty")
	}
	return os.MkdirAll(path, 0o755)
}

func newLogger(cmd *cobra.Command, cfg config.RuntimeConfig) *logrus.Logger {
	return logging.New(cfg.LogLevel, cmd.ErrOrStderr())
}

// readMessage reads a whole file, or stdin when path is "-".
func readMessage(cmd *cobra.Command, path string) (string, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(filepath.Clean(path))
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
