package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New builds a text logger writing to w (stderr when nil). Unknown levels fall back to info.
func New(level string, w io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logger.SetLevel(parsed)

	if w == nil {
		w = os.Stderr
	}
	logger.SetOutput(w)
	return logger
}
