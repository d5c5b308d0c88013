package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New creates a component-tagged logger. Output goes to stderr so the
// stdio transport keeps stdout clean for JSON-RPC traffic. An unknown
// level falls back to info.
func New(component, level string) *logrus.Entry {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logger.SetOutput(os.Stderr)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)

	return logger.WithField("component", component)
}
