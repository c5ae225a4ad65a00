package logging

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Initialize sets up structured logging with the specified level.
// Output goes to stderr: stdout is reserved for the plugin status line.
func Initialize(logLevel string) *logrus.Logger {
	logger := logrus.New()

	level, err := logrus.ParseLevel(strings.ToLower(logLevel))
	if err != nil {
		level = logrus.WarnLevel
		logger.WithError(err).Warn("Invalid log level, defaulting to warn")
	}
	logger.SetLevel(level)

	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})

	logger.SetOutput(os.Stderr)

	return logger
}

// NewCheckLogger creates a logger scoped to one check.
func NewCheckLogger(logger *logrus.Logger, checkName string) *logrus.Entry {
	return logger.WithFields(logrus.Fields{
		"service": "host-checks",
		"check":   checkName,
	})
}
