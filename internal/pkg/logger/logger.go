package logger

import (
	"io"
	"os"
	"time"

	"github.com/piresc/ridebook/internal/pkg/models"
	"github.com/sirupsen/logrus"
)

// NewLogger creates the application logger from configuration
func NewLogger(config models.LoggerConfig) *logrus.Logger {
	return newLogger(config, os.Stdout)
}

func newLogger(config models.LoggerConfig, out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)

	// Set log level
	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if config.Format == "text" {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})
		return logger
	}

	// JSON formatter for structured logging
	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})

	return logger
}

// WithService returns an entry tagged with the service name and version
func WithService(logger logrus.FieldLogger, app models.AppConfig) *logrus.Entry {
	return logger.WithFields(logrus.Fields{
		"service":     app.Name,
		"version":     app.Version,
		"environment": app.Environment,
	})
}
