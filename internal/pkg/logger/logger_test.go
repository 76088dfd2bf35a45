package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/piresc/ridebook/internal/pkg/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(models.LoggerConfig{Level: "debug", Format: "json"}, &buf)

	assert.Equal(t, logrus.DebugLevel, log.GetLevel())

	log.WithField("phone", "******3210").Info("Generated OTP")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Generated OTP", entry["message"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "******3210", entry["phone"])
	assert.Contains(t, entry, "timestamp")
}

func TestNewLogger_InvalidLevelFallsBackToInfo(t *testing.T) {
	log := newLogger(models.LoggerConfig{Level: "loud"}, &bytes.Buffer{})
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
}

func TestNewLogger_Text(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(models.LoggerConfig{Level: "info", Format: "text"}, &buf)

	log.Info("hello")

	assert.Contains(t, buf.String(), "msg=hello")
}

func TestWithService(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(models.LoggerConfig{Level: "info"}, &buf)

	WithService(log, models.AppConfig{Name: "ridebook", Version: "1.0.0", Environment: "test"}).Info("Starting application")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ridebook", entry["service"])
	assert.Equal(t, "1.0.0", entry["version"])
	assert.Equal(t, "test", entry["environment"])
}
