package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerParsesLevel(t *testing.T) {
	log := NewLogger("debug")
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())

	log = NewLogger("error")
	assert.Equal(t, logrus.ErrorLevel, log.GetLevel())
}

func TestNewLoggerDefaultsToInfo(t *testing.T) {
	log := NewLogger("not-a-level")
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
}

func TestNewLoggerProductionUsesJSON(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	log := NewLogger("info")

	_, ok := log.Formatter.(*logrus.JSONFormatter)
	assert.True(t, ok, "production logs must be JSON for log shipping")
}

func TestNewLoggerDevelopmentUsesText(t *testing.T) {
	t.Setenv("ENVIRONMENT", "development")
	log := NewLogger("info")

	_, ok := log.Formatter.(*logrus.TextFormatter)
	assert.True(t, ok)
}

func TestWithComponent(t *testing.T) {
	log := logrus.New()
	buf := &bytes.Buffer{}
	log.SetOutput(buf)
	log.SetFormatter(&logrus.JSONFormatter{})

	WithComponent(log, "dataset-builder").Info("built dataset")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "dataset-builder", entry["component"])
	assert.Equal(t, "built dataset", entry["msg"])
}
