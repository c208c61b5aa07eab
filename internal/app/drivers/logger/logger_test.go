package logger

import (
	"bytes"
	"pilates-vision-service/internal/app/config"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zap.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zap.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("verbose"))
}

func TestNewZapLogger(t *testing.T) {
	logger, err := NewZapLogger(
		&config.DriverConfig{Logger: config.Logger{Level: "error"}},
		&config.InternalConfig{App: config.App{Env: "development", Version: "v1.0"}},
	)

	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zap.InfoLevel))
	assert.True(t, logger.Core().Enabled(zap.ErrorLevel))
}

func TestNewLogrusLogger(t *testing.T) {
	var out bytes.Buffer
	logger := NewLogrusLogger(&config.ConsoleConfig{Env: "development", LogLevel: "warn"}, &out)

	logger.Info("hidden")
	logger.Warn("Appointment created")

	assert.Equal(t, logrus.WarnLevel, logger.GetLevel())
	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, out.String(), "Appointment created")
}
