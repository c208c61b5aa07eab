package logger

import (
	"pilates-vision-service/internal/app/config"
	"pilates-vision-service/internal/pkg/constvars"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const serviceName = "pilates-vision-service"

// NewZapLogger builds the studio API logger.
//
// Production writes sampled JSON to the configured files. Development writes
// colored console lines with stack traces from warn upwards; any other
// environment writes JSON to the standard streams.
func NewZapLogger(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig) (*zap.Logger, error) {
	var cfg zap.Config
	switch internalConfig.App.Env {
	case constvars.AppEnvProduction:
		cfg = zap.NewProductionConfig()
		cfg.OutputPaths = []string{driverConfig.Logger.OutputFileName}
		cfg.ErrorOutputPaths = []string{"stderr", driverConfig.Logger.OutputErrorFileName}
	case constvars.AppEnvDevelopment:
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	default:
		cfg = zap.NewProductionConfig()
	}

	cfg.Level = zap.NewAtomicLevelAt(parseLevel(driverConfig.Logger.Level))
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.EncodeDuration = zapcore.StringDurationEncoder
	cfg.InitialFields = map[string]interface{}{
		"service": serviceName,
		"version": internalConfig.App.Version,
	}

	return cfg.Build()
}

// parseLevel maps LOGGER_LEVEL onto a zap level, defaulting to info.
func parseLevel(level string) zapcore.Level {
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		return zap.InfoLevel
	}
	return parsed
}
