package logger

import (
	"io"
	"os"
	"pilates-vision-service/internal/app/config"

	"github.com/sirupsen/logrus"
)

// NewLogrusLogger builds the console logger. Output goes to out so log lines
// interleave with the rendered board.
func NewLogrusLogger(consoleConfig *config.ConsoleConfig, out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)

	level, err := logrus.ParseLevel(consoleConfig.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	switch consoleConfig.Env {
	case "production":
		logger.SetFormatter(&logrus.JSONFormatter{})
		file, err := os.OpenFile("console.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err == nil {
			logger.SetOutput(file)
		} else {
			logger.Info("Failed to log to file, using default output")
		}
	default:
		logger.SetFormatter(&logrus.TextFormatter{
			DisableTimestamp:       true,
			DisableLevelTruncation: true,
		})
	}
	return logger
}
