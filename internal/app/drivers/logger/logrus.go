package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogrusLogger is used by the command line tools, which log plain
// progress lines rather than request-scoped events.
func NewLogrusLogger(env string) *logrus.Logger {
	logger := logrus.New()
	switch env {
	case "production":
		logger.SetFormatter(&logrus.JSONFormatter{})
		file, err := os.OpenFile("logrus.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err == nil {
			logger.SetOutput(file)
		} else {
			logger.Info("Failed to log to file, using default stderr")
		}
	default:
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger
}
