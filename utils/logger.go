package utils

import (
	"os"

	"github.com/sirupsen/logrus"
)

var logger = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
		// microseconds, gestures are paced in single milliseconds
		TimestampFormat: "2006/01/02 15:04:05.000000",
	})
	return l
}

// Logger returns the shared logger, for callers that want structured fields.
func Logger() *logrus.Logger {
	return logger
}

func SetVerbose(verbose bool) {
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}
}

func IsVerbose() bool {
	return logger.IsLevelEnabled(logrus.DebugLevel)
}

func Verbose(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}

func Info(format string, args ...interface{}) {
	logger.Infof(format, args...)
}
