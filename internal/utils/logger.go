package utils

import (
	"io"

	"github.com/sirupsen/logrus"
)

const (
	debug   = "debug"
	warning = "warning"
	info    = "info"
	error_  = "error"
	fatal   = "fatal"
)

var Log = logrus.New()

// InitLogger пересоздает глобальный логгер с нужным уровнем.
// В Lambda вывод уходит в CloudWatch, поэтому формат тот же текстовый.
func InitLogger(logLevel string) *logrus.Logger {
	Log = logrus.New()

	Log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	Log.SetLevel(ParseLevel(logLevel))

	return Log
}

// SetOutput нужен тестам, чтобы перехватывать лог
func SetOutput(w io.Writer) {
	Log.SetOutput(w)
}

func ParseLevel(logLevel string) logrus.Level {
	switch logLevel {
	case debug:
		return logrus.DebugLevel
	case warning:
		return logrus.WarnLevel
	case info:
		return logrus.InfoLevel
	case error_:
		return logrus.ErrorLevel
	case fatal:
		return logrus.FatalLevel
	default:
		return logrus.ErrorLevel
	}
}
