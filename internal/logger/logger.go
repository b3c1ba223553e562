package logger

import (
	"github.com/sirupsen/logrus"
)

var Log *logrus.Logger

// Init инициализирует структурированный логгер.
// В development используется текстовый формат, иначе JSON.
func Init(level string, development bool) *logrus.Logger {
	Log = logrus.New()

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	Log.SetLevel(lvl)

	if development {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	} else {
		Log.SetFormatter(&logrus.JSONFormatter{})
	}

	return Log
}

// Entry возвращает запись для логирования даже до вызова Init (например, в тестах).
func Entry() *logrus.Entry {
	if Log == nil {
		return logrus.NewEntry(logrus.StandardLogger())
	}
	return logrus.NewEntry(Log)
}
