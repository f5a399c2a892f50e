//go:build !js
// +build !js

package log

import (
	"os"

	"github.com/kataras/golog"
)

var logger = newLogger()

func newLogger() *golog.Logger {
	l := golog.New()
	l.SetOutput(os.Stderr)
	l.SetLevel("debug")
	if os.Getenv("DEBUG") != "true" {
		l.SetLevel("disable")
	}
	return l
}

func SetLevel(level consoleType) {
	if level.Valid() {
		logLevel = level
	}
}

func writeLog(c consoleType, s string) {
	switch c {
	case LevelDebug:
		logger.Debug(s)
	case LevelWarn:
		logger.Warn(s)
	case LevelError:
		logger.Error(s)
	default:
		logger.Info(s)
	}
}
