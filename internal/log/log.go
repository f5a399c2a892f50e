package log

import (
	"fmt"
)

type consoleType int

const (
	LevelDebug consoleType = iota
	LevelLog
	LevelWarn
	LevelError
)

var logLevel = LevelLog

func (c consoleType) Valid() bool {
	switch c {
	case LevelDebug, LevelLog, LevelWarn, LevelError:
		return true
	default:
		return false
	}
}

func (c consoleType) String() string {
	switch c {
	case LevelDebug:
		return "debug"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "log"
	}
}

// ParseLevel returns the level named by a console method, or an invalid level.
func ParseLevel(level string) consoleType {
	for _, c := range []consoleType{LevelDebug, LevelLog, LevelWarn, LevelError} {
		if level == c.String() {
			return c
		}
	}
	return -1
}

// Level returns the minimum level currently written.
func Level() consoleType {
	return logLevel
}

func Debugf(format string, args ...interface{}) int {
	return logf(LevelDebug, 1, format, args...)
}

func Printf(format string, args ...interface{}) int {
	return logf(LevelLog, 1, format, args...)
}

func logf(kind consoleType, skip int, format string, args ...interface{}) int {
	return write(kind, skip+1, fmt.Sprintf(format, args...))
}

func Debug(args ...interface{}) int {
	return log(LevelDebug, 1, args...)
}

func Print(args ...interface{}) int {
	return log(LevelLog, 1, args...)
}

func Warn(args ...interface{}) int {
	return log(LevelWarn, 1, args...)
}

func Error(args ...interface{}) int {
	return log(LevelError, 1, args...)
}

func log(kind consoleType, skip int, args ...interface{}) int {
	return write(kind, skip+1, fmt.Sprint(args...))
}

// write returns the number of bytes logged, 0 if kind is below the current level.
func write(kind consoleType, skip int, s string) int {
	if kind < logLevel {
		return 0
	}
	if caller := getCaller(skip + 1); caller != "" {
		s = caller + " - " + s
	}
	writeLog(kind, s)
	return len(s)
}
