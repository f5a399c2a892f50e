//go:build js
// +build js

package log

import (
	"syscall/js"

	"github.com/hack-pad/canvastap/internal/global"
)

var (
	console = js.Global().Get("console")
)

const logLevelKey = "logLevel"

func init() {
	global.SetDefault(logLevelKey, LevelLog.String())
	SetLevel(ParseLevel(global.Get(logLevelKey).String()))
	global.SetDefault("setLogLevel", js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		if len(args) < 1 {
			return nil
		}
		SetLevel(ParseLevel(args[0].String()))
		return logLevel.String()
	}))
}

func SetLevel(level consoleType) {
	if level.Valid() {
		logLevel = level
		global.Set(logLevelKey, logLevel.String())
	}
}

func writeLog(c consoleType, s string) {
	console.Call(c.String(), s)
}
