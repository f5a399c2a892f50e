//go:build js
// +build js

// Package global holds the page-level settings object shared with the host page.
// The page may create it before the module starts to override defaults.
package global

import "syscall/js"

const globalKey = "canvasTap"

var globals js.Value

func init() {
	global := js.Global()
	if !global.Get(globalKey).Truthy() {
		global.Set(globalKey, map[string]interface{}{})
	}
	globals = global.Get(globalKey)
}

func SetDefault(key string, value interface{}) {
	if globals.Get(key).IsUndefined() {
		globals.Set(key, value)
	}
}

func Set(key string, value interface{}) {
	globals.Set(key, value)
}

func Get(key string) js.Value {
	return globals.Get(key)
}
