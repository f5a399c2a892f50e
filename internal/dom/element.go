//go:build js
// +build js

package dom

import (
	"runtime/debug"
	"syscall/js"

	"github.com/hack-pad/canvastap/internal/log"
	"github.com/pkg/errors"
)

type Element struct {
	elem js.Value
}

type EventListener = func(event js.Value)

func NewFromJS(elem js.Value) *Element {
	if elem.IsNull() || elem.IsUndefined() {
		return nil
	}
	return &Element{elem}
}

// AddEventListener registers listener for name. A panic inside listener is
// logged instead of tearing down the program.
func (e *Element) AddEventListener(name string, listener EventListener) js.Func {
	listenerFunc := js.FuncOf(func(_ js.Value, args []js.Value) interface{} {
		defer catchExceptionHandler(func(err error) {
			log.Error("recovered from panic in ", name, " listener: ", err, "\n", string(debug.Stack()))
		})
		listener(args[0])
		return nil
	})
	e.elem.Call("addEventListener", name, listenerFunc, false)
	return listenerFunc
}

func catchExceptionHandler(fn func(err error)) {
	r := recover()
	if r == nil {
		return
	}
	switch val := r.(type) {
	case error:
		fn(val)
	case js.Value:
		fn(js.Error{Value: val})
	default:
		fn(errors.Errorf("%+v", val))
	}
}
