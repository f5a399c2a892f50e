//go:build js
// +build js

package pointer

import (
	"syscall/js"

	"github.com/hack-pad/canvastap/internal/log"
	"github.com/pkg/errors"
)

type EventTarget interface {
	AddEventListener(name string, listener func(event js.Value)) js.Func
}

// Attach registers n for every event type in EventTypes on target.
// The returned funcs stay registered for the life of the page.
func Attach(target EventTarget, n *Normalizer) []js.Func {
	var funcs []js.Func
	for _, eventType := range EventTypes() {
		funcs = append(funcs, target.AddEventListener(eventType, func(event js.Value) {
			ev, err := DecodeEvent(event)
			if err != nil {
				log.Warn(err)
				return
			}
			n.Dispatch(ev)
		}))
	}
	return funcs
}

// DecodeEvent converts a DOM TouchEvent, PointerEvent or MouseEvent.
func DecodeEvent(event js.Value) (Event, error) {
	eventType := event.Get("type").String()
	kind, ok := KindForEventType(eventType)
	if !ok {
		return Event{}, errors.Errorf("unsupported event type %q", eventType)
	}
	if kind != Touch {
		return Event{Kind: kind, Points: []Point{clientPoint(event)}}, nil
	}

	touches := event.Get("changedTouches")
	if !touches.Truthy() {
		return Event{}, errors.Errorf("%s event has no changedTouches", eventType)
	}
	length := touches.Length()
	points := make([]Point, 0, length)
	for i := 0; i < length; i++ {
		points = append(points, clientPoint(touches.Call("item", i)))
	}
	return TouchEvent(points...), nil
}

func clientPoint(v js.Value) Point {
	return Point{
		X: v.Get("clientX").Float(),
		Y: v.Get("clientY").Float(),
	}
}

// JSReceiver forwards coordinates to a JS function with the given number of
// numeric arguments.
func JSReceiver(fn js.Value, arity Arity) Receiver {
	return ReceiverFunc(func(c Coordinate) {
		args := c.Args(arity)
		jsArgs := make([]interface{}, len(args))
		for i, arg := range args {
			jsArgs[i] = arg
		}
		fn.Invoke(jsArgs...)
	})
}
