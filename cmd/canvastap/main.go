//go:build js
// +build js

package main

import (
	"os"
	"syscall/js"

	"github.com/hack-pad/canvastap/internal/dom"
	"github.com/hack-pad/canvastap/internal/global"
	"github.com/hack-pad/canvastap/internal/log"
	"github.com/hack-pad/canvastap/internal/pointer"
	"github.com/hack-pad/canvastap/internal/useragent"
	"github.com/pkg/errors"
)

const (
	canvasIDKey = "canvasID"
	variantKey  = "variant"
	onTapKey    = "onTap"
)

func main() {
	global.SetDefault(canvasIDKey, "canvas")
	global.SetDefault(variantKey, pointer.VariantSized.String())

	normalizer, err := run()
	if err != nil {
		log.Error("Failed to start: ", err)
		os.Exit(1)
	}
	global.Set("stats", js.FuncOf(func(js.Value, []js.Value) interface{} {
		return statsValue(normalizer.Stats())
	}))
	select {}
}

func run() (*pointer.Normalizer, error) {
	device := useragent.Parse(js.Global().Get("navigator").Get("userAgent").String())
	log.Debug("Running on ", device, ", touch input expected: ", device.Touch())

	variant, err := pointer.ParseVariant(global.Get(variantKey).String())
	if err != nil {
		return nil, err
	}

	canvasID := global.Get(canvasIDKey).String()
	canvas, err := dom.GetDocument().Canvas(canvasID)
	if err != nil {
		return nil, errors.Wrap(err, "resolve input surface")
	}
	log.Debugf("Surface %q at %+v in viewport %+v", canvasID, canvas.GetBoundingClientRect(), dom.ViewportRect())

	receiver := logTaps()
	if onTap := global.Get(onTapKey); onTap.Type() == js.TypeFunction {
		receiver = pointer.Multi(receiver, pointer.JSReceiver(onTap, variant.Arity()))
	}

	normalizer := pointer.New(canvas, receiver, variant)
	pointer.Attach(canvas, normalizer)
	log.Printf("Listening for input on %q with the %s variant", canvasID, variant)
	return normalizer, nil
}

// logTaps reports each tap as a fraction of the surface size.
func logTaps() pointer.Receiver {
	return pointer.ReceiverFunc(func(c pointer.Coordinate) {
		if c.Width <= 0 || c.Height <= 0 {
			log.Debugf("Tap at %v, %v", c.X, c.Y)
			return
		}
		log.Debugf("Tap at %v, %v", c.X/c.Width, c.Y/c.Height)
	})
}

func statsValue(stats pointer.Stats) js.Value {
	return js.ValueOf(map[string]interface{}{
		"events":    stats.Events,
		"forwarded": stats.Forwarded,
		"dropped":   stats.Dropped,
	})
}
