// Package pointer turns touch, pointer and mouse input on a surface into
// surface-local coordinates and hands them to a Receiver.
package pointer

import (
	"go.uber.org/atomic"
)

// Surface exposes the layout metrics of the element input is anchored to.
// Metrics may change between events, so they are read again for every one.
type Surface interface {
	OffsetLeft() float64
	OffsetTop() float64
	Width() float64
	Height() float64
}

// Normalizer forwards surface-local coordinates for every input event it is given.
type Normalizer struct {
	surface  Surface
	receiver Receiver
	variant  Variant

	events    atomic.Uint64
	forwarded atomic.Uint64
	dropped   atomic.Uint64
}

// New returns a Normalizer reading layout from surface and forwarding to receiver.
func New(surface Surface, receiver Receiver, variant Variant) *Normalizer {
	return &Normalizer{
		surface:  surface,
		receiver: receiver,
		variant:  variant,
	}
}

func (n *Normalizer) OnTouch(points []Point) {
	n.Dispatch(TouchEvent(points...))
}

func (n *Normalizer) OnPointer(p Point) {
	n.Dispatch(PointerEvent(p))
}

func (n *Normalizer) OnMouse(p Point) {
	n.Dispatch(MouseEvent(p))
}

// Dispatch forwards one coordinate per point of ev, synchronously and in order.
// Points the variant rejects are counted and skipped.
func (n *Normalizer) Dispatch(ev Event) {
	n.events.Inc()
	for _, p := range ev.Points {
		c, ok := n.Normalize(ev.Kind, p)
		if !ok {
			n.dropped.Inc()
			continue
		}
		n.receiver.Receive(c)
		n.forwarded.Inc()
	}
}

// Normalize translates p into surface space using the current surface layout.
// It returns false if the point must be dropped.
func (n *Normalizer) Normalize(kind Kind, p Point) (Coordinate, bool) {
	switch n.variant {
	case VariantLegacy:
		if kind == Mouse {
			return Coordinate{X: p.X, Y: p.Y}, true
		}
		// axes are transposed on purpose, pages built against this variant expect it
		return Coordinate{
			X: p.X - n.surface.OffsetTop(),
			Y: p.Y - n.surface.OffsetLeft(),
		}, true
	default:
		width, height := n.surface.Width(), n.surface.Height()
		if width <= 0 || height <= 0 {
			return Coordinate{}, false
		}
		return Coordinate{
			X:      p.X - n.surface.OffsetLeft(),
			Y:      p.Y - n.surface.OffsetTop(),
			Width:  width,
			Height: height,
		}, true
	}
}

// Stats counts dispatched events, forwarded coordinates and dropped points.
type Stats struct {
	Events    uint64
	Forwarded uint64
	Dropped   uint64
}

// Stats returns a snapshot of the counters.
func (n *Normalizer) Stats() Stats {
	return Stats{
		Events:    n.events.Load(),
		Forwarded: n.forwarded.Load(),
		Dropped:   n.dropped.Load(),
	}
}
