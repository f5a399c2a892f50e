package pointer

import "fmt"

// Kind is the input modality an Event came from.
type Kind int

const (
	Touch Kind = iota
	Pointer
	Mouse
)

func (k Kind) String() string {
	switch k {
	case Touch:
		return "touch"
	case Pointer:
		return "pointer"
	case Mouse:
		return "mouse"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Point is a single contact point in viewport coordinates.
type Point struct {
	X, Y float64
}

// Event is one input event from any modality. Touch events carry every changed
// contact point in the order the browser reported them; pointer and mouse
// events carry exactly one.
type Event struct {
	Kind   Kind
	Points []Point
}

// TouchEvent builds a touch event from contact points in reported order.
func TouchEvent(points ...Point) Event {
	return Event{Kind: Touch, Points: points}
}

// PointerEvent builds a single-point pointer event.
func PointerEvent(p Point) Event {
	return Event{Kind: Pointer, Points: []Point{p}}
}

// MouseEvent builds a single-point mouse event.
func MouseEvent(p Point) Event {
	return Event{Kind: Mouse, Points: []Point{p}}
}

var eventTypes = []struct {
	name string
	kind Kind
}{
	{"touchstart", Touch},
	{"touchmove", Touch},
	{"pointerdown", Pointer},
	{"pointermove", Pointer},
	{"mousedown", Mouse},
	{"mousemove", Mouse},
}

// EventTypes returns the DOM event names a surface listens for, in registration order.
func EventTypes() []string {
	names := make([]string, 0, len(eventTypes))
	for _, t := range eventTypes {
		names = append(names, t.name)
	}
	return names
}

// KindForEventType maps a DOM event type like "pointermove" to its Kind.
func KindForEventType(eventType string) (Kind, bool) {
	for _, t := range eventTypes {
		if t.name == eventType {
			return t.kind, true
		}
	}
	return 0, false
}
