package pointer

// Coordinate is a point translated into surface-local space. Width and Height
// hold the surface size at dispatch time, and are zero for VariantLegacy.
type Coordinate struct {
	X, Y          float64
	Width, Height float64
}

// Receiver consumes normalized coordinates. Receive must not block.
type Receiver interface {
	Receive(Coordinate)
}

// Arity is the number of numeric arguments an outbound callback takes.
type Arity int

const (
	ArityPoint Arity = 2
	AritySized Arity = 4
)

// Args returns the callback arguments for c at the given arity.
func (c Coordinate) Args(arity Arity) []float64 {
	if arity == AritySized {
		return []float64{c.X, c.Y, c.Width, c.Height}
	}
	return []float64{c.X, c.Y}
}

// ReceiverFunc adapts an ordinary function to a Receiver.
type ReceiverFunc func(Coordinate)

func (f ReceiverFunc) Receive(c Coordinate) {
	f(c)
}

// Tap adapts a two-argument callback taking only the local coordinate.
func Tap(fn func(x, y float64)) Receiver {
	return ReceiverFunc(func(c Coordinate) {
		fn(c.X, c.Y)
	})
}

// SizedTap adapts a four-argument callback that also takes the surface size,
// leaving any scaling to fn.
func SizedTap(fn func(x, y, width, height float64)) Receiver {
	return ReceiverFunc(func(c Coordinate) {
		fn(c.X, c.Y, c.Width, c.Height)
	})
}

// Multi fans each coordinate out to every receiver in order.
func Multi(receivers ...Receiver) Receiver {
	return ReceiverFunc(func(c Coordinate) {
		for _, r := range receivers {
			r.Receive(c)
		}
	})
}
