//go:build js
// +build js

package dom

// Canvas reads its layout live from the DOM on every call.
type Canvas struct {
	*Element
}

func (c *Canvas) OffsetLeft() float64 {
	return c.elem.Get("offsetLeft").Float()
}

func (c *Canvas) OffsetTop() float64 {
	return c.elem.Get("offsetTop").Float()
}

// Width is the rendered width, zero while the canvas is hidden or not laid out.
func (c *Canvas) Width() float64 {
	return c.elem.Get("clientWidth").Float()
}

func (c *Canvas) Height() float64 {
	return c.elem.Get("clientHeight").Float()
}
