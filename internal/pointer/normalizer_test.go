package pointer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSurface struct {
	left, top     float64
	width, height float64
	reads         int
}

func (s *fakeSurface) OffsetLeft() float64 { s.reads++; return s.left }
func (s *fakeSurface) OffsetTop() float64  { s.reads++; return s.top }
func (s *fakeSurface) Width() float64      { s.reads++; return s.width }
func (s *fakeSurface) Height() float64     { s.reads++; return s.height }

type recorder struct {
	coords []Coordinate
}

func (r *recorder) Receive(c Coordinate) {
	r.coords = append(r.coords, c)
}

func TestTouchForwardsEveryPointInOrder(t *testing.T) {
	for _, variant := range []Variant{VariantSized, VariantLegacy} {
		t.Run(variant.String(), func(t *testing.T) {
			surface := &fakeSurface{width: 640, height: 480}
			var rec recorder
			n := New(surface, &rec, variant)

			points := []Point{{1, 2}, {3, 4}, {5, 6}, {7, 8}}
			n.OnTouch(points)

			require.Len(t, rec.coords, len(points))
			for i, p := range points {
				assert.Equal(t, p.X, rec.coords[i].X)
				assert.Equal(t, p.Y, rec.coords[i].Y)
			}
			assert.Equal(t, Stats{Events: 1, Forwarded: 4}, n.Stats())
		})
	}
}

func TestEmptyTouchForwardsNothing(t *testing.T) {
	var rec recorder
	n := New(&fakeSurface{width: 1, height: 1}, &rec, VariantSized)
	n.OnTouch(nil)
	assert.Empty(t, rec.coords)
	assert.Equal(t, Stats{Events: 1}, n.Stats())
}

func TestPointerAndMouseForwardOnce(t *testing.T) {
	for _, variant := range []Variant{VariantSized, VariantLegacy} {
		for _, ev := range []Event{PointerEvent(Point{10, 10}), MouseEvent(Point{10, 10})} {
			t.Run(variant.String()+"/"+ev.Kind.String(), func(t *testing.T) {
				var rec recorder
				n := New(&fakeSurface{width: 100, height: 100}, &rec, variant)
				n.Dispatch(ev)
				assert.Len(t, rec.coords, 1)
			})
		}
	}
}

func TestSizedVariant(t *testing.T) {
	for _, tc := range []struct {
		description   string
		width, height float64
		event         Event
		expect        []Coordinate
	}{
		{
			description: "pointer",
			width:       300, height: 150,
			event:  PointerEvent(Point{100, 100}),
			expect: []Coordinate{{X: 90, Y: 80, Width: 300, Height: 150}},
		},
		{
			description: "mouse is offset too",
			width:       300, height: 150,
			event:  MouseEvent(Point{100, 100}),
			expect: []Coordinate{{X: 90, Y: 80, Width: 300, Height: 150}},
		},
		{
			description: "touch",
			width:       300, height: 150,
			event: TouchEvent(Point{100, 100}, Point{10, 20}),
			expect: []Coordinate{
				{X: 90, Y: 80, Width: 300, Height: 150},
				{X: 0, Y: 0, Width: 300, Height: 150},
			},
		},
		{
			description: "zero width",
			width:       0, height: 150,
			event: PointerEvent(Point{100, 100}),
		},
		{
			description: "zero height",
			width:       300, height: 0,
			event: TouchEvent(Point{100, 100}, Point{1, 1}),
		},
		{
			description: "negative size",
			width:       -1, height: -1,
			event: MouseEvent(Point{100, 100}),
		},
	} {
		t.Run(tc.description, func(t *testing.T) {
			var rec recorder
			n := New(&fakeSurface{left: 10, top: 20, width: tc.width, height: tc.height}, &rec, VariantSized)
			n.Dispatch(tc.event)
			assert.Equal(t, tc.expect, rec.coords)
			stats := n.Stats()
			assert.Equal(t, uint64(len(tc.expect)), stats.Forwarded)
			assert.Equal(t, uint64(len(tc.event.Points)-len(tc.expect)), stats.Dropped)
		})
	}
}

func TestLegacyVariant(t *testing.T) {
	// zero-sized surface must not matter for this variant
	surface := &fakeSurface{left: 10, top: 20}

	for _, tc := range []struct {
		description string
		event       Event
		expect      Coordinate
	}{
		{
			description: "pointer subtracts top from x and left from y",
			event:       PointerEvent(Point{100, 100}),
			expect:      Coordinate{X: 80, Y: 90},
		},
		{
			description: "touch subtracts top from x and left from y",
			event:       TouchEvent(Point{100, 100}),
			expect:      Coordinate{X: 80, Y: 90},
		},
		{
			description: "mouse is untranslated",
			event:       MouseEvent(Point{100, 100}),
			expect:      Coordinate{X: 100, Y: 100},
		},
	} {
		t.Run(tc.description, func(t *testing.T) {
			var rec recorder
			n := New(surface, &rec, VariantLegacy)
			n.Dispatch(tc.event)
			require.Len(t, rec.coords, 1)
			assert.Equal(t, tc.expect, rec.coords[0])
		})
	}
}

func TestLayoutIsReadPerEvent(t *testing.T) {
	surface := &fakeSurface{left: 10, top: 20, width: 100, height: 100}
	var rec recorder
	n := New(surface, &rec, VariantSized)

	n.OnPointer(Point{50, 50})
	surface.left, surface.top = 0, 0
	surface.width = 200
	n.OnPointer(Point{50, 50})
	surface.width = 0
	n.OnPointer(Point{50, 50})

	assert.Equal(t, []Coordinate{
		{X: 40, Y: 30, Width: 100, Height: 100},
		{X: 50, Y: 50, Width: 200, Height: 100},
	}, rec.coords)
	assert.Equal(t, Stats{Events: 3, Forwarded: 2, Dropped: 1}, n.Stats())
}

func TestSameEventTwice(t *testing.T) {
	var rec recorder
	n := New(&fakeSurface{left: 1, top: 2, width: 10, height: 10}, &rec, VariantSized)
	ev := TouchEvent(Point{5, 5})
	n.Dispatch(ev)
	n.Dispatch(ev)
	require.Len(t, rec.coords, 2)
	assert.Equal(t, rec.coords[0], rec.coords[1])
}

func TestNormalizeHasNoSideEffects(t *testing.T) {
	var rec recorder
	n := New(&fakeSurface{width: 10, height: 10}, &rec, VariantSized)
	c, ok := n.Normalize(Pointer, Point{3, 4})
	assert.True(t, ok)
	assert.Equal(t, Coordinate{X: 3, Y: 4, Width: 10, Height: 10}, c)
	assert.Empty(t, rec.coords)
	assert.Equal(t, Stats{}, n.Stats())
}

func TestLegacyMouseIgnoresLayout(t *testing.T) {
	surface := &fakeSurface{left: 10, top: 20}
	n := New(surface, &recorder{}, VariantLegacy)
	n.OnMouse(Point{1, 1})
	assert.Zero(t, surface.reads)
	n.OnPointer(Point{1, 1})
	assert.Equal(t, 2, surface.reads)
}
