// Package shape implements point membership tests for styled primitives.
//
// A [Shape] answers which color, if any, a pixel would receive without
// touching a buffer. Membership follows the exact banding rules of the draw
// package, so rendering a shape with [Render] paints the same pixels as the
// matching draw call.
package shape

import (
	"image"

	"github.com/BeatGlow/raster/draw"
	"github.com/BeatGlow/raster/pixel"
)

// Shape is a positioned primitive.
type Shape interface {
	// Contains returns the color painted at p, if any.
	Contains(p image.Point) (pixel.Pixel, bool)

	// Reposition moves the shape's anchor to p.
	Reposition(p image.Point)

	// Bounds is the smallest rectangle holding every contained point.
	Bounds() image.Rectangle
}

// Circle is a circle around Center, see [draw.Circle].
type Circle struct {
	Center image.Point
	Radius int
	Style  draw.Style
}

// NewCircle returns a circle shape.
func NewCircle(center image.Point, radius int, style draw.Style) *Circle {
	return &Circle{Center: center, Radius: radius, Style: style}
}

// Contains reports stroke for inner² < d² <= outer² and fill for
// d² <= inner², both bounds inclusive. A negative radius contains nothing.
func (c *Circle) Contains(p image.Point) (pixel.Pixel, bool) {
	if c.Radius < 0 {
		return 0, false
	}
	inner, outer := draw.Band(c.Radius, c.Style.Width, c.Style.Geometry)
	var (
		d = p.Sub(c.Center)
		n = d.X*d.X + d.Y*d.Y
	)
	switch {
	case n > outer*outer:
		return 0, false
	case n > inner*inner:
		return c.Style.Stroke, true
	default:
		return c.Style.FillColor()
	}
}

// Reposition moves the center to p.
func (c *Circle) Reposition(p image.Point) { c.Center = p }

func (c *Circle) Bounds() image.Rectangle {
	if c.Radius < 0 {
		return image.Rectangle{}
	}
	_, outer := draw.Band(c.Radius, c.Style.Width, c.Style.Geometry)
	return image.Rect(c.Center.X-outer, c.Center.Y-outer, c.Center.X+outer+1, c.Center.Y+outer+1)
}

// Rect is a W×H rectangle with its nominal top-left corner at Pos, see
// [draw.Rect].
type Rect struct {
	Pos        image.Point
	W, H       int
	Style      draw.Style
	StrokeOnly bool
}

// NewRect returns a rectangle shape.
func NewRect(pos image.Point, w, h int, style draw.Style) *Rect {
	return &Rect{Pos: pos, W: w, H: h, Style: style}
}

func (r *Rect) Contains(p image.Point) (pixel.Pixel, bool) {
	frame := r.Bounds()
	switch {
	case !p.In(frame):
		return 0, false
	case draw.InStroke(frame, p, max(r.Style.Width, 0)):
		return r.Style.Stroke, true
	case r.StrokeOnly:
		return 0, false
	default:
		return r.Style.FillColor()
	}
}

// Reposition moves the nominal top-left corner to p.
func (r *Rect) Reposition(p image.Point) { r.Pos = p }

func (r *Rect) Bounds() image.Rectangle {
	return draw.RectFrame(r.Pos, r.W, r.H, r.Style.Width, r.Style.Geometry)
}

// Render composites shapes into dst in order, later shapes painting over
// earlier ones.
func Render(dst draw.Target, shapes ...Shape) {
	clip := dst.Bounds()
	for _, s := range shapes {
		area := s.Bounds().Intersect(clip)
		for y := area.Min.Y; y < area.Max.Y; y++ {
			for x := area.Min.X; x < area.Max.X; x++ {
				if c, ok := s.Contains(image.Pt(x, y)); ok {
					dst.SetPixel(x, y, c)
				}
			}
		}
	}
}

// At returns the color of the topmost shape containing p.
func At(p image.Point, shapes ...Shape) (pixel.Pixel, bool) {
	for i := len(shapes) - 1; i >= 0; i-- {
		if c, ok := shapes[i].Contains(p); ok {
			return c, true
		}
	}
	return 0, false
}

var (
	_ Shape = (*Circle)(nil)
	_ Shape = (*Rect)(nil)
)
