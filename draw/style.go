package draw

import (
	"errors"
	"fmt"
	"image"
	"strings"

	"github.com/BeatGlow/raster/pixel"
)

// ErrGeometry is returned by ParseGeometry for unknown names.
var ErrGeometry = errors.New("draw: unknown stroke geometry")

// Geometry places the stroke band relative to a shape's nominal edge.
type Geometry uint8

// Supported geometries.
const (
	Inner  Geometry = iota // Stroke covers the outer Width pixels of the shape
	Outer                  // Stroke extends Width pixels beyond the shape
	Center                 // Stroke straddles the edge, Width/2 on each side
)

func (g Geometry) String() string {
	switch g {
	case Outer:
		return "outer"
	case Center:
		return "center"
	default:
		return "inner"
	}
}

// ParseGeometry parses the names returned by [Geometry.String].
func ParseGeometry(s string) (Geometry, error) {
	switch strings.ToLower(s) {
	case "inner", "in":
		return Inner, nil
	case "outer", "out":
		return Outer, nil
	case "center", "centre", "middle":
		return Center, nil
	default:
		return Inner, fmt.Errorf("%w %q", ErrGeometry, s)
	}
}

// Style describes how a primitive is painted. Styles are values: every draw
// call receives its own copy and nothing retains it.
type Style struct {
	// Stroke is the outline color.
	Stroke pixel.Pixel

	// Width of the stroke band in pixels. Negative widths count as zero.
	Width int

	// Geometry of the stroke band.
	Geometry Geometry

	// Fill is the interior color, painted only if Filled is set.
	Fill pixel.Pixel

	// Filled enables interior painting.
	Filled bool
}

// WithFill returns a copy of s that paints its interior with c.
func (s Style) WithFill(c pixel.Pixel) Style {
	s.Fill, s.Filled = c, true
	return s
}

// WithoutFill returns a copy of s that leaves interiors untouched.
func (s Style) WithoutFill() Style {
	s.Fill, s.Filled = 0, false
	return s
}

// FillColor returns the fill color, if any.
func (s Style) FillColor() (pixel.Pixel, bool) {
	return s.Fill, s.Filled
}

func (s Style) strokeWidth() int {
	return max(s.Width, 0)
}

// solid is a style that paints every covered pixel with c.
func solid(c pixel.Pixel) Style {
	return Style{Stroke: c, Fill: c, Filled: true}
}

// outset returns how far a stroke band of the given width reaches outside and
// inside of a nominal edge.
func outset(width int, g Geometry) (out, in int) {
	width = max(width, 0)
	switch g {
	case Outer:
		return width, 0
	case Center:
		return width / 2, width / 2
	default:
		return 0, width
	}
}

// Band splits a nominal boundary (a circle radius) into the inner bound of the
// stroke band and its outer bound. Everything up to inner is fill, everything
// after inner up to outer is stroke. The inner bound never drops below zero.
func Band(nominal, width int, g Geometry) (inner, outer int) {
	nominal = max(nominal, 0)
	out, in := outset(width, g)
	return max(nominal-in, 0), nominal + out
}

// RectFrame returns the area covered by a w×h rectangle at pos once its
// stroke band is laid out. The stroke band is the strip of strokeWidth pixels
// along the inside of every edge of the returned rectangle, see [InStroke].
func RectFrame(pos image.Point, w, h, strokeWidth int, g Geometry) image.Rectangle {
	w, h, sw := max(w, 0), max(h, 0), max(strokeWidth, 0)
	out, _ := outset(sw, g)
	grow := 2 * out
	if g == Center {
		// Odd widths put the extra pixel on the far edges.
		grow = sw
	}
	origin := pos.Sub(image.Pt(out, out))
	return image.Rectangle{
		Min: origin,
		Max: origin.Add(image.Pt(w+grow, h+grow)),
	}
}

// InStroke reports whether p lies inside frame and within width pixels of
// one of its edges.
func InStroke(frame image.Rectangle, p image.Point, width int) bool {
	if !p.In(frame) {
		return false
	}
	d := p.Sub(frame.Min)
	return d.X < width || d.X >= frame.Dx()-width ||
		d.Y < width || d.Y >= frame.Dy()-width
}
