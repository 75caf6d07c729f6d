package chart

import (
	"errors"
	"fmt"
	"image"
	"math"

	goerrors "github.com/go-errors/errors"
)

// Errors
var (
	ErrInvalidRange = errors.New("chart: invalid range")
	ErrInvalidSize  = errors.New("chart: invalid buffer size")
)

// Range is a closed interval of data values.
type Range struct {
	Min, Max float64
}

// Span is Max - Min.
func (r Range) Span() float64 {
	return r.Max - r.Min
}

// Contains reports whether Min <= v <= Max.
func (r Range) Contains(v float64) bool {
	return r.Min <= v && v <= r.Max
}

func (r Range) String() string {
	return fmt.Sprintf("[%g, %g]", r.Min, r.Max)
}

// validate rejects ranges that cannot be normalized: non-finite bounds and
// empty or inverted spans.
func (r Range) validate(axis string) error {
	switch {
	case math.IsNaN(r.Min) || math.IsNaN(r.Max) || math.IsInf(r.Min, 0) || math.IsInf(r.Max, 0):
		return goerrors.Errorf("%w: %s range %s is not finite", ErrInvalidRange, axis, r)
	case r.Max <= r.Min:
		return goerrors.Errorf("%w: %s range %s has no positive span", ErrInvalidRange, axis, r)
	}
	return nil
}

// Point is a data space coordinate.
type Point struct {
	X, Y float64
}

// Axes locates the chart axes in buffer space.
type Axes struct {
	// Vertical is the buffer column of the x = 0 axis, valid if HasVertical.
	Vertical    int
	HasVertical bool

	// Horizontal is the buffer row of the y = 0 axis, valid if HasHorizontal.
	Horizontal    int
	HasHorizontal bool
}

// Mapper converts data space points into buffer coordinates. Data y grows
// upwards while buffer rows grow downwards, so the y axis is flipped.
type Mapper struct {
	x, y          Range
	width, height int
}

// NewMapper returns a mapper from the x and y ranges onto a width×height
// buffer. Zero-span, inverted or non-finite ranges and empty buffers are
// rejected, so ToBuffer never divides by zero.
func NewMapper(x, y Range, width, height int) (*Mapper, error) {
	if width <= 0 || height <= 0 {
		return nil, goerrors.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if err := x.validate("x"); err != nil {
		return nil, err
	}
	if err := y.validate("y"); err != nil {
		return nil, err
	}
	return &Mapper{x: x, y: y, width: width, height: height}, nil
}

// XRange is the data range mapped onto the buffer columns.
func (m *Mapper) XRange() Range { return m.x }

// YRange is the data range mapped onto the buffer rows.
func (m *Mapper) YRange() Range { return m.y }

// Size of the target buffer.
func (m *Mapper) Size() image.Point { return image.Pt(m.width, m.height) }

// ToBuffer maps p into the buffer. Points outside the ranges are clamped to
// the buffer edges, so (xMin, yMin) lands on the bottom-left pixel and
// (xMax, yMax) on the top-right one.
func (m *Mapper) ToBuffer(p Point) image.Point {
	var (
		xn = (p.X - m.x.Min) / m.x.Span()
		yn = (p.Y - m.y.Min) / m.y.Span()
	)
	return image.Pt(
		clampScale(xn, m.width),
		clampScale(1-yn, m.height),
	)
}

// Axes returns where the x = 0 and y = 0 axes cross the buffer. An axis is
// present only when its zero lies inside the opposite range.
func (m *Mapper) Axes() (a Axes) {
	if m.x.Contains(0) {
		a.Vertical, a.HasVertical = m.ToBuffer(Point{X: 0, Y: m.y.Min}).X, true
	}
	if m.y.Contains(0) {
		a.Horizontal, a.HasHorizontal = m.ToBuffer(Point{X: m.x.Min, Y: 0}).Y, true
	}
	return
}

// clampScale scales a normalized coordinate to n pixels and clamps the
// result to [0, n-1], truncating towards zero.
func clampScale(v float64, n int) int {
	v *= float64(n)
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= float64(n-1):
		return n - 1
	default:
		return int(v)
	}
}
