// Package chart plots data series into a pixel buffer.
//
// A [Chart] owns its buffer and maps data space onto it with a [Mapper]. Each
// call to [Chart.Render] draws the axes first and the data on top, so data
// points always cover the axis lines where they meet.
package chart

import (
	"fmt"
	"image"
	"strings"

	goerrors "github.com/go-errors/errors"

	"github.com/BeatGlow/raster/draw"
	"github.com/BeatGlow/raster/internal/logx"
	"github.com/BeatGlow/raster/pixel"
)

// Defaults for zero Config fields.
const (
	DefaultWidth     = 320
	DefaultHeight    = 240
	DefaultAxisColor = pixel.Pixel(0x444444)
	DefaultDataColor = pixel.White
)

var (
	// DefaultAxisStyle is used when Config.Axis is nil.
	DefaultAxisStyle = draw.Style{Stroke: DefaultAxisColor, Width: 1, Geometry: draw.Outer}

	// DefaultDataStyle is used when Config.Data is nil.
	DefaultDataStyle = draw.Style{Stroke: DefaultDataColor, Width: 1, Geometry: draw.Outer}
)

// Kind selects how a series is drawn.
type Kind uint8

// Supported kinds.
const (
	Dots  Kind = iota // A disc per data point
	Lines             // Segments between consecutive points
)

func (k Kind) String() string {
	switch k {
	case Dots:
		return "dots"
	case Lines:
		return "lines"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// ParseKind parses the names returned by [Kind.String].
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "dots", "dot", "points", "scatter":
		return Dots, nil
	case "lines", "line":
		return Lines, nil
	default:
		return Dots, goerrors.Errorf("chart: unknown kind %q", s)
	}
}

// Config is the chart configuration.
type Config struct {
	// Width of the chart in pixels, DefaultWidth if zero.
	Width int

	// Height of the chart in pixels, DefaultHeight if zero.
	Height int

	// X is the data range shown horizontally.
	X Range

	// Y is the data range shown vertically.
	Y Range

	// Background color of the buffer.
	Background pixel.Pixel

	// Axis style, DefaultAxisStyle if nil. Any other value is used as is,
	// including the zero Style.
	Axis *draw.Style

	// Data style, DefaultDataStyle if nil.
	Data *draw.Style
}

// Chart renders data series into a buffer it owns. It is not safe for
// concurrent use.
type Chart struct {
	buf        *pixel.Buffer
	mapper     *Mapper
	axis       draw.Style
	data       draw.Style
	background pixel.Pixel
}

// New creates a chart. Invalid ranges or sizes fail with [ErrInvalidRange]
// or [ErrInvalidSize].
func New(config Config) (*Chart, error) {
	if config.Width == 0 {
		config.Width = DefaultWidth
	}
	if config.Height == 0 {
		config.Height = DefaultHeight
	}
	axis, data := DefaultAxisStyle, DefaultDataStyle
	if config.Axis != nil {
		axis = *config.Axis
	}
	if config.Data != nil {
		data = *config.Data
	}

	m, err := NewMapper(config.X, config.Y, config.Width, config.Height)
	if err != nil {
		return nil, err
	}

	logx.Logger().Debug("chart: created",
		"size", m.Size(),
		"x", config.X.String(),
		"y", config.Y.String())

	return &Chart{
		buf:        pixel.NewBufferFill(config.Width, config.Height, config.Background),
		mapper:     m,
		axis:       axis,
		data:       data,
		background: config.Background,
	}, nil
}

// Buffer is the chart's pixel buffer.
func (c *Chart) Buffer() *pixel.Buffer { return c.buf }

// Mapper is the chart's data to buffer mapping.
func (c *Chart) Mapper() *Mapper { return c.mapper }

// AxisStyle is the style axes are drawn with.
func (c *Chart) AxisStyle() draw.Style { return c.axis }

// DataStyle is the style data is drawn with.
func (c *Chart) DataStyle() draw.Style { return c.data }

// SetAxisStyle changes the style used by subsequent renders.
func (c *Chart) SetAxisStyle(s draw.Style) { c.axis = s }

// SetDataStyle changes the style used by subsequent renders.
func (c *Chart) SetDataStyle(s draw.Style) { c.data = s }

// Clear resets the buffer to the background color.
func (c *Chart) Clear() {
	c.buf.FillPixel(c.background)
}

// Render draws the axes and then the series. Lines needs at least two
// points to draw anything; an empty series only draws the axes.
func (c *Chart) Render(kind Kind, data []Point) {
	c.renderAxes()

	switch kind {
	case Dots:
		r := max(c.data.Width, 0) / 2
		for _, p := range data {
			draw.Disc(c.buf, c.mapper.ToBuffer(p), r, c.data.Stroke)
		}
	case Lines:
		for i := 1; i < len(data); i++ {
			draw.Line(c.buf, c.data, c.mapper.ToBuffer(data[i-1]), c.mapper.ToBuffer(data[i]))
		}
	}

	logx.Logger().Debug("chart: rendered", "kind", kind.String(), "points", len(data))
}

func (c *Chart) renderAxes() {
	var (
		axes = c.mapper.Axes()
		size = c.mapper.Size()
	)
	if axes.HasVertical {
		draw.Line(c.buf, c.axis, image.Pt(axes.Vertical, 0), image.Pt(axes.Vertical, size.Y-1))
	}
	if axes.HasHorizontal {
		draw.Line(c.buf, c.axis, image.Pt(0, axes.Horizontal), image.Pt(size.X-1, axes.Horizontal))
	}
}
