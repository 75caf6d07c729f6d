package draw

import (
	"image"

	"github.com/BeatGlow/raster/pixel"
)

// Rect draws a w×h rectangle with its nominal top-left corner at pos.
//
// The painted area comes from [RectFrame]: Outer grows the rectangle by the
// stroke width on every side, Center by half of it, Inner keeps it as is.
// Pixels within the stroke width of an edge of that area are stroke, the
// rest is fill. With strokeOnly set, or a style without fill, the interior is
// left untouched.
func Rect(dst Target, style Style, pos image.Point, w, h int, strokeOnly bool) {
	var (
		sw    = style.strokeWidth()
		frame = RectFrame(pos, w, h, sw, style.Geometry)
		fill  = style.Filled && !strokeOnly
		area  = frame.Intersect(dst.Bounds())
	)
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			if InStroke(frame, image.Pt(x, y), sw) {
				dst.SetPixel(x, y, style.Stroke)
			} else if fill {
				dst.SetPixel(x, y, style.Fill)
			}
		}
	}
}

// Box draws a solid w×h rectangle at pos in color c.
func Box(dst Target, pos image.Point, w, h int, c pixel.Pixel) {
	Rect(dst, solid(c), pos, w, h, false)
}
