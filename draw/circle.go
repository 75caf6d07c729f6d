package draw

import (
	"image"

	"github.com/BeatGlow/raster/pixel"
)

// Circle draws a circle of the given nominal radius around center.
//
// The stroke band is laid out by [Band]: a pixel at squared distance d from
// the center is stroke when inner² < d <= outer², and fill when d <= inner²
// (only if the style has a fill). All comparisons are exact integer math.
// A negative radius draws nothing.
func Circle(dst Target, style Style, center image.Point, radius int) {
	if radius < 0 {
		return
	}
	inner, outer := Band(radius, style.strokeWidth(), style.Geometry)
	var (
		innerSq = inner * inner
		outerSq = outer * outer
		clip    = dst.Bounds().Sub(center)
		y0, y1  = max(-outer, clip.Min.Y), min(outer, clip.Max.Y-1)
		x0, x1  = max(-outer, clip.Min.X), min(outer, clip.Max.X-1)
	)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			d := x*x + y*y
			switch {
			case d > outerSq:
			case d > innerSq:
				dst.SetPixel(center.X+x, center.Y+y, style.Stroke)
			case style.Filled:
				dst.SetPixel(center.X+x, center.Y+y, style.Fill)
			}
		}
	}
}

// Disc draws a solid circle of radius r in color c.
func Disc(dst Target, center image.Point, r int, c pixel.Pixel) {
	Circle(dst, solid(c), center, r)
}
