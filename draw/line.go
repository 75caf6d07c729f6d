package draw

import "image"

// Line draws a line from a to b in the stroke color. Both end points are
// always painted and consecutive pixels are 8-connected.
//
// Strokes wider than one pixel stamp a solid disc of radius Width/2 at every
// step instead of tracing a true outline, which gives thick lines slightly
// scalloped edges.
func Line(dst Target, style Style, a, b image.Point) {
	var (
		width = style.strokeWidth()
		plot  = func(x, y int) { dst.SetPixel(x, y, style.Stroke) }
	)
	if width > 1 {
		plot = func(x, y int) { Disc(dst, image.Pt(x, y), width/2, style.Stroke) }
	}
	bresenham(a.X, a.Y, b.X, b.Y, plot)
}

// HorizontalLine draws a line between (x,y) and (x+w-1,y).
func HorizontalLine(dst Target, style Style, x, y, w int) {
	if w > 0 {
		Line(dst, style, image.Pt(x, y), image.Pt(x+w-1, y))
	}
}

// VerticalLine draws a line between (x,y) and (x,y+h-1).
func VerticalLine(dst Target, style Style, x, y, h int) {
	if h > 0 {
		Line(dst, style, image.Pt(x, y), image.Pt(x, y+h-1))
	}
}

// bresenham walks the integer error-term line from (x0,y0) to (x1,y1).
func bresenham(x0, y0, x1, y1 int, plot func(x, y int)) {
	var (
		dx     = abs(x1 - x0)
		dy     = abs(y1 - y0)
		sx, sy = 1, 1
		e      = dx - dy
	)
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 > -dy {
			e -= dy
			x0 += sx
		}
		if e2 < dx {
			e += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

