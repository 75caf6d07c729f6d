// Package draw rasterizes lines, circles, rectangles and bitmap text into
// packed RGB pixel buffers.
//
// Every primitive takes an explicit [Style]. Nothing in this package keeps a
// current style, so calls never have to save and restore state. Pixels that
// fall outside the target are clipped silently.
package draw

import (
	"image"

	"github.com/BeatGlow/raster/pixel"
)

// Target is what primitives draw into. [*pixel.Buffer] is the canonical
// implementation; SetPixel must ignore coordinates outside Bounds.
type Target interface {
	Bounds() image.Rectangle
	SetPixel(x, y int, c pixel.Pixel)
}

var _ Target = (*pixel.Buffer)(nil)
