package draw

import (
	"image"

	"github.com/BeatGlow/raster/pixel"
)

// Blit copies src into dst with its top-left corner at pos and outlines the
// copied area with the style's stroke. Pixels falling outside dst are
// dropped. A zero stroke width copies without an outline.
func Blit(dst Target, style Style, pos image.Point, src *pixel.Buffer) {
	var (
		w = src.Width()
		h = src.Height()
	)
	for y := 0; y < h; y++ {
		row := src.Pix[src.PixOffset(0, y):]
		for x := 0; x < w; x++ {
			dst.SetPixel(pos.X+x, pos.Y+y, row[x])
		}
	}
	Rect(dst, style, pos, w, h, true)
}
