package draw

import (
	"image"
	"unicode/utf8"

	"github.com/BeatGlow/raster/font"
)

// Text draws s with its top-left corner at pos using glyphs from src, or
// [font.Font5x7] if src is nil. Every set glyph bit becomes a scale×scale
// block in the stroke color; characters advance by (font.Width+1)*scale.
//
// Characters missing from src paint nothing but still take up their slot.
func Text(dst Target, style Style, src font.Source, pos image.Point, s string, scale int) {
	if scale <= 0 {
		return
	}
	if src == nil {
		src = font.Font5x7
	}
	var i int
	for _, r := range s {
		g, ok := src.Lookup(r)
		if ok {
			blitGlyph(dst, g, image.Pt(pos.X+i*font.Advance*scale, pos.Y), scale, style)
		}
		i++
	}
}

func blitGlyph(dst Target, g font.Glyph, origin image.Point, scale int, style Style) {
	for row := 0; row < font.Height; row++ {
		for col := 0; col < font.Width; col++ {
			if g.Set(col, row) {
				Box(dst, origin.Add(image.Pt(col*scale, row*scale)), scale, scale, style.Stroke)
			}
		}
	}
}

// TextSize is the size of the area Text paints for s at the given scale,
// from the left edge of the first cell to the right edge of the last one.
func TextSize(s string, scale int) image.Point {
	n := utf8.RuneCountInString(s)
	if n == 0 || scale <= 0 {
		return image.Point{}
	}
	return image.Pt((n*font.Advance-font.Spacing)*scale, font.Height*scale)
}
