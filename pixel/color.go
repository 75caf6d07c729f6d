package pixel

import "image/color"

// Models for the standard color types.
var (
	RGB888Model color.Model = color.ModelFunc(rgb888Model)
	CRGB15Model color.Model = color.ModelFunc(crgb15Model)
	CRGB16Model color.Model = color.ModelFunc(crgb16Model)
	CBGR15Model color.Model = color.ModelFunc(cbgr15Model)
	CBGR16Model color.Model = color.ModelFunc(cbgr16Model)
)

// Pixel is a 24-bit packed RGB color: red in bits 16-23, green in bits 8-15
// and blue in bits 0-7. The upper byte is ignored.
type Pixel uint32

// Common colors.
const (
	Black Pixel = 0x000000
	White Pixel = 0xffffff
	Red   Pixel = 0xff0000
	Green Pixel = 0x00ff00
	Blue  Pixel = 0x0000ff
)

// RGB packs three 8-bit channels into a Pixel.
func RGB(r, g, b uint8) Pixel {
	return Pixel(r)<<16 | Pixel(g)<<8 | Pixel(b)
}

// R is the red channel.
func (p Pixel) R() uint8 { return uint8(p >> 16) }

// G is the green channel.
func (p Pixel) G() uint8 { return uint8(p >> 8) }

// B is the blue channel.
func (p Pixel) B() uint8 { return uint8(p) }

// RGBA implements [color.Color]. Pixels are always opaque.
func (p Pixel) RGBA() (r, g, b, a uint32) {
	r = uint32(p.R())
	r |= r << 8
	g = uint32(p.G())
	g |= g << 8
	b = uint32(p.B())
	b |= b << 8
	return r, g, b, 0xffff
}

func rgb888Model(c color.Color) color.Color {
	return toPixel(c)
}

// toPixel converts any color to a Pixel, dropping alpha.
func toPixel(c color.Color) Pixel {
	if p, ok := c.(Pixel); ok {
		return p & 0xffffff
	}
	r, g, b, _ := c.RGBA()
	return RGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// CRGB15 represents a 15-bit 5-5-5 RGB color.
type CRGB15 struct {
	// CIgnore, 1, CRed, 5, CGreen, 5, CBlue, 5
	V uint16
}

func (c CRGB15) RGBA() (r, g, b, a uint32) {
	// Build a 5-bit value at the top of the low byte of each component.
	red := (c.V & 0x7C00) >> 7
	grn := (c.V & 0x03E0) >> 2
	blu := (c.V & 0x001F) << 3
	// Duplicate the high bits in the low bits.
	red |= red >> 5
	grn |= grn >> 5
	blu |= blu >> 5
	// Duplicate the whole value in the high byte.
	red |= red << 8
	grn |= grn << 8
	blu |= blu << 8
	return uint32(red), uint32(grn), uint32(blu), 0xffff
}

func crgb15Model(c color.Color) color.Color {
	if _, ok := c.(CRGB15); ok {
		return c
	}
	p := toPixel(c)
	return CRGB15{uint16(p.R()>>3)<<10 | uint16(p.G()>>3)<<5 | uint16(p.B()>>3)}
}

// CRGB16 represents a 16-bit 5-6-5 RGB color.
type CRGB16 struct {
	// CRed, 5, CGreen, 6, CBlue, 5
	V uint16
}

func (c CRGB16) RGBA() (r, g, b, a uint32) {
	// Build a 5- or 6-bit value at the top of the low byte of each component.
	red := (c.V & 0xF800) >> 8
	grn := (c.V & 0x07E0) >> 3
	blu := (c.V & 0x001F) << 3
	// Duplicate the high bits in the low bits.
	red |= red >> 5
	grn |= grn >> 6
	blu |= blu >> 5
	// Duplicate the whole value in the high byte.
	red |= red << 8
	grn |= grn << 8
	blu |= blu << 8
	return uint32(red), uint32(grn), uint32(blu), 0xffff
}

func crgb16Model(c color.Color) color.Color {
	if _, ok := c.(CRGB16); ok {
		return c
	}
	p := toPixel(c)
	return CRGB16{uint16(p.R()>>3)<<11 | uint16(p.G()>>2)<<5 | uint16(p.B()>>3)}
}

// CBGR15 represents a 15-bit 5-5-5 BGR color.
type CBGR15 struct {
	// CIgnore, 1, CBlue, 5, CGreen, 5, CRed, 5
	V uint16
}

func (c CBGR15) RGBA() (r, g, b, a uint32) {
	v := (c.V&0x001F)<<10 | c.V&0x03E0 | (c.V&0x7C00)>>10
	return CRGB15{v}.RGBA()
}

func cbgr15Model(c color.Color) color.Color {
	if _, ok := c.(CBGR15); ok {
		return c
	}
	p := toPixel(c)
	return CBGR15{uint16(p.B()>>3)<<10 | uint16(p.G()>>3)<<5 | uint16(p.R()>>3)}
}

// CBGR16 represents a 16-bit 5-6-5 BGR color.
type CBGR16 struct {
	// CBlue, 5, CGreen, 6, CRed, 5
	V uint16
}

func (c CBGR16) RGBA() (r, g, b, a uint32) {
	v := (c.V&0x001F)<<11 | c.V&0x07E0 | (c.V&0xF800)>>11
	return CRGB16{v}.RGBA()
}

func cbgr16Model(c color.Color) color.Color {
	if _, ok := c.(CBGR16); ok {
		return c
	}
	p := toPixel(c)
	return CBGR16{uint16(p.B()>>3)<<11 | uint16(p.G()>>2)<<5 | uint16(p.R()>>3)}
}
