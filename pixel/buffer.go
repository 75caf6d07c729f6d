package pixel

import (
	"image"
	"image/color"
	"image/draw"
)

// Image is a drawable image that can be cleared and filled in one call.
type Image interface {
	draw.Image

	// Clear the image.
	Clear()

	// Fill the image with a single color.
	Fill(color.Color)
}

// Buffer is a row-major array of packed RGB pixels.
//
// Writes outside of Rect are silently discarded; no method returns an error or
// panics on out of range coordinates.
//
// A Buffer is not safe for concurrent use. All drawing mutates Pix in place, so
// callers that render from more than one goroutine must either give every
// worker its own Buffer or serialize access to a shared one.
type Buffer struct {
	// Rect is the image bounding box, always anchored at (0, 0).
	Rect image.Rectangle

	// Pix are the image pixels, len(Pix) == Rect.Dx() * Rect.Dy().
	Pix []Pixel

	// Stride is the Pix stride (in pixels) between vertically adjacent pixels.
	Stride int
}

// NewBuffer returns a black w×h buffer. Negative sizes are treated as zero.
func NewBuffer(w, h int) *Buffer {
	w, h = max(w, 0), max(h, 0)
	return &Buffer{
		Rect:   image.Rect(0, 0, w, h),
		Pix:    make([]Pixel, w*h),
		Stride: w,
	}
}

// NewBufferFill returns a w×h buffer filled with c.
func NewBufferFill(w, h int, c Pixel) *Buffer {
	p := NewBuffer(w, h)
	p.FillPixel(c)
	return p
}

// Width in pixels.
func (p *Buffer) Width() int { return p.Rect.Dx() }

// Height in pixels.
func (p *Buffer) Height() int { return p.Rect.Dy() }

func (p *Buffer) Bounds() image.Rectangle {
	return p.Rect
}

func (p *Buffer) ColorModel() color.Model {
	return RGB888Model
}

// In reports whether (x, y) is inside the buffer.
func (p *Buffer) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < p.Rect.Max.X && y < p.Rect.Max.Y
}

// PixOffset is the index of the pixel at (x, y) in Pix.
func (p *Buffer) PixOffset(x, y int) int {
	return y*p.Stride + x
}

func (p *Buffer) At(x, y int) color.Color {
	if !p.In(x, y) {
		return color.Transparent
	}
	return p.Pix[p.PixOffset(x, y)]
}

// PixelAt returns the pixel at (x, y), or Black outside the buffer.
func (p *Buffer) PixelAt(x, y int) Pixel {
	if !p.In(x, y) {
		return Black
	}
	return p.Pix[p.PixOffset(x, y)]
}

func (p *Buffer) Set(x, y int, c color.Color) {
	p.SetPixel(x, y, toPixel(c))
}

// SetPixel stores c at (x, y). Coordinates outside the buffer are ignored.
func (p *Buffer) SetPixel(x, y int, c Pixel) {
	if !p.In(x, y) {
		return
	}
	p.Pix[p.PixOffset(x, y)] = c
}

func (p *Buffer) Clear() {
	p.FillPixel(Black)
}

func (p *Buffer) Fill(c color.Color) {
	p.FillPixel(toPixel(c))
}

// FillPixel sets every pixel to c.
func (p *Buffer) FillPixel(c Pixel) {
	for i := range p.Pix {
		p.Pix[i] = c
	}
}

// Clone returns a deep copy.
func (p *Buffer) Clone() *Buffer {
	c := &Buffer{
		Rect:   p.Rect,
		Pix:    make([]Pixel, len(p.Pix)),
		Stride: p.Stride,
	}
	copy(c.Pix, p.Pix)
	return c
}

// Interface checks.
var (
	_ Image = (*Buffer)(nil)
)
