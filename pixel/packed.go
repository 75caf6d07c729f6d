package pixel

import (
	"encoding/binary"
	"image"
	"image/color"
)

// Packed holds device formatted pixel bytes. It is the backing store for the
// 15-, 16- and 32-bit images below, which are used to hand a [Buffer] to
// framebuffers and display controllers.
type Packed struct {
	// Rect is the image bounding box.
	Rect image.Rectangle

	// Pix are the image pixels.
	Pix []byte

	// Stride is the Pix stride (in bytes) between vertically adjacent pixels.
	Stride int
}

func (p *Packed) Bounds() image.Rectangle {
	return p.Rect
}

// fill repeats px over the visible pixels of each row. Bytes past the last
// pixel of a row belong to the device and are left alone.
func (p *Packed) fill(px []byte) {
	n := p.Rect.Dx() * len(px)
	for y := 0; y < p.Rect.Dy(); y++ {
		row := p.Pix[y*p.Stride : y*p.Stride+n]
		for i := 0; i < n; i += len(px) {
			copy(row[i:], px)
		}
	}
}

func makePacked(w, h, stride int) Packed {
	return Packed{
		Rect:   image.Rect(0, 0, w, h),
		Pix:    make([]byte, stride*h),
		Stride: stride,
	}
}

// word16Image is shared by the 2 bytes per pixel formats.
type word16Image struct {
	Packed
	Order binary.ByteOrder
	model color.Model
	word  func(color.Color) uint16
}

func (p *word16Image) ColorModel() color.Model {
	return p.model
}

func (p *word16Image) in(x, y int) bool {
	return (image.Point{X: x, Y: y}).In(p.Rect)
}

func (p *word16Image) offset(x, y int) int {
	return (x-p.Rect.Min.X)*2 + (y-p.Rect.Min.Y)*p.Stride
}

func (p *word16Image) value(x, y int) uint16 {
	return p.Order.Uint16(p.Pix[p.offset(x, y):])
}

func (p *word16Image) Set(x, y int, c color.Color) {
	if !p.in(x, y) {
		return
	}
	p.Order.PutUint16(p.Pix[p.offset(x, y):], p.word(c))
}

func (p *word16Image) Fill(c color.Color) {
	bytes := make([]byte, 2)
	p.Order.PutUint16(bytes, p.word(c))
	p.fill(bytes)
}

func (p *word16Image) Clear() {
	p.fill(make([]byte, 2))
}

// CRGB15Image is a 15-bits per pixel 5-5-5-bit RGB image.
type CRGB15Image struct{ word16Image }

func NewCRGB15Image(w, h int) *CRGB15Image {
	return WrapCRGB15Image(makePacked(w, h, w*2), binary.BigEndian)
}

// WrapCRGB15Image uses existing pixel memory, such as a mapped framebuffer.
func WrapCRGB15Image(p Packed, order binary.ByteOrder) *CRGB15Image {
	return &CRGB15Image{word16Image{Packed: p, Order: order, model: CRGB15Model,
		word: func(c color.Color) uint16 { return crgb15Model(c).(CRGB15).V }}}
}

func (p *CRGB15Image) At(x, y int) color.Color {
	if !p.in(x, y) {
		return color.Transparent
	}
	return CRGB15{p.value(x, y) & 0x7fff}
}

// CRGB16Image is a 16-bits per pixel 5-6-5-bit RGB image.
type CRGB16Image struct{ word16Image }

func NewCRGB16Image(w, h int) *CRGB16Image {
	return WrapCRGB16Image(makePacked(w, h, w*2), binary.BigEndian)
}

// WrapCRGB16Image uses existing pixel memory, such as a mapped framebuffer.
func WrapCRGB16Image(p Packed, order binary.ByteOrder) *CRGB16Image {
	return &CRGB16Image{word16Image{Packed: p, Order: order, model: CRGB16Model,
		word: func(c color.Color) uint16 { return crgb16Model(c).(CRGB16).V }}}
}

func (p *CRGB16Image) At(x, y int) color.Color {
	if !p.in(x, y) {
		return color.Transparent
	}
	return CRGB16{p.value(x, y)}
}

// CBGR15Image is a 15-bits per pixel 5-5-5-bit BGR image.
type CBGR15Image struct{ word16Image }

func NewCBGR15Image(w, h int) *CBGR15Image {
	return WrapCBGR15Image(makePacked(w, h, w*2), binary.BigEndian)
}

// WrapCBGR15Image uses existing pixel memory, such as a mapped framebuffer.
func WrapCBGR15Image(p Packed, order binary.ByteOrder) *CBGR15Image {
	return &CBGR15Image{word16Image{Packed: p, Order: order, model: CBGR15Model,
		word: func(c color.Color) uint16 { return cbgr15Model(c).(CBGR15).V }}}
}

func (p *CBGR15Image) At(x, y int) color.Color {
	if !p.in(x, y) {
		return color.Transparent
	}
	return CBGR15{p.value(x, y) & 0x7fff}
}

// CBGR16Image is a 16-bits per pixel 5-6-5-bit BGR image.
type CBGR16Image struct{ word16Image }

func NewCBGR16Image(w, h int) *CBGR16Image {
	return WrapCBGR16Image(makePacked(w, h, w*2), binary.BigEndian)
}

// WrapCBGR16Image uses existing pixel memory, such as a mapped framebuffer.
func WrapCBGR16Image(p Packed, order binary.ByteOrder) *CBGR16Image {
	return &CBGR16Image{word16Image{Packed: p, Order: order, model: CBGR16Model,
		word: func(c color.Color) uint16 { return cbgr16Model(c).(CBGR16).V }}}
}

func (p *CBGR16Image) At(x, y int) color.Color {
	if !p.in(x, y) {
		return color.Transparent
	}
	return CBGR16{p.value(x, y)}
}

// XRGB32Image is a 32-bits per pixel image with the pixel stored in the low
// 24 bits of each word, as used by most 32bpp framebuffers.
type XRGB32Image struct {
	Packed
	Order binary.ByteOrder
}

func NewXRGB32Image(w, h int) *XRGB32Image {
	return &XRGB32Image{Packed: makePacked(w, h, w*4), Order: binary.LittleEndian}
}

func (p *XRGB32Image) ColorModel() color.Model {
	return RGB888Model
}

func (p *XRGB32Image) offset(x, y int) int {
	return (x-p.Rect.Min.X)*4 + (y-p.Rect.Min.Y)*p.Stride
}

func (p *XRGB32Image) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}
	return Pixel(p.Order.Uint32(p.Pix[p.offset(x, y):]) & 0xffffff)
}

func (p *XRGB32Image) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}
	p.Order.PutUint32(p.Pix[p.offset(x, y):], uint32(toPixel(c)))
}

func (p *XRGB32Image) Fill(c color.Color) {
	bytes := make([]byte, 4)
	p.Order.PutUint32(bytes, uint32(toPixel(c)))
	p.fill(bytes)
}

func (p *XRGB32Image) Clear() {
	p.fill(make([]byte, 4))
}

// WrapXRGB32Image uses existing pixel memory, such as a mapped framebuffer.
func WrapXRGB32Image(p Packed, order binary.ByteOrder) *XRGB32Image {
	return &XRGB32Image{Packed: p, Order: order}
}

// RGB24Image is a 24-bits per pixel image stored as R, G, B byte triplets,
// or B, G, R when BGR is set.
type RGB24Image struct {
	Packed
	BGR bool
}

func NewRGB24Image(w, h int) *RGB24Image {
	return &RGB24Image{Packed: makePacked(w, h, w*3)}
}

// WrapRGB24Image uses existing pixel memory, such as a mapped framebuffer.
func WrapRGB24Image(p Packed, bgr bool) *RGB24Image {
	return &RGB24Image{Packed: p, BGR: bgr}
}

func (p *RGB24Image) ColorModel() color.Model {
	return RGB888Model
}

func (p *RGB24Image) offset(x, y int) int {
	return (x-p.Rect.Min.X)*3 + (y-p.Rect.Min.Y)*p.Stride
}

func (p *RGB24Image) bytes(c Pixel) [3]byte {
	if p.BGR {
		return [3]byte{c.B(), c.G(), c.R()}
	}
	return [3]byte{c.R(), c.G(), c.B()}
}

func (p *RGB24Image) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}
	s := p.Pix[p.offset(x, y):]
	if p.BGR {
		return RGB(s[2], s[1], s[0])
	}
	return RGB(s[0], s[1], s[2])
}

func (p *RGB24Image) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}
	v := p.bytes(toPixel(c))
	copy(p.Pix[p.offset(x, y):], v[:])
}

func (p *RGB24Image) Fill(c color.Color) {
	v := p.bytes(toPixel(c))
	p.fill(v[:])
}

func (p *RGB24Image) Clear() {
	p.fill(make([]byte, 3))
}

// Interface checks.
var (
	_ Image = (*CRGB15Image)(nil)
	_ Image = (*CRGB16Image)(nil)
	_ Image = (*CBGR15Image)(nil)
	_ Image = (*CBGR16Image)(nil)
	_ Image = (*XRGB32Image)(nil)
	_ Image = (*RGB24Image)(nil)
)
