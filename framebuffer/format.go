package framebuffer

import (
	"encoding/binary"
	"image"

	goerrors "github.com/go-errors/errors"

	"github.com/BeatGlow/raster/pixel"
)

// fixScreenInfo mirrors struct fb_fix_screeninfo from <linux/fb.h>.
type fixScreenInfo struct {
	ID         [16]byte  // Identification string eg "TT Builtin"
	SmemStart  uintptr   // Start of frame buffer mem
	SmemLen    uint32    // Length of frame buffer mem
	Type       uint32    // FB_TYPE_
	TypeAux    uint32    // Interleave for interleaved Planes
	Visual     uint32    // FB_VISUAL_
	Xpanstep   uint16    // Zero if no hardware panning
	Ypanstep   uint16    // Zero if no hardware panning
	Ywrapstep  uint16    // Zero if no hardware ywrap
	LineLength uint32    // Length of a line in bytes
	MmioStart  uintptr   // Start of Memory Mapped I/O (physical address)
	MmioLen    uint32    // Length of Memory Mapped I/O
	Accel      uint32    // Type of acceleration available
	Reserved   [3]uint16 // Reserved for future compatibility
}

// bitField describes where a color channel lives in a pixel.
type bitField struct {
	Offset   uint32 // Beginning of bitfield
	Length   uint32 // Length of bitfield
	MsbRight uint32 // != 0 : Most significant bit is right
}

func (f bitField) is(offset, length uint32) bool {
	return f.Offset == offset && f.Length == length && f.MsbRight == 0
}

// varScreenInfo mirrors struct fb_var_screeninfo from <linux/fb.h>.
type varScreenInfo struct {
	Xres                    uint32
	Yres                    uint32
	XresVirtual             uint32
	YresVirtual             uint32
	Xoffset                 uint32
	Yoffset                 uint32
	BitsPerPixel            uint32
	Grayscale               uint32
	Red, Green, Blue, Alpha bitField
	Nonstd                  uint32
	Activate                uint32
	Height                  uint32
	Width                   uint32
	AccelFlags              uint32
	Pixclock                uint32
	LeftMargin              uint32
	RightMargin             uint32
	UpperMargin             uint32
	LowerMargin             uint32
	HsyncLen                uint32
	VsyncLen                uint32
	Sync                    uint32
	Vmode                   uint32
	Rotate                  uint32
	Colorspace              uint32
	Reserved                [4]uint32
}

// format is a pixel layout we can write.
type format uint8

const (
	formatUnknown format = iota
	formatRGB15
	formatBGR15
	formatRGB16
	formatBGR16
	formatRGB24
	formatBGR24
	formatXRGB32
)

func (f format) bytesPerPixel() int {
	switch f {
	case formatRGB15, formatBGR15, formatRGB16, formatBGR16:
		return 2
	case formatRGB24, formatBGR24:
		return 3
	case formatXRGB32:
		return 4
	default:
		return 0
	}
}

// parseFormat matches the channel layout of a color screen. Offsets count
// from the least significant bit of a host order pixel word; the alpha
// channel of 32-bit formats is left alone.
func parseFormat(info *varScreenInfo) (format, error) {
	if info.Grayscale == 0 {
		switch info.BitsPerPixel {
		case 15:
			switch {
			case info.Red.is(10, 5) && info.Green.is(5, 5) && info.Blue.is(0, 5):
				return formatRGB15, nil
			case info.Red.is(0, 5) && info.Green.is(5, 5) && info.Blue.is(10, 5):
				return formatBGR15, nil
			}
		case 16:
			switch {
			case info.Red.is(11, 5) && info.Green.is(5, 6) && info.Blue.is(0, 5):
				return formatRGB16, nil
			case info.Red.is(0, 5) && info.Green.is(5, 6) && info.Blue.is(11, 5):
				return formatBGR16, nil
			}
		case 24:
			switch {
			case info.Red.is(16, 8) && info.Green.is(8, 8) && info.Blue.is(0, 8):
				return formatRGB24, nil
			case info.Red.is(0, 8) && info.Green.is(8, 8) && info.Blue.is(16, 8):
				return formatBGR24, nil
			}
		case 32:
			if info.Red.is(16, 8) && info.Green.is(8, 8) && info.Blue.is(0, 8) {
				return formatXRGB32, nil
			}
		}
	}
	return formatUnknown, goerrors.Errorf("%w: %d bpp, red %d/%d, green %d/%d, blue %d/%d",
		ErrFormat, info.BitsPerPixel,
		info.Red.Offset, info.Red.Length,
		info.Green.Offset, info.Green.Length,
		info.Blue.Offset, info.Blue.Length)
}

// wrap returns an image writing straight into the mapped memory of the
// visible screen area.
func wrap(mem []byte, fix *fixScreenInfo, info *varScreenInfo) (pixel.Image, error) {
	f, err := parseFormat(info)
	if err != nil {
		return nil, err
	}

	var (
		bpp    = f.bytesPerPixel()
		stride = int(fix.LineLength)
		w      = int(info.Xres)
		h      = int(info.Yres)
		start  = int(info.Yoffset)*stride + int(info.Xoffset)*bpp
	)
	if stride == 0 {
		stride = int(info.XresVirtual) * bpp
	}
	if w <= 0 || h <= 0 || stride < w*bpp || start+(h-1)*stride+w*bpp > len(mem) {
		return nil, goerrors.Errorf("framebuffer: %dx%d screen with stride %d does not fit %d bytes", w, h, stride, len(mem))
	}

	p := pixel.Packed{
		Rect:   image.Rect(0, 0, w, h),
		Pix:    mem[start : start+(h-1)*stride+w*bpp],
		Stride: stride,
	}
	order := binary.NativeEndian
	switch f {
	case formatRGB15:
		return pixel.WrapCRGB15Image(p, order), nil
	case formatBGR15:
		return pixel.WrapCBGR15Image(p, order), nil
	case formatRGB16:
		return pixel.WrapCRGB16Image(p, order), nil
	case formatBGR16:
		return pixel.WrapCBGR16Image(p, order), nil
	case formatRGB24:
		// Blue is the lowest byte in memory.
		return pixel.WrapRGB24Image(p, isLittleEndian()), nil
	case formatBGR24:
		return pixel.WrapRGB24Image(p, !isLittleEndian()), nil
	default:
		return pixel.WrapXRGB32Image(p, order), nil
	}
}

func isLittleEndian() bool {
	var b [2]byte
	binary.NativeEndian.PutUint16(b[:], 1)
	return b[0] == 1
}
