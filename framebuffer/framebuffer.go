// Package framebuffer presents frames on the operating system's native
// framebuffer.
//
// This requires framebuffer device support in the operating system. The
// framebuffer is opened with [Open] and implements both [raster.Surface] and
// [image/draw.Image], so it can also serve as the destination of a
// [raster.ImageSurface] to rotate or scale frames.
package framebuffer

import (
	"errors"
	"fmt"

	"github.com/BeatGlow/raster"
	"github.com/BeatGlow/raster/pixel"
)

// Errors
var (
	ErrNotSupported = errors.New("framebuffer: not supported")
	ErrFormat       = errors.New("framebuffer: unsupported pixel format")
)

// FrameBuffer is a mapped framebuffer device.
type FrameBuffer struct {
	pixel.Image
	name  string
	close func() error
}

// Present copies the frame to the top-left corner of the screen, clipped to
// the screen size.
func (fb *FrameBuffer) Present(pix []pixel.Pixel, w, h int) error {
	if err := raster.CheckSize(pix, w, h); err != nil {
		return err
	}

	var (
		b  = fb.Bounds()
		cw = min(w, b.Dx())
		ch = min(h, b.Dy())
	)
	for y := 0; y < ch; y++ {
		row := pix[y*w:]
		for x := 0; x < cw; x++ {
			fb.Set(b.Min.X+x, b.Min.Y+y, row[x])
		}
	}

	raster.Logger().Debug("framebuffer: present", "device", fb.name, "width", cw, "height", ch)
	return nil
}

// Close unmaps the framebuffer memory and closes the device.
func (fb *FrameBuffer) Close() error {
	if fb.close == nil {
		return nil
	}
	err := fb.close()
	fb.close = nil
	return err
}

func (fb *FrameBuffer) String() string {
	b := fb.Bounds()
	return fmt.Sprintf("framebuffer %s %dx%d", fb.name, b.Dx(), b.Dy())
}

var _ raster.Surface = (*FrameBuffer)(nil)
