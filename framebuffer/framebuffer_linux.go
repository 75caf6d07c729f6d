package framebuffer

import (
	"os"

	goerrors "github.com/go-errors/errors"
	"golang.org/x/sys/unix"

	"github.com/BeatGlow/raster"
	"github.com/BeatGlow/raster/internal/ioctl"
)

// From <linux/fb.h>
var (
	fbioGetVScreenInfo = ioctl.Encode(ioctl.None, 0, 0x4600)
	fbioGetFScreenInfo = ioctl.Encode(ioctl.None, 0, 0x4602)
)

// Open a Linux FrameBuffer device (fbdev) by name, typically /dev/fb[0..x].
func Open(name string) (*FrameBuffer, error) {
	f, err := os.OpenFile(name, os.O_RDWR, os.ModeDevice)
	if err != nil {
		return nil, goerrors.Wrap(err, 0)
	}

	var (
		fd   = f.Fd()
		fix  fixScreenInfo
		info varScreenInfo
	)
	if err = ioctl.Do(fd, fbioGetFScreenInfo, &fix); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err = ioctl.Do(fd, fbioGetVScreenInfo, &info); err != nil {
		_ = f.Close()
		return nil, err
	}

	// Map pixel buffer.
	mem, err := unix.Mmap(int(fd), 0, int(fix.SmemLen), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		_ = f.Close()
		return nil, goerrors.Wrap(err, 0)
	}

	img, err := wrap(mem, &fix, &info)
	if err != nil {
		_ = unix.Munmap(mem)
		_ = f.Close()
		return nil, err
	}

	fb := &FrameBuffer{
		Image: img,
		name:  name,
		close: func() error {
			if err := unix.Munmap(mem); err != nil {
				_ = f.Close()
				return err
			}
			return f.Close()
		},
	}
	raster.Logger().Debug("framebuffer: open", "device", name, "bpp", info.BitsPerPixel, "size", img.Bounds().Size())
	return fb, nil
}
