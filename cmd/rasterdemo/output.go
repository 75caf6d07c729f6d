package main

import (
	"errors"
	"image"
	"image/draw"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	errorsGo "github.com/go-errors/errors"
	"github.com/mattn/go-sixel"
	"golang.org/x/image/bmp"

	"github.com/BeatGlow/raster"
	"github.com/BeatGlow/raster/framebuffer"
	"github.com/BeatGlow/raster/pixel"
)

var (
	errNoOutput = errors.New(`no output: use --output, --fb or --sixel`)
	errFormat   = errors.New(`unsupported output format, use .png or .bmp`)
)

// output describes where a rendered frame goes.
type output struct {
	path     string
	device   string
	sixel    bool
	scale    int
	rotation string

	// stdout receives sixel graphics, os.Stdout if nil.
	stdout io.Writer
}

func (o *output) surface(dst draw.Image) (*raster.ImageSurface, error) {
	rotation, err := raster.ParseRotation(o.rotation)
	if err != nil {
		return nil, errorsGo.New(err)
	}
	return &raster.ImageSurface{Dst: dst, Rotation: rotation, Scale: o.scale}, nil
}

// write presents b on every configured output.
func (o *output) write(b *pixel.Buffer) error {
	if o.path == `` && o.device == `` && !o.sixel {
		return errorsGo.New(errNoOutput)
	}

	if o.device != `` {
		if err := o.writeDevice(b); err != nil {
			return err
		}
	}
	if o.path == `` && !o.sixel {
		return nil
	}

	img, err := o.render(b)
	if err != nil {
		return err
	}
	if o.path != `` {
		if err := writeFile(o.path, img); err != nil {
			return err
		}
	}
	if o.sixel {
		w := o.stdout
		if w == nil {
			w = os.Stdout
		}
		if err := sixel.NewEncoder(w).Encode(img); err != nil {
			return errorsGo.New(err)
		}
	}
	return nil
}

// render presents b into a new image sized for the rotation and scale.
func (o *output) render(b *pixel.Buffer) (*image.RGBA, error) {
	s, err := o.surface(nil)
	if err != nil {
		return nil, err
	}
	img := image.NewRGBA(image.Rectangle{Max: s.Size(b.Width(), b.Height())})
	s.Dst = img
	if err = raster.Present(s, b); err != nil {
		return nil, err
	}
	return img, nil
}

func (o *output) writeDevice(b *pixel.Buffer) error {
	fb, err := framebuffer.Open(o.device)
	if err != nil {
		return err
	}
	defer fb.Close()

	s, err := o.surface(fb)
	if err != nil {
		return err
	}
	fb.Clear()
	return raster.Present(s, b)
}

func writeFile(name string, img image.Image) (err error) {
	ext := strings.ToLower(filepath.Ext(name))
	if ext != `.png` && ext != `.bmp` {
		return errorsGo.Errorf("%w: %q", errFormat, ext)
	}

	f, err := os.Create(name)
	if err != nil {
		return errorsGo.New(err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errorsGo.New(cerr)
		}
	}()
	return encode(f, img, ext)
}

func encode(w io.Writer, img image.Image, ext string) error {
	var err error
	switch ext {
	case `.png`:
		err = png.Encode(w, img)
	case `.bmp`:
		err = bmp.Encode(w, img)
	default:
		return errorsGo.Errorf("%w: %q", errFormat, ext)
	}
	if err != nil {
		return errorsGo.New(err)
	}
	return nil
}
