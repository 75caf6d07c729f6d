// Package raster paints lines, circles, rectangles, bitmap text and simple
// charts into in-memory pixel buffers.
//
// Drawing happens in the subpackages: [pixel] holds the buffer, [draw] the
// primitives, [font] the glyph table, [chart] the plotter and [shape] the
// hit-testable shapes. This package connects finished buffers to whatever
// displays them through the [Surface] interface.
package raster

import (
	"errors"
	"log/slog"

	goerrors "github.com/go-errors/errors"

	"github.com/BeatGlow/raster/internal/logx"
	"github.com/BeatGlow/raster/pixel"
)

// Errors
var (
	ErrSize = errors.New("raster: pixel data does not match size")
)

// Surface receives finished frames as row-major pixels, w*h long.
type Surface interface {
	Present(pix []pixel.Pixel, w, h int) error
}

// SurfaceFunc is a function that implements [Surface].
type SurfaceFunc func(pix []pixel.Pixel, w, h int) error

func (f SurfaceFunc) Present(pix []pixel.Pixel, w, h int) error {
	return f(pix, w, h)
}

// Present hands the contents of b to s.
func Present(s Surface, b *pixel.Buffer) error {
	return s.Present(b.Pix, b.Width(), b.Height())
}

// CheckSize returns an error wrapping [ErrSize] unless pix holds exactly w*h
// pixels.
func CheckSize(pix []pixel.Pixel, w, h int) error {
	if w < 0 || h < 0 || len(pix) != w*h {
		return goerrors.Errorf("%w: %d pixels for %dx%d", ErrSize, len(pix), w, h)
	}
	return nil
}

// SetLogger sets the logger used by all packages of this module. By default
// nothing is logged; passing nil restores that.
func SetLogger(l *slog.Logger) {
	logx.Set(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return logx.Logger()
}
