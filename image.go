package raster

import (
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"

	"github.com/BeatGlow/raster/pixel"
)

// ImageSurface presents frames into an image, such as an [image.RGBA] that is
// encoded to a file later or the back buffer of a window.
type ImageSurface struct {
	// Dst receives the frames.
	Dst draw.Image

	// Origin is where the top-left pixel of a frame lands in Dst.
	Origin image.Point

	// Rotation is applied before scaling.
	Rotation Rotation

	// Scale is the integer magnification, 1 if zero or negative.
	Scale int
}

// NewImageSurface returns a surface drawing into dst at its origin.
func NewImageSurface(dst draw.Image) *ImageSurface {
	return &ImageSurface{Dst: dst, Origin: dst.Bounds().Min}
}

// Size returns the size a w×h frame covers in Dst once rotated and scaled.
func (s *ImageSurface) Size(w, h int) image.Point {
	if s.Rotation%2 == 1 {
		w, h = h, w
	}
	scale := max(s.Scale, 1)
	return image.Pt(w*scale, h*scale)
}

// Present copies the frame into Dst, clipped to its bounds.
func (s *ImageSurface) Present(pix []pixel.Pixel, w, h int) error {
	if err := CheckSize(pix, w, h); err != nil {
		return err
	}

	pix, w, h = s.Rotation.Rotate(pix, w, h)
	src := &pixel.Buffer{
		Rect:   image.Rect(0, 0, w, h),
		Pix:    pix,
		Stride: w,
	}
	scale := max(s.Scale, 1)
	dr := image.Rectangle{Min: s.Origin, Max: s.Origin.Add(image.Pt(w*scale, h*scale))}

	if scale == 1 {
		draw.Draw(s.Dst, dr, src, image.Point{}, draw.Src)
	} else {
		xdraw.NearestNeighbor.Scale(s.Dst, dr, src, src.Bounds(), xdraw.Src, nil)
	}

	Logger().Debug("raster: present",
		"size", image.Pt(w, h),
		"rotation", s.Rotation.String(),
		"scale", scale)
	return nil
}

var _ Surface = (*ImageSurface)(nil)
