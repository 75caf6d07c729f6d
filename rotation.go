package raster

import (
	"fmt"
	"strings"

	"github.com/BeatGlow/raster/pixel"
)

// Rotation defines pixel rotation.
type Rotation uint8

// Supported rotations.
const (
	NoRotation Rotation = iota
	Rotate90            // Rotate 90° clock wise
	Rotate180           // Rotate 180°
	Rotate270           // Rotate 270° clock wise
)

func (r Rotation) String() string {
	switch r % 4 {
	case Rotate90:
		return "90°"
	case Rotate180:
		return "180°"
	case Rotate270:
		return "270°"
	default:
		return "0°"
	}
}

// ParseRotation accepts the angles 0, 90, 180 and 270, with or without a
// trailing degree sign, and the names right, flip and left.
func ParseRotation(s string) (Rotation, error) {
	switch strings.ToLower(strings.TrimSuffix(strings.TrimSpace(s), "°")) {
	case "", "no", "0":
		return NoRotation, nil
	case "90", "right", "cw":
		return Rotate90, nil
	case "180", "flip":
		return Rotate180, nil
	case "270", "left", "ccw":
		return Rotate270, nil
	default:
		return NoRotation, fmt.Errorf("raster: invalid rotation %q", s)
	}
}

// Rotate returns the w×h pixels in pix rotated by r, and the rotated size.
// Without rotation pix is returned as is.
func (r Rotation) Rotate(pix []pixel.Pixel, w, h int) (out []pixel.Pixel, rw, rh int) {
	r %= 4
	if r == NoRotation {
		return pix, w, h
	}

	rw, rh = w, h
	if r != Rotate180 {
		rw, rh = h, w
	}
	out = make([]pixel.Pixel, len(pix))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var dx, dy int
			switch r {
			case Rotate90:
				dx, dy = h-1-y, x
			case Rotate180:
				dx, dy = w-1-x, h-1-y
			case Rotate270:
				dx, dy = y, w-1-x
			}
			out[dy*rw+dx] = pix[y*w+x]
		}
	}
	return out, rw, rh
}
