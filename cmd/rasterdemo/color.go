package main

import (
	"errors"
	"strconv"
	"strings"

	errorsGo "github.com/go-errors/errors"

	"github.com/BeatGlow/raster/pixel"
)

var errColor = errors.New(`color is not "#rrggbb" or "#rgb"`)

// parseColor accepts hex colors with or without a leading '#' or "0x".
func parseColor(s string) (pixel.Pixel, error) {
	h := strings.TrimPrefix(strings.TrimPrefix(strings.ToLower(s), `#`), `0x`)
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return 0, errorsGo.Errorf("%w: %q", errColor, s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return 0, errorsGo.Errorf("%w: %q", errColor, s)
	}
	return pixel.Pixel(v), nil
}
