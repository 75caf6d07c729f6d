// Package pixel implements the packed 24-bit RGB pixel buffer that all drawing
// in this module targets.
//
// [Pixel] values are plain integers (0xRRGGBB) that also satisfy [color.Color],
// so a [Buffer] can be used anywhere an [image.Image] or [draw.Image] is expected.
// The 15- and 16-bit images in this package exist to convert buffers into the
// formats used by display hardware and framebuffer devices.
package pixel
