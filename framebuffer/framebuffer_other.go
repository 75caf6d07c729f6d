//go:build !linux

package framebuffer

// Open always fails with [ErrNotSupported] on this platform.
func Open(_ string) (*FrameBuffer, error) {
	return nil, ErrNotSupported
}
