package hal

import (
	"context"
	"errors"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var (
	ErrNotImplemented = errors.New("not implemented")

	// ErrStopped is returned by a bounded frame source once it is exhausted.
	ErrStopped = errors.New("frames stopped")
)

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp little-endian: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
	// PixelFormatRGBA8888 is 32bpp, bytes in R, G, B, A order.
	PixelFormatRGBA8888
)

// BytesPerPixel returns the pixel size of f, or 0 for an unknown format.
func (f PixelFormat) BytesPerPixel() int {
	switch f {
	case PixelFormatRGB565:
		return 2
	case PixelFormatRGBA8888:
		return 4
	}
	return 0
}

func (f PixelFormat) String() string {
	switch f {
	case PixelFormatRGB565:
		return "rgb565"
	case PixelFormatRGBA8888:
		return "rgba8888"
	}
	return "unknown"
}

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// Resizer is implemented by framebuffers whose size can change.
// Buffer must be fetched again after a successful Resize.
type Resizer interface {
	Resize(w, h int) error
}

// Display provides access to the framebuffer (if available).
type Display interface {
	// Framebuffer returns nil when the platform has nothing to draw on.
	Framebuffer() Framebuffer
	// PixelRatio is the number of device pixels per logical pixel.
	PixelRatio() float64
}

// Frames paces the application to the display refresh.
type Frames interface {
	// Next blocks until the next frame is due. It returns ctx.Err() when ctx
	// is done and ErrStopped when the source has no more frames.
	Next(ctx context.Context) error
}

// HAL provides the only contact point between the app and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Frames() Frames
}
