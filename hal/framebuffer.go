package hal

import "fmt"

// MemoryFramebuffer is a resizable framebuffer backed by a byte slice.
type MemoryFramebuffer struct {
	w      int
	h      int
	format PixelFormat
	buf    []byte

	presents uint64

	// OnPresent, if set, receives the framebuffer on every Present.
	OnPresent func(fb *MemoryFramebuffer) error
}

// NewMemoryFramebuffer allocates a w×h framebuffer in the given format.
func NewMemoryFramebuffer(format PixelFormat, w, h int) (*MemoryFramebuffer, error) {
	if format.BytesPerPixel() == 0 {
		return nil, fmt.Errorf("framebuffer: unsupported pixel format %d", format)
	}
	fb := &MemoryFramebuffer{format: format}
	if err := fb.Resize(w, h); err != nil {
		return nil, err
	}
	return fb, nil
}

func (f *MemoryFramebuffer) Width() int          { return f.w }
func (f *MemoryFramebuffer) Height() int         { return f.h }
func (f *MemoryFramebuffer) Format() PixelFormat { return f.format }
func (f *MemoryFramebuffer) StrideBytes() int    { return f.w * f.format.BytesPerPixel() }
func (f *MemoryFramebuffer) Buffer() []byte      { return f.buf }

// Presents returns how many times Present has been called.
func (f *MemoryFramebuffer) Presents() uint64 { return f.presents }

// Resize reallocates the buffer. Contents are not preserved.
func (f *MemoryFramebuffer) Resize(w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("framebuffer: invalid size %dx%d", w, h)
	}
	n := w * h * f.format.BytesPerPixel()
	if cap(f.buf) >= n {
		f.buf = f.buf[:n]
		clear(f.buf)
	} else {
		f.buf = make([]byte, n)
	}
	f.w, f.h = w, h
	return nil
}

func (f *MemoryFramebuffer) ClearRGB(r, g, b uint8) {
	fillRGB(f.buf, f.format, r, g, b)
}

func (f *MemoryFramebuffer) Present() error {
	f.presents++
	if f.OnPresent != nil {
		return f.OnPresent(f)
	}
	return nil
}

func fillRGB(buf []byte, format PixelFormat, r, g, b uint8) {
	switch format {
	case PixelFormatRGB565:
		pixel := rgb565(r, g, b)
		lo := byte(pixel)
		hi := byte(pixel >> 8)
		for i := 0; i+1 < len(buf); i += 2 {
			buf[i] = lo
			buf[i+1] = hi
		}
	case PixelFormatRGBA8888:
		for i := 0; i+3 < len(buf); i += 4 {
			buf[i] = r
			buf[i+1] = g
			buf[i+2] = b
			buf[i+3] = 0xFF
		}
	}
}
