package gfx

import (
	"errors"
	"image"
)

// Target is a minimal pixel target for software rendering.
//
// Implementations should clip out-of-bounds coordinates.
type Target interface {
	Size() (w, h int)
	SetPixel(x, y int, c Color)
	Clear(c Color)
}

// Surface is the drawable a Renderer is bound to.
type Surface interface {
	Target

	// Resize changes the pixel size of the surface. Surfaces that cannot
	// change size return ErrFixedSize.
	Resize(w, h int) error

	// Present makes the pixels written since the last Present visible.
	Present() error
}

// ErrFixedSize is returned by surfaces whose size is set by the hardware.
var ErrFixedSize = errors.New("surface has a fixed size")

// RGB565Target renders into an RGB565 framebuffer buffer.
//
// Callers provide the backing buffer and layout (stride).
type RGB565Target struct {
	Buf    []byte
	Stride int // bytes per row
	W      int
	H      int
}

func (t *RGB565Target) Size() (w, h int) { return t.W, t.H }

func (t *RGB565Target) Clear(c Color) {
	if t == nil || t.Buf == nil || t.Stride <= 0 {
		return
	}
	p := rgb565From888(c.R, c.G, c.B)
	for y := 0; y < t.H; y++ {
		row := y * t.Stride
		for x := 0; x < t.W; x++ {
			off := row + x*2
			if off < 0 || off+1 >= len(t.Buf) {
				continue
			}
			t.Buf[off] = byte(p)
			t.Buf[off+1] = byte(p >> 8)
		}
	}
}

func (t *RGB565Target) SetPixel(x, y int, c Color) {
	if t == nil || x < 0 || y < 0 || x >= t.W || y >= t.H {
		return
	}
	off := y*t.Stride + x*2
	if off < 0 || off+1 >= len(t.Buf) {
		return
	}
	p := rgb565From888(c.R, c.G, c.B)
	t.Buf[off] = byte(p)
	t.Buf[off+1] = byte(p >> 8)
}

func rgb565From888(r, g, b uint8) uint16 {
	return uint16((uint16(r>>3)&0x1F)<<11 | (uint16(g>>2)&0x3F)<<5 | (uint16(b>>3) & 0x1F))
}

// RGBATarget renders into an 8-bit RGBA buffer laid out like image.RGBA.Pix.
type RGBATarget struct {
	Buf    []byte
	Stride int // bytes per row
	W      int
	H      int
}

func (t *RGBATarget) Size() (w, h int) { return t.W, t.H }

func (t *RGBATarget) Clear(c Color) {
	if t == nil {
		return
	}
	for y := 0; y < t.H; y++ {
		for x := 0; x < t.W; x++ {
			t.SetPixel(x, y, c)
		}
	}
}

func (t *RGBATarget) SetPixel(x, y int, c Color) {
	if t == nil || x < 0 || y < 0 || x >= t.W || y >= t.H {
		return
	}
	off := y*t.Stride + x*4
	if off < 0 || off+3 >= len(t.Buf) {
		return
	}
	t.Buf[off] = c.R
	t.Buf[off+1] = c.G
	t.Buf[off+2] = c.B
	t.Buf[off+3] = c.A
}

// ImageSurface is an offscreen Surface backed by an *image.RGBA.
type ImageSurface struct {
	img      *image.RGBA
	tgt      RGBATarget
	presents int
}

// NewImageSurface returns a w×h offscreen surface.
func NewImageSurface(w, h int) *ImageSurface {
	s := &ImageSurface{}
	s.Resize(w, h)
	return s
}

func (s *ImageSurface) Size() (w, h int)           { return s.tgt.Size() }
func (s *ImageSurface) SetPixel(x, y int, c Color) { s.tgt.SetPixel(x, y, c) }
func (s *ImageSurface) Clear(c Color)              { s.tgt.Clear(c) }

func (s *ImageSurface) Resize(w, h int) error {
	if w < 0 || h < 0 {
		return errors.New("negative surface size")
	}
	s.img = image.NewRGBA(image.Rect(0, 0, w, h))
	s.tgt = RGBATarget{Buf: s.img.Pix, Stride: s.img.Stride, W: w, H: h}
	return nil
}

func (s *ImageSurface) Present() error {
	s.presents++
	return nil
}

// Image returns the backing image. It is reallocated by Resize.
func (s *ImageSurface) Image() *image.RGBA { return s.img }

// Presents returns how many times Present was called.
func (s *ImageSurface) Presents() int { return s.presents }
