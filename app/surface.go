package app

import (
	"fmt"

	"spincube/gfx"
	"spincube/hal"
)

// fbSurface lets the renderer draw into a hal.Framebuffer.
type fbSurface struct {
	fb  hal.Framebuffer
	tgt gfx.Target

	// overlay, if set, is drawn over the frame right before it is presented.
	overlay func(t gfx.Target)
}

func newFramebufferSurface(fb hal.Framebuffer) (*fbSurface, error) {
	s := &fbSurface{fb: fb}
	if err := s.bind(); err != nil {
		return nil, err
	}
	return s, nil
}

// bind points the pixel target at the framebuffer's current buffer.
func (s *fbSurface) bind() error {
	fb := s.fb
	switch fb.Format() {
	case hal.PixelFormatRGB565:
		s.tgt = &gfx.RGB565Target{Buf: fb.Buffer(), Stride: fb.StrideBytes(), W: fb.Width(), H: fb.Height()}
	case hal.PixelFormatRGBA8888:
		s.tgt = &gfx.RGBATarget{Buf: fb.Buffer(), Stride: fb.StrideBytes(), W: fb.Width(), H: fb.Height()}
	default:
		return fmt.Errorf("app: unsupported pixel format %v", fb.Format())
	}
	return nil
}

func (s *fbSurface) Size() (w, h int)               { return s.tgt.Size() }
func (s *fbSurface) SetPixel(x, y int, c gfx.Color) { s.tgt.SetPixel(x, y, c) }
func (s *fbSurface) Clear(c gfx.Color)              { s.tgt.Clear(c) }

func (s *fbSurface) Resize(w, h int) error {
	r, ok := s.fb.(hal.Resizer)
	if !ok {
		return gfx.ErrFixedSize
	}
	if err := r.Resize(w, h); err != nil {
		return err
	}
	return s.bind()
}

func (s *fbSurface) Present() error {
	if s.overlay != nil {
		s.overlay(s.tgt)
	}
	return s.fb.Present()
}
