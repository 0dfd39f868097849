package hal

import "image"

func rgb565(r, g, b uint8) uint16 {
	rr := uint16(r>>3) & 0x1F
	gg := uint16(g>>2) & 0x3F
	bb := uint16(b>>3) & 0x1F
	return (rr << 11) | (gg << 5) | bb
}

func rgb888From565(p uint16) (r, g, b uint8) {
	rr := (p >> 11) & 0x1F
	gg := (p >> 5) & 0x3F
	bb := p & 0x1F

	r = uint8((uint32(rr) * 255) / 31)
	g = uint8((uint32(gg) * 255) / 63)
	b = uint8((uint32(bb) * 255) / 31)
	return r, g, b
}

// Image copies the framebuffer contents into a new RGBA image.
// It returns nil for a nil framebuffer or an unknown pixel format.
func Image(fb Framebuffer) *image.RGBA {
	if fb == nil {
		return nil
	}
	w, h := fb.Width(), fb.Height()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if !copyRGBA(img.Pix, fb.Buffer(), fb.Format(), w, h, fb.StrideBytes()) {
		return nil
	}
	return img
}

// copyRGBA converts w×h pixels of src into tightly packed RGBA in dst.
func copyRGBA(dst, src []byte, format PixelFormat, w, h, stride int) bool {
	bpp := format.BytesPerPixel()
	if bpp == 0 {
		return false
	}
	for y := 0; y < h; y++ {
		row := y * stride
		if row+w*bpp > len(src) {
			break
		}
		for x := 0; x < w; x++ {
			i := row + x*bpp
			j := (y*w + x) * 4
			switch format {
			case PixelFormatRGB565:
				r, g, b := rgb888From565(uint16(src[i]) | uint16(src[i+1])<<8)
				dst[j+0] = r
				dst[j+1] = g
				dst[j+2] = b
				dst[j+3] = 0xFF
			case PixelFormatRGBA8888:
				copy(dst[j:j+4], src[i:i+4])
			}
		}
	}
	return true
}
