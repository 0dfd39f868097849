package gfx

// Color is an RGBA color in 8-bit channels.
type Color struct {
	R, G, B, A uint8
}

func RGB(r, g, b uint8) Color     { return Color{R: r, G: g, B: b, A: 0xFF} }
func RGBA(r, g, b, a uint8) Color { return Color{R: r, G: g, B: b, A: a} }

// Hex returns the opaque color encoded as 0xRRGGBB.
func Hex(hex uint32) Color {
	return RGB(uint8(hex>>16), uint8(hex>>8), uint8(hex))
}

// Hex returns c encoded as 0xRRGGBB. Alpha is dropped.
func (c Color) Hex() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// rgb returns the color channels in 0..1.
func (c Color) rgb() [3]float32 {
	return [3]float32{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255}
}

// colorFromRGB clamps rgb to 0..1 and rebuilds an opaque-alpha Color.
func colorFromRGB(rgb [3]float32, a uint8) Color {
	ch := func(v float32) uint8 { return uint8(Clamp01(v)*255 + 0.5) }
	return Color{R: ch(rgb[0]), G: ch(rgb[1]), B: ch(rgb[2]), A: a}
}
