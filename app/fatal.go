package app

import (
	"image/color"
	"strings"
	"unicode/utf8"

	"spincube/gfx"
	"spincube/hal"

	"tinygo.org/x/tinyfont"
)

// showFatal reports err on the logger and, when there is a framebuffer,
// paints it on screen.
func showFatal(h hal.HAL, err error) {
	if err == nil {
		return
	}
	if l := h.Logger(); l != nil {
		l.WriteLineString("spincube: " + err.Error())
	}
	disp := h.Display()
	if disp == nil {
		return
	}
	if fb := disp.Framebuffer(); fb != nil {
		_ = renderFatal(fb, err)
	}
}

// renderFatal draws err as wrapped black text on white and presents fb.
func renderFatal(fb hal.Framebuffer, err error) error {
	s, serr := newFramebufferSurface(fb)
	if serr != nil {
		return serr
	}
	s.Clear(gfx.RGB(0xFF, 0xFF, 0xFF))

	font := &tinyfont.TomThumb
	lineH := int16(font.YAdvance)
	_, outboxWidth := tinyfont.LineWidth(font, "0")
	charW := int16(outboxWidth)
	if charW <= 0 || lineH <= 0 {
		return fb.Present()
	}

	w, h := s.Size()
	cols := int16(w-4) / charW
	if cols <= 0 {
		cols = 1
	}
	d := targetDisplayer{t: s}
	fg := color.RGBA{A: 0xFF}

	y := lineH
	for _, line := range append([]string{"fatal:"}, strings.Split(err.Error(), ": ")...) {
		for len(line) > 0 {
			if y > int16(h) {
				return fb.Present()
			}
			chunk, rest := takeRunes(line, cols)
			tinyfont.WriteLine(d, font, 2, y, chunk, fg)
			y += lineH
			line = strings.TrimLeft(rest, " ")
		}
	}
	return fb.Present()
}

func takeRunes(s string, n int16) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if int64(len(s)) <= int64(n) {
		return s, ""
	}
	var i int
	var count int16
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
