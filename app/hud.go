package app

import (
	"image/color"
	"strconv"

	"spincube/gfx"
	"spincube/internal/buildinfo"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// hud is a two-line text overlay in the top-left corner.
type hud struct {
	font  tinyfont.Fonter
	color color.RGBA
	lines [2]string
}

func newHUD() *hud {
	return &hud{
		font:  &tinyfont.TomThumb,
		color: color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
		lines: [2]string{"spincube " + buildinfo.Short(), ""},
	}
}

func (h *hud) update(frame uint64, triangles int) {
	h.lines[1] = "frame " + strconv.FormatUint(frame, 10) + "  tris " + strconv.Itoa(triangles)
}

func (h *hud) draw(t gfx.Target) {
	d := targetDisplayer{t: t}
	y := int16(tinyfont.TomThumb.YAdvance)
	for _, line := range h.lines {
		if line == "" {
			continue
		}
		tinyfont.WriteLine(d, h.font, 2, y, line, h.color)
		y += int16(tinyfont.TomThumb.YAdvance)
	}
}

var _ drivers.Displayer = targetDisplayer{}

// targetDisplayer lets tinyfont draw into a gfx.Target.
type targetDisplayer struct {
	t gfx.Target
}

func (d targetDisplayer) Size() (x, y int16) {
	w, h := d.t.Size()
	return int16(w), int16(h)
}

func (d targetDisplayer) SetPixel(x, y int16, c color.RGBA) {
	d.t.SetPixel(int(x), int(y), gfx.RGBA(c.R, c.G, c.B, 0xFF))
}

func (d targetDisplayer) Display() error { return nil }
