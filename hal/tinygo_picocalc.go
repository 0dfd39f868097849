//go:build tinygo && baremetal && picocalc

package hal

// PicoCalc panel geometry.
const (
	picoCalcWidth  = 320
	picoCalcHeight = 320

	// Dirty rows closer than this are sent as one band; a window change
	// costs about as much as a few rows of pixels.
	picoCalcRowGap = 4
)

// New returns the PicoCalc HAL (Pico or Pico 2 on the PicoCalc carrier)
// drawing to its 320x320 ILI9488 panel.
func New() HAL {
	h := newBoardHAL()
	fb, err := newPicoCalcFramebuffer()
	if err != nil {
		h.logger.WriteLineString("hal: display: " + err.Error())
		return h
	}
	h.fb = fb
	return h
}

// picoCalcFramebuffer is a fixed-size RGB565 frame in RAM. Present sends
// only the row bands that changed since the previous Present, so the
// letterbox bars around the scene go out once.
type picoCalcFramebuffer struct {
	buf  []byte
	lcd  *ili9488
	rows *rowTracker
}

func newPicoCalcFramebuffer() (*picoCalcFramebuffer, error) {
	lcd, err := initILI9488(picoCalcWidth)
	if err != nil {
		return nil, err
	}
	return &picoCalcFramebuffer{
		buf:  make([]byte, picoCalcWidth*picoCalcHeight*2),
		lcd:  lcd,
		rows: newRowTracker(picoCalcHeight, picoCalcRowGap),
	}, nil
}

func (f *picoCalcFramebuffer) Width() int          { return picoCalcWidth }
func (f *picoCalcFramebuffer) Height() int         { return picoCalcHeight }
func (f *picoCalcFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *picoCalcFramebuffer) StrideBytes() int    { return picoCalcWidth * 2 }
func (f *picoCalcFramebuffer) Buffer() []byte      { return f.buf }

func (f *picoCalcFramebuffer) ClearRGB(r, g, b uint8) {
	fillRGB(f.buf, PixelFormatRGB565, r, g, b)
}

func (f *picoCalcFramebuffer) Present() error {
	for _, s := range f.rows.dirty(f.buf, f.StrideBytes()) {
		if err := f.lcd.blitRows(f.buf, s.y0, s.y1); err != nil {
			// The panel may hold a partial frame now.
			f.rows.invalidate()
			return err
		}
	}
	return nil
}
