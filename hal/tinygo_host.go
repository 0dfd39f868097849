//go:build tinygo && !baremetal

package hal

type tinyGoHostHAL struct {
	logger *tinyGoHostLogger
	fb     *MemoryFramebuffer
	frames *TickerFrames
}

// New returns a TinyGo-on-host HAL implementation.
//
// This is used by `tinygo run` targets like linux/wasm where there is no MCU
// pin mapping. Frames tick at 60 Hz into an in-memory RGB565 framebuffer.
func New() HAL {
	fb, err := NewMemoryFramebuffer(PixelFormatRGB565, 320, 320)
	if err != nil {
		panic(err)
	}
	frames, err := NewTickerFrames(60, 0)
	if err != nil {
		panic(err)
	}
	return &tinyGoHostHAL{
		logger: &tinyGoHostLogger{},
		fb:     fb,
		frames: frames,
	}
}

func (h *tinyGoHostHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHostHAL) Display() Display { return tinyGoHostDisplay{fb: h.fb} }
func (h *tinyGoHostHAL) Frames() Frames   { return h.frames }

type tinyGoHostDisplay struct {
	fb *MemoryFramebuffer
}

func (d tinyGoHostDisplay) Framebuffer() Framebuffer { return d.fb }
func (d tinyGoHostDisplay) PixelRatio() float64      { return 1 }

type tinyGoHostLogger struct{}

func (l *tinyGoHostLogger) WriteLineString(s string) {
	println(s)
}

func (l *tinyGoHostLogger) WriteLineBytes(b []byte) {
	println(string(b))
}
