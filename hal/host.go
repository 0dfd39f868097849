//go:build !tinygo && !js

package hal

import (
	"fmt"
	"os"
	"sync"
)

type hostHAL struct {
	logger *hostLogger
	fb     *hostFramebuffer
	ratio  float64
	frames Frames

	// window is set when frames come from the desktop window.
	window *signalFrames
}

// New returns a host HAL whose frames are paced by the desktop window.
// Use it together with RunWindow.
func New() HAL {
	win := newSignalFrames()
	h := newHostHAL(win, deviceScale())
	h.window = win
	return h
}

func newHostHAL(frames Frames, ratio float64) *hostHAL {
	return &hostHAL{
		logger: &hostLogger{w: os.Stdout},
		fb:     newHostFramebuffer(320, 320),
		ratio:  ratio,
		frames: frames,
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb, ratio: h.ratio} }
func (h *hostHAL) Frames() Frames   { return h.frames }

type hostDisplay struct {
	fb    *hostFramebuffer
	ratio float64
}

func (d hostDisplay) Framebuffer() Framebuffer {
	if d.fb == nil {
		return nil
	}
	return d.fb
}

func (d hostDisplay) PixelRatio() float64 { return d.ratio }

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
