//go:build !tinygo && !js

package hal

import "sync"

// hostFramebuffer is drawn into by the app goroutine and read by the window.
// Present publishes the back buffer to a front copy under mu.
type hostFramebuffer struct {
	*MemoryFramebuffer

	mu     sync.Mutex
	front  []byte
	frontW int
	frontH int
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	mem, err := NewMemoryFramebuffer(PixelFormatRGBA8888, width, height)
	if err != nil {
		panic(err)
	}
	return &hostFramebuffer{MemoryFramebuffer: mem}
}

func (f *hostFramebuffer) Present() error {
	f.mu.Lock()
	f.front = append(f.front[:0], f.Buffer()...)
	f.frontW, f.frontH = f.Width(), f.Height()
	f.mu.Unlock()
	return f.MemoryFramebuffer.Present()
}

func (f *hostFramebuffer) Resize(w, h int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.MemoryFramebuffer.Resize(w, h)
}

// snapshot copies the last presented frame into dst, growing it as needed.
func (f *hostFramebuffer) snapshot(dst []byte) ([]byte, int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	dst = append(dst[:0], f.front...)
	return dst, f.frontW, f.frontH
}

// size returns the size of the back buffer.
func (f *hostFramebuffer) size() (int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Width(), f.Height()
}
