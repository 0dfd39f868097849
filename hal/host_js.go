//go:build js && wasm && !tinygo

package hal

import (
	"context"
	"strconv"
	"syscall/js"
)

// MountID is the id of the document element the canvas is appended to.
const MountID = "app"

type jsHAL struct {
	logger jsLogger
	fb     *canvasFramebuffer
	ratio  float64
	frames *animationFrames
}

// New returns a browser HAL. The canvas is created inside the element with
// id MountID; without that element the display has no framebuffer.
func New() HAL {
	h := &jsHAL{
		logger: jsLogger{console: js.Global().Get("console")},
		ratio:  1,
		frames: newAnimationFrames(),
	}
	if r := js.Global().Get("devicePixelRatio"); r.Type() == js.TypeNumber && r.Float() > 0 {
		h.ratio = r.Float()
	}

	doc := js.Global().Get("document")
	mount := doc.Call("getElementById", MountID)
	if mount.IsNull() || mount.IsUndefined() {
		return h
	}
	canvas := doc.Call("createElement", "canvas")
	mount.Call("appendChild", canvas)
	h.fb = newCanvasFramebuffer(canvas, h.ratio)
	return h
}

func (h *jsHAL) Logger() Logger   { return h.logger }
func (h *jsHAL) Display() Display { return jsDisplay{fb: h.fb, ratio: h.ratio} }
func (h *jsHAL) Frames() Frames   { return h.frames }

type jsDisplay struct {
	fb    *canvasFramebuffer
	ratio float64
}

func (d jsDisplay) Framebuffer() Framebuffer {
	if d.fb == nil {
		return nil
	}
	return d.fb
}

func (d jsDisplay) PixelRatio() float64 { return d.ratio }

type jsLogger struct {
	console js.Value
}

func (l jsLogger) WriteLineString(s string) { l.console.Call("log", s) }
func (l jsLogger) WriteLineBytes(b []byte)  { l.console.Call("log", string(b)) }

// canvasFramebuffer keeps RGBA pixels in Go memory and uploads them to a
// 2D canvas context on Present.
type canvasFramebuffer struct {
	*MemoryFramebuffer

	canvas js.Value
	ctx2d  js.Value
	ratio  float64

	// Reallocated on resize.
	bytes js.Value
	image js.Value
}

func newCanvasFramebuffer(canvas js.Value, ratio float64) *canvasFramebuffer {
	mem, err := NewMemoryFramebuffer(PixelFormatRGBA8888, 1, 1)
	if err != nil {
		panic(err)
	}
	fb := &canvasFramebuffer{
		MemoryFramebuffer: mem,
		canvas:            canvas,
		ctx2d:             canvas.Call("getContext", "2d"),
		ratio:             ratio,
	}
	fb.Resize(1, 1)
	return fb
}

// Resize sets the canvas backing store to w×h device pixels and its CSS box
// to the matching logical size.
func (f *canvasFramebuffer) Resize(w, h int) error {
	if err := f.MemoryFramebuffer.Resize(w, h); err != nil {
		return err
	}
	f.canvas.Set("width", w)
	f.canvas.Set("height", h)
	style := f.canvas.Get("style")
	style.Set("width", strconv.Itoa(int(float64(w)/f.ratio+0.5))+"px")
	style.Set("height", strconv.Itoa(int(float64(h)/f.ratio+0.5))+"px")

	n := w * h * 4
	f.bytes = js.Global().Get("Uint8Array").New(n)
	clamped := js.Global().Get("Uint8ClampedArray").New(f.bytes.Get("buffer"), 0, n)
	f.image = js.Global().Get("ImageData").New(clamped, w, h)
	return nil
}

func (f *canvasFramebuffer) Present() error {
	js.CopyBytesToJS(f.bytes, f.Buffer())
	f.ctx2d.Call("putImageData", f.image, 0, 0)
	return f.MemoryFramebuffer.Present()
}

// animationFrames waits on window.requestAnimationFrame.
type animationFrames struct {
	*signalFrames
	cb js.Func
}

func newAnimationFrames() *animationFrames {
	f := &animationFrames{signalFrames: newSignalFrames()}
	f.cb = js.FuncOf(func(this js.Value, args []js.Value) any {
		f.signal()
		return nil
	})
	return f
}

func (f *animationFrames) Next(ctx context.Context) error {
	js.Global().Call("requestAnimationFrame", f.cb)
	return f.signalFrames.Next(ctx)
}
