//go:build !tinygo && !js && cgo

package hal

import (
	"context"
	"errors"
	"math"

	"spincube/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunWindow opens a desktop window showing the framebuffer and runs the
// animation loop on its own goroutine, one frame per window refresh.
// It blocks until the window closes or run returns.
func RunWindow(ctx context.Context, h HAL, run func(context.Context, Frames) error) error {
	hh, ok := h.(*hostHAL)
	if !ok || hh.window == nil {
		return errors.New("hal: RunWindow needs a HAL from New")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g := &hostGame{fb: hh.fb, frames: hh.window, done: make(chan error, 1)}
	go func() { g.done <- run(ctx, hh.window) }()

	w, hgt := hh.fb.size()
	ebiten.SetWindowTitle("spincube (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(logical(w, hh.ratio), logical(hgt, hh.ratio))
	ebiten.SetTPS(ebiten.SyncWithFPS)

	err := ebiten.RunGame(g)
	cancel()
	if !g.finished {
		g.err = <-g.done
	}
	if err != nil {
		return err
	}
	if errors.Is(g.err, context.Canceled) || errors.Is(g.err, ErrStopped) {
		return nil
	}
	return g.err
}

func logical(px int, ratio float64) int {
	if ratio <= 0 {
		return px
	}
	return int(math.Round(float64(px) / ratio))
}

func deviceScale() float64 {
	if m := ebiten.Monitor(); m != nil {
		if s := m.DeviceScaleFactor(); s > 0 {
			return s
		}
	}
	return 1
}

type hostGame struct {
	fb     *hostFramebuffer
	frames *signalFrames

	done     chan error
	finished bool
	err      error

	pix   []byte
	fbImg *ebiten.Image
}

func (g *hostGame) Update() error {
	select {
	case err := <-g.done:
		g.finished = true
		g.err = err
		return ebiten.Termination
	default:
	}
	g.frames.signal()
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	var w, h int
	g.pix, w, h = g.fb.snapshot(g.pix)
	if w == 0 || h == 0 || len(g.pix) < w*h*4 {
		return
	}
	if g.fbImg == nil || g.fbImg.Bounds().Dx() != w || g.fbImg.Bounds().Dy() != h {
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(w, h)
	}
	g.fbImg.WritePixels(g.pix[:w*h*4])
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.fb.size()
}
