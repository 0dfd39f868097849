package app

import (
	"context"
	"errors"
	"math"
	"testing"

	"spincube/hal"
)

func newTestAnimator(t *testing.T, cfg Config) (*Animator, *hal.MemoryFramebuffer) {
	t.Helper()
	fb := newMemFB(t, hal.PixelFormatRGBA8888, 1, 1)
	c, err := Bootstrap(fb, 1, cfg)
	if err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}
	return NewAnimator(c, cfg), fb
}

func near(a, b float32) bool { return math.Abs(float64(a-b)) < 1e-4 }

func TestTickRotates(t *testing.T) {
	a, fb := newTestAnimator(t, Config{})

	const n = 20
	for i := 0; i < n; i++ {
		if err := a.Tick(); err != nil {
			t.Fatalf("Tick %d: %v", i, err)
		}
	}
	rot := a.Context().Mesh.Rotation
	if !near(rot.X, n*RotationStepX) || !near(rot.Y, n*RotationStepY) || rot.Z != 0 {
		t.Fatalf("rotation after %d ticks: have %+v, want (%v, %v, 0)", n, rot, n*RotationStepX, n*RotationStepY)
	}
	if a.Ticks() != n {
		t.Fatalf("Ticks: have %d, want %d", a.Ticks(), n)
	}
	if info := a.Context().Renderer.Info(); info.Frames != n {
		t.Fatalf("frames rendered: have %d, want %d", info.Frames, n)
	}
	if fb.Presents() != n {
		t.Fatalf("presents: have %d, want %d", fb.Presents(), n)
	}
}

func TestRunOneRenderPerFrame(t *testing.T) {
	a, fb := newTestAnimator(t, Config{})
	frames := &countFrames{n: 5}

	err := a.Run(context.Background(), frames)
	if !errors.Is(err, errNoMoreFrames) {
		t.Fatalf("Run: have %v, want %v", err, errNoMoreFrames)
	}
	if frames.calls != 6 {
		t.Fatalf("Next calls: have %d, want 6", frames.calls)
	}
	if a.Ticks() != 5 || fb.Presents() != 5 {
		t.Fatalf("ticks/presents: have %d/%d, want 5/5", a.Ticks(), fb.Presents())
	}
	rot := a.Context().Mesh.Rotation
	if !near(rot.X, 5*RotationStepX) || !near(rot.Y, 5*RotationStepY) {
		t.Fatalf("rotation: have %+v", rot)
	}
}

func TestRunKeepsGoing(t *testing.T) {
	a, _ := newTestAnimator(t, Config{})
	frames := &countFrames{n: 50}

	if err := a.Run(context.Background(), frames); !errors.Is(err, errNoMoreFrames) {
		t.Fatalf("Run: have %v", err)
	}
	if a.Ticks() != 50 {
		t.Fatalf("loop stopped early: %d ticks", a.Ticks())
	}
}

func TestRunCancelled(t *testing.T) {
	a, _ := newTestAnimator(t, Config{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := a.Run(ctx, &countFrames{n: 10}); !errors.Is(err, context.Canceled) {
		t.Fatalf("Run: have %v, want context.Canceled", err)
	}
	if a.Ticks() != 0 {
		t.Fatalf("ticks: have %d, want 0", a.Ticks())
	}
}

func TestRunRenderFailure(t *testing.T) {
	a, fb := newTestAnimator(t, Config{})
	boom := errors.New("boom")
	fb.OnPresent = func(fb *hal.MemoryFramebuffer) error {
		if fb.Presents() == 3 {
			return boom
		}
		return nil
	}

	frames := &countFrames{n: 10}
	err := a.Run(context.Background(), frames)
	if !errors.Is(err, boom) {
		t.Fatalf("Run: have %v, want %v", err, boom)
	}
	if a.Ticks() != 2 || frames.calls != 3 {
		t.Fatalf("ticks/calls: have %d/%d, want 2/3", a.Ticks(), frames.calls)
	}
}

func TestFirstFrame(t *testing.T) {
	a, fb := newTestAnimator(t, Config{})
	if err := a.Tick(); err != nil {
		t.Fatal(err)
	}
	img := hal.Image(fb)

	if c := img.RGBAAt(0, 0); c.R != 0 || c.G != 0 || c.B != 0 || c.A != 0xFF {
		t.Fatalf("corner: have %+v, want opaque black", c)
	}
	c := img.RGBAAt(Width/2, Height/2)
	if c.G < 100 || c.R != 0 || c.B != 0 {
		t.Fatalf("center: have %+v, want lit green", c)
	}
}

func TestHUD(t *testing.T) {
	white := func(cfg Config) int {
		a, fb := newTestAnimator(t, cfg)
		if err := a.Tick(); err != nil {
			t.Fatal(err)
		}
		img := hal.Image(fb)
		n := 0
		for y := 0; y < 14; y++ {
			for x := 0; x < 80; x++ {
				c := img.RGBAAt(x, y)
				if c.R == 0xFF && c.G == 0xFF && c.B == 0xFF {
					n++
				}
			}
		}
		return n
	}

	if n := white(Config{}); n != 0 {
		t.Fatalf("HUD off: have %d white pixels, want 0", n)
	}
	if n := white(Config{HUD: true}); n == 0 {
		t.Fatalf("HUD on: no text drawn")
	}
}

// angleDiff returns a-b wrapped to [-π, π].
func angleDiff(a, b float64) float64 { return math.Remainder(a-b, 2*math.Pi) }

func TestRotationLongRun(t *testing.T) {
	a, _ := newTestAnimator(t, Config{})

	// About 18.5 hours of frames at 60 Hz.
	const n = 4_000_000
	for i := 0; i < n; i++ {
		a.rotate()
	}
	rot := a.Context().Mesh.Rotation
	if d := angleDiff(float64(rot.X), n*RotationStepX); math.Abs(d) > 1e-6 {
		t.Fatalf("X after %d steps: have %v, off by %v", n, rot.X, d)
	}
	if d := angleDiff(float64(rot.Y), n*RotationStepY); math.Abs(d) > 1e-6 {
		t.Fatalf("Y after %d steps: have %v, off by %v", n, rot.Y, d)
	}
	if math.Abs(float64(rot.X)) > math.Pi+1e-6 || math.Abs(float64(rot.Y)) > math.Pi+1e-6 {
		t.Fatalf("rotation not wrapped: have %+v", rot)
	}

	prev := rot
	a.rotate()
	rot = a.Context().Mesh.Rotation
	if d := angleDiff(float64(rot.X), float64(prev.X)); math.Abs(d-RotationStepX) > 1e-6 {
		t.Fatalf("X step: have %v, want %v", d, RotationStepX)
	}
	if d := angleDiff(float64(rot.Y), float64(prev.Y)); math.Abs(d-RotationStepY) > 1e-6 {
		t.Fatalf("Y step: have %v, want %v", d, RotationStepY)
	}
}

func TestRotationFromLargeAngle(t *testing.T) {
	fb := newMemFB(t, hal.PixelFormatRGBA8888, 1, 1)
	c, err := Bootstrap(fb, 1, Config{})
	if err != nil {
		t.Fatal(err)
	}
	// A float32 this large cannot absorb a 0.005 step.
	c.Mesh.Rotation.X = 131072
	c.Mesh.Rotation.Y = 131072
	a := NewAnimator(c, Config{})

	before := c.Mesh.Rotation
	if err := a.Tick(); err != nil {
		t.Fatal(err)
	}
	after := c.Mesh.Rotation
	if d := angleDiff(float64(after.X), 131072); math.Abs(d-RotationStepX) > 1e-4 {
		t.Fatalf("X moved by %v, want %v", d, RotationStepX)
	}
	if d := angleDiff(float64(after.Y), 131072); math.Abs(d-RotationStepY) > 1e-4 {
		t.Fatalf("Y moved by %v, want %v", d, RotationStepY)
	}
	if before == after {
		t.Fatalf("rotation did not change")
	}
}
