package app

import (
	"context"
	"io"
	"log/slog"

	"spincube/hal"
	"spincube/internal/buildinfo"
)

// New bootstraps the scene on h's display and returns the animator that
// drives it.
func New(h hal.HAL, cfg Config) (*Animator, error) {
	log := loggerOf(cfg)

	disp := h.Display()
	var fb hal.Framebuffer
	ratio := 1.0
	if disp != nil {
		fb = disp.Framebuffer()
		ratio = disp.PixelRatio()
	}

	c, err := Bootstrap(fb, ratio, cfg)
	if err != nil {
		log.Error("bootstrap failed", "error", err)
		return nil, err
	}
	bw, bh := c.Renderer.DrawingBufferSize()
	log.Info("bootstrap",
		"build", buildinfo.Short(),
		"width", Width, "height", Height,
		"buffer_w", bw, "buffer_h", bh,
		"pixel_ratio", c.Renderer.PixelRatio(),
		"antialias", cfg.Antialias,
		"format", fb.Format(),
	)
	return NewAnimator(c, cfg), nil
}

// Run bootstraps and animates forever on h's own frame source. It is the
// entry point for targets without a host runner (TinyGo, browser) and never
// returns. A failure is logged and left on screen when possible.
func Run(h hal.HAL, cfg Config) {
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(hal.LogWriter(h.Logger()), nil))
	}
	a, err := New(h, cfg)
	if err == nil {
		err = a.Run(context.Background(), h.Frames())
	}
	showFatal(h, err)
	select {}
}

func loggerOf(cfg Config) *slog.Logger {
	if cfg.Logger != nil {
		return cfg.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
