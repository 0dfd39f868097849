//go:build !tinygo && !js

package hal

import (
	"context"
	"errors"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Hz    int
	Ticks uint64

	// OnFrame is forwarded to the ticker frame source.
	OnFrame func(n uint64)
}

// NewHeadless returns a host HAL whose frames come from a ticker at cfg.Hz
// (60 when unset). The framebuffer is never shown.
func NewHeadless(cfg HeadlessConfig) (HAL, error) {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	frames, err := NewTickerFrames(cfg.Hz, cfg.Ticks)
	if err != nil {
		return nil, err
	}
	frames.OnFrame = cfg.OnFrame

	return newHostHAL(frames, 1), nil
}

// RunHeadless runs the animation loop on the calling goroutine. Reaching the
// configured tick limit is a normal exit.
func RunHeadless(ctx context.Context, h HAL, run func(context.Context, Frames) error) error {
	frames := h.Frames()
	if tf, ok := frames.(*TickerFrames); ok {
		defer tf.Stop()
	}
	err := run(ctx, frames)
	if errors.Is(err, ErrStopped) {
		return nil
	}
	return err
}
