package hal

import (
	"context"
	"fmt"
	"time"
)

// TickerFrames delivers frames at a fixed rate from a time.Ticker.
type TickerFrames struct {
	d     time.Duration
	limit uint64
	n     uint64
	t     *time.Ticker

	// OnFrame, if set, is called with the running frame count after each
	// delivered frame.
	OnFrame func(n uint64)
}

// NewTickerFrames returns a source ticking hz times per second. A non-zero
// limit makes Next return ErrStopped after that many frames.
func NewTickerFrames(hz int, limit uint64) (*TickerFrames, error) {
	if hz <= 0 {
		return nil, fmt.Errorf("invalid frame rate: %d hz", hz)
	}
	d := time.Second / time.Duration(hz)
	if d <= 0 {
		return nil, fmt.Errorf("invalid frame rate: %d hz", hz)
	}
	return &TickerFrames{d: d, limit: limit}, nil
}

// Next waits for the next tick.
func (f *TickerFrames) Next(ctx context.Context) error {
	if f.limit > 0 && f.n >= f.limit {
		return ErrStopped
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if f.t == nil {
		f.t = time.NewTicker(f.d)
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-f.t.C:
	}
	f.n++
	if f.OnFrame != nil {
		f.OnFrame(f.n)
	}
	return nil
}

// Count returns the number of frames delivered so far.
func (f *TickerFrames) Count() uint64 { return f.n }

// Stop releases the ticker. Next restarts it.
func (f *TickerFrames) Stop() {
	if f.t != nil {
		f.t.Stop()
		f.t = nil
	}
}

// signalFrames turns an external refresh callback into frames. signal never
// blocks; refreshes that arrive while nobody waits collapse into one.
type signalFrames struct {
	ch chan struct{}
}

func newSignalFrames() *signalFrames {
	return &signalFrames{ch: make(chan struct{}, 1)}
}

func (f *signalFrames) signal() {
	select {
	case f.ch <- struct{}{}:
	default:
	}
}

func (f *signalFrames) Next(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-f.ch:
		return nil
	}
}
