//go:build !tinygo && !js && !cgo

package hal

import (
	"context"
	"errors"
)

func RunWindow(_ context.Context, _ HAL, _ func(context.Context, Frames) error) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}

func deviceScale() float64 { return 1 }
