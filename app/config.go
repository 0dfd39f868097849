package app

import "log/slog"

// Output size in logical pixels.
const (
	Width  = 640
	Height = 480
)

// Rotation added to the cube every frame, in radians.
const (
	RotationStepX = 0.005
	RotationStepY = 0.01
)

const (
	cameraFOV  = 70
	cameraNear = 1
	cameraFar  = 1000
	cameraZ    = 400

	skyColor    = 0xbbbbff
	groundColor = 0x444422
	lightY      = 1000

	cubeSize  = 200
	cubeColor = 0x00ff00
)

// Config holds the runtime options of the app.
type Config struct {
	// Antialias enables 2x2 supersampling.
	Antialias bool

	// HUD draws the build id and frame counter over the scene.
	HUD bool

	// Logger receives app and renderer logs. Nil discards them.
	Logger *slog.Logger
}

// DefaultConfig returns the configuration used when no flags are given.
func DefaultConfig() Config {
	return Config{Antialias: true}
}

// BoardConfig is DefaultConfig for microcontrollers. Supersampling is off:
// its color buffer does not fit in a Pico's RAM.
func BoardConfig() Config {
	cfg := DefaultConfig()
	cfg.Antialias = false
	return cfg
}
