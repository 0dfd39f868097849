package app

import (
	"context"
	"log/slog"
	"math"

	"spincube/hal"
)

// Animator advances and renders a Context once per frame.
type Animator struct {
	ctx   *Context
	hud   *hud
	log   *slog.Logger
	ticks uint64

	// Cube angles in float64, wrapped to [-π, π]. The mesh gets a float32 copy.
	rotX, rotY float64
}

// NewAnimator returns an animator owning c. The HUD overlay is installed on
// c's surface when cfg.HUD is set.
func NewAnimator(c *Context, cfg Config) *Animator {
	a := &Animator{
		ctx:  c,
		log:  loggerOf(cfg),
		rotX: wrapAngle(float64(c.Mesh.Rotation.X)),
		rotY: wrapAngle(float64(c.Mesh.Rotation.Y)),
	}
	if cfg.HUD && c.surface != nil {
		a.hud = newHUD()
		c.surface.overlay = a.hud.draw
	}
	return a
}

// Context returns the state driven by a.
func (a *Animator) Context() *Context { return a.ctx }

// Ticks returns the number of completed frames.
func (a *Animator) Ticks() uint64 { return a.ticks }

// Tick rotates the cube by one step and renders the scene.
func (a *Animator) Tick() error {
	c := a.ctx
	a.rotate()

	if a.hud != nil {
		a.hud.update(a.ticks+1, c.Renderer.Info().Triangles)
	}
	if err := c.Renderer.Render(c.Scene, c.Camera); err != nil {
		return err
	}
	a.ticks++
	return nil
}

// rotate advances the cube by one step.
func (a *Animator) rotate() {
	a.rotX = wrapAngle(a.rotX + RotationStepX)
	a.rotY = wrapAngle(a.rotY + RotationStepY)
	a.ctx.Mesh.Rotation.X = float32(a.rotX)
	a.ctx.Mesh.Rotation.Y = float32(a.rotY)
}

func wrapAngle(rad float64) float64 {
	return math.Remainder(rad, 2*math.Pi)
}

// Run waits for each frame from frames and ticks. It only returns when the
// frame source or a tick fails.
func (a *Animator) Run(ctx context.Context, frames hal.Frames) error {
	a.log.Debug("animation started")
	for {
		if err := frames.Next(ctx); err != nil {
			a.log.Debug("animation stopped", "ticks", a.ticks, "reason", err)
			return err
		}
		if err := a.Tick(); err != nil {
			a.log.Error("frame failed", "tick", a.ticks, "error", err)
			return err
		}
	}
}
