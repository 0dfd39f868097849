package gfx

import "math"

// PerspectiveCamera is a pinhole camera placed at Position and looking down -Z.
type PerspectiveCamera struct {
	FOV    float32 // vertical field of view, degrees
	Aspect float32
	Near   float32
	Far    float32

	Position Vec3
}

// NewPerspectiveCamera returns a camera at the origin.
func NewPerspectiveCamera(fov, aspect, near, far float32) *PerspectiveCamera {
	return &PerspectiveCamera{
		FOV:    fov,
		Aspect: aspect,
		Near:   near,
		Far:    far,
	}
}

// View returns the world-to-camera matrix.
func (c *PerspectiveCamera) View() Mat4 {
	return Mat4Translate(c.Position.Mul(-1))
}

// Projection returns the camera-to-clip matrix.
func (c *PerspectiveCamera) Projection() Mat4 {
	return Mat4Perspective(c.FOV*math.Pi/180, c.Aspect, c.Near, c.Far)
}
