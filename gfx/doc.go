// Package gfx is a small retained-mode 3D scene graph with a software renderer.
//
// A Scene holds meshes and lights. A Renderer draws a Scene as seen through a
// PerspectiveCamera into a Surface, which is whatever the host can display.
//
// Pipeline (fixed):
//
//	Scene → Model/View/Projection → Culling → Shading → Rasterization → Resolve → Present.
//
// Without antialiasing, fragments that pass the 16-bit depth test go straight
// to the Surface. With it, they land in a 2x2 supersampled color buffer that
// is resolved into the Surface. Either way the Surface is presented once per
// Render call. Surfaces of a fixed size get the frame letterboxed.
//
// Conventions follow common WebGL scene libraries: right-handed coordinates,
// cameras look down -Z, front faces wind counter-clockwise and back faces are
// culled, Euler rotations apply in XYZ order.
package gfx
