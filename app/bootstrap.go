package app

import (
	"errors"
	"fmt"

	"spincube/gfx"
	"spincube/hal"
)

// ErrSurfaceNotFound is returned by Bootstrap when there is no framebuffer
// to draw into.
var ErrSurfaceNotFound = errors.New("surface not found")

// Context is the state owned by the animation loop.
type Context struct {
	Scene    *gfx.Scene
	Camera   *gfx.PerspectiveCamera
	Renderer *gfx.Renderer
	Mesh     *gfx.Mesh

	surface *fbSurface
}

// Bootstrap builds the renderer, camera and scene for fb. The scene holds a
// hemisphere light and the green cube, in that order.
func Bootstrap(fb hal.Framebuffer, pixelRatio float64, cfg Config) (*Context, error) {
	if fb == nil {
		return nil, ErrSurfaceNotFound
	}
	surface, err := newFramebufferSurface(fb)
	if err != nil {
		return nil, err
	}
	renderer, err := createRenderer(surface, pixelRatio, cfg)
	if err != nil {
		return nil, err
	}

	camera := createCamera()
	scene := createScene()
	light := createLight()
	cube := createCube()
	scene.Add(light, cube)

	return &Context{
		Scene:    scene,
		Camera:   camera,
		Renderer: renderer,
		Mesh:     cube,
		surface:  surface,
	}, nil
}

func createRenderer(s gfx.Surface, pixelRatio float64, cfg Config) (*gfx.Renderer, error) {
	r, err := gfx.NewRenderer(s, gfx.RendererOptions{
		Antialias:  cfg.Antialias,
		ClearColor: gfx.RGB(0, 0, 0),
	})
	if err != nil {
		return nil, err
	}
	r.SetPixelRatio(pixelRatio)
	if err := r.SetSize(Width, Height); err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	return r, nil
}

func createCamera() *gfx.PerspectiveCamera {
	c := gfx.NewPerspectiveCamera(cameraFOV, float32(Width)/float32(Height), cameraNear, cameraFar)
	c.Position.Z = cameraZ
	return c
}

func createScene() *gfx.Scene {
	return gfx.NewScene()
}

func createLight() *gfx.HemisphereLight {
	l := gfx.NewHemisphereLight(gfx.Hex(skyColor), gfx.Hex(groundColor))
	l.Position = gfx.V3(0, lightY, 0)
	return l
}

func createCube() *gfx.Mesh {
	g := gfx.NewBoxGeometry(cubeSize, cubeSize, cubeSize)
	m := gfx.NewStandardMaterial(gfx.Hex(cubeColor))
	m.FlatShading = true
	return gfx.NewMesh(g, m)
}
