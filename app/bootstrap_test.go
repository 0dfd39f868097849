package app

import (
	"errors"
	"reflect"
	"testing"

	"spincube/gfx"
	"spincube/hal"
)

func TestBootstrapNilSurface(t *testing.T) {
	c, err := Bootstrap(nil, 1, DefaultConfig())
	if !errors.Is(err, ErrSurfaceNotFound) {
		t.Fatalf("have %v, want ErrSurfaceNotFound", err)
	}
	if err.Error() != "surface not found" {
		t.Fatalf("message: have %q", err.Error())
	}
	if c != nil {
		t.Fatalf("have context %+v, want nil", c)
	}
}

func TestBootstrapScene(t *testing.T) {
	fb := newMemFB(t, hal.PixelFormatRGBA8888, 1, 1)
	c, err := Bootstrap(fb, 1, DefaultConfig())
	if err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}

	cam := c.Camera
	if cam.FOV != 70 || cam.Near != 1 || cam.Far != 1000 {
		t.Fatalf("camera: have fov %v near %v far %v", cam.FOV, cam.Near, cam.Far)
	}
	if want := float32(640) / 480; cam.Aspect != want {
		t.Fatalf("aspect: have %v, want %v", cam.Aspect, want)
	}
	if cam.Position != gfx.V3(0, 0, 400) {
		t.Fatalf("camera position: have %+v", cam.Position)
	}

	children := c.Scene.Children()
	if len(children) != 2 {
		t.Fatalf("children: have %d, want 2", len(children))
	}
	light, ok := children[0].(*gfx.HemisphereLight)
	if !ok {
		t.Fatalf("first child: have %T, want *gfx.HemisphereLight", children[0])
	}
	if light.SkyColor.Hex() != 0xbbbbff || light.GroundColor.Hex() != 0x444422 {
		t.Fatalf("light colors: have %06x/%06x", light.SkyColor.Hex(), light.GroundColor.Hex())
	}
	if light.Position != gfx.V3(0, 1000, 0) {
		t.Fatalf("light position: have %+v", light.Position)
	}
	if children[1] != gfx.Node(c.Mesh) {
		t.Fatalf("second child is not the cube")
	}

	box, ok := c.Mesh.Geometry.(*gfx.BoxGeometry)
	if !ok {
		t.Fatalf("geometry: have %T", c.Mesh.Geometry)
	}
	if box.Width != 200 || box.Height != 200 || box.Depth != 200 {
		t.Fatalf("box: have %vx%vx%v", box.Width, box.Height, box.Depth)
	}
	mat, ok := c.Mesh.Material.(*gfx.StandardMaterial)
	if !ok {
		t.Fatalf("material: have %T", c.Mesh.Material)
	}
	if mat.Color.Hex() != 0x00ff00 || !mat.FlatShading {
		t.Fatalf("material: have %06x flat=%v", mat.Color.Hex(), mat.FlatShading)
	}
	if c.Mesh.Rotation != (gfx.Euler{}) {
		t.Fatalf("initial rotation: have %+v", c.Mesh.Rotation)
	}

	if w, h := c.Renderer.Size(); w != Width || h != Height {
		t.Fatalf("renderer size: have %dx%d", w, h)
	}
	if w, h := c.Renderer.DrawingBufferSize(); w != 640 || h != 480 {
		t.Fatalf("drawing buffer: have %dx%d", w, h)
	}
	if !c.Renderer.Antialias() {
		t.Fatalf("default config should antialias")
	}
}

func TestBootstrapPixelRatio(t *testing.T) {
	fb := newMemFB(t, hal.PixelFormatRGBA8888, 1, 1)
	c, err := Bootstrap(fb, 2, Config{})
	if err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}
	if w, h := c.Renderer.DrawingBufferSize(); w != 1280 || h != 960 {
		t.Fatalf("drawing buffer: have %dx%d, want 1280x960", w, h)
	}
	if fb.Width() != 1280 || len(fb.Buffer()) != 1280*960*4 {
		t.Fatalf("framebuffer: have width %d len %d", fb.Width(), len(fb.Buffer()))
	}
}

func TestBootstrapFixedFramebuffer(t *testing.T) {
	mem := newMemFB(t, hal.PixelFormatRGB565, 320, 320)
	c, err := Bootstrap(fixedFramebuffer{mem}, 1, BoardConfig())
	if err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}
	if w, h := c.Renderer.DrawingBufferSize(); w != 320 || h != 320 {
		t.Fatalf("drawing buffer: have %dx%d, want 320x320", w, h)
	}
	if w, h := c.Renderer.Size(); w != Width || h != Height {
		t.Fatalf("renderer size: have %dx%d", w, h)
	}
	if want := float32(Width) / Height; c.Camera.Aspect != want {
		t.Fatalf("aspect: have %v, want %v", c.Camera.Aspect, want)
	}

	if err := NewAnimator(c, BoardConfig()).Tick(); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if x, y, w, h := c.Renderer.Viewport(); x != 0 || y != 40 || w != 320 || h != 240 {
		t.Fatalf("viewport: have %d,%d %dx%d, want 0,40 320x240", x, y, w, h)
	}
	// Depth only, 16 bits per pixel of the 320x240 viewport.
	if n := c.Renderer.Info().BufferBytes; n != 320*240*2 {
		t.Fatalf("sample buffers: have %d bytes, want %d", n, 320*240*2)
	}
	img := hal.Image(mem)
	if px := img.RGBAAt(160, 10); px.R != 0 || px.G != 0 || px.B != 0 {
		t.Fatalf("letterbox bar: have %+v, want black", px)
	}
	if px := img.RGBAAt(160, 160); px.G == 0 {
		t.Fatalf("center: have %+v, want green", px)
	}
}

func TestBoardConfig(t *testing.T) {
	cfg := BoardConfig()
	if cfg.Antialias || cfg.HUD {
		t.Fatalf("have %+v, want antialias and HUD off", cfg)
	}
}

func TestBootstrapUnsupportedFormat(t *testing.T) {
	fb := badFormatFramebuffer{newMemFB(t, hal.PixelFormatRGB565, 4, 4)}
	if _, err := Bootstrap(fb, 1, Config{}); err == nil {
		t.Fatalf("have nil error for unknown pixel format")
	}
}

type badFormatFramebuffer struct {
	hal.Framebuffer
}

func (badFormatFramebuffer) Format() hal.PixelFormat { return 0 }

func TestBootstrapDeterministic(t *testing.T) {
	a, err := Bootstrap(newMemFB(t, hal.PixelFormatRGBA8888, 1, 1), 1, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	b, err := Bootstrap(newMemFB(t, hal.PixelFormatRGBA8888, 1, 1), 1, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	if *a.Camera != *b.Camera {
		t.Fatalf("cameras differ: %+v vs %+v", *a.Camera, *b.Camera)
	}
	la := a.Scene.Children()[0].(*gfx.HemisphereLight)
	lb := b.Scene.Children()[0].(*gfx.HemisphereLight)
	if *la != *lb {
		t.Fatalf("lights differ: %+v vs %+v", *la, *lb)
	}
	va, ia := a.Mesh.Geometry.Triangles()
	vb, ib := b.Mesh.Geometry.Triangles()
	if !reflect.DeepEqual(va, vb) || !reflect.DeepEqual(ia, ib) {
		t.Fatalf("cube geometry differs")
	}
	if !reflect.DeepEqual(a.Mesh.Material, b.Mesh.Material) {
		t.Fatalf("materials differ")
	}
	if a.Mesh.Rotation != b.Mesh.Rotation || a.Mesh.Position != b.Mesh.Position {
		t.Fatalf("mesh transforms differ")
	}
}
