package gfx

import (
	"errors"
	"fmt"
	"math"
)

func newRendErr(s string) error { return errors.New("renderer: " + s) }

// RendererOptions configures a Renderer at creation.
type RendererOptions struct {
	// Antialias renders with 2x2 supersampling.
	Antialias bool

	// ClearColor fills the frame before drawing when the scene has no
	// Background. The zero value is transparent black.
	ClearColor Color
}

// RenderInfo describes the work done by a Renderer.
type RenderInfo struct {
	// Frames counts completed Render calls.
	Frames uint64
	// Triangles is the number of triangles rasterized by the last frame.
	Triangles int
	// BufferBytes is the memory held by the sample buffers.
	BufferBytes int
}

// Renderer is a software renderer bound to one Surface.
//
// It owns a 16-bit depth buffer sized to the viewport, and a color buffer
// (times the supersampling factor) only when antialiasing. Both are reused
// across frames.
type Renderer struct {
	surface Surface
	opts    RendererOptions

	pixelRatio    float64
	width, height int

	// Viewport inside the surface, in surface pixels.
	vx, vy, vw, vh int

	// Sample buffers, bw×bh. color is only allocated when supersampling;
	// otherwise samples go straight to the surface.
	bw, bh int
	ss     int
	color  []Color
	depth  []uint16

	lights []Light
	info   RenderInfo
}

// NewRenderer creates a renderer that draws into s.
func NewRenderer(s Surface, opts RendererOptions) (*Renderer, error) {
	if s == nil {
		return nil, newRendErr("nil Surface in call to NewRenderer")
	}
	r := &Renderer{
		surface:    s,
		opts:       opts,
		pixelRatio: 1,
		ss:         1,
	}
	if opts.Antialias {
		r.ss = 2
	}
	r.width, r.height = s.Size()
	return r, nil
}

// Surface returns the surface r draws into.
func (r *Renderer) Surface() Surface { return r.surface }

// Antialias reports whether r supersamples.
func (r *Renderer) Antialias() bool { return r.opts.Antialias }

// SetPixelRatio sets the number of surface pixels per logical pixel.
// Values that are not positive are treated as 1. If a size was set, the
// surface is resized to match.
func (r *Renderer) SetPixelRatio(ratio float64) {
	if !(ratio > 0) || math.IsInf(ratio, 0) {
		ratio = 1
	}
	r.pixelRatio = ratio
	if r.width > 0 && r.height > 0 {
		if err := r.SetSize(r.width, r.height); err != nil {
			Logger().Warn("gfx: resize after pixel ratio change failed", "error", err)
		}
	}
}

// PixelRatio returns the current pixel ratio.
func (r *Renderer) PixelRatio() float64 { return r.pixelRatio }

// SetSize sets the logical output size. The surface is resized to
// w·PixelRatio × h·PixelRatio pixels. A surface with a fixed size keeps it
// and the frame is letterboxed into it with the w:h aspect ratio.
func (r *Renderer) SetSize(w, h int) error {
	if w <= 0 || h <= 0 {
		return newRendErr(fmt.Sprintf("invalid size %dx%d", w, h))
	}
	r.width, r.height = w, h
	bw := int(math.Round(float64(w) * r.pixelRatio))
	bh := int(math.Round(float64(h) * r.pixelRatio))
	if err := r.surface.Resize(bw, bh); err != nil {
		if !errors.Is(err, ErrFixedSize) {
			return fmt.Errorf("renderer: resize surface: %w", err)
		}
		sw, sh := r.surface.Size()
		Logger().Warn("gfx: surface kept its size, letterboxing",
			"want_w", bw, "want_h", bh, "have_w", sw, "have_h", sh)
		return nil
	}
	Logger().Debug("gfx: surface resized", "w", bw, "h", bh, "ratio", r.pixelRatio)
	return nil
}

// Size returns the logical output size.
func (r *Renderer) Size() (w, h int) { return r.width, r.height }

// DrawingBufferSize returns the size of the surface in pixels.
func (r *Renderer) DrawingBufferSize() (w, h int) { return r.surface.Size() }

// Info returns statistics about the frames rendered so far.
func (r *Renderer) Info() RenderInfo { return r.info }

// Render draws scene as seen by cam and presents the surface.
func (r *Renderer) Render(scene *Scene, cam *PerspectiveCamera) error {
	if scene == nil || cam == nil {
		return newRendErr("nil Scene or camera in call to Render")
	}
	w, h := r.surface.Size()
	if w <= 0 || h <= 0 {
		return newRendErr(fmt.Sprintf("surface has no pixels (%dx%d)", w, h))
	}
	r.vx, r.vy, r.vw, r.vh = r.viewport(w, h)
	r.ensureBuffers(r.vw*r.ss, r.vh*r.ss)

	bg := r.opts.ClearColor
	if scene.Background != nil {
		bg = *scene.Background
	}
	r.surface.Clear(bg)
	for i := range r.color {
		r.color[i] = bg
	}
	for i := range r.depth {
		r.depth[i] = math.MaxUint16
	}

	r.lights = scene.lights(r.lights)
	vp := Mat4Mul(cam.Projection(), cam.View())
	r.info.Triangles = 0
	scene.eachMesh(func(m *Mesh) {
		r.drawMesh(vp, m)
	})

	if r.color != nil {
		r.resolve()
	}
	if err := r.surface.Present(); err != nil {
		return fmt.Errorf("renderer: present: %w", err)
	}
	r.info.Frames++
	return nil
}

// viewport returns the largest rectangle with the logical aspect ratio that
// fits a w×h surface, centered. It is the whole surface unless the surface
// kept a size of its own.
func (r *Renderer) viewport(w, h int) (x, y, vw, vh int) {
	if r.width <= 0 || r.height <= 0 {
		return 0, 0, w, h
	}
	vw, vh = w, int(math.Round(float64(w)*float64(r.height)/float64(r.width)))
	if vh > h {
		vw, vh = int(math.Round(float64(h)*float64(r.width)/float64(r.height))), h
	}
	vw = max(1, min(vw, w))
	vh = max(1, min(vh, h))
	return (w - vw) / 2, (h - vh) / 2, vw, vh
}

// Viewport returns the rectangle of the surface the last frame was drawn in.
func (r *Renderer) Viewport() (x, y, w, h int) { return r.vx, r.vy, r.vw, r.vh }

func (r *Renderer) ensureBuffers(bw, bh int) {
	if r.bw == bw && r.bh == bh && len(r.depth) == bw*bh {
		return
	}
	r.bw, r.bh = bw, bh
	r.color = nil
	if r.ss > 1 {
		r.color = make([]Color, bw*bh)
	}
	r.depth = make([]uint16, bw*bh)
	r.info.BufferBytes = len(r.color)*4 + len(r.depth)*2
	Logger().Debug("gfx: sample buffers allocated", "w", bw, "h", bh, "samples", r.ss*r.ss)
}

// plot writes a sample that passed the depth test.
func (r *Renderer) plot(x, y int, c Color) {
	if r.color != nil {
		r.color[y*r.bw+x] = c
		return
	}
	r.surface.SetPixel(r.vx+x, r.vy+y, c)
}

// screenVertex is a vertex in sample-buffer coordinates with NDC depth.
type screenVertex struct {
	X, Y, Z float32
}

func (r *Renderer) drawMesh(vp Mat4, m *Mesh) {
	if m.Geometry == nil || m.Material == nil {
		return
	}
	verts, indices := m.Geometry.Triangles()
	if len(verts) == 0 || len(indices) < 3 {
		return
	}
	model := m.Matrix()
	mvp := Mat4Mul(vp, model)

	for i := 0; i+2 < len(indices); i += 3 {
		var (
			idx  [3]int
			sv   [3]screenVertex
			ndc  [3]Vec3
			skip bool
		)
		for k := range idx {
			idx[k] = int(indices[i+k])
			if idx[k] >= len(verts) {
				skip = true
				break
			}
			p := verts[idx[k]].Pos
			clip := Mat4MulV4(mvp, Vec4{X: p.X, Y: p.Y, Z: p.Z, W: 1})
			// Trivial clip: drop triangles touching or behind the eye plane.
			if clip.W <= 1e-6 {
				skip = true
				break
			}
			inv := 1 / clip.W
			ndc[k] = Vec3{X: clip.X * inv, Y: clip.Y * inv, Z: clip.Z * inv}
			sv[k] = r.toSamples(ndc[k])
		}
		if skip {
			continue
		}

		// Counter-clockwise in NDC is a front face.
		area := (ndc[1].X-ndc[0].X)*(ndc[2].Y-ndc[0].Y) - (ndc[2].X-ndc[0].X)*(ndc[1].Y-ndc[0].Y)
		if area <= 0 {
			continue
		}

		if m.Material.flat() {
			a := Mat4MulPoint(model, verts[idx[0]].Pos)
			b := Mat4MulPoint(model, verts[idx[1]].Pos)
			c := Mat4MulPoint(model, verts[idx[2]].Pos)
			n := Normalize(Cross(b.Sub(a), c.Sub(a)))
			r.fillTriangleFlat(sv, m.Material.shade(n, r.lights))
		} else {
			var cs [3]Color
			for k := range cs {
				n := Normalize(Mat4MulDir(model, verts[idx[k]].Normal))
				cs[k] = m.Material.shade(n, r.lights)
			}
			r.fillTriangle(sv, cs)
		}
		r.info.Triangles++
	}
}

func (r *Renderer) toSamples(p Vec3) screenVertex {
	return screenVertex{
		X: (p.X*0.5 + 0.5) * float32(r.bw),
		Y: (1 - (p.Y*0.5 + 0.5)) * float32(r.bh),
		Z: p.Z,
	}
}

// bounds returns the sample rectangle covered by v, clamped to the buffer.
func (r *Renderer) bounds(v [3]screenVertex) (minX, minY, maxX, maxY int, ok bool) {
	fminX := min(v[0].X, v[1].X, v[2].X)
	fmaxX := max(v[0].X, v[1].X, v[2].X)
	fminY := min(v[0].Y, v[1].Y, v[2].Y)
	fmaxY := max(v[0].Y, v[1].Y, v[2].Y)
	minX = max(0, int(math.Floor(float64(fminX))))
	minY = max(0, int(math.Floor(float64(fminY))))
	maxX = min(r.bw-1, int(math.Ceil(float64(fmaxX))))
	maxY = min(r.bh-1, int(math.Ceil(float64(fmaxY))))
	return minX, minY, maxX, maxY, minX <= maxX && minY <= maxY
}

// weights returns the barycentric weights of the sample center (x, y).
func weights(v [3]screenVertex, invArea float32, x, y int) (w0, w1, w2 float32, inside bool) {
	px := float32(x) + 0.5
	py := float32(y) + 0.5
	w0 = edgeFn(v[1], v[2], px, py) * invArea
	w1 = edgeFn(v[2], v[0], px, py) * invArea
	w2 = edgeFn(v[0], v[1], px, py) * invArea
	return w0, w1, w2, w0 >= 0 && w1 >= 0 && w2 >= 0
}

func (r *Renderer) fillTriangleFlat(v [3]screenVertex, c Color) {
	minX, minY, maxX, maxY, ok := r.bounds(v)
	if !ok {
		return
	}
	area := edgeFn(v[0], v[1], v[2].X, v[2].Y)
	if area == 0 {
		return
	}
	invArea := 1 / area
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			w0, w1, w2, inside := weights(v, invArea, x, y)
			if !inside {
				continue
			}
			z := w0*v[0].Z + w1*v[1].Z + w2*v[2].Z
			if r.depthTest(x, y, z) {
				r.plot(x, y, c)
			}
		}
	}
}

func (r *Renderer) fillTriangle(v [3]screenVertex, c [3]Color) {
	minX, minY, maxX, maxY, ok := r.bounds(v)
	if !ok {
		return
	}
	area := edgeFn(v[0], v[1], v[2].X, v[2].Y)
	if area == 0 {
		return
	}
	invArea := 1 / area
	lerp := func(a0, a1, a2 uint8, w0, w1, w2 float32) uint8 {
		return uint8(clampF32(w0*float32(a0)+w1*float32(a1)+w2*float32(a2)+0.5, 0, 255))
	}
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			w0, w1, w2, inside := weights(v, invArea, x, y)
			if !inside {
				continue
			}
			z := w0*v[0].Z + w1*v[1].Z + w2*v[2].Z
			if !r.depthTest(x, y, z) {
				continue
			}
			r.plot(x, y, Color{
				R: lerp(c[0].R, c[1].R, c[2].R, w0, w1, w2),
				G: lerp(c[0].G, c[1].G, c[2].G, w0, w1, w2),
				B: lerp(c[0].B, c[1].B, c[2].B, w0, w1, w2),
				A: lerp(c[0].A, c[1].A, c[2].A, w0, w1, w2),
			})
		}
	}
}

// depthTest reports whether z is nearer than the stored depth and stores it.
// NDC z outside [-1, 1] lies beyond the near or far plane. Depth is kept in
// 16 bits.
func (r *Renderer) depthTest(x, y int, z float32) bool {
	if z < -1 || z > 1 {
		return false
	}
	d := uint16((z*0.5 + 0.5) * (math.MaxUint16 - 1))
	idx := y*r.bw + x
	if d >= r.depth[idx] {
		return false
	}
	r.depth[idx] = d
	return true
}

// resolve averages each ss×ss block of samples into one viewport pixel.
func (r *Renderer) resolve() {
	ss := r.ss
	w, h := r.vw, r.vh
	n := uint32(ss * ss)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var sr, sg, sb, sa uint32
			for dy := 0; dy < ss; dy++ {
				row := (y*ss + dy) * r.bw
				for dx := 0; dx < ss; dx++ {
					c := r.color[row+x*ss+dx]
					sr += uint32(c.R)
					sg += uint32(c.G)
					sb += uint32(c.B)
					sa += uint32(c.A)
				}
			}
			r.surface.SetPixel(r.vx+x, r.vy+y, Color{
				R: uint8((sr + n/2) / n),
				G: uint8((sg + n/2) / n),
				B: uint8((sb + n/2) / n),
				A: uint8((sa + n/2) / n),
			})
		}
	}
}

func edgeFn(a, b screenVertex, px, py float32) float32 {
	return (px-a.X)*(b.Y-a.Y) - (py-a.Y)*(b.X-a.X)
}

func clampF32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
