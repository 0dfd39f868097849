package gfx

// Vertex is a mesh vertex.
type Vertex struct {
	Pos    Vec3
	Normal Vec3
}

// Geometry is triangle-list vertex data in object space.
// Front faces wind counter-clockwise.
type Geometry interface {
	Triangles() (vertices []Vertex, indices []uint16)
}

// BoxGeometry is an axis-aligned box centered at the origin.
type BoxGeometry struct {
	Width  float32
	Height float32
	Depth  float32

	vertices []Vertex
	indices  []uint16
}

// NewBoxGeometry builds a box with one quad (4 vertices, 2 triangles) per
// face so that each face carries its own normal.
func NewBoxGeometry(width, height, depth float32) *BoxGeometry {
	g := &BoxGeometry{Width: width, Height: height, Depth: depth}
	half := V3(width/2, height/2, depth/2)
	g.vertices = make([]Vertex, 0, 24)
	g.indices = make([]uint16, 0, 36)

	// Each face is (normal, u, v) with u×v pointing along the normal.
	faces := [6][3]Vec3{
		{V3(1, 0, 0), V3(0, 0, -1), V3(0, 1, 0)},
		{V3(-1, 0, 0), V3(0, 0, 1), V3(0, 1, 0)},
		{V3(0, 1, 0), V3(1, 0, 0), V3(0, 0, -1)},
		{V3(0, -1, 0), V3(1, 0, 0), V3(0, 0, 1)},
		{V3(0, 0, 1), V3(1, 0, 0), V3(0, 1, 0)},
		{V3(0, 0, -1), V3(-1, 0, 0), V3(0, 1, 0)},
	}
	for _, f := range faces {
		n := f[0]
		c := mulComp(n, half)
		u := mulComp(f[1], half)
		v := mulComp(f[2], half)
		base := uint16(len(g.vertices))
		g.vertices = append(g.vertices,
			Vertex{Pos: c.Sub(u).Sub(v), Normal: n},
			Vertex{Pos: c.Add(u).Sub(v), Normal: n},
			Vertex{Pos: c.Add(u).Add(v), Normal: n},
			Vertex{Pos: c.Sub(u).Add(v), Normal: n},
		)
		g.indices = append(g.indices,
			base, base+1, base+2,
			base, base+2, base+3,
		)
	}
	return g
}

func (g *BoxGeometry) Triangles() ([]Vertex, []uint16) { return g.vertices, g.indices }

func mulComp(a, b Vec3) Vec3 { return Vec3{a.X * b.X, a.Y * b.Y, a.Z * b.Z} }
