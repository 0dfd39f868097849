package gfx

// Mesh is a geometry drawn with a material at a position, rotation and scale.
type Mesh struct {
	Geometry Geometry
	Material Material

	Position Vec3
	Rotation Euler
	Scale    Vec3

	Visible bool
}

// NewMesh returns a visible mesh at the origin with unit scale.
func NewMesh(g Geometry, m Material) *Mesh {
	return &Mesh{
		Geometry: g,
		Material: m,
		Scale:    V3(1, 1, 1),
		Visible:  true,
	}
}

func (*Mesh) node() {}

// Matrix returns the object-to-world matrix T·R·S.
func (m *Mesh) Matrix() Mat4 {
	return Mat4Mul(Mat4Translate(m.Position), Mat4Mul(m.Rotation.Matrix(), Mat4Scale(m.Scale)))
}
