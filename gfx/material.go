package gfx

// Material decides the color of a surface.
type Material interface {
	// shade returns the color of a surface point with unit normal n.
	shade(n Vec3, lights []Light) Color
	// flat reports whether one normal per face is used.
	flat() bool
}

// StandardMaterial is a diffuse material lit by every light in the scene.
// Without lights it renders black.
type StandardMaterial struct {
	Color       Color
	FlatShading bool
}

func NewStandardMaterial(c Color) *StandardMaterial {
	return &StandardMaterial{Color: c}
}

func (m *StandardMaterial) flat() bool { return m.FlatShading }

func (m *StandardMaterial) shade(n Vec3, lights []Light) Color {
	var irr [3]float32
	for _, l := range lights {
		e := l.irradiance(n)
		for i := range irr {
			irr[i] += e[i]
		}
	}
	base := m.Color.rgb()
	for i := range base {
		base[i] *= irr[i]
	}
	return colorFromRGB(base, m.Color.A)
}

// BasicMaterial ignores lights.
type BasicMaterial struct {
	Color Color
}

func NewBasicMaterial(c Color) *BasicMaterial {
	return &BasicMaterial{Color: c}
}

func (m *BasicMaterial) flat() bool { return true }

func (m *BasicMaterial) shade(Vec3, []Light) Color { return m.Color }
