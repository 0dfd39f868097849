package gfx

// Light is a light source that can be added to a Scene.
type Light interface {
	Node

	// irradiance returns the RGB light reaching a surface with unit normal n.
	irradiance(n Vec3) [3]float32
}

// HemisphereLight blends a sky color and a ground color depending on how much
// a surface faces up. Up is the direction of Position from the origin.
type HemisphereLight struct {
	SkyColor    Color
	GroundColor Color
	Intensity   float32
	Position    Vec3
}

// NewHemisphereLight returns a light with intensity 1 shining down from +Y.
func NewHemisphereLight(sky, ground Color) *HemisphereLight {
	return &HemisphereLight{
		SkyColor:    sky,
		GroundColor: ground,
		Intensity:   1,
		Position:    V3(0, 1, 0),
	}
}

func (*HemisphereLight) node() {}

func (l *HemisphereLight) irradiance(n Vec3) [3]float32 {
	up := Normalize(l.Position)
	if up == (Vec3{}) {
		up = V3(0, 1, 0)
	}
	w := 0.5*Dot(n, up) + 0.5
	sky, ground := l.SkyColor.rgb(), l.GroundColor.rgb()
	var out [3]float32
	for i := range out {
		out[i] = (ground[i] + (sky[i]-ground[i])*w) * l.Intensity
	}
	return out
}

// AmbientLight lights every surface equally.
type AmbientLight struct {
	Color     Color
	Intensity float32
}

func NewAmbientLight(c Color) *AmbientLight {
	return &AmbientLight{Color: c, Intensity: 1}
}

func (*AmbientLight) node() {}

func (l *AmbientLight) irradiance(Vec3) [3]float32 {
	rgb := l.Color.rgb()
	for i := range rgb {
		rgb[i] *= l.Intensity
	}
	return rgb
}

// DirectionalLight shines from Position towards the origin, as if infinitely
// far away.
type DirectionalLight struct {
	Color     Color
	Intensity float32
	Position  Vec3
}

func NewDirectionalLight(c Color) *DirectionalLight {
	return &DirectionalLight{Color: c, Intensity: 1, Position: V3(0, 1, 0)}
}

func (*DirectionalLight) node() {}

func (l *DirectionalLight) irradiance(n Vec3) [3]float32 {
	d := Dot(n, Normalize(l.Position))
	if d < 0 {
		d = 0
	}
	rgb := l.Color.rgb()
	for i := range rgb {
		rgb[i] *= l.Intensity * d
	}
	return rgb
}
