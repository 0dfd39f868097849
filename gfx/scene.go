package gfx

// Node is anything that can be added to a Scene: meshes and lights.
type Node interface {
	node()
}

// Scene is a collection of meshes and lights to render.
type Scene struct {
	// Background replaces the renderer clear color when set.
	Background *Color

	children []Node
}

func NewScene() *Scene { return &Scene{} }

// Add appends nodes to the scene. Nil nodes and nodes already in the scene
// are skipped.
func (s *Scene) Add(nodes ...Node) {
	for _, n := range nodes {
		if n == nil || s.index(n) >= 0 {
			continue
		}
		s.children = append(s.children, n)
	}
}

// Remove removes n and reports whether it was present.
func (s *Scene) Remove(n Node) bool {
	i := s.index(n)
	if i < 0 {
		return false
	}
	s.children = append(s.children[:i], s.children[i+1:]...)
	return true
}

// Children returns the nodes of the scene in insertion order.
func (s *Scene) Children() []Node {
	out := make([]Node, len(s.children))
	copy(out, s.children)
	return out
}

func (s *Scene) index(n Node) int {
	for i, c := range s.children {
		if c == n {
			return i
		}
	}
	return -1
}

func (s *Scene) lights(dst []Light) []Light {
	dst = dst[:0]
	for _, c := range s.children {
		if l, ok := c.(Light); ok {
			dst = append(dst, l)
		}
	}
	return dst
}

func (s *Scene) eachMesh(fn func(m *Mesh)) {
	for _, c := range s.children {
		if m, ok := c.(*Mesh); ok && m.Visible {
			fn(m)
		}
	}
}
