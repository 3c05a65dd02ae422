package rast

// Program is the reference shader program: positions pass through unchanged
// and every triangle is shaded red, green and blue at its first, second and
// third vertex.
type Program struct {
	IdentityVertex
}

// Fragment implements FragmentShader.
func (Program) Fragment(coord BarycentricCoord) Color {
	return Barymix(Red, Green, Blue, coord)
}

// ReferenceTriangle returns the vertices rendered by the demo: a triangle
// spanning the bottom edge of NDC space with its apex at the top center.
func ReferenceTriangle() []Vector3 {
	return []Vector3{
		V3(-1, -1, 0),
		V3(1, -1, 0),
		V3(0, 1, 0),
	}
}
