package rast

import "math"

// triangle is a view of three consecutive vertices of the shaded vertex
// buffer of one Draw call. It does not copy the vertices.
type triangle struct {
	verts []Vector3
}

// assembleTriangles splits vertices into consecutive, non-overlapping
// triples in input order. A trailing partial triangle is dropped.
func assembleTriangles(vertices []Vector3) []triangle {
	tris := make([]triangle, 0, len(vertices)/3)
	for i := 0; i+3 <= len(vertices); i += 3 {
		tris = append(tris, triangle{verts: vertices[i : i+3 : i+3]})
	}
	return tris
}

func (t triangle) boundingBox() BoundingBox {
	return BoundsOf(t.verts...)
}

// projected returns the vertices with z dropped.
func (t triangle) projected() (a, b, c Vector2) {
	return t.verts[0].XY(), t.verts[1].XY(), t.verts[2].XY()
}

// containsPoint2D reports whether p lies inside the triangle's projection
// onto the xy plane. Both windings are accepted and points exactly on an
// edge count as inside.
func (t triangle) containsPoint2D(p Vector2) bool {
	a, b, c := t.projected()

	d1 := turn(a, b, p)
	d2 := turn(b, c, p)
	d3 := turn(c, a, p)

	return d1 >= 0 && d2 >= 0 && d3 >= 0 || d1 <= 0 && d2 <= 0 && d3 <= 0
}

// barycentric returns the weights of p. The weight of each vertex is the
// area of the sub-triangle opposite it divided by the full area, so a zero
// area triangle yields non-finite weights.
func (t triangle) barycentric(p Vector2) BarycentricCoord {
	a, b, c := t.projected()

	areaABP := area(a, b, p)
	areaBCP := area(b, c, p)
	areaCAP := area(c, a, p)
	full := area(a, b, c)

	return BarycentricCoord{
		A: areaBCP / full,
		B: areaCAP / full,
		C: areaABP / full,
	}
}

// area2D is the unsigned area of the projected triangle.
func (t triangle) area2D() float32 {
	a, b, c := t.projected()
	return area(a, b, c)
}

// degenerate reports a zero or non-finite projected area.
func (t triangle) degenerate() bool {
	ar := t.area2D()
	return !(ar > 0) || math.IsInf(float64(ar), 0)
}

// turn is the 2D cross product of the edge a→b with the vector b→c.
// Its sign tells on which side of the line through a and b the point c lies.
func turn(a, b, c Vector2) float32 {
	return float32((a.Y()-b.Y())*(c.X()-b.X())) + float32((b.X()-a.X())*(c.Y()-b.Y()))
}

// area is the unsigned area of triangle abc (shoelace formula).
func area(a, b, c Vector2) float32 {
	s := float32(a.X()*(b.Y()-c.Y())) + float32(b.X()*(c.Y()-a.Y())) + float32(c.X()*(a.Y()-b.Y()))
	if s < 0 {
		s = -s
	}
	return s / 2
}
