package rast

import (
	"math"
	"testing"
)

// fullScreenTriangle covers the whole NDC square.
func fullScreenTriangle() []Vector3 {
	return []Vector3{
		V3(-1, -1, 0),
		V3(3, -1, 0),
		V3(-1, 3, 0),
	}
}

func approx(a, b, tol float32) bool {
	return math.Abs(float64(a-b)) <= float64(tol)
}

func assertColorNear(t *testing.T, name string, got, want Color, tol float32) {
	t.Helper()
	if !approx(got.R, want.R, tol) || !approx(got.G, want.G, tol) ||
		!approx(got.B, want.B, tol) || !approx(got.A, want.A, tol) {
		t.Errorf("%s: got %+v, want %+v (±%v)", name, got, want, tol)
	}
}

// recorder is a shader program that logs every stage invocation.
type recorder struct {
	vertices  []Vector3
	fragments []BarycentricCoord
	color     Color
}

func (r *recorder) Vertex(pos Vector3) Vector3 {
	r.vertices = append(r.vertices, pos)
	return pos
}

func (r *recorder) Fragment(coord BarycentricCoord) Color {
	r.fragments = append(r.fragments, coord)
	return r.color
}
