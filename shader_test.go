package rast

import (
	"math"
	"testing"

	"github.com/gogpu/rast/mat"
)

func TestBarymix(t *testing.T) {
	tests := []struct {
		name  string
		coord BarycentricCoord
		want  Color
	}{
		{"first vertex", NewBarycentricCoord(1, 0, 0), Red},
		{"second vertex", NewBarycentricCoord(0, 1, 0), Green},
		{"third vertex", NewBarycentricCoord(0, 0, 1), Blue},
		{"edge midpoint", NewBarycentricCoord(0.5, 0.5, 0), NewColor(0.5, 0.5, 0, 1)},
		{"centroid", NewBarycentricCoord(1.0/3, 1.0/3, 1.0/3), NewColor(1.0/3, 1.0/3, 1.0/3, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertColorNear(t, "Barymix", Barymix(Red, Green, Blue, tt.coord), tt.want, 1e-6)
		})
	}

	// Each channel is interpolated on its own, alpha included.
	got := Barymix(NewColor(0, 0, 0, 0), NewColor(0, 0, 0, 1), NewColor(1, 1, 1, 1), NewBarycentricCoord(0.25, 0.25, 0.5))
	assertColorNear(t, "alpha", got, NewColor(0.5, 0.5, 0.5, 0.75), 1e-6)
}

// Each product is rounded to float32 before the sum. A fused multiply-add
// gives 1.2094353 for these inputs.
func TestBarymixRoundsProducts(t *testing.T) {
	coord := NewBarycentricCoord(0.8009087443351746, 0.4446210563182831, 0.9355867505073547)
	got := Barymix(RGB(0.4313725531101227, 0, 0), RGB(0.4000000059604645, 0, 0), RGB(0.7333333492279053, 0, 0), coord)
	if want := float32(1.2094354629516602); got.R != want {
		t.Errorf("Barymix().R = %v, want %v", got.R, want)
	}
}

func TestShaderFuncs(t *testing.T) {
	var s ShaderFuncs
	p := V3(0.1, 0.2, 0.3)
	if got := s.Vertex(p); got != p {
		t.Errorf("nil VertexFunc: Vertex(%v) = %v", p, got)
	}
	if got := s.Fragment(BarycentricCoord{}); got != White {
		t.Errorf("nil FragmentFunc: Fragment = %+v, want White", got)
	}

	s = ShaderFuncs{
		VertexFunc:   func(p Vector3) Vector3 { return p.Scale(2) },
		FragmentFunc: func(c BarycentricCoord) Color { return RGB(c.A, c.B, c.C) },
	}
	if got := s.Vertex(p); got != p.Scale(2) {
		t.Errorf("Vertex = %v", got)
	}
	if got := s.Fragment(NewBarycentricCoord(0.1, 0.2, 0.7)); got != RGB(0.1, 0.2, 0.7) {
		t.Errorf("Fragment = %+v", got)
	}
}

func TestTransformVertex(t *testing.T) {
	s := TransformVertex{M: mat.Translate4[float32](0.5, 0, 0).Mul(mat.RotateZ4[float32](math.Pi))}
	got := s.Vertex(V3(1, 0, 0))
	if !approx(got.X(), -0.5, 1e-6) || !approx(got.Y(), 0, 1e-6) || got.Z() != 0 {
		t.Errorf("Vertex = %v, want (-0.5, 0, 0)", got)
	}
}

func TestComposedProgram(t *testing.T) {
	prog := struct {
		TransformVertex
		VertexColors
	}{
		TransformVertex{M: mat.Identity4[float32]()},
		VertexColors{A: White, B: Black, C: Black},
	}
	var _ ShaderProgram = prog

	if got := prog.Fragment(NewBarycentricCoord(0.25, 0.5, 0.25)); got != NewColor(0.25, 0.25, 0.25, 1) {
		t.Errorf("Fragment = %+v", got)
	}
}

func TestProgram(t *testing.T) {
	var prog ShaderProgram = Program{}
	for _, v := range ReferenceTriangle() {
		if got := prog.Vertex(v); got != v {
			t.Errorf("Program.Vertex(%v) = %v, want identity", v, got)
		}
	}
	if got := prog.Fragment(NewBarycentricCoord(0, 0, 1)); got != Blue {
		t.Errorf("Program.Fragment(third vertex) = %+v, want Blue", got)
	}
}
