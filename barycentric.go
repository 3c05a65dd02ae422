package rast

// BarycentricCoord holds the weights of a point relative to a triangle's
// three vertices, in vertex order. For a point in the triangle's plane the
// weights sum to 1.
type BarycentricCoord struct {
	A, B, C float32
}

// NewBarycentricCoord creates a coordinate from three weights.
func NewBarycentricCoord(a, b, c float32) BarycentricCoord {
	return BarycentricCoord{A: a, B: b, C: c}
}

// Sum returns A + B + C.
func (bc BarycentricCoord) Sum() float32 {
	return bc.A + bc.B + bc.C
}
