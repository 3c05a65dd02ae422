// Package mat provides the small fixed-size vector and matrix types used by
// the rasterizer.
//
// Vectors are column vectors stored as arrays, matrices are row-major
// arrays of rows. Dimensions are part of the type, so mixing a 3-vector
// with a 4x4 matrix is a compile error rather than a runtime check.
//
// All types are generic over the floating point element type. The
// rasterizer itself works in float32:
//
//	m := mat.Translate4[float32](0.5, 0, 0).Mul(mat.RotateZ4[float32](math.Pi / 4))
//	p := m.Transform(mat.V3[float32](1, 0, 0))
//
// Interop with golang.org/x/image/math/f32 is provided for the float32
// instantiations.
package mat

import "golang.org/x/exp/constraints"

// Scalar is the element constraint of every type in this package.
type Scalar interface {
	constraints.Float
}
