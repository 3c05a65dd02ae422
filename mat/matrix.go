package mat

import "math"

// Mat3 is a 3x3 matrix in row-major order.
//
// m[r][c] is the element in the r'th row and c'th column.
type Mat3[T Scalar] [3][3]T

// Zero3 returns the 3x3 zero matrix.
func Zero3[T Scalar]() Mat3[T] {
	return Mat3[T]{}
}

// Identity3 returns the 3x3 identity matrix.
func Identity3[T Scalar]() Mat3[T] {
	return Mat3[T]{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// At returns the element at row r, column c.
func (m Mat3[T]) At(r, c int) T { return m[r][c] }

// Set stores v at row r, column c.
func (m *Mat3[T]) Set(r, c int, v T) { m[r][c] = v }

// Add returns m + n.
func (m Mat3[T]) Add(n Mat3[T]) Mat3[T] {
	for r := range m {
		for c := range m[r] {
			m[r][c] += n[r][c]
		}
	}
	return m
}

// Sub returns m - n.
func (m Mat3[T]) Sub(n Mat3[T]) Mat3[T] {
	for r := range m {
		for c := range m[r] {
			m[r][c] -= n[r][c]
		}
	}
	return m
}

// Mul returns the matrix product m * n.
func (m Mat3[T]) Mul(n Mat3[T]) Mat3[T] {
	var o Mat3[T]
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				o[i][j] += m[i][k] * n[k][j]
			}
		}
	}
	return o
}

// MulVec returns the product m * v.
func (m Mat3[T]) MulVec(v Vec3[T]) Vec3[T] {
	var o Vec3[T]
	for i := 0; i < 3; i++ {
		o[i] = m[i][0]*v[0] + m[i][1]*v[1] + m[i][2]*v[2]
	}
	return o
}

// Transpose returns the transpose of m.
func (m Mat3[T]) Transpose() Mat3[T] {
	var o Mat3[T]
	for r := range m {
		for c := range m[r] {
			o[c][r] = m[r][c]
		}
	}
	return o
}

// Mat4 is a 4x4 matrix in row-major order.
//
// m[r][c] is the element in the r'th row and c'th column.
type Mat4[T Scalar] [4][4]T

// Zero4 returns the 4x4 zero matrix.
func Zero4[T Scalar]() Mat4[T] {
	return Mat4[T]{}
}

// Identity4 returns the 4x4 identity matrix.
func Identity4[T Scalar]() Mat4[T] {
	return Mat4[T]{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Translate4 creates a homogeneous translation matrix.
func Translate4[T Scalar](x, y, z T) Mat4[T] {
	return Mat4[T]{
		{1, 0, 0, x},
		{0, 1, 0, y},
		{0, 0, 1, z},
		{0, 0, 0, 1},
	}
}

// Scale4 creates a homogeneous scaling matrix.
func Scale4[T Scalar](x, y, z T) Mat4[T] {
	return Mat4[T]{
		{x, 0, 0, 0},
		{0, y, 0, 0},
		{0, 0, z, 0},
		{0, 0, 0, 1},
	}
}

// RotateZ4 creates a rotation about the z axis (angle in radians,
// counter-clockwise when looking down -z).
func RotateZ4[T Scalar](angle T) Mat4[T] {
	sin, cos := math.Sincos(float64(angle))
	s, c := T(sin), T(cos)
	return Mat4[T]{
		{c, -s, 0, 0},
		{s, c, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// At returns the element at row r, column c.
func (m Mat4[T]) At(r, c int) T { return m[r][c] }

// Set stores v at row r, column c.
func (m *Mat4[T]) Set(r, c int, v T) { m[r][c] = v }

// Add returns m + n.
func (m Mat4[T]) Add(n Mat4[T]) Mat4[T] {
	for r := range m {
		for c := range m[r] {
			m[r][c] += n[r][c]
		}
	}
	return m
}

// Sub returns m - n.
func (m Mat4[T]) Sub(n Mat4[T]) Mat4[T] {
	for r := range m {
		for c := range m[r] {
			m[r][c] -= n[r][c]
		}
	}
	return m
}

// Mul returns the matrix product m * n.
func (m Mat4[T]) Mul(n Mat4[T]) Mat4[T] {
	var o Mat4[T]
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			for k := 0; k < 4; k++ {
				o[i][j] += m[i][k] * n[k][j]
			}
		}
	}
	return o
}

// MulVec returns the product m * v.
func (m Mat4[T]) MulVec(v Vec4[T]) Vec4[T] {
	var o Vec4[T]
	for i := 0; i < 4; i++ {
		o[i] = m[i][0]*v[0] + m[i][1]*v[1] + m[i][2]*v[2] + m[i][3]*v[3]
	}
	return o
}

// Transform applies m to the point p (w = 1) and drops w.
// No perspective divide is performed.
func (m Mat4[T]) Transform(p Vec3[T]) Vec3[T] {
	return m.MulVec(p.Extend(1)).XYZ()
}

// Transpose returns the transpose of m.
func (m Mat4[T]) Transpose() Mat4[T] {
	var o Mat4[T]
	for r := range m {
		for c := range m[r] {
			o[c][r] = m[r][c]
		}
	}
	return o
}
