package mat

// Vec2 is a 2-element column vector.
type Vec2[T Scalar] [2]T

// V2 is a convenience function to create a Vec2.
func V2[T Scalar](x, y T) Vec2[T] {
	return Vec2[T]{x, y}
}

// X returns the first component.
func (v Vec2[T]) X() T { return v[0] }

// Y returns the second component.
func (v Vec2[T]) Y() T { return v[1] }

// PX returns a reference to the first component.
func (v *Vec2[T]) PX() *T { return &v[0] }

// PY returns a reference to the second component.
func (v *Vec2[T]) PY() *T { return &v[1] }

// Add returns the componentwise sum v + w.
func (v Vec2[T]) Add(w Vec2[T]) Vec2[T] {
	return Vec2[T]{v[0] + w[0], v[1] + w[1]}
}

// Sub returns the componentwise difference v - w.
func (v Vec2[T]) Sub(w Vec2[T]) Vec2[T] {
	return Vec2[T]{v[0] - w[0], v[1] - w[1]}
}

// Scale returns the vector multiplied by s.
func (v Vec2[T]) Scale(s T) Vec2[T] {
	return Vec2[T]{v[0] * s, v[1] * s}
}

// Dot returns the dot product of two vectors.
func (v Vec2[T]) Dot(w Vec2[T]) T {
	return v[0]*w[0] + v[1]*w[1]
}

// Cross returns the 2D cross product (scalar).
// This is the z-component of the 3D cross product with z=0.
func (v Vec2[T]) Cross(w Vec2[T]) T {
	return v[0]*w[1] - v[1]*w[0]
}

// Vec3 is a 3-element column vector.
type Vec3[T Scalar] [3]T

// V3 is a convenience function to create a Vec3.
func V3[T Scalar](x, y, z T) Vec3[T] {
	return Vec3[T]{x, y, z}
}

// X returns the first component.
func (v Vec3[T]) X() T { return v[0] }

// Y returns the second component.
func (v Vec3[T]) Y() T { return v[1] }

// Z returns the third component.
func (v Vec3[T]) Z() T { return v[2] }

// PX returns a reference to the first component.
func (v *Vec3[T]) PX() *T { return &v[0] }

// PY returns a reference to the second component.
func (v *Vec3[T]) PY() *T { return &v[1] }

// PZ returns a reference to the third component.
func (v *Vec3[T]) PZ() *T { return &v[2] }

// Add returns the componentwise sum v + w.
func (v Vec3[T]) Add(w Vec3[T]) Vec3[T] {
	return Vec3[T]{v[0] + w[0], v[1] + w[1], v[2] + w[2]}
}

// Sub returns the componentwise difference v - w.
func (v Vec3[T]) Sub(w Vec3[T]) Vec3[T] {
	return Vec3[T]{v[0] - w[0], v[1] - w[1], v[2] - w[2]}
}

// Scale returns the vector multiplied by s.
func (v Vec3[T]) Scale(s T) Vec3[T] {
	return Vec3[T]{v[0] * s, v[1] * s, v[2] * s}
}

// Dot returns the dot product of two vectors.
func (v Vec3[T]) Dot(w Vec3[T]) T {
	return v[0]*w[0] + v[1]*w[1] + v[2]*w[2]
}

// Cross returns the cross product v × w.
func (v Vec3[T]) Cross(w Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v[1]*w[2] - v[2]*w[1],
		v[2]*w[0] - v[0]*w[2],
		v[0]*w[1] - v[1]*w[0],
	}
}

// XY drops the z component.
func (v Vec3[T]) XY() Vec2[T] {
	return Vec2[T]{v[0], v[1]}
}

// Extend appends w, producing a homogeneous 4-vector.
func (v Vec3[T]) Extend(w T) Vec4[T] {
	return Vec4[T]{v[0], v[1], v[2], w}
}

// Vec4 is a 4-element column vector, mostly used as a homogeneous point.
type Vec4[T Scalar] [4]T

// X returns the first component.
func (v Vec4[T]) X() T { return v[0] }

// Y returns the second component.
func (v Vec4[T]) Y() T { return v[1] }

// Z returns the third component.
func (v Vec4[T]) Z() T { return v[2] }

// W returns the fourth component.
func (v Vec4[T]) W() T { return v[3] }

// Add returns the componentwise sum v + w.
func (v Vec4[T]) Add(w Vec4[T]) Vec4[T] {
	return Vec4[T]{v[0] + w[0], v[1] + w[1], v[2] + w[2], v[3] + w[3]}
}

// Sub returns the componentwise difference v - w.
func (v Vec4[T]) Sub(w Vec4[T]) Vec4[T] {
	return Vec4[T]{v[0] - w[0], v[1] - w[1], v[2] - w[2], v[3] - w[3]}
}

// XYZ drops the w component without dividing by it.
func (v Vec4[T]) XYZ() Vec3[T] {
	return Vec3[T]{v[0], v[1], v[2]}
}
