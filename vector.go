package rast

import "github.com/gogpu/rast/mat"

// Vector2 is a single precision 2D column vector.
type Vector2 = mat.Vec2[float32]

// Vector3 is a single precision 3D column vector.
type Vector3 = mat.Vec3[float32]

// V2 is a convenience function to create a Vector2.
func V2(x, y float32) Vector2 {
	return Vector2{x, y}
}

// V3 is a convenience function to create a Vector3.
func V3(x, y, z float32) Vector3 {
	return Vector3{x, y, z}
}

// Vector2From3 projects v onto the xy plane.
func Vector2From3(v Vector3) Vector2 {
	return v.XY()
}
