package mat

import "golang.org/x/image/math/f32"

// Mat4FromF32 converts an x/image matrix. Both layouts are row-major:
// m[4*r+c] is the element in row r, column c.
func Mat4FromF32(m f32.Mat4) Mat4[float32] {
	var o Mat4[float32]
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			o[r][c] = m[4*r+c]
		}
	}
	return o
}
