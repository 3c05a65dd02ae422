package rast

import "github.com/gogpu/rast/mat"

// VertexShader is the programmable per-vertex stage. Vertex is called once
// per input vertex per Draw and must not depend on call order.
type VertexShader interface {
	Vertex(pos Vector3) Vector3
}

// FragmentShader is the programmable per-pixel stage. Fragment is called
// once per covered pixel with that pixel's barycentric coordinate. It is not
// told which triangle or pixel it is shading; interpolate per-vertex
// attributes with Barymix to vary the result across a triangle.
type FragmentShader interface {
	Fragment(coord BarycentricCoord) Color
}

// ShaderProgram combines both programmable stages.
//
// Programs are usually assembled by embedding one type per stage:
//
//	type gradient struct {
//	    rast.TransformVertex
//	    rast.VertexColors
//	}
type ShaderProgram interface {
	VertexShader
	FragmentShader
}

// Barymix interpolates three per-vertex colors with barycentric weights,
// independently per channel: a*coord.A + b*coord.B + c*coord.C.
func Barymix(a, b, c Color, coord BarycentricCoord) Color {
	return Color{
		R: float32(a.R*coord.A) + float32(b.R*coord.B) + float32(c.R*coord.C),
		G: float32(a.G*coord.A) + float32(b.G*coord.B) + float32(c.G*coord.C),
		B: float32(a.B*coord.A) + float32(b.B*coord.B) + float32(c.B*coord.C),
		A: float32(a.A*coord.A) + float32(b.A*coord.B) + float32(c.A*coord.C),
	}
}

// ShaderFuncs adapts plain functions to ShaderProgram.
// A nil VertexFunc passes positions through; a nil FragmentFunc shades
// every pixel White.
type ShaderFuncs struct {
	VertexFunc   func(pos Vector3) Vector3
	FragmentFunc func(coord BarycentricCoord) Color
}

// Vertex implements VertexShader.
func (s ShaderFuncs) Vertex(pos Vector3) Vector3 {
	if s.VertexFunc == nil {
		return pos
	}
	return s.VertexFunc(pos)
}

// Fragment implements FragmentShader.
func (s ShaderFuncs) Fragment(coord BarycentricCoord) Color {
	if s.FragmentFunc == nil {
		return White
	}
	return s.FragmentFunc(coord)
}

// IdentityVertex is a VertexShader that returns positions unchanged.
type IdentityVertex struct{}

// Vertex implements VertexShader.
func (IdentityVertex) Vertex(pos Vector3) Vector3 { return pos }

// TransformVertex applies a homogeneous 4x4 transform to each position
// (w = 1). No perspective divide is performed.
type TransformVertex struct {
	M mat.Mat4[float32]
}

// Vertex implements VertexShader.
func (t TransformVertex) Vertex(pos Vector3) Vector3 {
	return t.M.Transform(pos)
}

// VertexColors is a FragmentShader that blends one color per triangle
// corner. The same three colors are used for every triangle.
type VertexColors struct {
	A, B, C Color
}

// Fragment implements FragmentShader.
func (v VertexColors) Fragment(coord BarycentricCoord) Color {
	return Barymix(v.A, v.B, v.C, coord)
}

// Solid shades every covered pixel with one color and leaves positions
// unchanged.
type Solid struct {
	IdentityVertex
	Color Color
}

// Fragment implements FragmentShader.
func (s Solid) Fragment(BarycentricCoord) Color { return s.Color }
