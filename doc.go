// Package rast provides a minimal software triangle rasterizer for Go.
//
// # Overview
//
// rast turns a flat list of 3D vertices into pixels. A caller supplied
// ShaderProgram transforms each vertex, consecutive triples of vertices
// form triangles, and for every pixel a triangle covers the program's
// fragment stage picks a color from the pixel's barycentric coordinate.
//
// # Quick Start
//
//	frame := rast.NewFrame(300, 200)
//	rast.Draw(frame, rast.Program{}, rast.ReferenceTriangle())
//
//	// Hand the bytes to an encoder
//	img := frame.ToImage()
//	err := encode.Encode(w, encode.PNG, frame.Width(), frame.Height(), frame.ByteSequence())
//
// # Coordinate System
//
// Shaded vertices are expected in normalized device coordinates:
//   - x in [-1, 1], left to right
//   - y in [-1, 1], bottom to top
//   - z is carried but only used for clipping the bounding box
//
// Frame row 0 is the bottom of NDC space. Frame.ByteSequence writes the top
// row first, which is what image encoders expect.
//
// # Pipeline
//
// Draw runs, in order: the vertex stage, triangle assembly, bounding box
// clipping against [-1, 1]³, the edge orientation coverage test at each
// pixel center, barycentric weights from sub-triangle areas, and the
// fragment stage. All arithmetic is float32. Overlapping triangles
// composite in input order with no blending and no depth test.
//
// # Architecture
//
// The module is organized into:
//   - rast: Frame, Color, shader contract, Draw
//   - mat: generic fixed-size vectors and matrices
//   - encode: RGBA8 byte sequences to PNG, BMP and TIFF
//   - mesh: YAML scene descriptions
//   - cmd/rastdemo: command line renderer
package rast

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
