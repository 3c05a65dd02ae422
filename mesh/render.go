// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package mesh

import (
	"math"

	"github.com/gogpu/rast"
	"github.com/gogpu/rast/mat"
)

// ModelMatrix returns the model transform with an extra rotation of spin
// degrees about z, applied after the scene's own rotation.
func (t Transform) ModelMatrix(spin float32) mat.Mat4[float32] {
	m := mat.Identity4[float32]()
	if t.Scale != nil {
		m = mat.Scale4(t.Scale[0], t.Scale[1], t.Scale[2])
	}
	if angle := t.Rotate + spin; angle != 0 {
		m = mat.RotateZ4(angle * math.Pi / 180).Mul(m)
	}
	tr := t.Translate
	if tr != [3]float32{} {
		m = mat.Translate4(tr[0], tr[1], tr[2]).Mul(m)
	}
	if t.Matrix != nil {
		m = mat.Mat4FromF32(*t.Matrix).Mul(m)
	}
	return m
}

// flat shades every pixel with one color.
type flat struct {
	rast.TransformVertex
	color rast.Color
}

func (f flat) Fragment(rast.BarycentricCoord) rast.Color { return f.color }

// Program builds the shader program for the scene, with an extra spin in
// degrees about z. The scene must be valid.
func (s *Scene) Program(spin float32) (rast.ShaderProgram, error) {
	colors := make([]rast.Color, len(s.Colors))
	for i, h := range s.Colors {
		c, err := rast.ParseHex(h)
		if err != nil {
			return nil, err
		}
		colors[i] = c
	}

	vs := rast.TransformVertex{M: s.Transform.ModelMatrix(spin)}
	if len(colors) == 1 {
		return flat{TransformVertex: vs, color: colors[0]}, nil
	}
	return struct {
		rast.TransformVertex
		rast.VertexColors
	}{vs, rast.VertexColors{A: colors[0], B: colors[1], C: colors[2]}}, nil
}

// Render draws the scene into a new frame.
func (s *Scene) Render(spin float32) (*rast.Frame, rast.Stats, error) {
	var st rast.Stats
	if err := s.Validate(); err != nil {
		return nil, st, err
	}

	bg, err := rast.ParseHex(s.Background)
	if err != nil {
		return nil, st, err
	}
	prog, err := s.Program(spin)
	if err != nil {
		return nil, st, err
	}

	frame := rast.NewFrame(s.Width, s.Height)
	frame.Clear(bg)

	opts := []rast.DrawOption{rast.WithStats(&st)}
	if s.CullDegenerate {
		opts = append(opts, rast.WithCullDegenerate())
	}
	rast.Draw(frame, prog, s.Vertices(), opts...)
	return frame, st, nil
}
