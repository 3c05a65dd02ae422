// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package mesh loads triangle scenes from YAML files.
//
// A scene lists triangles in normalized device coordinates together with
// the frame size, a background color, the corner colors shared by every
// triangle and a model transform:
//
//	width: 300
//	height: 200
//	background: "#000"
//	colors: ["#f00", "#0f0", "#00f"]
//	transform:
//	  rotate: 15
//	triangles: [[[-1, -1, 0], [1, -1, 0], [0, 1, 0]]]
//
// The transform may also carry a raw row-major 4x4 matrix under
// "matrix", applied after translate.
//
// One color shades every triangle flat, three colors are blended across
// each triangle's corners.
package mesh

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/math/f32"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/rast"
)

// Default frame size for scenes that omit it.
const (
	DefaultWidth  = 300
	DefaultHeight = 200
)

// ErrInvalidScene is returned by Validate and wraps every validation failure.
var ErrInvalidScene = errors.New("mesh: invalid scene")

// Vertex is a position in normalized device coordinates.
type Vertex [3]float32

// Triangle is three vertices in drawing order.
type Triangle [3]Vertex

// Scene is the YAML document describing one render.
type Scene struct {
	Width          int        `yaml:"width"`
	Height         int        `yaml:"height"`
	Background     string     `yaml:"background,omitempty"`
	Colors         []string   `yaml:"colors,omitempty,flow"`
	CullDegenerate bool       `yaml:"cullDegenerate,omitempty"`
	Transform      Transform  `yaml:"transform,omitempty"`
	Triangles      []Triangle `yaml:"triangles,flow"`
}

// Transform is the model transform applied by the vertex stage:
// scale first, then rotation about z, then translation, then Matrix.
type Transform struct {
	Translate [3]float32  `yaml:"translate,omitempty,flow"`
	Scale     *[3]float32 `yaml:"scale,omitempty,flow"` // nil means no scaling
	Rotate    float32     `yaml:"rotate,omitempty"`     // degrees, counter-clockwise

	// Matrix is an optional row-major 4x4 matrix, 16 values.
	Matrix *f32.Mat4 `yaml:"matrix,omitempty,flow"`
}

// Default returns the reference scene: one triangle on a 300x200 frame
// shaded red, green and blue at its corners.
func Default() *Scene {
	s := &Scene{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Background: "#000000",
		Colors:     []string{"#ff0000", "#00ff00", "#0000ff"},
	}
	ref := rast.ReferenceTriangle()
	s.Triangles = []Triangle{{Vertex(ref[0]), Vertex(ref[1]), Vertex(ref[2])}}
	return s
}

func (s *Scene) normalize() {
	if s.Width == 0 {
		s.Width = DefaultWidth
	}
	if s.Height == 0 {
		s.Height = DefaultHeight
	}
	if s.Background == "" {
		s.Background = "#000000"
	}
	if len(s.Colors) == 0 {
		s.Colors = []string{"#ffffff"}
	}
}

// Validate reports the first problem that would keep the scene from
// rendering.
func (s *Scene) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: frame size %dx%d", ErrInvalidScene, s.Width, s.Height)
	}
	if len(s.Triangles) == 0 {
		return fmt.Errorf("%w: no triangles", ErrInvalidScene)
	}
	if n := len(s.Colors); n != 1 && n != 3 {
		return fmt.Errorf("%w: need 1 or 3 colors, got %d", ErrInvalidScene, n)
	}
	if _, err := rast.ParseHex(s.Background); err != nil {
		return fmt.Errorf("%w: background: %w", ErrInvalidScene, err)
	}
	for i, c := range s.Colors {
		if _, err := rast.ParseHex(c); err != nil {
			return fmt.Errorf("%w: color %d: %w", ErrInvalidScene, i, err)
		}
	}
	return nil
}

// Parse decodes and validates a scene. Unknown keys are rejected.
func Parse(data []byte) (*Scene, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Scene
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidScene)
		}
		return nil, fmt.Errorf("mesh: parse: %w", err)
	}
	s.normalize()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("mesh: read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	rast.Logger().Debug("mesh: loaded scene",
		"path", path,
		"triangles", len(s.Triangles),
		"width", s.Width,
		"height", s.Height)
	return s, nil
}

// Marshal encodes the scene as YAML.
func (s *Scene) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return nil, fmt.Errorf("mesh: encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("mesh: encode: %w", err)
	}
	return buf.Bytes(), nil
}

// Save writes the scene to path.
func (s *Scene) Save(path string) error {
	data, err := s.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Clean(path), data, 0o644); err != nil {
		return fmt.Errorf("mesh: write %s: %w", path, err)
	}
	return nil
}

// Vertices flattens the triangles into the vertex list Draw expects.
func (s *Scene) Vertices() []rast.Vector3 {
	out := make([]rast.Vector3, 0, 3*len(s.Triangles))
	for _, t := range s.Triangles {
		for _, v := range t {
			out = append(out, rast.Vector3(v))
		}
	}
	return out
}
