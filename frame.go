package rast

import "image"

// Frame is a fixed-size render target: a grid of colors plus a parallel
// grid of depth values.
//
// Row 0 is the bottom of NDC space (y = -1) and column 0 is the left edge
// (x = -1). Colors start opaque black and depths start at 1.0, the far
// plane. The depth grid is carried for callers but Draw never reads or
// writes it.
//
// A Frame is not safe for concurrent use.
type Frame struct {
	width  int
	height int
	color  []Color
	depth  []float32
}

// NewFrame creates a frame with the given number of columns and rows.
func NewFrame(width, height int) *Frame {
	f := &Frame{
		width:  width,
		height: height,
		color:  make([]Color, width*height),
		depth:  make([]float32, width*height),
	}
	f.Clear(Black)
	for i := range f.depth {
		f.depth[i] = 1
	}
	return f
}

// Width returns the number of columns.
func (f *Frame) Width() int {
	return f.width
}

// Height returns the number of rows.
func (f *Frame) Height() int {
	return f.height
}

// ColorAt returns the color at column x, row y.
// Out-of-bounds coordinates return Transparent.
func (f *Frame) ColorAt(x, y int) Color {
	if !f.inBounds(x, y) {
		return Transparent
	}
	return f.color[y*f.width+x]
}

// SetColor sets the color at column x, row y.
// Out-of-bounds coordinates are silently ignored.
func (f *Frame) SetColor(x, y int, c Color) {
	if !f.inBounds(x, y) {
		return
	}
	f.color[y*f.width+x] = c
}

// DepthAt returns the depth value at column x, row y.
// Out-of-bounds coordinates return 1.
func (f *Frame) DepthAt(x, y int) float32 {
	if !f.inBounds(x, y) {
		return 1
	}
	return f.depth[y*f.width+x]
}

// Clear fills every pixel with c. Depth values are left alone.
func (f *Frame) Clear(c Color) {
	for i := range f.color {
		f.color[i] = c
	}
}

func (f *Frame) inBounds(x, y int) bool {
	return x >= 0 && x < f.width && y >= 0 && y < f.height
}

// ByteSequence serializes the colors as RGBA8, 4 bytes per pixel.
//
// Rows are written from the top of the frame (row Height-1) down to row 0,
// columns left to right, so the first row in the sequence is the visual
// top of an image. Each byte is round(255*channel) saturated to [0, 255].
func (f *Frame) ByteSequence() []byte {
	out := make([]byte, 0, 4*len(f.color))
	for y := f.height - 1; y >= 0; y-- {
		for _, c := range f.color[y*f.width : (y+1)*f.width] {
			out = append(out,
				channelByte(c.R),
				channelByte(c.G),
				channelByte(c.B),
				channelByte(c.A),
			)
		}
	}
	return out
}

// ToImage returns the frame as an image with the visual top in row 0.
// The pixel data is ByteSequence, so no conversion beyond it happens.
func (f *Frame) ToImage() *image.NRGBA {
	return &image.NRGBA{
		Pix:    f.ByteSequence(),
		Stride: 4 * f.width,
		Rect:   image.Rect(0, 0, f.width, f.height),
	}
}
