package rast

import (
	"bytes"
	"image/color"
	"math"
	"testing"
)

func TestNewFrame(t *testing.T) {
	f := NewFrame(3, 2)
	if f.Width() != 3 || f.Height() != 2 {
		t.Fatalf("size = %dx%d, want 3x2", f.Width(), f.Height())
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if c := f.ColorAt(x, y); c != Black {
				t.Errorf("ColorAt(%d, %d) = %+v, want opaque black", x, y, c)
			}
			if d := f.DepthAt(x, y); d != 1 {
				t.Errorf("DepthAt(%d, %d) = %v, want 1", x, y, d)
			}
		}
	}
}

func TestFrameOutOfBounds(t *testing.T) {
	f := NewFrame(2, 2)
	before := f.ByteSequence()

	oob := []struct{ x, y int }{{-1, 0}, {2, 0}, {0, -1}, {0, 2}, {100, 100}}
	for _, c := range oob {
		f.SetColor(c.x, c.y, Red)
		if got := f.ColorAt(c.x, c.y); got != Transparent {
			t.Errorf("ColorAt(%d, %d) = %+v, want Transparent", c.x, c.y, got)
		}
	}
	if !bytes.Equal(before, f.ByteSequence()) {
		t.Error("out-of-bounds SetColor modified the frame")
	}
}

func TestByteSequenceOrder(t *testing.T) {
	f := NewFrame(2, 2)
	f.SetColor(0, 0, NewColor(0, 0, 0, 1))     // bottom left
	f.SetColor(1, 0, NewColor(0.5, 0, 0, 1))   // bottom right
	f.SetColor(0, 1, NewColor(0, 1, 0, 0.5))   // top left
	f.SetColor(1, 1, NewColor(0, 0, 1, 0.002)) // top right

	want := []byte{
		0, 255, 0, 128, 0, 0, 255, 1, // top row first
		0, 0, 0, 255, 128, 0, 0, 255,
	}
	if got := f.ByteSequence(); !bytes.Equal(got, want) {
		t.Errorf("ByteSequence() = %v, want %v", got, want)
	}
}

func TestByteSequenceSaturates(t *testing.T) {
	f := NewFrame(1, 1)
	f.SetColor(0, 0, NewColor(2, -1, float32(math.NaN()), float32(math.Inf(1))))

	want := []byte{255, 0, 0, 255}
	if got := f.ByteSequence(); !bytes.Equal(got, want) {
		t.Errorf("ByteSequence() = %v, want %v", got, want)
	}
}

func TestByteSequenceLength(t *testing.T) {
	f := NewFrame(300, 200)
	if got := len(f.ByteSequence()); got != 4*300*200 {
		t.Errorf("len(ByteSequence()) = %d, want %d", got, 4*300*200)
	}
	if got := len(NewFrame(0, 0).ByteSequence()); got != 0 {
		t.Errorf("empty frame serialized to %d bytes", got)
	}
}

func TestFrameClear(t *testing.T) {
	f := NewFrame(4, 3)
	f.Clear(White)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if c := f.ColorAt(x, y); c != White {
				t.Fatalf("ColorAt(%d, %d) = %+v after Clear(White)", x, y, c)
			}
		}
	}
}

func TestFrameToImage(t *testing.T) {
	f := NewFrame(3, 2)
	f.SetColor(0, 1, Red)  // top left
	f.SetColor(2, 0, Blue) // bottom right

	img := f.ToImage()
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Fatalf("Bounds() = %v, want 3x2", b)
	}
	if got := img.NRGBAAt(0, 0); got != (color.NRGBA{R: 255, A: 255}) {
		t.Errorf("image top left = %v, want red", got)
	}
	if got := img.NRGBAAt(2, 1); got != (color.NRGBA{B: 255, A: 255}) {
		t.Errorf("image bottom right = %v, want blue", got)
	}
}
