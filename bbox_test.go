package rast

import (
	"math"
	"testing"
)

func TestBoundsOf(t *testing.T) {
	b := BoundsOf(V3(0.5, -2, 1), V3(-0.25, 3, 0), V3(0, 0, -1))
	want := BoundingBox{Min: V3(-0.25, -2, -1), Max: V3(0.5, 3, 1)}
	if b != want {
		t.Errorf("BoundsOf = %+v, want %+v", b, want)
	}
	if b.Empty() {
		t.Error("box of real points reported empty")
	}

	if !BoundsOf().Empty() {
		t.Error("box of no points must be empty")
	}

	nan := float32(math.NaN())
	b = BoundsOf(V3(nan, 0, 0), V3(1, 1, 1))
	if b.Min.X() != 1 || b.Max.X() != 1 {
		t.Errorf("NaN coordinate was not ignored: %+v", b)
	}
}

func TestIntersect(t *testing.T) {
	tests := []struct {
		name  string
		b     BoundingBox
		want  BoundingBox
		empty bool
	}{
		{
			"inside",
			BoundingBox{Min: V3(-0.5, -0.5, 0), Max: V3(0.5, 0.5, 0)},
			BoundingBox{Min: V3(-0.5, -0.5, 0), Max: V3(0.5, 0.5, 0)},
			false,
		},
		{
			"overhanging",
			BoundingBox{Min: V3(-3, 0, -2), Max: V3(0.5, 4, 2)},
			BoundingBox{Min: V3(-1, 0, -1), Max: V3(0.5, 1, 1)},
			false,
		},
		{
			"disjoint",
			BoundingBox{Min: V3(2, 2, 0), Max: V3(3, 3, 0)},
			BoundingBox{Min: V3(2, 2, 0), Max: V3(1, 1, 0)},
			true,
		},
		{
			"behind far plane",
			BoundingBox{Min: V3(-0.5, -0.5, 1.5), Max: V3(0.5, 0.5, 2)},
			BoundingBox{Min: V3(-0.5, -0.5, 1.5), Max: V3(0.5, 0.5, 1)},
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.b.Intersect(NDCBox)
			if got != tt.want {
				t.Errorf("Intersect = %+v, want %+v", got, tt.want)
			}
			if got.Empty() != tt.empty {
				t.Errorf("Empty() = %v, want %v", got.Empty(), tt.empty)
			}
		})
	}
}
