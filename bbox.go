package rast

import "math"

// BoundingBox is an axis-aligned box in 3D.
// A box with Min greater than Max on any axis is empty.
type BoundingBox struct {
	Min, Max Vector3
}

// NDCBox is the canonical normalized device coordinate cube [-1, 1]³.
var NDCBox = BoundingBox{
	Min: V3(-1, -1, -1),
	Max: V3(1, 1, 1),
}

// emptyBox is the identity for growing a box point by point.
var emptyBox = BoundingBox{
	Min: V3(math.MaxFloat32, math.MaxFloat32, math.MaxFloat32),
	Max: V3(-math.MaxFloat32, -math.MaxFloat32, -math.MaxFloat32),
}

// BoundsOf returns the smallest box containing all points.
// NaN coordinates are ignored.
func BoundsOf(points ...Vector3) BoundingBox {
	b := emptyBox
	for _, p := range points {
		for i := range p {
			if b.Min[i] > p[i] {
				b.Min[i] = p[i]
			}
			if b.Max[i] < p[i] {
				b.Max[i] = p[i]
			}
		}
	}
	return b
}

// Intersect returns the overlap of b and other: the componentwise maximum
// of the minimums and minimum of the maximums. Where b has a NaN bound the
// bound of other is kept.
func (b BoundingBox) Intersect(other BoundingBox) BoundingBox {
	res := other
	for i := range res.Min {
		if b.Min[i] > res.Min[i] {
			res.Min[i] = b.Min[i]
		}
		if b.Max[i] < res.Max[i] {
			res.Max[i] = b.Max[i]
		}
	}
	return res
}

// Empty reports whether the box has Min > Max on any axis.
func (b BoundingBox) Empty() bool {
	for i := range b.Min {
		if b.Min[i] > b.Max[i] {
			return true
		}
	}
	return false
}
