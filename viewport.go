package rast

// Viewport maps between NDC coordinates and pixel indices of a frame.
//
// The NDC range [-1, 1] is split into width columns and height rows; each
// pixel samples at the center of its cell.
type Viewport struct {
	width, height int
	sizeX, halfX  float32
	sizeY, halfY  float32
}

// NewViewport returns the mapping for a frame of the given size.
func NewViewport(width, height int) Viewport {
	sizeX := 1 / float32(width)
	sizeY := 1 / float32(height)
	return Viewport{
		width:  width,
		height: height,
		sizeX:  sizeX,
		halfX:  sizeX / 2,
		sizeY:  sizeY,
		halfY:  sizeY / 2,
	}
}

// PixelSize returns the size of one pixel as a fraction of the [0, 1]
// unit range, horizontally and vertically.
func (vp Viewport) PixelSize() (w, h float32) {
	return vp.sizeX, vp.sizeY
}

// CenterNDC returns the NDC position of the center of pixel (ix, iy).
func (vp Viewport) CenterNDC(ix, iy int) Vector2 {
	return V2(
		center(ix, vp.sizeX, vp.halfX),
		center(iy, vp.sizeY, vp.halfY),
	)
}

// Bound maps an NDC position to span bounds: the index of the first pixel
// whose center is not left of (below) the coordinate. Bound of a box's
// minimum corner is the first pixel to visit, Bound of its maximum corner
// is one past the last. Results are clamped to [0, width] and [0, height].
func (vp Viewport) Bound(x, y float32) (ix, iy int) {
	return bound(x, vp.sizeX, vp.halfX, vp.width),
		bound(y, vp.sizeY, vp.halfY, vp.height)
}

// Cell returns the pixel whose cell contains the NDC position, clamped to
// the frame. Cell(CenterNDC(i, j)) is (i, j) for every pixel.
func (vp Viewport) Cell(x, y float32) (ix, iy int) {
	return cell(x, vp.sizeX, vp.width), cell(y, vp.sizeY, vp.height)
}

func center(i int, size, half float32) float32 {
	// The explicit conversions keep the compiler from fusing the
	// multiply-add, so centers are bit-identical on every platform.
	return float32(float32(float32(float32(i)*size)+half)*2) - 1
}

func bound(coord, size, half float32, n int) int {
	f := ((coord+1)/2 + half) / size
	switch {
	case !(f > 0):
		return 0
	case f >= float32(n):
		return n
	}
	return int(f)
}

func cell(coord, size float32, n int) int {
	f := ((coord + 1) / 2) / size
	switch {
	case !(f > 0):
		return 0
	case f >= float32(n):
		return n - 1
	}
	return int(f)
}
