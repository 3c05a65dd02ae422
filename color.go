package rast

import (
	"errors"
	"fmt"
	"image/color"
	"math"
)

// ErrInvalidHex is returned by ParseHex for malformed color strings.
var ErrInvalidHex = errors.New("rast: invalid hex color")

// Color represents a color with red, green, blue, and alpha channels.
// Channels are conventionally in [0, 1] but are not clamped; values are
// only saturated when converted to 8 bits.
type Color struct {
	R, G, B, A float32
}

// NewColor creates a color from RGBA channels.
func NewColor(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// RGB creates an opaque color from RGB channels.
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Transparent = NewColor(0, 0, 0, 0)
)

// Lerp performs linear interpolation between two colors.
func (c Color) Lerp(other Color, t float32) Color {
	return Color{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// NRGBA converts c to 8 bits per channel the same way Frame.ByteSequence does.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: channelByte(c.R),
		G: channelByte(c.G),
		B: channelByte(c.B),
		A: channelByte(c.A),
	}
}

// RGBA implements the color.Color interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// channelByte returns round(255*v) saturated to [0, 255]. NaN maps to 0.
func channelByte(v float32) uint8 {
	x := math.Round(float64(255 * v))
	switch {
	case !(x > 0):
		return 0
	case x >= 255:
		return 255
	}
	return uint8(x)
}

// ParseHex parses a hex color string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with an optional
// leading '#'.
func ParseHex(hex string) (Color, error) {
	s := hex
	if s != "" && s[0] == '#' {
		s = s[1:]
	}

	var ch [4]uint32
	ch[3] = 255

	switch len(s) {
	case 3, 4:
		for i := 0; i < len(s); i++ {
			v, ok := parseHexDigits(s[i : i+1])
			if !ok {
				return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
			}
			ch[i] = v * 17
		}
	case 6, 8:
		for i := 0; i < len(s)/2; i++ {
			v, ok := parseHexDigits(s[2*i : 2*i+2])
			if !ok {
				return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
			}
			ch[i] = v
		}
	default:
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
	}

	return Color{
		R: float32(ch[0]) / 255,
		G: float32(ch[1]) / 255,
		B: float32(ch[2]) / 255,
		A: float32(ch[3]) / 255,
	}, nil
}

func parseHexDigits(s string) (uint32, bool) {
	var v uint32
	for i := 0; i < len(s); i++ {
		c := s[i]
		v *= 16
		switch {
		case '0' <= c && c <= '9':
			v += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			v += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			v += uint32(c - 'A' + 10)
		default:
			return 0, false
		}
	}
	return v, true
}
