// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package encode turns the RGBA8 byte sequence of a rendered frame into
// image files.
//
// The input is what rast.Frame.ByteSequence produces: width*height pixels,
// 4 bytes each (R, G, B, A, not premultiplied), the visual top row first.
// This package knows nothing about frames or shaders; anything that can
// supply those three values can be encoded.
package encode

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/tiff"
)

// Encoding errors.
var (
	// ErrUnsupportedFormat is returned for unknown format names or extensions.
	ErrUnsupportedFormat = errors.New("encode: unsupported format")

	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("encode: invalid dimensions")

	// ErrSizeMismatch is returned when the byte sequence is not 4*width*height long.
	ErrSizeMismatch = errors.New("encode: pixel data does not match dimensions")

	// ErrInvalidScale is returned for an upscale factor below 1.
	ErrInvalidScale = errors.New("encode: scale factor must be at least 1")
)

// Format is an output file format.
type Format uint8

const (
	// PNG is lossless and keeps the alpha channel.
	PNG Format = iota

	// BMP is uncompressed.
	BMP

	// TIFF is written with deflate compression.
	TIFF
)

// String returns the conventional lower-case name of the format.
func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case BMP:
		return "bmp"
	case TIFF:
		return "tiff"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

// Ext returns the file extension for the format, including the dot.
func (f Format) Ext() string {
	return "." + f.String()
}

// ParseFormat parses a format name such as "png" or "TIF".
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "png":
		return PNG, nil
	case "bmp":
		return BMP, nil
	case "tif", "tiff":
		return TIFF, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// FormatFromPath picks the format from the file extension of path.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Image wraps an RGBA8 byte sequence as an image without copying it.
func Image(width, height int, rgba []byte) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if len(rgba) != 4*width*height {
		return nil, fmt.Errorf("%w: got %d bytes for %dx%d", ErrSizeMismatch, len(rgba), width, height)
	}
	return &image.NRGBA{
		Pix:    rgba,
		Stride: 4 * width,
		Rect:   image.Rect(0, 0, width, height),
	}, nil
}

// Upscale enlarges img by an integer factor with nearest-neighbour
// sampling, so every source pixel becomes a factor×factor block.
func Upscale(img *image.NRGBA, factor int) (*image.NRGBA, error) {
	if factor < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidScale, factor)
	}
	if factor == 1 {
		return img, nil
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst, nil
}

// Encode writes the byte sequence to w in the given format.
func Encode(w io.Writer, f Format, width, height int, rgba []byte, opts ...Option) error {
	img, err := Image(width, height, rgba)
	if err != nil {
		return err
	}
	return EncodeImage(w, f, img, opts...)
}

// EncodeImage writes img to w in the given format.
func EncodeImage(w io.Writer, f Format, img *image.NRGBA, opts ...Option) error {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	img, err := Upscale(img, o.scale)
	if err != nil {
		return err
	}

	switch f {
	case PNG:
		enc := png.Encoder{CompressionLevel: o.pngLevel()}
		err = enc.Encode(w, img)
	case BMP:
		err = bmp.Encode(w, img)
	case TIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: o.tiffCompression(), Predictor: o.compress})
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
	}
	if err != nil {
		return fmt.Errorf("encode: %v: %w", f, err)
	}
	return nil
}

// WriteFile encodes the byte sequence into a file at path. The format is
// taken from the file extension. Nothing is written when encoding fails.
func WriteFile(path string, width, height int, rgba []byte, opts ...Option) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := Encode(&buf, f, width, height, rgba, opts...); err != nil {
		return err
	}

	if err := os.WriteFile(filepath.Clean(path), buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("encode: write file: %w", err)
	}
	return nil
}
