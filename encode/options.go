// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package encode

import (
	"image/png"

	"golang.org/x/image/tiff"
)

// Option configures encoding.
type Option func(*options)

type options struct {
	scale    int
	compress bool
}

func defaultOptions() options {
	return options{
		scale:    1,
		compress: true,
	}
}

// WithScale enlarges the image by an integer factor before encoding.
// Factors below 1 make encoding fail with ErrInvalidScale.
func WithScale(factor int) Option {
	return func(o *options) {
		o.scale = factor
	}
}

// WithCompression turns compression on or off for formats that support
// it. It is on by default; BMP is always uncompressed.
func WithCompression(on bool) Option {
	return func(o *options) {
		o.compress = on
	}
}

func (o options) pngLevel() png.CompressionLevel {
	if o.compress {
		return png.BestCompression
	}
	return png.NoCompression
}

func (o options) tiffCompression() tiff.CompressionType {
	if o.compress {
		return tiff.Deflate
	}
	return tiff.Uncompressed
}
