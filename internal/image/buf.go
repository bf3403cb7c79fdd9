// Package image provides the bitmap buffer used for emoji glyphs and
// challenge canvases.
//
// Pixels are stored as non-premultiplied RGBA, 4 bytes per pixel, in a
// contiguous slice with a row stride. A buffer is safe for concurrent reads;
// writes (Fill, Clear, DrawOver) require external synchronization.
package image

import "errors"

// BytesPerPixel is the size of one RGBA8 pixel.
const BytesPerPixel = 4

// ErrInvalidDimensions is returned when width or height is non-positive.
var ErrInvalidDimensions = errors.New("image: invalid dimensions")

// ImageBuf is an RGBA8 pixel buffer.
type ImageBuf struct {
	data   []byte
	width  int
	height int
	stride int
}

// NewImageBuf creates a zeroed (transparent black) buffer.
func NewImageBuf(width, height int) (*ImageBuf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	stride := width * BytesPerPixel
	return &ImageBuf{
		data:   make([]byte, stride*height),
		width:  width,
		height: height,
		stride: stride,
	}, nil
}

// Width returns the image width in pixels.
func (b *ImageBuf) Width() int {
	return b.width
}

// Height returns the image height in pixels.
func (b *ImageBuf) Height() int {
	return b.height
}

// Bounds returns the image dimensions as (width, height).
func (b *ImageBuf) Bounds() (int, int) {
	return b.width, b.height
}

// RowBytes returns the pixel bytes of row y, or nil if y is out of bounds.
func (b *ImageBuf) RowBytes(y int) []byte {
	if y < 0 || y >= b.height {
		return nil
	}
	start := y * b.stride
	return b.data[start : start+b.width*BytesPerPixel]
}

// GetRGBA returns the color at (x, y) in 0-255 range.
// Returns (0,0,0,0) if coordinates are out of bounds.
func (b *ImageBuf) GetRGBA(x, y int) (r, g, bl, a uint8) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return 0, 0, 0, 0
	}
	off := y*b.stride + x*BytesPerPixel
	p := b.data[off : off+BytesPerPixel : off+BytesPerPixel]
	return p[0], p[1], p[2], p[3]
}

// Clear sets all pixels to transparent black.
func (b *ImageBuf) Clear() {
	clear(b.data)
}

// Fill sets all pixels to the given color.
func (b *ImageBuf) Fill(r, g, bl, a uint8) {
	if b.height == 0 {
		return
	}
	// Fill the first row, then copy it down.
	first := b.RowBytes(0)
	for i := 0; i < len(first); i += BytesPerPixel {
		first[i] = r
		first[i+1] = g
		first[i+2] = bl
		first[i+3] = a
	}
	for y := 1; y < b.height; y++ {
		copy(b.RowBytes(y), first)
	}
}
