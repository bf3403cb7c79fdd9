package image

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif" // register GIF decoder
	_ "image/jpeg"
	"image/png"
	"io"
	"io/fs"

	_ "golang.org/x/image/bmp" // register BMP decoder
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Decode decodes an image from r, auto-detecting the format.
// PNG, JPEG, GIF, WebP, BMP and TIFF are registered.
func Decode(r io.Reader) (*ImageBuf, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("image: decode: %w", err)
	}
	buf, err := FromStdImage(img)
	if err != nil {
		return nil, "", err
	}
	return buf, format, nil
}

// LoadFS opens name in fsys and decodes it.
func LoadFS(fsys fs.FS, name string) (*ImageBuf, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("image: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	buf, _, err := Decode(f)
	return buf, err
}

// EncodePNG encodes the image as PNG to the given writer.
func (b *ImageBuf) EncodePNG(w io.Writer) error {
	enc := png.Encoder{CompressionLevel: png.DefaultCompression}
	if err := enc.Encode(w, b.ToStdImage()); err != nil {
		return fmt.Errorf("image: encode PNG: %w", err)
	}
	return nil
}

// EncodeToBytes encodes the image to PNG format and returns the bytes.
func (b *ImageBuf) EncodeToBytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := b.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FromStdImage copies a standard library image into a new ImageBuf,
// converting to non-premultiplied RGBA.
func FromStdImage(img image.Image) (*ImageBuf, error) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	buf, err := NewImageBuf(width, height)
	if err != nil {
		return nil, err
	}

	// Fast path: NRGBA has the same layout
	if nrgba, ok := img.(*image.NRGBA); ok {
		for y := range height {
			src := nrgba.Pix[nrgba.PixOffset(bounds.Min.X, bounds.Min.Y+y):]
			copy(buf.RowBytes(y), src[:width*BytesPerPixel])
		}
		return buf, nil
	}

	for y := range height {
		row := buf.RowBytes(y)
		for x := range width {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			off := x * BytesPerPixel
			row[off] = c.R
			row[off+1] = c.G
			row[off+2] = c.B
			row[off+3] = c.A
		}
	}
	return buf, nil
}

// ToStdImage returns a copy of the buffer as *image.NRGBA.
func (b *ImageBuf) ToStdImage() *image.NRGBA {
	nrgba := image.NewNRGBA(image.Rect(0, 0, b.width, b.height))
	for y := range b.height {
		copy(nrgba.Pix[y*nrgba.Stride:], b.RowBytes(y))
	}
	return nrgba
}
