package emojicap

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

// solidImage returns a w x h image filled with c.
func solidImage(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func pngBytes(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode() error = %v", err)
	}
	return buf.Bytes()
}

func decodePNG(t *testing.T, data []byte) image.Image {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	return img
}

func nrgbaAt(img image.Image, x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}

// testCatalog builds a catalog of n square glyphs starting at U+1F600, each
// with a distinct opaque color.
func testCatalog(n, size int) *Catalog {
	images := make(map[rune]image.Image, n)
	for i := range n {
		images[rune(0x1F600+i)] = solidImage(size, size, color.NRGBA{R: uint8(i * 7), G: 40, B: 200, A: 255})
	}
	return NewCatalog(images)
}

func hasDuplicates(ids []rune) bool {
	seen := make(map[rune]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			return true
		}
		seen[id] = true
	}
	return false
}

func count(ids []rune, want rune) int {
	n := 0
	for _, id := range ids {
		if id == want {
			n++
		}
	}
	return n
}
