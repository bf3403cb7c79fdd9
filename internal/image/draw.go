package image

import "math"

// Rect represents a rectangular region in pixel coordinates.
type Rect struct {
	X, Y          int // Top-left corner
	Width, Height int // Dimensions
}

// Intersect returns the overlap of r and s. The result has zero size when
// they do not overlap.
func (r Rect) Intersect(s Rect) Rect {
	x0 := max(r.X, s.X)
	y0 := max(r.Y, s.Y)
	x1 := min(r.X+r.Width, s.X+s.Width)
	y1 := min(r.Y+r.Height, s.Y+s.Height)
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// DrawOver composites src onto dst with its top-left corner at (x, y) using
// Porter-Duff source-over. Pixels falling outside dst are clipped. src is
// only read.
func DrawOver(dst, src *ImageBuf, x, y int) {
	area := Rect{X: x, Y: y, Width: src.width, Height: src.height}.
		Intersect(Rect{Width: dst.width, Height: dst.height})
	if area.Empty() {
		return
	}

	for dy := area.Y; dy < area.Y+area.Height; dy++ {
		srcRow := src.RowBytes(dy - y)
		dstRow := dst.RowBytes(dy)
		for dx := area.X; dx < area.X+area.Width; dx++ {
			s := srcRow[(dx-x)*BytesPerPixel:]
			d := dstRow[dx*BytesPerPixel:]
			d[0], d[1], d[2], d[3] = blendNormal(s[0], s[1], s[2], s[3], d[0], d[1], d[2], d[3])
		}
	}
}

// blendNormal performs standard alpha blending (source over destination)
// on non-premultiplied colors.
func blendNormal(srcR, srcG, srcB, srcA, dstR, dstG, dstB, dstA uint8) (r, g, b, a byte) {
	if srcA == 0 {
		return dstR, dstG, dstB, dstA
	}
	if srcA == 255 || dstA == 0 {
		return srcR, srcG, srcB, srcA
	}

	// out_a = src_a + dst_a * (1 - src_a)
	// out_c = (src_c * src_a + dst_c * dst_a * (1 - src_a)) / out_a
	srcAlpha := float64(srcA) / 255.0
	dstAlpha := float64(dstA) / 255.0 * (1 - srcAlpha)
	outAlpha := srcAlpha + dstAlpha

	r = channel((float64(srcR)*srcAlpha + float64(dstR)*dstAlpha) / outAlpha)
	g = channel((float64(srcG)*srcAlpha + float64(dstG)*dstAlpha) / outAlpha)
	b = channel((float64(srcB)*srcAlpha + float64(dstB)*dstAlpha) / outAlpha)
	a = channel(outAlpha * 255.0)
	return r, g, b, a
}

func channel(v float64) uint8 {
	return uint8(math.Min(255, math.Max(0, math.Round(v))))
}
