package emojicap

// Default canvas geometry.
const (
	DefaultWidth   = 550
	DefaultHeight  = 180
	DefaultSpacing = 20
)

// Layout is the canvas geometry: size in pixels and the horizontal gap
// between adjacent glyphs.
type Layout struct {
	Width   int
	Height  int
	Spacing int
}

// DefaultLayout is the 550x180 canvas with 20 pixel spacing.
var DefaultLayout = Layout{Width: DefaultWidth, Height: DefaultHeight, Spacing: DefaultSpacing}

// Placement is where one glyph is drawn on the canvas.
type Placement struct {
	ID     rune
	X, Y   int
	Width  int
	Height int
}

// Contains reports whether canvas point (x, y) lies inside the placement.
func (p Placement) Contains(x, y int) bool {
	return x >= p.X && x < p.X+p.Width && y >= p.Y && y < p.Y+p.Height
}

// Arrange places glyphs left to right in the given order. The row (glyph
// widths plus spacing between them) is centered horizontally; each glyph is
// centered vertically on its own. Offsets use truncating integer division
// and may be negative when content exceeds the canvas.
func (l Layout) Arrange(ids []rune, sizeOf func(rune) (w, h int)) []Placement {
	if len(ids) == 0 {
		return nil
	}

	out := make([]Placement, len(ids))
	total := l.Spacing * (len(ids) - 1)
	for i, id := range ids {
		w, h := sizeOf(id)
		out[i] = Placement{ID: id, Width: w, Height: h}
		total += w
	}

	x := (l.Width - total) / 2
	for i := range out {
		out[i].X = x
		out[i].Y = (l.Height - out[i].Height) / 2
		x += out[i].Width + l.Spacing
	}
	return out
}
