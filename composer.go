package emojicap

import (
	"fmt"
	"image/color"
	"time"

	"github.com/gogpu/emojicap/backend"
)

// Challenge is one generated puzzle. It is not modified after Generate
// returns and belongs to the caller.
type Challenge struct {
	// Correct is the glyph the user must pick.
	Correct rune

	// Displayed lists the glyphs on the image, left to right. It contains
	// Correct exactly once.
	Displayed []rune

	// Keyboard lists the selectable glyphs, in random order. It contains
	// Correct.
	Keyboard []rune

	// Placements gives the canvas rectangle of each displayed glyph, in the
	// same order as Displayed.
	Placements []Placement

	// Image is the PNG-encoded canvas.
	Image []byte
}

// IsCorrect reports whether answer is the correct glyph.
func (c *Challenge) IsCorrect(answer rune) bool {
	return answer == c.Correct
}

// GlyphAt returns the displayed glyph under canvas point (x, y).
func (c *Challenge) GlyphAt(x, y int) (rune, bool) {
	for _, p := range c.Placements {
		if p.Contains(x, y) {
			return p.ID, true
		}
	}
	return 0, false
}

// Composer produces challenges from a catalog. It holds no mutable state,
// so one Composer may serve concurrent Generate calls.
type Composer struct {
	catalog    *Catalog
	renderer   backend.Renderer
	layout     Layout
	background color.NRGBA
	observer   Observer
}

// NewComposer creates a composer drawing from catalog.
func NewComposer(catalog *Catalog, opts ...Option) *Composer {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	renderer := options.renderer
	if renderer == nil {
		renderer = backend.Default()
	}
	if catalog == nil {
		catalog = newCatalog()
	}

	return &Composer{
		catalog:    catalog,
		renderer:   renderer,
		layout:     options.layout,
		background: options.background,
		observer:   options.observer,
	}
}

// Catalog returns the catalog the composer draws from.
func (c *Composer) Catalog() *Catalog {
	return c.catalog
}

// Layout returns the canvas geometry.
func (c *Composer) Layout() Layout {
	return c.layout
}

// Generate creates one challenge showing displayCount glyphs (clamped to
// the catalog size) with a keyboard of keyboardCount glyphs (clamped to the
// catalog size).
//
// rng supplies all randomness; nil uses the process-wide generator.
//
// Errors: ErrCatalogEmpty if the catalog has no glyphs, ErrInvalidRequest
// if either count is below one, ErrEncoding if rendering fails.
func (c *Composer) Generate(rng Rand, displayCount, keyboardCount int) (ch *Challenge, err error) {
	start := time.Now()
	if c.observer != nil {
		defer func() { c.observer.ObserveChallenge(time.Since(start), err) }()
	}
	if rng == nil {
		rng = globalRand{}
	}

	sel, err := selectGlyphs(rng, c.catalog.ids, displayCount, keyboardCount)
	if err != nil {
		return nil, err
	}

	placements := c.layout.Arrange(sel.display, func(id rune) (int, int) {
		return c.catalog.glyphs[id].Bounds()
	})

	frame := backend.Frame{
		Width:      c.layout.Width,
		Height:     c.layout.Height,
		Background: c.background,
		Sprites:    make([]backend.Sprite, len(placements)),
	}
	for i, p := range placements {
		frame.Sprites[i] = backend.Sprite{ID: p.ID, Image: c.catalog.glyphs[p.ID], X: p.X, Y: p.Y}
	}

	img, err := c.renderer.Render(frame)
	if err != nil {
		return nil, fmt.Errorf("%w: %s backend: %w", ErrEncoding, c.renderer.Name(), err)
	}

	Logger().Debug("emojicap: challenge generated",
		"correct", fmt.Sprintf("%U", sel.correct),
		"displayed", len(sel.display),
		"keyboard", len(sel.keyboard),
		"bytes", len(img),
		"elapsed", time.Since(start))

	return &Challenge{
		Correct:    sel.correct,
		Displayed:  sel.display,
		Keyboard:   sel.keyboard,
		Placements: placements,
		Image:      img,
	}, nil
}
