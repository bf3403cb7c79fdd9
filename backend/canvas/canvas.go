// Package canvas provides a renderer that rasterizes challenge frames with
// the gg 2D graphics library.
//
// Importing the package registers it under the name "canvas":
//
//	import _ "github.com/gogpu/emojicap/backend/canvas"
//
//	r, err := backend.Get("canvas")
package canvas

import (
	"bytes"
	"fmt"
	"image"

	"github.com/gogpu/gg"

	"github.com/gogpu/emojicap"
	"github.com/gogpu/emojicap/backend"
	"github.com/gogpu/emojicap/internal/cache"
	intImage "github.com/gogpu/emojicap/internal/image"
)

// Name is the registry name of the canvas renderer.
const Name = "canvas"

func init() {
	backend.Register(Name, func() backend.Renderer { return New() })
}

// spriteKey identifies a converted glyph. The bitmap pointer is part of the
// key so that two catalogs sharing a code point do not collide.
type spriteKey struct {
	id  rune
	img *intImage.ImageBuf
}

func hashSpriteKey(k spriteKey) uint64 {
	return cache.RuneHasher(k.id)
}

// spriteCapacity bounds the converted glyphs kept per shard.
const spriteCapacity = cache.DefaultCapacity * 4

// Renderer draws frames on a gg.Context. A fresh context is used per frame,
// so a Renderer is safe for concurrent use.
//
// Each Renderer caches gg copies of the glyph bitmaps it has drawn. The
// cache key holds the source bitmap pointer, so cached glyphs and their
// catalog bitmaps stay reachable until the Renderer is dropped or the
// entry is evicted.
type Renderer struct {
	sprites *cache.Sharded[spriteKey, *gg.ImageBuf]
}

// New creates a canvas renderer with an empty sprite cache.
func New() *Renderer {
	return &Renderer{sprites: cache.NewSharded[spriteKey, *gg.ImageBuf](spriteCapacity, hashSpriteKey)}
}

// Name implements backend.Renderer.
func (r *Renderer) Name() string {
	return Name
}

// Render implements backend.Renderer.
func (r *Renderer) Render(f backend.Frame) ([]byte, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	dc := gg.NewContext(f.Width, f.Height)
	defer func() { _ = dc.Close() }()

	dc.ClearWithColor(gg.FromColor(f.Background))
	bounds := intImage.Rect{Width: f.Width, Height: f.Height}
	for _, s := range f.Sprites {
		// gg scales a sprite into its clamped destination, so partly
		// visible sprites are cropped to the visible source region first.
		visible := intImage.Rect{X: s.X, Y: s.Y, Width: s.Image.Width(), Height: s.Image.Height()}.Intersect(bounds)
		if visible.Empty() {
			continue
		}
		src := image.Rect(visible.X-s.X, visible.Y-s.Y, visible.X-s.X+visible.Width, visible.Y-s.Y+visible.Height)
		dc.DrawImageEx(r.sprite(s), gg.DrawImageOptions{
			X:             float64(visible.X),
			Y:             float64(visible.Y),
			SrcRect:       &src,
			Interpolation: gg.InterpBilinear, // samples fall on pixel centers
			Opacity:       1,
			BlendMode:     gg.BlendNormal,
		})
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("canvas: encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) sprite(s backend.Sprite) *gg.ImageBuf {
	return r.sprites.GetOrCreate(spriteKey{id: s.ID, img: s.Image}, func() *gg.ImageBuf {
		emojicap.Logger().Debug("canvas: converting glyph", "id", fmt.Sprintf("%U", s.ID))
		return gg.ImageBufFromImage(s.Image.ToStdImage())
	})
}

// CacheStats returns hit and miss counts of the renderer's sprite cache.
func (r *Renderer) CacheStats() cache.Stats {
	return r.sprites.Stats()
}
