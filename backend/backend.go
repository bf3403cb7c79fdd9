package backend

import (
	"errors"
	"image/color"

	intImage "github.com/gogpu/emojicap/internal/image"
)

// Common backend errors.
var (
	// ErrUnknownBackend is returned when a requested backend is not registered.
	ErrUnknownBackend = errors.New("backend: unknown backend")

	// ErrInvalidFrame is returned for frames with non-positive dimensions or
	// sprites without an image.
	ErrInvalidFrame = errors.New("backend: invalid frame")
)

// Sprite is a glyph bitmap placed on the canvas with its top-left corner at
// (X, Y). Coordinates may lie partly or fully outside the canvas.
type Sprite struct {
	ID    rune
	Image *intImage.ImageBuf
	X, Y  int
}

// Frame describes one canvas to rasterize.
type Frame struct {
	Width      int
	Height     int
	Background color.NRGBA
	Sprites    []Sprite
}

// Validate reports whether the frame can be rendered.
func (f *Frame) Validate() error {
	if f.Width <= 0 || f.Height <= 0 {
		return ErrInvalidFrame
	}
	for _, s := range f.Sprites {
		if s.Image == nil {
			return ErrInvalidFrame
		}
	}
	return nil
}

// Renderer rasterizes frames to PNG.
//
// Sprites are composited in slice order with source-over blending onto an
// opaque background; transparent sprite pixels leave the background
// untouched. Sprite images are only read.
type Renderer interface {
	// Name returns the registry name (e.g. "software").
	Name() string

	// Render composites f and returns the encoded PNG stream.
	Render(f Frame) ([]byte, error)
}
