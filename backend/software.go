package backend

import (
	"fmt"

	intImage "github.com/gogpu/emojicap/internal/image"
)

// Software is the name of the CPU compositing renderer.
const Software = "software"

func init() {
	Register(Software, func() Renderer { return NewSoftware() })
}

// canvasPool is shared by all software renderers; challenge canvases are all
// the same size, so a handful of buffers covers concurrent callers.
var canvasPool = intImage.NewPool(8)

// SoftwareRenderer composites frames into a pooled RGBA buffer and encodes
// it with image/png.
type SoftwareRenderer struct {
	pool *intImage.Pool
}

// NewSoftware creates a software renderer backed by the shared canvas pool.
func NewSoftware() *SoftwareRenderer {
	return &SoftwareRenderer{pool: canvasPool}
}

// Name returns the backend identifier.
func (r *SoftwareRenderer) Name() string {
	return Software
}

// Render implements Renderer.
func (r *SoftwareRenderer) Render(f Frame) ([]byte, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	canvas, err := r.pool.Get(f.Width, f.Height)
	if err != nil {
		return nil, fmt.Errorf("backend: allocate canvas: %w", err)
	}
	defer r.pool.Put(canvas)

	bg := f.Background
	canvas.Fill(bg.R, bg.G, bg.B, bg.A)
	for _, s := range f.Sprites {
		intImage.DrawOver(canvas, s.Image, s.X, s.Y)
	}

	return canvas.EncodeToBytes()
}
