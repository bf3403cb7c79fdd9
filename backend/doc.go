// Package backend provides the pluggable rasterization contract used by the
// challenge composer.
//
// A [Renderer] receives a [Frame] (canvas size, background and positioned
// glyph sprites), composites it with source-over blending and returns PNG
// bytes. Renderers are registered by name; the software renderer is
// registered on import of this package:
//
//	r, err := backend.Get(backend.Software)
//	png, err := r.Render(frame)
//
// Other renderers register themselves from init() in their own packages and
// are enabled with a blank import:
//
//	import _ "github.com/gogpu/emojicap/backend/canvas"
//
// All registered renderers are safe for concurrent use.
package backend
