package emojicap

import "errors"

// Errors returned by Generate. Details are wrapped with %w; match with
// errors.Is.
var (
	// ErrCatalogEmpty is returned when the catalog holds no glyphs.
	ErrCatalogEmpty = errors.New("emojicap: catalog is empty")

	// ErrInvalidRequest is returned for non-positive glyph counts.
	ErrInvalidRequest = errors.New("emojicap: invalid request")

	// ErrEncoding is returned when the renderer cannot produce the image.
	ErrEncoding = errors.New("emojicap: encoding failed")
)
