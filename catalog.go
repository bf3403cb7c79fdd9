package emojicap

import (
	"image"
	"io/fs"
	"os"
	"path"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	intImage "github.com/gogpu/emojicap/internal/image"
)

// DefaultExtension is the asset file extension used when none is given.
const DefaultExtension = "png"

// Bitmap is a decoded glyph image: non-premultiplied RGBA, 8 bits per
// channel. Bitmaps held by a Catalog are never modified.
type Bitmap = intImage.ImageBuf

// Catalog is an immutable set of glyph bitmaps keyed by Unicode scalar value.
//
// The ids slice fixes the sampling universe independently of map iteration
// order: every id in it has exactly one bitmap and every bitmap has exactly
// one id.
type Catalog struct {
	glyphs map[rune]*Bitmap
	ids    []rune
}

// LoadCatalog scans dir (non-recursively) for files named
// "<hex code point>.<ext>" and decodes them. An empty ext means
// DefaultExtension; a leading dot is ignored.
//
// Entries that cannot be read, decoded or parsed are skipped. If dir itself
// cannot be read the catalog is empty. LoadCatalog never fails.
func LoadCatalog(dir, ext string) *Catalog {
	if dir == "" {
		Logger().Warn("emojicap: empty asset directory path")
		return newCatalog()
	}
	return LoadCatalogFS(os.DirFS(dir), ext)
}

// LoadCatalogFS is like LoadCatalog but reads the root of fsys, which allows
// assets embedded with embed.FS (use fs.Sub to select the directory).
func LoadCatalogFS(fsys fs.FS, ext string) *Catalog {
	ext = normalizeExt(ext)
	c := newCatalog()
	log := Logger()

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		log.Warn("emojicap: cannot read asset directory", "err", err)
		return c
	}

	skipped := 0
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || path.Ext(name) != "."+ext {
			continue
		}
		id, ok := parseGlyphID(strings.TrimSuffix(name, "."+ext))
		if !ok {
			log.Debug("emojicap: skip asset with non code point name", "file", name)
			skipped++
			continue
		}
		bmp, err := intImage.LoadFS(fsys, name)
		if err != nil {
			log.Debug("emojicap: skip undecodable asset", "file", name, "err", err)
			skipped++
			continue
		}
		c.insert(id, bmp)
	}

	log.Info("emojicap: glyph catalog loaded", "glyphs", c.Len(), "skipped", skipped, "ext", ext)
	return c
}

// NewCatalog builds a catalog from in-memory images. Ids are ordered
// ascending. Images with no pixels and ids that are not valid Unicode scalar
// values are skipped.
func NewCatalog(images map[rune]image.Image) *Catalog {
	c := newCatalog()

	ids := make([]rune, 0, len(images))
	for id := range images {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	for _, id := range ids {
		if !utf8.ValidRune(id) {
			Logger().Debug("emojicap: skip invalid code point", "id", id)
			continue
		}
		bmp, err := intImage.FromStdImage(images[id])
		if err != nil {
			Logger().Debug("emojicap: skip empty image", "id", id, "err", err)
			continue
		}
		c.insert(id, bmp)
	}
	return c
}

func newCatalog() *Catalog {
	return &Catalog{glyphs: make(map[rune]*Bitmap)}
}

// insert adds or replaces a glyph. A repeated id keeps its original
// position in ids.
func (c *Catalog) insert(id rune, bmp *Bitmap) {
	if _, dup := c.glyphs[id]; !dup {
		c.ids = append(c.ids, id)
	} else {
		Logger().Debug("emojicap: duplicate glyph replaced", "id", id)
	}
	c.glyphs[id] = bmp
}

// Len returns the number of glyphs.
func (c *Catalog) Len() int {
	return len(c.ids)
}

// IDs returns a copy of the glyph ids in catalog order.
func (c *Catalog) IDs() []rune {
	return slices.Clone(c.ids)
}

// Glyph returns the bitmap for id.
func (c *Catalog) Glyph(id rune) (*Bitmap, bool) {
	bmp, ok := c.glyphs[id]
	return bmp, ok
}

// Contains reports whether the catalog has a glyph for id.
func (c *Catalog) Contains(id rune) bool {
	_, ok := c.glyphs[id]
	return ok
}

// parseGlyphID interprets a file stem as a hexadecimal Unicode scalar value.
func parseGlyphID(stem string) (rune, bool) {
	if stem == "" {
		return 0, false
	}
	v, err := strconv.ParseUint(stem, 16, 32)
	if err != nil {
		return 0, false
	}
	r := rune(v)
	if !utf8.ValidRune(r) {
		return 0, false
	}
	return r, true
}

func normalizeExt(ext string) string {
	ext = strings.TrimPrefix(ext, ".")
	if ext == "" {
		return DefaultExtension
	}
	return ext
}
