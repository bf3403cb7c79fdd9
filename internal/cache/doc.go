// Package cache provides a sharded, thread-safe LRU cache.
//
// The canvas backend uses it to memoize glyph bitmaps converted into the
// drawing library's image type, so that each glyph is converted once and then
// shared by concurrent renders.
//
//	c := cache.NewSharded[rune, *gg.ImageBuf](64, cache.RuneHasher)
//	img := c.GetOrCreate('😀', convert)
//
// Sharded must not be copied after creation (it contains mutexes).
package cache
