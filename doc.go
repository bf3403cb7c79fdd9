// Package emojicap generates emoji image challenges.
//
// # Overview
//
// A challenge is a PNG showing a row of emoji glyphs, one of which is the
// correct answer, together with a pool of keyboard glyphs the user picks
// from. The keyboard pool always contains the correct glyph. Presenting the
// image and checking the answer is left to the calling application.
//
// # Quick Start
//
//	catalog := emojicap.LoadCatalog("./emojis", "png")
//	composer := emojicap.NewComposer(catalog)
//
//	ch, err := composer.Generate(nil, 5, 10)
//	if err != nil {
//	    return err
//	}
//	// ch.Image is PNG bytes; ch.Keyboard feeds the on-screen keyboard.
//	ok := ch.IsCorrect(selected)
//
// # Assets
//
// A catalog is built from a directory with one image per glyph, named by the
// lowercase hexadecimal code point ("1f600.png"). Unreadable or badly named
// entries are skipped; an unreadable directory yields an empty catalog.
// Catalogs are immutable and may be shared by any number of goroutines.
//
// # Randomness
//
// Generate takes the random source explicitly. Pass nil in production to use
// the process-wide generator, or a seeded *rand.Rand from math/rand/v2 for
// reproducible output:
//
//	rng := rand.New(rand.NewPCG(1, 2))
//	ch, err := composer.Generate(rng, 3, 2)
//
// A seeded *rand.Rand is not safe for concurrent use; give each goroutine its
// own.
//
// # Rendering
//
// The canvas is 550x180 with an opaque white background. Glyphs are laid out
// left to right, 20 pixels apart, centered as a row horizontally and each
// centered vertically. Rasterization is delegated to a backend.Renderer; the
// default is the software renderer, and backend/canvas provides one built on
// github.com/gogpu/gg.
package emojicap
