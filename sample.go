package emojicap

import (
	"fmt"
	"math/rand/v2"
	"slices"
)

// Rand is the random source used for glyph selection and shuffling.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	// IntN returns a uniform value in [0, n). n is always positive.
	IntN(n int) int
}

// globalRand uses the process-wide math/rand/v2 generator, which is safe
// for concurrent use.
type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// selection is the outcome of the glyph draw for one challenge.
type selection struct {
	correct  rune
	display  []rune
	keyboard []rune
}

// selectGlyphs draws the display and keyboard sets from ids.
//
// displayCount is clamped to len(ids). displayCount+keyboardCount-1 distinct
// ids are drawn; the last display slot is also the first keyboard slot and
// holds the correct glyph. When the catalog is too small for that draw, the
// keyboard is topped up with the other display glyphs, up to len(ids).
// Both sets are shuffled before returning.
func selectGlyphs(rng Rand, ids []rune, displayCount, keyboardCount int) (selection, error) {
	if len(ids) == 0 {
		return selection{}, ErrCatalogEmpty
	}
	if displayCount < 1 {
		return selection{}, fmt.Errorf("%w: display count %d must be positive", ErrInvalidRequest, displayCount)
	}
	if keyboardCount < 1 {
		return selection{}, fmt.Errorf("%w: keyboard count %d must be positive", ErrInvalidRequest, keyboardCount)
	}

	displayCount = min(displayCount, len(ids))
	drawn := sample(rng, ids, min(displayCount+keyboardCount-1, len(ids)))

	display := slices.Clone(drawn[:displayCount])
	keyboard := slices.Clone(drawn[displayCount-1:])
	if short := min(keyboardCount, len(ids)) - len(keyboard); short > 0 {
		keyboard = append(keyboard, drawn[:short]...)
	}
	correct := display[displayCount-1]

	shuffle(rng, display)
	shuffle(rng, keyboard)

	return selection{correct: correct, display: display, keyboard: keyboard}, nil
}

// sample returns k distinct elements of ids chosen uniformly at random, in
// random order (partial Fisher-Yates). ids is not modified.
func sample(rng Rand, ids []rune, k int) []rune {
	pool := slices.Clone(ids)
	for i := range k {
		j := i + rng.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k:k]
}

// shuffle permutes s uniformly in place (Fisher-Yates).
func shuffle(rng Rand, s []rune) {
	for i := len(s) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}
