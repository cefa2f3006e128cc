// Package tutor decides whether a free-text answer matches the expected
// one and explains the verdict. Everything here is pure and safe for
// concurrent use.
package tutor

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// combiningDiacritics is the Combining Diacritical Marks block.
var combiningDiacritics = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0300, Hi: 0x036f, Stride: 1}},
}

// Normalize lowercases text, trims it, collapses whitespace runs to a
// single space and strips accents, so "  Café  au lait" becomes
// "cafe au lait".
func Normalize(text string) string {
	// Marks go first so that a lone mark leaves no stray space behind.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(combiningDiacritics)))
	if stripped, _, err := transform.String(t, text); err == nil {
		text = stripped
	}
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// AreAnswersEquivalent reports whether a and b normalize to the same text
func AreAnswersEquivalent(a, b string) bool {
	return Normalize(a) == Normalize(b)
}
