package tutor

import "github.com/antzucaro/matchr"

// CloseMatchDistance is the typo tolerance used by GenerateFeedback
const CloseMatchDistance = 2

// LevenshteinDistance returns the number of single-character insertions,
// deletions and substitutions needed to turn a into b. Characters are
// Unicode code points.
func LevenshteinDistance(a, b string) int {
	return matchr.Levenshtein(a, b)
}

// IsCloseMatch reports whether the raw strings are within maxDistance edits.
// The inputs are compared as given, without normalization.
func IsCloseMatch(userAnswer, expectedAnswer string, maxDistance int) bool {
	return LevenshteinDistance(userAnswer, expectedAnswer) <= maxDistance
}
