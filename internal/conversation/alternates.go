package conversation

import (
	"regexp"
	"strings"
)

// AlternateExtractor finds an extra acceptable reply in free-text notes.
//
// Grammar, case-insensitive:
//
//	alternate = marker ":" { whitespace } value
//	marker    = "also" | "or" | "alternative"
//	value     = one or more characters other than "," "." and newline
//
// Markers are not word-bounded, so "for: x" also yields "x". Only the first
// alternate is used. Extraction is best effort: notes without a usable
// marker simply yield nothing.
type AlternateExtractor struct {
	pattern *regexp.Regexp
}

// NewAlternateExtractor creates an extractor for the also/or/alternative markers
func NewAlternateExtractor() *AlternateExtractor {
	return &AlternateExtractor{
		pattern: regexp.MustCompile(`(?i)(?:also|or|alternative):\s*([^,.\n]+)`),
	}
}

// Extract returns the trimmed first alternate in notes
func (e *AlternateExtractor) Extract(notes string) (string, bool) {
	m := e.pattern.FindStringSubmatch(notes)
	if m == nil {
		return "", false
	}
	alt := strings.TrimSpace(m[1])
	if alt == "" {
		return "", false
	}
	return alt, true
}
