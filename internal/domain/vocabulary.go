package domain

import (
	"strings"
	"time"
)

// VocabularyItem is a word-translation pair owned by a user.
// TimesCorrect and TimesIncorrect are only changed by the store in
// response to a submitted PracticeResult.
type VocabularyItem struct {
	ID             int64
	UserID         int64
	Word           string
	Translation    string
	Notes          string
	Tags           []string
	TimesCorrect   int
	TimesIncorrect int
	LastSeen       *time.Time
	CreatedAt      time.Time
}

// Valid reports whether word and translation are non-empty after trimming
func (v VocabularyItem) Valid() bool {
	return strings.TrimSpace(v.Word) != "" && strings.TrimSpace(v.Translation) != ""
}

// Attempts returns the total number of answers recorded for the item
func (v VocabularyItem) Attempts() int {
	return v.TimesCorrect + v.TimesIncorrect
}
