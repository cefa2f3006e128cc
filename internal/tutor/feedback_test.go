package tutor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateFeedback(t *testing.T) {
	tests := []struct {
		name           string
		user           string
		expected       string
		wantCorrect    bool
		wantHint       string
		wantSuggestion string
	}{
		{
			name:        "exact",
			user:        "hola",
			expected:    "hola",
			wantCorrect: true,
			wantHint:    HintCorrect,
		},
		{
			name:        "equivalent after normalization",
			user:        "  ADIÓS ",
			expected:    "adios",
			wantCorrect: true,
			wantHint:    HintCorrect,
		},
		{
			name:           "typo",
			user:           "Hols",
			expected:       "hola",
			wantHint:       HintClose,
			wantSuggestion: `The correct answer is "hola". You may have a minor spelling error.`,
		},
		{
			name:           "extra words",
			user:           "the big house",
			expected:       "big house",
			wantHint:       HintIncomplete,
			wantSuggestion: `The correct answer is "big house".`,
		},
		{
			name:           "case defeats typo check but not containment",
			user:           "HOLAS",
			expected:       "hola",
			wantHint:       HintIncomplete,
			wantSuggestion: `The correct answer is "hola".`,
		},
		{
			name:           "empty answer",
			user:           "",
			expected:       "hola",
			wantHint:       HintIncomplete,
			wantSuggestion: `The correct answer is "hola".`,
		},
		{
			name:           "word order",
			user:           "house big",
			expected:       "big house",
			wantHint:       HintWordOrder,
			wantSuggestion: `The correct answer is "big house". Check word order and missing/extra words.`,
		},
		{
			name:           "far mismatch",
			user:           "goodbye",
			expected:       "hola",
			wantHint:       HintFarOff,
			wantSuggestion: `The correct answer is "hola".`,
		},
		{
			name:           "fallback",
			user:           "abcdexyzij",
			expected:       "abcdefghij",
			wantHint:       HintNotQuite,
			wantSuggestion: `The correct answer is "abcdefghij".`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb := GenerateFeedback(tt.user, tt.expected)

			assert.Equal(t, tt.wantCorrect, fb.IsCorrect)
			assert.Equal(t, tt.wantHint, fb.Hint)
			assert.Equal(t, tt.wantSuggestion, fb.Suggestion)
		})
	}
}

func TestGenerateFeedbackForMultipleAnswers(t *testing.T) {
	tests := []struct {
		name           string
		user           string
		answers        []string
		wantCorrect    bool
		wantHint       string
		wantSuggestion string
	}{
		{
			name:        "match last",
			user:        "hola",
			answers:     []string{"adios", "hola"},
			wantCorrect: true,
			wantHint:    HintCorrect,
		},
		{
			name:        "match first",
			user:        "hola",
			answers:     []string{"hola", "adios"},
			wantCorrect: true,
			wantHint:    HintCorrect,
		},
		{
			name:           "closest candidate, all answers listed",
			user:           "adioz",
			answers:        []string{"hola", "adios"},
			wantHint:       HintClose,
			wantSuggestion: `Acceptable answers include: "hola" or "adios". You may have a minor spelling error.`,
		},
		{
			name:           "single candidate keeps suggestion",
			user:           "adioz",
			answers:        []string{"adios"},
			wantHint:       HintClose,
			wantSuggestion: `The correct answer is "adios". You may have a minor spelling error.`,
		},
		{
			name:           "tie keeps first candidate",
			user:           "abc",
			answers:        []string{"ABCDE", "abxyc"},
			wantHint:       HintIncomplete,
			wantSuggestion: `Acceptable answers include: "ABCDE" or "abxyc".`,
		},
		{
			name:           "tie keeps first candidate reversed",
			user:           "abc",
			answers:        []string{"abxyc", "ABCDE"},
			wantHint:       HintClose,
			wantSuggestion: `Acceptable answers include: "abxyc" or "ABCDE". You may have a minor spelling error.`,
		},
		{
			name:           "quoted answer is not rewritten",
			user:           `say "hy"`,
			answers:        []string{`say "hi"`, "zzzzzzzz"},
			wantHint:       HintClose,
			wantSuggestion: `The correct answer is "say "hi"". You may have a minor spelling error.`,
		},
		{
			name:           "no candidates",
			user:           "hola",
			answers:        nil,
			wantHint:       HintTryAgain,
			wantSuggestion: `Acceptable answers include: "".`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb := GenerateFeedbackForMultipleAnswers(tt.user, tt.answers)

			assert.Equal(t, tt.wantCorrect, fb.IsCorrect)
			assert.Equal(t, tt.wantHint, fb.Hint)
			assert.Equal(t, tt.wantSuggestion, fb.Suggestion)
		})
	}
}
