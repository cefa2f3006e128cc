package tutor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "already normal", input: "hola", expected: "hola"},
		{name: "uppercase", input: "HOLA", expected: "hola"},
		{name: "surrounding whitespace", input: "  hola \n", expected: "hola"},
		{name: "inner whitespace runs", input: "big \t  house", expected: "big house"},
		{name: "acute accent", input: "Café", expected: "cafe"},
		{name: "uppercase accent", input: "ÉCOLE", expected: "ecole"},
		{name: "several marks", input: "naïve  façade", expected: "naive facade"},
		{name: "tilde", input: "adiós mañana", expected: "adios manana"},
		{name: "no decomposition", input: "Straße", expected: "straße"},
		{name: "cyrillic", input: "Привет", expected: "привет"},
		{name: "empty", input: "", expected: ""},
		{name: "only whitespace", input: " \t\n ", expected: ""},
		{name: "leading lone mark", input: "\u0301 a", expected: "a"},
		{name: "trailing lone mark", input: "a \u0301", expected: "a"},
		{name: "lone mark between words", input: "a \u0301 b", expected: "a b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{"", "  Café au LAIT ", "naïve", "Ünïcödé  text", "한국어", "İstanbul", "x́́y", "\u0301 a", "a \u0301", "a \u0301 b"}

	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}

func TestAreAnswersEquivalent(t *testing.T) {
	tests := []struct {
		name     string
		a        string
		b        string
		expected bool
	}{
		{name: "identical", a: "hola", b: "hola", expected: true},
		{name: "case and accents", a: "Adiós", b: "adios", expected: true},
		{name: "whitespace", a: " buenos   dias ", b: "buenos dias", expected: true},
		{name: "different words", a: "hola", b: "adios", expected: false},
		{name: "typo", a: "hols", b: "hola", expected: false},
		{name: "both empty", a: "", b: "  ", expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AreAnswersEquivalent(tt.a, tt.b))
			assert.Equal(t, tt.expected, AreAnswersEquivalent(tt.b, tt.a))
		})
	}
}
