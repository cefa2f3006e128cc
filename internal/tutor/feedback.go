package tutor

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode/utf8"

	"vocabtutor/internal/domain"
)

// Hints, one per verdict category.
const (
	HintCorrect    = "Perfect! Your answer is correct."
	HintClose      = "You were very close! Check for small typos or spelling differences."
	HintIncomplete = "Your answer contains part of the correct answer, but is incomplete or has extra words."
	HintWordOrder  = "Some words are correct, but the order or other words are different."
	HintFarOff     = "Your answer is quite different from the expected answer. Review the vocabulary item."
	HintNotQuite   = "Not quite right. Compare your answer carefully with the correct one."
	HintTryAgain   = "Not quite right. Try again."
)

// farOffRatio is the share of the expected answer's length above which an
// answer counts as unrelated.
const farOffRatio = 0.7

var correctAnswerPattern = regexp.MustCompile(`The correct answer is "([^"]+)"\.`)

// GenerateFeedback classifies userAnswer against expectedAnswer. Checks run
// in order and the first one that applies wins: normalized equality, raw
// typo distance, containment, shared words, far mismatch, fallback.
func GenerateFeedback(userAnswer, expectedAnswer string) domain.Feedback {
	if AreAnswersEquivalent(userAnswer, expectedAnswer) {
		return correct()
	}

	normalizedUser := Normalize(userAnswer)
	normalizedExpected := Normalize(expectedAnswer)
	distance := LevenshteinDistance(normalizedUser, normalizedExpected)
	correctAnswer := fmt.Sprintf(`The correct answer is "%s".`, expectedAnswer)

	if IsCloseMatch(userAnswer, expectedAnswer, CloseMatchDistance) {
		return domain.Feedback{
			Hint:       HintClose,
			Suggestion: correctAnswer + " You may have a minor spelling error.",
		}
	}

	if strings.Contains(normalizedUser, normalizedExpected) || strings.Contains(normalizedExpected, normalizedUser) {
		return domain.Feedback{Hint: HintIncomplete, Suggestion: correctAnswer}
	}

	if sharesWord(normalizedUser, normalizedExpected) {
		return domain.Feedback{
			Hint:       HintWordOrder,
			Suggestion: correctAnswer + " Check word order and missing/extra words.",
		}
	}

	if float64(distance) > float64(utf8.RuneCountInString(expectedAnswer))*farOffRatio {
		return domain.Feedback{Hint: HintFarOff, Suggestion: correctAnswer}
	}

	return domain.Feedback{Hint: HintNotQuite, Suggestion: correctAnswer}
}

// GenerateFeedbackForMultipleAnswers accepts userAnswer if it is equivalent
// to any of acceptableAnswers. Otherwise it explains the verdict against the
// closest candidate by normalized edit distance, the first one on ties.
// With several candidates the suggestion lists all of them.
func GenerateFeedbackForMultipleAnswers(userAnswer string, acceptableAnswers []string) domain.Feedback {
	for _, expected := range acceptableAnswers {
		if AreAnswersEquivalent(userAnswer, expected) {
			return correct()
		}
	}

	allAnswers := strings.Join(acceptableAnswers, `" or "`)
	normalizedUser := Normalize(userAnswer)

	var best *domain.Feedback
	bestDistance := math.MaxInt
	for _, expected := range acceptableAnswers {
		distance := LevenshteinDistance(normalizedUser, Normalize(expected))
		if distance < bestDistance {
			bestDistance = distance
			fb := GenerateFeedback(userAnswer, expected)
			best = &fb
		}
	}

	if best == nil {
		return domain.Feedback{
			Hint:       HintTryAgain,
			Suggestion: fmt.Sprintf(`Acceptable answers include: "%s".`, allAnswers),
		}
	}

	if len(acceptableAnswers) > 1 {
		best.Suggestion = replaceFirst(best.Suggestion, correctAnswerPattern,
			fmt.Sprintf(`Acceptable answers include: "%s".`, allAnswers))
	}
	return *best
}

func correct() domain.Feedback {
	return domain.Feedback{IsCorrect: true, Hint: HintCorrect}
}

// sharesWord reports whether any space-separated word of a also occurs in b
func sharesWord(a, b string) bool {
	words := make(map[string]struct{})
	for _, w := range strings.Split(b, " ") {
		words[w] = struct{}{}
	}
	for _, w := range strings.Split(a, " ") {
		if _, ok := words[w]; ok {
			return true
		}
	}
	return false
}

// replaceFirst substitutes the first match of re in s with the literal repl.
// s is returned unchanged when there is no match.
func replaceFirst(s string, re *regexp.Regexp, repl string) string {
	loc := re.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[0]] + repl + s[loc[1]:]
}
