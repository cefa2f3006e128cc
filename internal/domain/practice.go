package domain

import "math"

// ExerciseType is the kind of a generated exercise
type ExerciseType string

const (
	ExerciseTranslation ExerciseType = "translation"
	ExerciseFillInBlank ExerciseType = "fillInBlank"
)

// Exercise is a single generated practice question. It lives only as long
// as the practice session that produced it.
type Exercise struct {
	ItemID         int64
	Type           ExerciseType
	Prompt         string
	ExpectedAnswer string
	Context        string
}

// ConversationTurn is one partner prompt with the replies accepted for it.
// AcceptableReplies is never empty; the first element is the primary answer.
type ConversationTurn struct {
	ItemID            int64
	PartnerPrompt     string
	AcceptableReplies []string
}

// PrimaryReply returns the reply shown to the user as the expected answer
func (t ConversationTurn) PrimaryReply() string {
	if len(t.AcceptableReplies) == 0 {
		return ""
	}
	return t.AcceptableReplies[0]
}

// Feedback is the verdict on a single answer
type Feedback struct {
	IsCorrect  bool
	Hint       string
	Suggestion string
}

// Result pairs the verdict with the vocabulary item it was given for
func (f Feedback) Result(itemID int64) PracticeResult {
	return PracticeResult{ItemID: itemID, Passed: f.IsCorrect}
}

// PracticeResult is the only output that changes persisted statistics
type PracticeResult struct {
	ItemID int64
	Passed bool
}

// PracticeSession tracks progress through a list of exercises
type PracticeSession struct {
	Exercises []Exercise
	Index     int
	Correct   int
	Total     int
}

// Current returns the exercise awaiting an answer
func (s *PracticeSession) Current() (Exercise, bool) {
	if s == nil || s.Index >= len(s.Exercises) {
		return Exercise{}, false
	}
	return s.Exercises[s.Index], true
}

// Record counts an answered exercise and moves to the next one
func (s *PracticeSession) Record(passed bool) {
	s.Total++
	if passed {
		s.Correct++
	}
	s.Index++
}

// Finished reports whether every exercise was answered or skipped
func (s *PracticeSession) Finished() bool {
	return s.Index >= len(s.Exercises)
}

// Percent returns the rounded share of correct answers
func (s *PracticeSession) Percent() int {
	return Percent(s.Correct, s.Total)
}

// ConversationSession tracks the turn index of a running dialogue.
// TurnIndex grows by one per exchange.
type ConversationSession struct {
	TurnIndex int
	Turn      ConversationTurn
	Correct   int
	Total     int
}

// DashboardMetrics summarizes the user's practice history
type DashboardMetrics struct {
	TotalItems int
	TodayCount int
	Accuracy   int
	HasData    bool
}

// Percent returns part/total as a rounded percentage, 0 when total is 0
func Percent(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
