package domain

// Profile holds the user's language pair and today's practice counter
type Profile struct {
	UserID          int64
	SourceLanguage  string
	TargetLanguage  string
	PracticeCounter int
}

// HasLanguages reports whether language setup was completed
func (p Profile) HasLanguages() bool {
	return p.SourceLanguage != "" && p.TargetLanguage != ""
}

// UserState represents user's current interaction state
type UserState string

const (
	StateIdle               UserState = "idle"
	StateWaitingWord        UserState = "waiting_word"
	StateWaitingTranslation UserState = "waiting_translation"
	StatePracticing         UserState = "practicing"
	StateConversing         UserState = "conversing"
)

// StateData holds temporary data for user's current state
type StateData struct {
	State        UserState
	CurrentWord  string
	SourceLang   string // picked during language setup, before the target
	Practice     *PracticeSession
	Conversation *ConversationSession
}
