package repository

import (
	"vocabtutor/internal/domain"
)

// UserRepository defines user data operations
type UserRepository interface {
	IsAuthorized(userID int64) (bool, error)
	AuthorizeUser(userID int64) error
	EnsureUserExists(userID int64) error
	GetProfile(userID int64) (*domain.Profile, error)
	SetLanguages(userID int64, source, target string) error
	ResetPracticeCounters() error
}

// VocabularyRepository defines vocabulary data operations
type VocabularyRepository interface {
	AddItem(item domain.VocabularyItem) (int64, error)
	GetAll(userID int64) ([]domain.VocabularyItem, error)
	GetPage(userID int64, limit, offset int) ([]domain.VocabularyItem, error)
	Count(userID int64) (int, error)
	Delete(userID, itemID int64) error
	RecordResult(userID int64, result domain.PracticeResult) error
}
