package testutil

import (
	"vocabtutor/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) IsAuthorized(userID int64) (bool, error) {
	args := m.Called(userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) AuthorizeUser(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockUserRepository) EnsureUserExists(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockUserRepository) GetProfile(userID int64) (*domain.Profile, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockUserRepository) SetLanguages(userID int64, source, target string) error {
	args := m.Called(userID, source, target)
	return args.Error(0)
}

func (m *MockUserRepository) ResetPracticeCounters() error {
	args := m.Called()
	return args.Error(0)
}

// MockVocabularyRepository is a mock for VocabularyRepository
type MockVocabularyRepository struct {
	mock.Mock
}

func (m *MockVocabularyRepository) AddItem(item domain.VocabularyItem) (int64, error) {
	args := m.Called(item)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVocabularyRepository) GetAll(userID int64) ([]domain.VocabularyItem, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VocabularyItem), args.Error(1)
}

func (m *MockVocabularyRepository) GetPage(userID int64, limit, offset int) ([]domain.VocabularyItem, error) {
	args := m.Called(userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VocabularyItem), args.Error(1)
}

func (m *MockVocabularyRepository) Count(userID int64) (int, error) {
	args := m.Called(userID)
	return args.Int(0), args.Error(1)
}

func (m *MockVocabularyRepository) Delete(userID, itemID int64) error {
	args := m.Called(userID, itemID)
	return args.Error(0)
}

func (m *MockVocabularyRepository) RecordResult(userID int64, result domain.PracticeResult) error {
	args := m.Called(userID, result)
	return args.Error(0)
}
