package service

import (
	"fmt"
	"testing"

	"vocabtutor/internal/domain"
	"vocabtutor/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestParseEntry(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Entry
	}{
		{
			name:     "translation only",
			input:    "  hello ",
			expected: Entry{Translation: "hello"},
		},
		{
			name:     "with notes",
			input:    "goodbye | also: bye",
			expected: Entry{Translation: "goodbye", Notes: "also: bye"},
		},
		{
			name:     "with notes and tags",
			input:    "cat | masculine | animals, basics, animals",
			expected: Entry{Translation: "cat", Notes: "masculine", Tags: []string{"animals", "basics"}},
		},
		{
			name:     "empty notes",
			input:    "dog || animals",
			expected: Entry{Translation: "dog", Tags: []string{"animals"}},
		},
		{
			name:     "pipe in tags is kept",
			input:    "a | b | c | d",
			expected: Entry{Translation: "a", Notes: "b", Tags: []string{"c | d"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseEntry(tt.input))
		})
	}
}

func TestVocabularyService_AddItem(t *testing.T) {
	tests := []struct {
		name          string
		word          string
		entry         Entry
		mockError     error
		expectSave    bool
		expectedError bool
	}{
		{
			name:       "valid item",
			word:       " hola ",
			entry:      Entry{Translation: " hello ", Notes: "informal"},
			expectSave: true,
		},
		{
			name:          "empty word",
			word:          "   ",
			entry:         Entry{Translation: "hello"},
			expectedError: true,
		},
		{
			name:          "empty translation",
			word:          "hola",
			entry:         Entry{Translation: ""},
			expectedError: true,
		},
		{
			name:          "database error",
			word:          "hola",
			entry:         Entry{Translation: "hello"},
			mockError:     fmt.Errorf("db error"),
			expectSave:    true,
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockVocabularyRepository)
			if tt.expectSave {
				mockRepo.On("AddItem", mock.MatchedBy(func(item domain.VocabularyItem) bool {
					return item.UserID == 123 && item.Word == "hola" && item.Translation == "hello"
				})).Return(int64(9), tt.mockError)
			}

			service := NewVocabularyService(mockRepo)

			id, err := service.AddItem(123, tt.word, tt.entry)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, int64(9), id)
			}
			if !tt.expectSave && tt.expectedError {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestVocabularyService_ListPage(t *testing.T) {
	tests := []struct {
		name               string
		page               int
		expectedOffset     int
		total              int
		expectedTotalPages int
	}{
		{name: "first page", page: 1, expectedOffset: 0, total: 25, expectedTotalPages: 3},
		{name: "page below one", page: 0, expectedOffset: 0, total: 10, expectedTotalPages: 1},
		{name: "third page", page: 3, expectedOffset: 20, total: 21, expectedTotalPages: 3},
		{name: "empty vocabulary", page: 1, expectedOffset: 0, total: 0, expectedTotalPages: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockVocabularyRepository)
			items := []domain.VocabularyItem{testutil.NewTestItem(1, 123, "hola", "hello")}
			mockRepo.On("GetPage", int64(123), VocabularyPageSize, tt.expectedOffset).Return(items, nil)
			mockRepo.On("Count", int64(123)).Return(tt.total, nil)

			service := NewVocabularyService(mockRepo)

			got, totalPages, err := service.ListPage(123, tt.page)

			assert.NoError(t, err)
			assert.Equal(t, items, got)
			assert.Equal(t, tt.expectedTotalPages, totalPages)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestVocabularyService_ListPage_Error(t *testing.T) {
	mockRepo := new(testutil.MockVocabularyRepository)
	mockRepo.On("GetPage", int64(123), VocabularyPageSize, 0).Return(nil, fmt.Errorf("db error"))

	service := NewVocabularyService(mockRepo)

	items, _, err := service.ListPage(123, 1)

	assert.Error(t, err)
	assert.Nil(t, items)
	mockRepo.AssertExpectations(t)
}

func TestVocabularyService_Delete(t *testing.T) {
	mockRepo := new(testutil.MockVocabularyRepository)
	mockRepo.On("Delete", int64(123), int64(7)).Return(domain.ErrNotFound)

	service := NewVocabularyService(mockRepo)

	err := service.Delete(123, 7)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	mockRepo.AssertExpectations(t)
}

func TestVocabularyService_Import(t *testing.T) {
	mockRepo := new(testutil.MockVocabularyRepository)
	mockRepo.On("AddItem", mock.MatchedBy(func(item domain.VocabularyItem) bool {
		return item.Word == "hola"
	})).Return(int64(1), nil)
	mockRepo.On("AddItem", mock.MatchedBy(func(item domain.VocabularyItem) bool {
		return item.Word == "gato"
	})).Return(int64(0), fmt.Errorf("db error"))

	service := NewVocabularyService(mockRepo)

	result := service.Import(123, []domain.VocabularyItem{
		{Word: "hola", Translation: "hello", Tags: []string{"greetings"}},
		{Word: "", Translation: "missing"},
		{Word: "gato", Translation: "cat"},
	})

	assert.Equal(t, 1, result.Created)
	assert.Len(t, result.Errors, 2)
	mockRepo.AssertExpectations(t)
}
