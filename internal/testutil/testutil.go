package testutil

import (
	"time"

	"vocabtutor/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestItem creates a test vocabulary item
func NewTestItem(id int64, userID int64, word, translation string) domain.VocabularyItem {
	return domain.VocabularyItem{
		ID:          id,
		UserID:      userID,
		Word:        word,
		Translation: translation,
		CreatedAt:   time.Now(),
	}
}

// NewTestVocabulary creates items numbered from 1 out of word/translation pairs
func NewTestVocabulary(userID int64, pairs ...[2]string) []domain.VocabularyItem {
	items := make([]domain.VocabularyItem, 0, len(pairs))
	for i, p := range pairs {
		items = append(items, NewTestItem(int64(i+1), userID, p[0], p[1]))
	}
	return items
}
