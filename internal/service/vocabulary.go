package service

import (
	"fmt"
	"strings"

	"vocabtutor/internal/domain"
	"vocabtutor/internal/repository"
)

// VocabularyPageSize is the number of items per list page
const VocabularyPageSize = 10

// VocabularyService handles vocabulary management
type VocabularyService struct {
	vocabRepo repository.VocabularyRepository
}

// NewVocabularyService creates a new vocabulary service
func NewVocabularyService(vocabRepo repository.VocabularyRepository) *VocabularyService {
	return &VocabularyService{vocabRepo: vocabRepo}
}

// Entry is the parsed form of a translation message
type Entry struct {
	Translation string
	Notes       string
	Tags        []string
}

// ParseEntry splits "translation | notes | tag1, tag2" into its parts.
// Notes and tags are optional.
func ParseEntry(text string) Entry {
	parts := strings.SplitN(text, "|", 3)

	entry := Entry{Translation: strings.TrimSpace(parts[0])}
	if len(parts) > 1 {
		entry.Notes = strings.TrimSpace(parts[1])
	}
	if len(parts) > 2 {
		entry.Tags = ParseTags(parts[2])
	}
	return entry
}

// ParseTags splits a comma-separated tag list, dropping blanks and duplicates
func ParseTags(text string) []string {
	var tags []string
	seen := make(map[string]bool)
	for _, t := range strings.Split(text, ",") {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		tags = append(tags, t)
	}
	return tags
}

// AddItem validates and saves a vocabulary item
func (s *VocabularyService) AddItem(userID int64, word string, entry Entry) (int64, error) {
	item := domain.VocabularyItem{
		UserID:      userID,
		Word:        strings.TrimSpace(word),
		Translation: strings.TrimSpace(entry.Translation),
		Notes:       strings.TrimSpace(entry.Notes),
		Tags:        entry.Tags,
	}
	if !item.Valid() {
		return 0, fmt.Errorf("word and translation cannot be empty: %w", domain.ErrInvalidInput)
	}
	return s.vocabRepo.AddItem(item)
}

// ListPage returns a page of items and the total page count (at least 1)
func (s *VocabularyService) ListPage(userID int64, page int) ([]domain.VocabularyItem, int, error) {
	if page < 1 {
		page = 1
	}

	offset := (page - 1) * VocabularyPageSize
	items, err := s.vocabRepo.GetPage(userID, VocabularyPageSize, offset)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.vocabRepo.Count(userID)
	if err != nil {
		return nil, 0, err
	}

	totalPages := (total + VocabularyPageSize - 1) / VocabularyPageSize
	if totalPages == 0 {
		totalPages = 1
	}

	return items, totalPages, nil
}

// Delete removes one of the user's items
func (s *VocabularyService) Delete(userID, itemID int64) error {
	return s.vocabRepo.Delete(userID, itemID)
}

// ImportResult holds the outcome of a bulk import
type ImportResult struct {
	Created int
	Errors  []string
}

// Import adds the given items for the user. Invalid or failing rows are
// reported in the result and do not stop the import.
func (s *VocabularyService) Import(userID int64, items []domain.VocabularyItem) ImportResult {
	var result ImportResult
	for i, item := range items {
		entry := Entry{Translation: item.Translation, Notes: item.Notes, Tags: item.Tags}
		if _, err := s.AddItem(userID, item.Word, entry); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("item %d (%q): %v", i+1, item.Word, err))
			continue
		}
		result.Created++
	}
	return result
}
