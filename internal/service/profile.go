package service

import (
	"fmt"

	"vocabtutor/internal/domain"
	"vocabtutor/internal/repository"
)

// ProfileService handles the user's language settings
type ProfileService struct {
	userRepo repository.UserRepository
}

// NewProfileService creates a new profile service
func NewProfileService(userRepo repository.UserRepository) *ProfileService {
	return &ProfileService{userRepo: userRepo}
}

// GetProfile returns the user's profile
func (s *ProfileService) GetProfile(userID int64) (*domain.Profile, error) {
	return s.userRepo.GetProfile(userID)
}

// SetLanguages validates and stores the language pair
func (s *ProfileService) SetLanguages(userID int64, source, target string) error {
	if !domain.IsSupportedLanguage(source) {
		return fmt.Errorf("source %q: %w", source, domain.ErrUnknownLanguage)
	}
	if !domain.IsSupportedLanguage(target) {
		return fmt.Errorf("target %q: %w", target, domain.ErrUnknownLanguage)
	}
	if source == target {
		return domain.ErrSameLanguage
	}
	return s.userRepo.SetLanguages(userID, source, target)
}
