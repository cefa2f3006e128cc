package service

import (
	"crypto/subtle"

	"vocabtutor/internal/repository"
)

// AuthService gates the bot behind a shared password
type AuthService struct {
	userRepo    repository.UserRepository
	botPassword []byte
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, botPassword string) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		botPassword: []byte(botPassword),
	}
}

// CheckPassword compares in constant time; an empty password never matches
func (s *AuthService) CheckPassword(password string) bool {
	if password == "" || len(s.botPassword) == 0 {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(password), s.botPassword) == 1
}

// Login authorizes the user when the password matches. A wrong password
// leaves the user record untouched.
func (s *AuthService) Login(userID int64, password string) (bool, error) {
	if !s.CheckPassword(password) {
		return false, nil
	}
	if err := s.userRepo.AuthorizeUser(userID); err != nil {
		return false, err
	}
	return true, nil
}

// IsAuthorized checks if user is authorized
func (s *AuthService) IsAuthorized(userID int64) (bool, error) {
	return s.userRepo.IsAuthorized(userID)
}

// EnsureUserExists creates user record if doesn't exist
func (s *AuthService) EnsureUserExists(userID int64) error {
	return s.userRepo.EnsureUserExists(userID)
}
