package service

import (
	"fmt"

	"vocabtutor/internal/domain"
	"vocabtutor/internal/repository"

	"go.uber.org/zap"
)

// StatsService handles dashboard metrics and counter maintenance
type StatsService struct {
	userRepo  repository.UserRepository
	vocabRepo repository.VocabularyRepository
	logger    *zap.Logger
}

// NewStatsService creates a new stats service
func NewStatsService(userRepo repository.UserRepository, vocabRepo repository.VocabularyRepository, logger *zap.Logger) *StatsService {
	return &StatsService{
		userRepo:  userRepo,
		vocabRepo: vocabRepo,
		logger:    logger,
	}
}

// Dashboard returns the user's practice metrics
func (s *StatsService) Dashboard(userID int64) (domain.DashboardMetrics, error) {
	profile, err := s.userRepo.GetProfile(userID)
	if err != nil {
		return domain.DashboardMetrics{}, err
	}

	vocab, err := s.vocabRepo.GetAll(userID)
	if err != nil {
		return domain.DashboardMetrics{}, err
	}

	var correct, attempts int
	for _, item := range vocab {
		correct += item.TimesCorrect
		attempts += item.Attempts()
	}

	return domain.DashboardMetrics{
		TotalItems: len(vocab),
		TodayCount: profile.PracticeCounter,
		Accuracy:   domain.Percent(correct, attempts),
		HasData:    len(vocab) > 0,
	}, nil
}

// ResetDailyCounters zeroes every user's practice counter
func (s *StatsService) ResetDailyCounters() error {
	s.logger.Info("Resetting daily practice counters")

	if err := s.userRepo.ResetPracticeCounters(); err != nil {
		return fmt.Errorf("reset practice counters: %w", err)
	}

	s.logger.Info("Practice counters reset")
	return nil
}
