package service

import (
	"vocabtutor/internal/domain"
	"vocabtutor/internal/exercise"
	"vocabtutor/internal/repository"
	"vocabtutor/internal/tutor"

	"go.uber.org/zap"
)

// PracticeService runs exercise sessions
type PracticeService struct {
	vocabRepo repository.VocabularyRepository
	recorder  ResultRecorder
	generator *exercise.Generator
	count     int
	logger    *zap.Logger
}

// NewPracticeService creates a new practice service producing count
// exercises per session
func NewPracticeService(
	vocabRepo repository.VocabularyRepository,
	recorder ResultRecorder,
	generator *exercise.Generator,
	count int,
	logger *zap.Logger,
) *PracticeService {
	if count <= 0 {
		count = exercise.DefaultCount
	}
	return &PracticeService{
		vocabRepo: vocabRepo,
		recorder:  recorder,
		generator: generator,
		count:     count,
		logger:    logger,
	}
}

// StartSession generates a fresh set of exercises from the user's vocabulary
func (s *PracticeService) StartSession(userID int64) (*domain.PracticeSession, error) {
	vocab, err := s.vocabRepo.GetAll(userID)
	if err != nil {
		return nil, err
	}
	if len(vocab) == 0 {
		return nil, domain.ErrEmptyVocabulary
	}

	exercises := s.generator.Generate(vocab, s.count)
	s.logger.Info("Practice session started",
		zap.Int64("user_id", userID),
		zap.Int("exercises", len(exercises)),
	)
	return &domain.PracticeSession{Exercises: exercises}, nil
}

// Answer checks the answer to the current exercise, submits the result and
// advances the session. The answered exercise is returned with its feedback.
func (s *PracticeService) Answer(userID int64, session *domain.PracticeSession, answer string) (domain.Feedback, domain.Exercise, error) {
	ex, ok := session.Current()
	if !ok {
		return domain.Feedback{}, domain.Exercise{}, domain.ErrSessionFinished
	}

	feedback := tutor.GenerateFeedback(answer, ex.ExpectedAnswer)
	session.Record(feedback.IsCorrect)
	submitResult(s.recorder, s.logger, userID, feedback.Result(ex.ItemID))

	return feedback, ex, nil
}

// Skip counts the current exercise as failed and advances the session
func (s *PracticeService) Skip(userID int64, session *domain.PracticeSession) (domain.Exercise, error) {
	ex, ok := session.Current()
	if !ok {
		return domain.Exercise{}, domain.ErrSessionFinished
	}

	session.Record(false)
	submitResult(s.recorder, s.logger, userID, domain.PracticeResult{ItemID: ex.ItemID, Passed: false})

	return ex, nil
}
