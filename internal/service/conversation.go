package service

import (
	"vocabtutor/internal/conversation"
	"vocabtutor/internal/domain"
	"vocabtutor/internal/repository"
	"vocabtutor/internal/tutor"

	"go.uber.org/zap"
)

// ConversationService drives the scripted dialogue. The caller keeps the
// session and must not reuse a turn index.
type ConversationService struct {
	vocabRepo repository.VocabularyRepository
	recorder  ResultRecorder
	generator *conversation.Generator
	logger    *zap.Logger
}

// NewConversationService creates a new conversation service
func NewConversationService(
	vocabRepo repository.VocabularyRepository,
	recorder ResultRecorder,
	generator *conversation.Generator,
	logger *zap.Logger,
) *ConversationService {
	return &ConversationService{
		vocabRepo: vocabRepo,
		recorder:  recorder,
		generator: generator,
		logger:    logger,
	}
}

// Start opens a dialogue at turn 0
func (s *ConversationService) Start(userID int64) (*domain.ConversationSession, error) {
	turn, err := s.turn(userID, 0)
	if err != nil {
		return nil, err
	}
	return &domain.ConversationSession{Turn: turn}, nil
}

// Reply checks the learner's reply against the current turn, submits the
// result and moves the session to the next turn. The feedback is valid even
// when preparing the next turn fails.
func (s *ConversationService) Reply(userID int64, session *domain.ConversationSession, reply string) (domain.Feedback, error) {
	feedback := tutor.GenerateFeedbackForMultipleAnswers(reply, session.Turn.AcceptableReplies)

	session.Total++
	if feedback.IsCorrect {
		session.Correct++
	}
	submitResult(s.recorder, s.logger, userID, feedback.Result(session.Turn.ItemID))

	next, err := s.turn(userID, session.TurnIndex+1)
	if err != nil {
		return feedback, err
	}
	session.TurnIndex++
	session.Turn = next

	return feedback, nil
}

func (s *ConversationService) turn(userID int64, index int) (domain.ConversationTurn, error) {
	vocab, err := s.vocabRepo.GetAll(userID)
	if err != nil {
		return domain.ConversationTurn{}, err
	}
	return s.generator.Turn(vocab, index)
}
