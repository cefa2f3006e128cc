package service

import (
	"fmt"
	"testing"

	"vocabtutor/internal/conversation"
	"vocabtutor/internal/domain"
	"vocabtutor/internal/testutil"
	"vocabtutor/internal/tutor"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConversationService(repo *testutil.MockVocabularyRepository) *ConversationService {
	return NewConversationService(repo, repo, conversation.NewGenerator(), testutil.NewTestLogger())
}

func TestConversationService_Start(t *testing.T) {
	tests := []struct {
		name          string
		vocab         []domain.VocabularyItem
		mockError     error
		expectedError error
	}{
		{
			name:  "first item by id",
			vocab: []domain.VocabularyItem{testutil.NewTestItem(9, 123, "gato", "cat"), testutil.NewTestItem(4, 123, "hola", "hello")},
		},
		{
			name:          "empty vocabulary",
			vocab:         []domain.VocabularyItem{},
			expectedError: domain.ErrEmptyVocabulary,
		},
		{
			name:      "database error",
			mockError: fmt.Errorf("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockVocabularyRepository)
			mockRepo.On("GetAll", int64(123)).Return(tt.vocab, tt.mockError)

			service := newTestConversationService(mockRepo)

			session, err := service.Start(123)

			switch {
			case tt.expectedError != nil:
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, session)
			case tt.mockError != nil:
				assert.Error(t, err)
				assert.Nil(t, session)
			default:
				require.NoError(t, err)
				assert.Equal(t, 0, session.TurnIndex)
				assert.Equal(t, int64(4), session.Turn.ItemID)
				assert.Equal(t, `How do you say "hello"?`, session.Turn.PartnerPrompt)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestConversationService_Reply(t *testing.T) {
	vocab := []domain.VocabularyItem{
		testutil.NewTestItem(1, 123, "adios", "goodbye"),
		testutil.NewTestItem(2, 123, "hola", "hello"),
	}
	vocab[0].Notes = "also: adiós"

	mockRepo := new(testutil.MockVocabularyRepository)
	mockRepo.On("GetAll", int64(123)).Return(vocab, nil)
	mockRepo.On("RecordResult", int64(123), domain.PracticeResult{ItemID: 1, Passed: true}).Return(nil)
	mockRepo.On("RecordResult", int64(123), domain.PracticeResult{ItemID: 2, Passed: false}).Return(nil)

	service := newTestConversationService(mockRepo)

	session, err := service.Start(123)
	require.NoError(t, err)
	assert.Equal(t, []string{"adios", "adiós"}, session.Turn.AcceptableReplies)

	feedback, err := service.Reply(123, session, "Adiós")
	require.NoError(t, err)
	assert.True(t, feedback.IsCorrect)
	assert.Equal(t, 1, session.TurnIndex)
	assert.Equal(t, int64(2), session.Turn.ItemID)

	feedback, err = service.Reply(123, session, "holla")
	require.NoError(t, err)
	assert.False(t, feedback.IsCorrect)
	assert.Equal(t, tutor.HintClose, feedback.Hint)

	// the third turn starts the second template over the first item
	assert.Equal(t, 2, session.TurnIndex)
	assert.Equal(t, `What does "adios" mean?`, session.Turn.PartnerPrompt)
	assert.Equal(t, 1, session.Correct)
	assert.Equal(t, 2, session.Total)

	mockRepo.AssertExpectations(t)
}

func TestConversationService_Reply_VocabularyEmptied(t *testing.T) {
	vocab := []domain.VocabularyItem{testutil.NewTestItem(1, 123, "hola", "hello")}

	mockRepo := new(testutil.MockVocabularyRepository)
	mockRepo.On("GetAll", int64(123)).Return(vocab, nil).Once()
	mockRepo.On("GetAll", int64(123)).Return([]domain.VocabularyItem{}, nil).Once()
	mockRepo.On("RecordResult", int64(123), domain.PracticeResult{ItemID: 1, Passed: true}).Return(nil)

	service := newTestConversationService(mockRepo)

	session, err := service.Start(123)
	require.NoError(t, err)

	feedback, err := service.Reply(123, session, "hola")

	assert.ErrorIs(t, err, domain.ErrEmptyVocabulary)
	assert.True(t, feedback.IsCorrect)
	assert.Equal(t, 0, session.TurnIndex)
	mockRepo.AssertExpectations(t)
}
