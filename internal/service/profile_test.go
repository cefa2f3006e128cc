package service

import (
	"testing"

	"vocabtutor/internal/domain"
	"vocabtutor/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestProfileService_SetLanguages(t *testing.T) {
	tests := []struct {
		name          string
		source        string
		target        string
		expectSave    bool
		expectedError error
	}{
		{name: "valid pair", source: "en", target: "es", expectSave: true},
		{name: "same language", source: "en", target: "en", expectedError: domain.ErrSameLanguage},
		{name: "unknown source", source: "xx", target: "es", expectedError: domain.ErrUnknownLanguage},
		{name: "unknown target", source: "en", target: "", expectedError: domain.ErrUnknownLanguage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockUserRepository)
			if tt.expectSave {
				mockRepo.On("SetLanguages", int64(123), tt.source, tt.target).Return(nil)
			}

			service := NewProfileService(mockRepo)

			err := service.SetLanguages(123, tt.source, tt.target)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestProfileService_GetProfile(t *testing.T) {
	mockRepo := new(testutil.MockUserRepository)
	profile := &domain.Profile{UserID: 123, SourceLanguage: "en", TargetLanguage: "fr"}
	mockRepo.On("GetProfile", int64(123)).Return(profile, nil)

	service := NewProfileService(mockRepo)

	got, err := service.GetProfile(123)

	assert.NoError(t, err)
	assert.Equal(t, profile, got)
	assert.True(t, got.HasLanguages())
	mockRepo.AssertExpectations(t)
}
