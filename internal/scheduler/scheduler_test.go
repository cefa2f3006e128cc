package scheduler

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type mockResetter struct {
	mock.Mock
}

func (m *mockResetter) ResetDailyCounters() error {
	args := m.Called()
	return args.Error(0)
}

func TestScheduler_Start(t *testing.T) {
	s := New(time.UTC, new(mockResetter), zap.NewNop())

	require.NoError(t, s.Start("00:00"))
	defer s.Stop()

	jobs := s.scheduler.Jobs()
	require.Len(t, jobs, 1)
	assert.False(t, jobs[0].NextRun().IsZero())
}

func TestScheduler_Start_InvalidTime(t *testing.T) {
	s := New(time.UTC, new(mockResetter), zap.NewNop())

	assert.Error(t, s.Start("25:99"))
}

func TestScheduler_ResetCounters(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedErrors int
	}{
		{name: "success"},
		{name: "error is logged once", err: fmt.Errorf("db error"), expectedErrors: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetter := new(mockResetter)
			resetter.On("ResetDailyCounters").Return(tt.err).Once()

			core, logs := observer.New(zap.InfoLevel)
			s := New(time.UTC, resetter, zap.New(core))
			s.resetCounters()

			assert.Equal(t, tt.expectedErrors, logs.FilterLevelExact(zap.ErrorLevel).Len())
			resetter.AssertExpectations(t)
		})
	}
}
