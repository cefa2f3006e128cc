// Package scheduler runs the periodic maintenance jobs.
package scheduler

import (
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

// CounterResetter clears the per-day practice counters
type CounterResetter interface {
	ResetDailyCounters() error
}

// Scheduler manages scheduled tasks for the application
type Scheduler struct {
	scheduler *gocron.Scheduler
	resetter  CounterResetter
	logger    *zap.Logger
}

// New creates a scheduler working in the given location
func New(loc *time.Location, resetter CounterResetter, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(loc),
		resetter:  resetter,
		logger:    logger,
	}
}

// Start schedules the daily counter reset at the given "HH:MM" time and
// starts the scheduler without blocking
func (s *Scheduler) Start(at string) error {
	if _, err := s.scheduler.Every(1).Day().At(at).Do(s.resetCounters); err != nil {
		return fmt.Errorf("failed to schedule counter reset at %q: %w", at, err)
	}

	s.scheduler.StartAsync()
	s.logger.Info("Scheduler started", zap.String("counter_reset_at", at))
	return nil
}

// Stop terminates all scheduled tasks
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

func (s *Scheduler) resetCounters() {
	if err := s.resetter.ResetDailyCounters(); err != nil {
		s.logger.Error("Failed to reset practice counters", zap.Error(err))
	}
}
