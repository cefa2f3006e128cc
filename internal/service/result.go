package service

import (
	"vocabtutor/internal/domain"

	"go.uber.org/zap"
)

// ResultRecorder persists the outcome of an answered item
type ResultRecorder interface {
	RecordResult(userID int64, result domain.PracticeResult) error
}

// submitResult records the outcome. A failed submission is logged and
// does not interrupt the session.
func submitResult(recorder ResultRecorder, logger *zap.Logger, userID int64, result domain.PracticeResult) {
	if err := recorder.RecordResult(userID, result); err != nil {
		logger.Error("Failed to submit practice result",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int64("item_id", result.ItemID),
			zap.Bool("passed", result.Passed),
		)
	}
}
