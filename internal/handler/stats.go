package handler

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStats shows the dashboard metrics
func (h *Handler) handleStats(c tele.Context) error {
	userID := c.Sender().ID

	metrics, err := h.statsService.Dashboard(userID)
	if err != nil {
		h.logger.Error("Failed to load stats", zap.Error(err), zap.Int64("user_id", userID))
		return notify(c, msgInternalError, false)
	}

	return h.reply(c, formatDashboard(metrics), singleButtonMarkup(btnMainMenu))
}
