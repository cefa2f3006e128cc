package handler

import (
	"errors"

	"vocabtutor/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleConversation opens a dialogue at the first turn
func (h *Handler) handleConversation(c tele.Context) error {
	userID := c.Sender().ID
	defer h.lockUser(userID)()

	session, err := h.conversationService.Start(userID)
	if errors.Is(err, domain.ErrEmptyVocabulary) {
		return notify(c, msgEmptyVocabulary, true)
	}
	if err != nil {
		h.logger.Error("Failed to start conversation", zap.Error(err), zap.Int64("user_id", userID))
		return notify(c, msgInternalError, false)
	}

	h.SetState(userID, &domain.StateData{State: domain.StateConversing, Conversation: session})

	return h.reply(c, "💬 Let's talk! Answer in the language you are learning.\n\n🗣 "+session.Turn.PartnerPrompt, conversationMarkup())
}

// handleConversationReply checks the reply and asks the next question
func (h *Handler) handleConversationReply(c tele.Context, reply string) error {
	userID := c.Sender().ID
	defer h.lockUser(userID)()

	session := h.GetState(userID).Conversation
	if session == nil {
		h.ResetState(userID)
		return c.Send(mainMenuText, mainMenuMarkup())
	}

	feedback, err := h.conversationService.Reply(userID, session, reply)
	text := formatFeedback(feedback)
	if err != nil {
		// The vocabulary changed under the dialogue
		h.logger.Warn("Failed to prepare next turn", zap.Error(err), zap.Int64("user_id", userID))
		h.ResetState(userID)
		return c.Send(text+"\n\n"+formatSummary("💬 Conversation ended.", session.Correct, session.Total), mainMenuMarkup())
	}

	return c.Send(text+"\n\n🗣 "+session.Turn.PartnerPrompt, conversationMarkup())
}

// handleStopConversation ends the dialogue with a summary
func (h *Handler) handleStopConversation(c tele.Context) error {
	userID := c.Sender().ID
	defer h.lockUser(userID)()

	state := h.GetState(userID)
	h.ResetState(userID)

	if state.State != domain.StateConversing || state.Conversation == nil {
		return h.reply(c, mainMenuText, mainMenuMarkup())
	}

	h.logger.Info("Conversation finished",
		zap.Int64("user_id", userID),
		zap.Int("turns", state.Conversation.Total),
	)
	return h.reply(c, formatSummary("💬 Conversation ended.", state.Conversation.Correct, state.Conversation.Total), mainMenuMarkup())
}

func conversationMarkup() *tele.ReplyMarkup {
	return singleButtonMarkup(btnStop)
}
