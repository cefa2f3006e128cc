package handler

import (
	"errors"
	"strings"

	"vocabtutor/internal/domain"
	"vocabtutor/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const msgTranslationPrompt = "Now send the translation.\n\nOptionally add notes and tags:\ntranslation | notes | tag1, tag2"

// handleText handles all text messages based on state
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	// Ensure user exists
	if err := h.authService.EnsureUserExists(userID); err != nil {
		h.logger.Error("Failed to ensure user exists", zap.Error(err))
		return nil
	}

	// Check authorization first
	authorized, err := h.authService.IsAuthorized(userID)
	if err != nil {
		h.logger.Error("Failed to check authorization", zap.Error(err))
		return c.Send(msgInternalError)
	}

	// If not authorized, the text is a password attempt
	if !authorized {
		ok, err := h.authService.Login(userID, text)
		if err != nil {
			h.logger.Error("Failed to authorize user", zap.Error(err))
			return c.Send(msgInternalError)
		}
		if !ok {
			return c.Send(msgWrongPassword)
		}

		h.logger.Info("User authorized", zap.Int64("user_id", userID))
		defer h.lockUser(userID)()
		h.ResetState(userID)
		return h.showHome(c, "✅ Access granted!\n\n")
	}

	// User is authorized, handle based on state
	state := h.GetState(userID)

	switch state.State {
	case domain.StatePracticing:
		return h.handlePracticeAnswer(c, text)

	case domain.StateConversing:
		return h.handleConversationReply(c, text)

	case domain.StateWaitingTranslation:
		defer h.lockUser(userID)()
		return h.saveItem(c, state.CurrentWord, text)

	default:
		// Idle or waiting for a word: the text is the new word
		defer h.lockUser(userID)()
		h.SetState(userID, &domain.StateData{
			State:       domain.StateWaitingTranslation,
			CurrentWord: text,
		})
		return c.Send(msgTranslationPrompt, singleButtonMarkup(btnCancel))
	}
}

// handleAddWord starts the two-step word input flow
func (h *Handler) handleAddWord(c tele.Context) error {
	defer h.lockUser(c.Sender().ID)()
	h.SetState(c.Sender().ID, &domain.StateData{State: domain.StateWaitingWord})
	return h.reply(c, "✏️ Send the word you want to learn.", singleButtonMarkup(btnCancel))
}

// saveItem stores the word with the parsed translation message
func (h *Handler) saveItem(c tele.Context, word, text string) error {
	userID := c.Sender().ID
	entry := service.ParseEntry(text)

	id, err := h.vocabularyService.AddItem(userID, word, entry)
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Send("The translation cannot be empty. Send it again.", singleButtonMarkup(btnCancel))
	}
	if err != nil {
		h.logger.Error("Failed to save vocabulary item",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return c.Send("Could not save the word. Please try again.")
	}

	h.logger.Info("Vocabulary item saved",
		zap.Int64("user_id", userID),
		zap.Int64("item_id", id),
		zap.String("word", word),
		zap.String("translation", entry.Translation),
	)

	// Wait for the next word
	h.SetState(userID, &domain.StateData{State: domain.StateWaitingWord})

	return c.Send("✅ Saved!\n\nSend the next word or return to the menu.", singleButtonMarkup(btnMainMenu))
}

// handleCancel cancels current operation and resets state
func (h *Handler) handleCancel(c tele.Context) error {
	return h.handleMainMenu(c)
}
