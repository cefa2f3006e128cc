package handler

import (
	"errors"

	"vocabtutor/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const msgEmptyVocabulary = "📚 Your vocabulary is empty. Add a few words first."

// handlePractice starts a new practice session
func (h *Handler) handlePractice(c tele.Context) error {
	userID := c.Sender().ID
	defer h.lockUser(userID)()

	session, err := h.practiceService.StartSession(userID)
	if errors.Is(err, domain.ErrEmptyVocabulary) {
		return notify(c, msgEmptyVocabulary, true)
	}
	if err != nil {
		h.logger.Error("Failed to start practice", zap.Error(err), zap.Int64("user_id", userID))
		return notify(c, msgInternalError, false)
	}

	h.SetState(userID, &domain.StateData{State: domain.StatePracticing, Practice: session})

	ex, _ := session.Current()
	return h.reply(c, formatExercise(ex, 1, len(session.Exercises)), practiceMarkup())
}

// handlePracticeAnswer checks a free-text answer to the current exercise
func (h *Handler) handlePracticeAnswer(c tele.Context, answer string) error {
	userID := c.Sender().ID
	defer h.lockUser(userID)()

	session := h.GetState(userID).Practice
	feedback, _, err := h.practiceService.Answer(userID, session, answer)
	if err != nil {
		h.ResetState(userID)
		return c.Send(mainMenuText, mainMenuMarkup())
	}

	return h.advancePractice(c, session, formatFeedback(feedback))
}

// handleSkip reveals the answer and moves on
func (h *Handler) handleSkip(c tele.Context) error {
	userID := c.Sender().ID
	defer h.lockUser(userID)()

	state := h.GetState(userID)
	if state.State != domain.StatePracticing {
		return c.Respond()
	}

	ex, err := h.practiceService.Skip(userID, state.Practice)
	if err != nil {
		h.ResetState(userID)
		return c.Respond()
	}

	if err := c.Respond(); err != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
	}
	return h.advancePractice(c, state.Practice, "⏭ The answer was: "+ex.ExpectedAnswer)
}

// advancePractice sends the next exercise, or the summary once the session is over
func (h *Handler) advancePractice(c tele.Context, session *domain.PracticeSession, result string) error {
	userID := c.Sender().ID

	next, ok := session.Current()
	if !ok {
		h.logger.Info("Practice session finished",
			zap.Int64("user_id", userID),
			zap.Int("correct", session.Correct),
			zap.Int("total", session.Total),
		)
		h.ResetState(userID)
		return c.Send(result+"\n\n"+formatSummary("🏁 Session complete!", session.Correct, session.Total), mainMenuMarkup())
	}

	text := result + "\n\n" + formatExercise(next, session.Index+1, len(session.Exercises))
	return c.Send(text, practiceMarkup())
}

func practiceMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnSkip, btnMainMenu))
	return markup
}
