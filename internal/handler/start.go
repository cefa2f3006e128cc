package handler

import (
	"errors"
	"fmt"
	"strings"

	"vocabtutor/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const (
	msgPasswordPrompt = "Hi! This is a private vocabulary tutor. Please enter the password:"
	msgWrongPassword  = "Wrong password."

	prefixSourceLang = "lang_src_"
	prefixTargetLang = "lang_tgt_"

	languagesPerRow = 2
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	// Ensure user exists in database
	if err := h.authService.EnsureUserExists(userID); err != nil {
		h.logger.Error("Failed to ensure user exists", zap.Error(err))
		return c.Send(msgInternalError)
	}

	// Check if authorized
	authorized, err := h.authService.IsAuthorized(userID)
	if err != nil {
		h.logger.Error("Failed to check authorization", zap.Error(err))
		return c.Send(msgInternalError)
	}

	defer h.lockUser(userID)()

	h.ResetState(userID)
	if !authorized {
		return c.Send(msgPasswordPrompt)
	}

	return h.showHome(c, "")
}

// handleMainMenu returns to the main menu, ending any running session
func (h *Handler) handleMainMenu(c tele.Context) error {
	userID := c.Sender().ID
	defer h.lockUser(userID)()

	h.ResetState(userID)
	return h.reply(c, mainMenuText, mainMenuMarkup())
}

// showHome shows the main menu, or the language setup when the profile has
// no language pair yet
func (h *Handler) showHome(c tele.Context, greeting string) error {
	userID := c.Sender().ID

	profile, err := h.profileService.GetProfile(userID)
	if err != nil {
		h.logger.Error("Failed to get profile", zap.Error(err), zap.Int64("user_id", userID))
		return c.Send(msgInternalError)
	}

	if !profile.HasLanguages() {
		return h.reply(c, greeting+"🌐 Which language do you speak?", languageMarkup(prefixSourceLang, ""))
	}

	text := greeting + fmt.Sprintf("Learning %s from %s.\n\n",
		domain.LanguageName(profile.TargetLanguage),
		domain.LanguageName(profile.SourceLanguage),
	) + mainMenuText
	return h.reply(c, text, mainMenuMarkup())
}

// handleLanguages restarts the language setup
func (h *Handler) handleLanguages(c tele.Context) error {
	defer h.lockUser(c.Sender().ID)()
	return h.restartLanguageSetup(c)
}

// restartLanguageSetup expects the caller to hold the user lock
func (h *Handler) restartLanguageSetup(c tele.Context) error {
	h.ResetState(c.Sender().ID)
	return h.reply(c, "🌐 Which language do you speak?", languageMarkup(prefixSourceLang, ""))
}

// handleSourceLanguage stores the picked source language and asks for the target
func (h *Handler) handleSourceLanguage(c tele.Context, data string) error {
	userID := c.Sender().ID
	code := strings.TrimPrefix(data, prefixSourceLang)
	defer h.lockUser(userID)()

	if !domain.IsSupportedLanguage(code) {
		return c.Respond(&tele.CallbackResponse{Text: "Unknown language"})
	}

	h.SetState(userID, &domain.StateData{State: domain.StateIdle, SourceLang: code})

	text := fmt.Sprintf("You speak %s.\n\n🎓 Which language are you learning?", domain.LanguageName(code))
	return h.reply(c, text, languageMarkup(prefixTargetLang, code))
}

// handleTargetLanguage saves the language pair picked in two steps
func (h *Handler) handleTargetLanguage(c tele.Context, data string) error {
	userID := c.Sender().ID
	target := strings.TrimPrefix(data, prefixTargetLang)
	defer h.lockUser(userID)()

	state := h.GetState(userID)
	if state.SourceLang == "" {
		return h.restartLanguageSetup(c)
	}

	err := h.profileService.SetLanguages(userID, state.SourceLang, target)
	switch {
	case errors.Is(err, domain.ErrSameLanguage):
		return c.Respond(&tele.CallbackResponse{Text: "Pick a language different from the one you speak"})
	case errors.Is(err, domain.ErrUnknownLanguage):
		return c.Respond(&tele.CallbackResponse{Text: "Unknown language"})
	case err != nil:
		h.logger.Error("Failed to set languages", zap.Error(err), zap.Int64("user_id", userID))
		return c.Respond(&tele.CallbackResponse{Text: msgInternalError})
	}

	h.logger.Info("Languages set",
		zap.Int64("user_id", userID),
		zap.String("source", state.SourceLang),
		zap.String("target", target),
	)
	h.ResetState(userID)
	return h.showHome(c, "✅ Saved!\n\n")
}

// languageMarkup lists the supported languages as buttons with the given
// callback prefix, leaving out exclude
func languageMarkup(prefix, exclude string) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}
	row := tele.Row{}

	for _, lang := range domain.CommonLanguages() {
		if lang.Code == exclude {
			continue
		}
		row = append(row, markup.Data(lang.Name, prefix+lang.Code))
		if len(row) == languagesPerRow {
			rows = append(rows, row)
			row = tele.Row{}
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	markup.Inline(rows...)
	return markup
}
