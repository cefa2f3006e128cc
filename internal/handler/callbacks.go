package handler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"vocabtutor/internal/domain"
	"vocabtutor/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const (
	prefixPage   = "page_"
	prefixDelete = "del_"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleEditError handles errors from c.Edit() - if message is not modified, just acknowledge callback
// Otherwise, acknowledge callback and return error so caller can send new message
func (h *Handler) handleEditError(err error, c tele.Context, userID int64) error {
	if err == nil {
		return nil
	}

	// The message was already edited by another callback
	if strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Message already modified by another callback, acknowledging",
			zap.Int64("user_id", userID),
			zap.String("callback_id", c.Callback().ID),
		)
		c.Respond()
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
		zap.String("callback_id", c.Callback().ID),
	)
	// Always acknowledge callback before sending new message
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// handleCallback handles callbacks without a registered button, which
// arrive here with the raw "\f<unique>" data
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	// Clean data from all non-printable characters
	data := cleanCallbackData(callback.Data)
	h.logger.Debug("handleCallback: Processing callback",
		zap.String("data", data),
		zap.String("id", callback.ID),
		zap.Int64("user_id", c.Sender().ID),
	)

	// Handle by Data prefix (dynamic buttons)
	switch {
	case strings.HasPrefix(data, prefixPage):
		return h.handlePagination(c, data)
	case strings.HasPrefix(data, prefixDelete):
		return h.handleDelete(c, data)
	case strings.HasPrefix(data, prefixSourceLang):
		return h.handleSourceLanguage(c, data)
	case strings.HasPrefix(data, prefixTargetLang):
		return h.handleTargetLanguage(c, data)
	}

	// If it's not handled, acknowledge it anyway
	h.logger.Warn("Unhandled callback in handleCallback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}

// handleVocabulary shows the first page of the vocabulary
func (h *Handler) handleVocabulary(c tele.Context) error {
	return h.showVocabularyPage(c, 1)
}

// handlePagination handles page navigation
func (h *Handler) handlePagination(c tele.Context, data string) error {
	page, err := strconv.Atoi(strings.TrimPrefix(data, prefixPage))
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Invalid page"})
	}
	return h.showVocabularyPage(c, page)
}

// handleDelete removes an item and redraws the page it was listed on
func (h *Handler) handleDelete(c tele.Context, data string) error {
	userID := c.Sender().ID

	itemID, page, err := parseDeleteData(data)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Invalid item"})
	}

	err = h.vocabularyService.Delete(userID, itemID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		h.logger.Error("Failed to delete vocabulary item",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int64("item_id", itemID),
		)
		return c.Respond(&tele.CallbackResponse{Text: "Could not delete the word"})
	}

	h.logger.Info("Vocabulary item deleted", zap.Int64("user_id", userID), zap.Int64("item_id", itemID))
	return h.showVocabularyPage(c, page)
}

// showVocabularyPage lists one page of items with delete and navigation buttons
func (h *Handler) showVocabularyPage(c tele.Context, page int) error {
	userID := c.Sender().ID
	if page < 1 {
		page = 1
	}

	items, totalPages, err := h.vocabularyService.ListPage(userID, page)
	if err != nil {
		h.logger.Error("Failed to get vocabulary page", zap.Error(err), zap.Int64("user_id", userID))
		return notify(c, "Failed to load your vocabulary", false)
	}

	// A delete may have emptied the last page
	if len(items) == 0 && page > 1 {
		return h.showVocabularyPage(c, page-1)
	}

	if len(items) == 0 {
		return h.reply(c, "📚 Your vocabulary is empty.\n\nAdd a word or import an .xlsx file.", mainMenuMarkup())
	}

	text := fmt.Sprintf("📚 Your vocabulary (page %d of %d):\n\n", page, totalPages)
	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}

	offset := (page - 1) * service.VocabularyPageSize
	for i, item := range items {
		text += fmt.Sprintf("%d. %s\n\n", offset+i+1, formatItem(item))
		btn := markup.Data(fmt.Sprintf("🗑 %s", item.Word), fmt.Sprintf("%s%d_%d", prefixDelete, item.ID, page))
		rows = append(rows, markup.Row(btn))
	}

	// Add pagination buttons
	if totalPages > 1 {
		navRow := tele.Row{}
		if page > 1 {
			navRow = append(navRow, markup.Data("⬅️", fmt.Sprintf("%s%d", prefixPage, page-1)))
		}
		if page < totalPages {
			navRow = append(navRow, markup.Data("➡️", fmt.Sprintf("%s%d", prefixPage, page+1)))
		}
		rows = append(rows, navRow)
	}

	rows = append(rows, markup.Row(btnMainMenu))
	markup.Inline(rows...)

	return h.reply(c, text, markup)
}

// parseDeleteData reads "del_<itemID>_<page>"
func parseDeleteData(data string) (int64, int, error) {
	parts := strings.Split(strings.TrimPrefix(data, prefixDelete), "_")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("malformed delete data %q", data)
	}

	itemID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("malformed item id: %w", err)
	}
	page, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("malformed page: %w", err)
	}
	return itemID, page, nil
}
