package handler

import (
	"path/filepath"
	"strings"

	"vocabtutor/internal/importer"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const msgImportHelp = "📥 Send an .xlsx file with the columns:\nA word, B translation, C notes, D tags (comma-separated).\n\nThe first row is treated as a header."

// handleImportHelp explains the spreadsheet layout
func (h *Handler) handleImportHelp(c tele.Context) error {
	return h.reply(c, msgImportHelp, singleButtonMarkup(btnMainMenu))
}

// handleDocument imports vocabulary from an uploaded spreadsheet
func (h *Handler) handleDocument(c tele.Context) error {
	userID := c.Sender().ID
	doc := c.Message().Document

	if doc == nil || !strings.EqualFold(filepath.Ext(doc.FileName), ".xlsx") {
		return c.Send(msgImportHelp)
	}

	rc, err := c.Bot().File(&doc.File)
	if err != nil {
		h.logger.Error("Failed to download document", zap.Error(err), zap.Int64("user_id", userID))
		return c.Send("Could not download the file. Please try again.")
	}
	defer rc.Close()

	items, rowErrors, err := importer.ParseWorkbook(rc, importer.DefaultConfig())
	if err != nil {
		h.logger.Warn("Failed to parse workbook",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.String("file_name", doc.FileName),
		)
		return c.Send("Could not read the file. Make sure it is a valid .xlsx workbook.")
	}

	res := h.vocabularyService.Import(userID, items)
	h.logger.Info("Vocabulary imported",
		zap.Int64("user_id", userID),
		zap.String("file_name", doc.FileName),
		zap.Int("created", res.Created),
		zap.Int("row_errors", len(rowErrors)+len(res.Errors)),
	)

	return c.Send(formatImportResult(res, rowErrors), mainMenuMarkup())
}
