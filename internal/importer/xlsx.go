// Package importer reads vocabulary spreadsheets.
package importer

import (
	"fmt"
	"io"
	"strings"

	"vocabtutor/internal/domain"
	"vocabtutor/internal/service"

	"github.com/xuri/excelize/v2"
)

// Config describes the spreadsheet layout
type Config struct {
	SheetName         string // empty means the first sheet
	WordColumn        string
	TranslationColumn string
	NotesColumn       string
	TagsColumn        string
	StartRow          int // 1-based
}

// DefaultConfig reads A word, B translation, C notes, D tags and skips the header
func DefaultConfig() Config {
	return Config{
		WordColumn:        "A",
		TranslationColumn: "B",
		NotesColumn:       "C",
		TagsColumn:        "D",
		StartRow:          2,
	}
}

// ParseWorkbook reads vocabulary items from an .xlsx document. Rows without
// a word or translation are reported as row errors and skipped; blank rows
// are ignored.
func ParseWorkbook(r io.Reader, cfg Config) ([]domain.VocabularyItem, []string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet := cfg.SheetName
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, nil, fmt.Errorf("workbook has no sheets")
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get rows: %w", err)
	}

	var items []domain.VocabularyItem
	var rowErrors []string
	for i, row := range rows {
		if i < cfg.StartRow-1 || isBlank(row) {
			continue
		}

		item := domain.VocabularyItem{
			Word:        cell(row, cfg.WordColumn),
			Translation: cell(row, cfg.TranslationColumn),
			Notes:       cell(row, cfg.NotesColumn),
			Tags:        service.ParseTags(cell(row, cfg.TagsColumn)),
		}
		if !item.Valid() {
			rowErrors = append(rowErrors, fmt.Sprintf("Row %d: word and translation are required", i+1))
			continue
		}
		items = append(items, item)
	}

	return items, rowErrors, nil
}

// cell returns the trimmed value in the given column letter, or "" when the
// row has no such cell
func cell(row []string, column string) string {
	if column == "" {
		return ""
	}
	n, err := excelize.ColumnNameToNumber(column)
	if err != nil || n > len(row) {
		return ""
	}
	return strings.TrimSpace(row[n-1])
}

func isBlank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
