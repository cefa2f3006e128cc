package handler

import (
	"fmt"
	"strings"

	"vocabtutor/internal/domain"
	"vocabtutor/internal/service"
)

// maxImportErrors caps the row errors listed after an import
const maxImportErrors = 10

func formatItem(item domain.VocabularyItem) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s - %s", item.Word, item.Translation)
	if item.Notes != "" {
		fmt.Fprintf(&b, "\n   📝 %s", item.Notes)
	}
	if len(item.Tags) > 0 {
		fmt.Fprintf(&b, "\n   🏷 %s", strings.Join(item.Tags, ", "))
	}
	if item.Attempts() > 0 {
		fmt.Fprintf(&b, "\n   ✅ %d ❌ %d", item.TimesCorrect, item.TimesIncorrect)
	}
	return b.String()
}

func formatExercise(ex domain.Exercise, number, total int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🎯 Exercise %d of %d\n\n", number, total)

	switch ex.Type {
	case domain.ExerciseFillInBlank:
		b.WriteString(ex.Prompt)
	default:
		fmt.Fprintf(&b, "Translate: %s", ex.Prompt)
	}

	if ex.Context != "" {
		fmt.Fprintf(&b, "\n\n💡 %s", ex.Context)
	}
	return b.String()
}

func formatFeedback(f domain.Feedback) string {
	if f.IsCorrect {
		return "✅ " + f.Hint
	}
	text := "❌ " + f.Hint
	if f.Suggestion != "" {
		text += "\n" + f.Suggestion
	}
	return text
}

func formatSummary(title string, correct, total int) string {
	return fmt.Sprintf("%s\n\nCorrect: %d of %d (%d%%)", title, correct, total, domain.Percent(correct, total))
}

func formatDashboard(m domain.DashboardMetrics) string {
	if !m.HasData {
		return "📊 Your vocabulary is empty. Add some words to start practicing."
	}
	return fmt.Sprintf("📊 Your stats\n\nWords: %d\nPracticed today: %d\nAccuracy: %d%%",
		m.TotalItems, m.TodayCount, m.Accuracy)
}

func formatImportResult(res service.ImportResult, rowErrors []string) string {
	text := fmt.Sprintf("📥 Imported %d words.", res.Created)

	errs := append(append([]string(nil), rowErrors...), res.Errors...)
	if len(errs) == 0 {
		return text
	}

	text += fmt.Sprintf("\n\n⚠️ %d rows skipped:", len(errs))
	for i, e := range errs {
		if i == maxImportErrors {
			text += fmt.Sprintf("\n...and %d more", len(errs)-maxImportErrors)
			break
		}
		text += "\n" + e
	}
	return text
}
