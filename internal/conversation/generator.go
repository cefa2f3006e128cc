// Package conversation drives a scripted dialogue over a vocabulary.
// Turns are a pure function of the vocabulary and the turn index.
package conversation

import (
	"errors"
	"fmt"
	"sort"

	"vocabtutor/internal/domain"
)

// ErrNegativeTurn is returned for a turn index below zero
var ErrNegativeTurn = errors.New("turn index must not be negative")

// Field selects which side of a vocabulary item a template uses
type Field int

const (
	FieldWord Field = iota
	FieldTranslation
)

func (f Field) of(item domain.VocabularyItem) string {
	if f == FieldWord {
		return item.Word
	}
	return item.Translation
}

// PromptTemplate asks for Answer given Shown
type PromptTemplate struct {
	Format string
	Shown  Field
	Answer Field
}

// DefaultTemplates returns the partner prompts in rotation order
func DefaultTemplates() []PromptTemplate {
	return []PromptTemplate{
		{Format: `How do you say "%s"?`, Shown: FieldTranslation, Answer: FieldWord},
		{Format: `What does "%s" mean?`, Shown: FieldWord, Answer: FieldTranslation},
		{Format: `Can you translate "%s" for me?`, Shown: FieldTranslation, Answer: FieldWord},
		{Format: `What is the word for "%s"?`, Shown: FieldTranslation, Answer: FieldWord},
		{Format: `Tell me what "%s" means.`, Shown: FieldWord, Answer: FieldTranslation},
	}
}

// Generator selects the vocabulary item and prompt for a turn
type Generator struct {
	templates  []PromptTemplate
	alternates *AlternateExtractor
}

// NewGenerator creates a generator with the given templates, or
// DefaultTemplates when none are passed.
func NewGenerator(templates ...PromptTemplate) *Generator {
	if len(templates) == 0 {
		templates = DefaultTemplates()
	}
	return &Generator{
		templates:  append([]PromptTemplate(nil), templates...),
		alternates: NewAlternateExtractor(),
	}
}

// Turn returns the turn at turnIndex. Items are visited in ascending id
// order, one per turn; each full pass over the vocabulary moves to the next
// template. The vocabulary must not be empty.
func (g *Generator) Turn(vocabulary []domain.VocabularyItem, turnIndex int) (domain.ConversationTurn, error) {
	if len(vocabulary) == 0 {
		return domain.ConversationTurn{}, domain.ErrEmptyVocabulary
	}
	if turnIndex < 0 {
		return domain.ConversationTurn{}, ErrNegativeTurn
	}

	sorted := append([]domain.VocabularyItem(nil), vocabulary...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ID < sorted[j].ID
	})

	item := sorted[turnIndex%len(sorted)]
	tmpl := g.templates[(turnIndex/len(sorted))%len(g.templates)]

	replies := []string{tmpl.Answer.of(item)}
	if alt, ok := g.alternates.Extract(item.Notes); ok {
		replies = append(replies, alt)
	}

	return domain.ConversationTurn{
		ItemID:            item.ID,
		PartnerPrompt:     fmt.Sprintf(tmpl.Format, tmpl.Shown.of(item)),
		AcceptableReplies: replies,
	}, nil
}
