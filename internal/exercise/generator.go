// Package exercise builds randomized practice items from a vocabulary.
package exercise

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"vocabtutor/internal/domain"
)

// DefaultCount is the number of exercises in a practice session
const DefaultCount = 10

// Rand is the source of randomness for a Generator.
// *rand.Rand satisfies it.
type Rand interface {
	// Intn returns a uniform value in [0, n).
	Intn(n int) int
}

// DefaultFillInBlankTemplates returns the fill-in-blank prompts. Each one
// takes the item's translation.
func DefaultFillInBlankTemplates() []string {
	return []string{
		`Complete: "_____ means %s"`,
		`Fill in: "The word for '%s' is _____"`,
		`What word means '%s'? _____`,
	}
}

// Generator turns vocabulary items into exercises
type Generator struct {
	rnd       Rand
	templates []string
}

// Option configures a Generator
type Option func(*Generator)

// WithRand replaces the entropy-seeded source
func WithRand(r Rand) Option {
	return func(g *Generator) {
		g.rnd = r
	}
}

// WithTemplates replaces the fill-in-blank templates
func WithTemplates(templates []string) Option {
	return func(g *Generator) {
		if len(templates) > 0 {
			g.templates = append([]string(nil), templates...)
		}
	}
}

// NewGenerator creates a generator seeded from the clock
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		rnd:       &lockedRand{r: rand.New(rand.NewSource(time.Now().UnixNano()))},
		templates: DefaultFillInBlankTemplates(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate shuffles vocabulary and returns exercises for the first
// min(count, len(vocabulary)) items, each item used once. Every item
// becomes a translation or a fill-in-blank exercise with equal chance.
// The vocabulary slice is not modified.
func (g *Generator) Generate(vocabulary []domain.VocabularyItem, count int) []domain.Exercise {
	if len(vocabulary) == 0 || count <= 0 {
		return []domain.Exercise{}
	}

	selected := g.shuffle(vocabulary)[:min(count, len(vocabulary))]

	exercises := make([]domain.Exercise, 0, len(selected))
	for _, item := range selected {
		if g.rnd.Intn(2) == 0 {
			exercises = append(exercises, g.translation(item))
		} else {
			exercises = append(exercises, g.fillInBlank(item))
		}
	}
	return exercises
}

// shuffle returns a Fisher-Yates permutation of a copy of items
func (g *Generator) shuffle(items []domain.VocabularyItem) []domain.VocabularyItem {
	shuffled := append([]domain.VocabularyItem(nil), items...)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := g.rnd.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}

func (g *Generator) translation(item domain.VocabularyItem) domain.Exercise {
	ex := domain.Exercise{
		ItemID:  item.ID,
		Type:    domain.ExerciseTranslation,
		Context: item.Notes,
	}
	if g.rnd.Intn(2) == 0 {
		ex.Prompt, ex.ExpectedAnswer = item.Word, item.Translation
	} else {
		ex.Prompt, ex.ExpectedAnswer = item.Translation, item.Word
	}
	return ex
}

func (g *Generator) fillInBlank(item domain.VocabularyItem) domain.Exercise {
	template := g.templates[g.rnd.Intn(len(g.templates))]
	return domain.Exercise{
		ItemID:         item.ID,
		Type:           domain.ExerciseFillInBlank,
		Prompt:         fmt.Sprintf(template, item.Translation),
		ExpectedAnswer: item.Word,
		Context:        item.Notes,
	}
}

// lockedRand makes a *rand.Rand safe to share between sessions
type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (l *lockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Intn(n)
}
