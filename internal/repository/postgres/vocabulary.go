package postgres

import (
	"database/sql"
	"fmt"
	"time"

	"vocabtutor/internal/domain"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// VocabularyRepo implements repository.VocabularyRepository
type VocabularyRepo struct {
	db *sqlx.DB
}

// NewVocabularyRepo creates a new vocabulary repository
func NewVocabularyRepo(db *sqlx.DB) *VocabularyRepo {
	return &VocabularyRepo{db: db}
}

const vocabularyColumns = `id, user_id, word, translation, notes, tags, times_correct, times_incorrect, last_seen, created_at`

type vocabularyRow struct {
	ID             int64          `db:"id"`
	UserID         int64          `db:"user_id"`
	Word           string         `db:"word"`
	Translation    string         `db:"translation"`
	Notes          sql.NullString `db:"notes"`
	Tags           pq.StringArray `db:"tags"`
	TimesCorrect   int            `db:"times_correct"`
	TimesIncorrect int            `db:"times_incorrect"`
	LastSeen       sql.NullTime   `db:"last_seen"`
	CreatedAt      time.Time      `db:"created_at"`
}

func (r vocabularyRow) toDomain() domain.VocabularyItem {
	item := domain.VocabularyItem{
		ID:             r.ID,
		UserID:         r.UserID,
		Word:           r.Word,
		Translation:    r.Translation,
		Notes:          r.Notes.String,
		TimesCorrect:   r.TimesCorrect,
		TimesIncorrect: r.TimesIncorrect,
		CreatedAt:      r.CreatedAt,
	}
	if len(r.Tags) > 0 {
		item.Tags = []string(r.Tags)
	}
	if r.LastSeen.Valid {
		item.LastSeen = &r.LastSeen.Time
	}
	return item
}

func toDomainItems(rows []vocabularyRow) []domain.VocabularyItem {
	items := make([]domain.VocabularyItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toDomain())
	}
	return items
}

// AddItem saves a vocabulary item and returns its id
func (r *VocabularyRepo) AddItem(item domain.VocabularyItem) (int64, error) {
	query := `
		INSERT INTO vocabulary_items (user_id, word, translation, notes, tags)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	notes := sql.NullString{String: item.Notes, Valid: item.Notes != ""}

	var id int64
	err := r.db.QueryRowx(query, item.UserID, item.Word, item.Translation, notes, pq.Array(item.Tags)).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// GetAll returns all of the user's items ordered by id
func (r *VocabularyRepo) GetAll(userID int64) ([]domain.VocabularyItem, error) {
	query := `SELECT ` + vocabularyColumns + ` FROM vocabulary_items WHERE user_id = $1 ORDER BY id`

	var rows []vocabularyRow
	if err := r.db.Select(&rows, query, userID); err != nil {
		return nil, err
	}
	return toDomainItems(rows), nil
}

// GetPage returns a page of the user's items, newest first
func (r *VocabularyRepo) GetPage(userID int64, limit, offset int) ([]domain.VocabularyItem, error) {
	query := `SELECT ` + vocabularyColumns + ` FROM vocabulary_items WHERE user_id = $1 ORDER BY id DESC LIMIT $2 OFFSET $3`

	var rows []vocabularyRow
	if err := r.db.Select(&rows, query, userID, limit, offset); err != nil {
		return nil, err
	}
	return toDomainItems(rows), nil
}

// Count returns the number of items the user has
func (r *VocabularyRepo) Count(userID int64) (int, error) {
	var count int
	err := r.db.Get(&count, `SELECT COUNT(*) FROM vocabulary_items WHERE user_id = $1`, userID)
	return count, err
}

// Delete removes one of the user's items
func (r *VocabularyRepo) Delete(userID, itemID int64) error {
	res, err := r.db.Exec(`DELETE FROM vocabulary_items WHERE id = $1 AND user_id = $2`, itemID, userID)
	if err != nil {
		return err
	}
	return expectAffected(res)
}

// RecordResult updates the item's counters and last_seen and bumps the
// user's practice counter in one transaction
func (r *VocabularyRepo) RecordResult(userID int64, result domain.PracticeResult) error {
	column := "times_incorrect"
	if result.Passed {
		column = "times_correct"
	}

	tx, err := r.db.Beginx()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`UPDATE vocabulary_items SET `+column+` = `+column+` + 1, last_seen = NOW() WHERE id = $1 AND user_id = $2`,
		result.ItemID, userID,
	)
	if err != nil {
		return fmt.Errorf("update item counters: %w", err)
	}
	if err := expectAffected(res); err != nil {
		return err
	}

	if _, err := tx.Exec(`UPDATE users SET practice_counter = practice_counter + 1 WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("update practice counter: %w", err)
	}

	return tx.Commit()
}
