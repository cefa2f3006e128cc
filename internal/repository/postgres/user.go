package postgres

import (
	"database/sql"
	"errors"

	"vocabtutor/internal/domain"

	"github.com/jmoiron/sqlx"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sqlx.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sqlx.DB) *UserRepo {
	return &UserRepo{db: db}
}

type profileRow struct {
	UserID          int64          `db:"user_id"`
	SourceLanguage  sql.NullString `db:"source_language"`
	TargetLanguage  sql.NullString `db:"target_language"`
	PracticeCounter int            `db:"practice_counter"`
}

// IsAuthorized checks if user is authorized
func (r *UserRepo) IsAuthorized(userID int64) (bool, error) {
	var authorized bool
	query := `SELECT authorized FROM users WHERE user_id = $1`
	err := r.db.Get(&authorized, query, userID)

	if errors.Is(err, sql.ErrNoRows) {
		// User doesn't exist yet
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return authorized, nil
}

// AuthorizeUser marks user as authorized
func (r *UserRepo) AuthorizeUser(userID int64) error {
	query := `
		INSERT INTO users (user_id, authorized)
		VALUES ($1, TRUE)
		ON CONFLICT (user_id)
		DO UPDATE SET authorized = TRUE
	`
	_, err := r.db.Exec(query, userID)
	return err
}

// EnsureUserExists creates user if not exists
func (r *UserRepo) EnsureUserExists(userID int64) error {
	query := `
		INSERT INTO users (user_id, authorized)
		VALUES ($1, FALSE)
		ON CONFLICT (user_id) DO NOTHING
	`
	_, err := r.db.Exec(query, userID)
	return err
}

// GetProfile returns language settings and today's practice counter
func (r *UserRepo) GetProfile(userID int64) (*domain.Profile, error) {
	var row profileRow
	query := `
		SELECT user_id, source_language, target_language, practice_counter
		FROM users
		WHERE user_id = $1
	`
	err := r.db.Get(&row, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &domain.Profile{
		UserID:          row.UserID,
		SourceLanguage:  row.SourceLanguage.String,
		TargetLanguage:  row.TargetLanguage.String,
		PracticeCounter: row.PracticeCounter,
	}, nil
}

// SetLanguages stores the user's source and target language
func (r *UserRepo) SetLanguages(userID int64, source, target string) error {
	query := `
		UPDATE users
		SET source_language = $2, target_language = $3
		WHERE user_id = $1
	`
	res, err := r.db.Exec(query, userID, source, target)
	if err != nil {
		return err
	}
	return expectAffected(res)
}

// ResetPracticeCounters zeroes every user's daily practice counter
func (r *UserRepo) ResetPracticeCounters() error {
	query := `UPDATE users SET practice_counter = 0 WHERE practice_counter <> 0`
	_, err := r.db.Exec(query)
	return err
}

// expectAffected maps an update that touched no rows to ErrNotFound
func expectAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
