package postgres

import (
	"context"
	"errors"

	apperrors "portuguese101/internal/errors"
	"portuguese101/models"
	"portuguese101/ports"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const foreignKeyViolation = "23503"

// NounRepositoryImpl implements NounRepository for PostgreSQL
type NounRepositoryImpl struct {
	db *sqlx.DB
}

// NewNounRepository creates a new PostgreSQL noun repository
func NewNounRepository(db *sqlx.DB) ports.NounRepository {
	return &NounRepositoryImpl{db: db}
}

// ListNounsByCategory returns the nouns of a category. The category value
// is bound as a parameter, never spliced into the statement.
func (r *NounRepositoryImpl) ListNounsByCategory(ctx context.Context, categoryID string) ([]*models.Noun, error) {
	nouns := []*models.Noun{}
	err := r.db.SelectContext(ctx, &nouns, `
		SELECT id, english_noun, portuguese_noun, noun_category, created_at
		FROM nouns
		WHERE noun_category = $1
		ORDER BY id
	`, categoryID)
	if err != nil {
		return nil, apperrors.DatabaseError("failed to list nouns", err)
	}
	return nouns, nil
}

// InsertNoun stores a noun and reports whether a row was written
func (r *NounRepositoryImpl) InsertNoun(ctx context.Context, noun *models.Noun) (bool, error) {
	res, err := r.db.NamedExecContext(ctx, `
		INSERT INTO nouns (english_noun, portuguese_noun, noun_category, created_at)
		VALUES (:english_noun, :portuguese_noun, :noun_category, NOW())
		ON CONFLICT (noun_category, english_noun, portuguese_noun) DO NOTHING
	`, noun)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation {
			return false, apperrors.InvalidInput("unknown category " + noun.CategoryID)
		}
		return false, apperrors.DatabaseError("failed to insert noun", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, apperrors.DatabaseError("failed to read insert result", err)
	}
	return affected > 0, nil
}
