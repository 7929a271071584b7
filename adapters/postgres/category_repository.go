package postgres

import (
	"context"
	"database/sql"
	"errors"

	apperrors "portuguese101/internal/errors"
	"portuguese101/models"
	"portuguese101/ports"

	"github.com/jmoiron/sqlx"
)

// CategoryRepositoryImpl implements CategoryRepository for PostgreSQL
type CategoryRepositoryImpl struct {
	db *sqlx.DB
}

// NewCategoryRepository creates a new PostgreSQL category repository
func NewCategoryRepository(db *sqlx.DB) ports.CategoryRepository {
	return &CategoryRepositoryImpl{db: db}
}

// ListCategories returns every category ordered by name
func (r *CategoryRepositoryImpl) ListCategories(ctx context.Context) ([]*models.Category, error) {
	categories := []*models.Category{}
	err := r.db.SelectContext(ctx, &categories, `
		SELECT category_id, category_name, created_at
		FROM noun_categories
		ORDER BY category_name, category_id
	`)
	if err != nil {
		return nil, apperrors.DatabaseError("failed to list categories", err)
	}
	return categories, nil
}

// GetCategory retrieves a category by its ID
func (r *CategoryRepositoryImpl) GetCategory(ctx context.Context, id string) (*models.Category, error) {
	var category models.Category
	err := r.db.GetContext(ctx, &category, `
		SELECT category_id, category_name, created_at
		FROM noun_categories
		WHERE category_id = $1
	`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("category " + id)
	}
	if err != nil {
		return nil, apperrors.DatabaseError("failed to get category", err)
	}
	return &category, nil
}

// UpsertCategory inserts a category or renames an existing one
func (r *CategoryRepositoryImpl) UpsertCategory(ctx context.Context, category *models.Category) error {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO noun_categories (category_id, category_name, created_at)
		VALUES (:category_id, :category_name, NOW())
		ON CONFLICT (category_id) DO UPDATE SET category_name = EXCLUDED.category_name
	`, category)
	if err != nil {
		return apperrors.DatabaseError("failed to upsert category", err)
	}
	return nil
}
