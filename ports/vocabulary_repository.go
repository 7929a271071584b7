package ports

import (
	"context"

	"portuguese101/models"
)

// CategoryRepository defines the interface for noun category data operations
type CategoryRepository interface {
	// ListCategories returns every category ordered by name
	ListCategories(ctx context.Context) ([]*models.Category, error)

	// GetCategory returns a single category or a NOT_FOUND error
	GetCategory(ctx context.Context, id string) (*models.Category, error)

	// UpsertCategory inserts a category or renames an existing one
	UpsertCategory(ctx context.Context, category *models.Category) error
}

// NounRepository defines the interface for noun data operations
type NounRepository interface {
	// ListNounsByCategory returns the nouns of a category in insertion order.
	// An unknown category yields an empty slice, not an error.
	ListNounsByCategory(ctx context.Context, categoryID string) ([]*models.Noun, error)

	// InsertNoun stores a noun; duplicates are ignored and reported as false
	InsertNoun(ctx context.Context, noun *models.Noun) (bool, error)
}
