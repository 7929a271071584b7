package migration

import (
	"context"

	"portuguese101/internal/errors"

	"github.com/jmoiron/sqlx"
)

// Migrator defines the interface for database migration operations
type Migrator interface {
	Run(ctx context.Context, db *sqlx.DB) error
	Version() string
}

// MigrationRunner creates the vocabulary schema. Every step is idempotent
// so Run is safe on each boot.
type MigrationRunner struct {
	version string
}

// NewRunner creates a new migration runner
func NewRunner() *MigrationRunner {
	return &MigrationRunner{
		version: "1.0.0",
	}
}

// Version returns the migration version
func (r *MigrationRunner) Version() string {
	return r.version
}

type step struct {
	name string
	sql  string
}

var steps = []step{
	{
		name: "noun_categories table",
		sql: `
		CREATE TABLE IF NOT EXISTS noun_categories (
			category_id TEXT PRIMARY KEY,
			category_name TEXT NOT NULL,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
	},
	{
		name: "nouns table",
		sql: `
		CREATE TABLE IF NOT EXISTS nouns (
			id BIGSERIAL PRIMARY KEY,
			english_noun TEXT NOT NULL,
			portuguese_noun TEXT NOT NULL,
			noun_category TEXT NOT NULL REFERENCES noun_categories(category_id) ON DELETE CASCADE,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			UNIQUE (noun_category, english_noun, portuguese_noun)
		)`,
	},
	{
		name: "nouns category index",
		sql:  `CREATE INDEX IF NOT EXISTS idx_nouns_noun_category ON nouns(noun_category)`,
	},
}

// Run executes all database migrations in order
func (r *MigrationRunner) Run(ctx context.Context, db *sqlx.DB) error {
	for _, s := range steps {
		if _, err := db.ExecContext(ctx, s.sql); err != nil {
			return errors.DatabaseError("failed to create "+s.name, err)
		}
	}
	return nil
}
