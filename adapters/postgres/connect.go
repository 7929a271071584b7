package postgres

import (
	"context"
	"time"

	"portuguese101/internal/config"
	"portuguese101/internal/errors"
	"portuguese101/internal/migration"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// Open connects to PostgreSQL, sizes the pool and applies migrations.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*sqlx.DB, error) {
	if cfg.URL == "" {
		return nil, errors.ConfigInvalid("DATABASE_URL is required")
	}

	db, err := sqlx.ConnectContext(ctx, "postgres", cfg.URL)
	if err != nil {
		return nil, errors.DatabaseError("failed to connect to database", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxOpenConns)
	db.SetConnMaxIdleTime(5 * time.Minute)

	if err := migration.NewRunner().Run(ctx, db); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "database migration failed")
	}

	return db, nil
}
