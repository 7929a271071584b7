package container

import (
	"context"

	"portuguese101/adapters/postgres"
	"portuguese101/app"
	"portuguese101/internal/config"
	"portuguese101/internal/errors"
	"portuguese101/ports"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// Container holds all application dependencies and manages their lifecycle
type Container struct {
	Config *config.Config
	Logger *zap.Logger

	// Infrastructure
	DB *sqlx.DB

	// Repositories (data access layer)
	Categories ports.CategoryRepository
	Nouns      ports.NounRepository

	Importer *app.ImportService
}

// New creates a new dependency injection container
func New(cfg *config.Config, logger *zap.Logger) (*Container, error) {
	if cfg == nil {
		return nil, errors.ConfigInvalid("config cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Container{
		Config: cfg,
		Logger: logger,
	}, nil
}

// Open connects to the configured database and initializes everything
// that depends on it.
func (c *Container) Open(ctx context.Context) error {
	db, err := postgres.Open(ctx, c.Config.Database)
	if err != nil {
		return err
	}
	if err := c.InitWithDatabase(ctx, db); err != nil {
		db.Close()
		return err
	}
	return nil
}

// InitWithDatabase initializes components that require database access
func (c *Container) InitWithDatabase(ctx context.Context, db *sqlx.DB) error {
	if db == nil {
		return errors.InvalidInput("database connection cannot be nil")
	}

	if err := db.PingContext(ctx); err != nil {
		return errors.DatabaseError("database connection test failed", err)
	}
	c.DB = db

	c.initRepositories()
	c.Importer = app.NewImportService(c.Categories, c.Nouns, c.Logger)

	c.Logger.Debug("container initialized")
	return nil
}

// initRepositories initializes data access repositories
func (c *Container) initRepositories() {
	c.Categories = postgres.NewCategoryRepository(c.DB)
	c.Nouns = postgres.NewNounRepository(c.DB)
}

// Shutdown gracefully shuts down all components
func (c *Container) Shutdown() error {
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
