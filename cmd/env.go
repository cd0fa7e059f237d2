package cmd

import (
	"context"
	"fmt"

	"job-tracker/core/config"
	"job-tracker/core/database"
	"job-tracker/core/logger"
	"job-tracker/core/storage"
	"job-tracker/feature/applications"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// environment bundles the collaborators shared by the CLI commands.
type environment struct {
	cfg    *config.Config
	logger *zap.Logger
	db     *gorm.DB
	store  storage.Client
}

// setup loads configuration, builds the logger, connects the record store and,
// when enabled, the import archive.
func setup() (*environment, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("database connection required: %w", err)
	}
	logg = logg.With(zap.String("database", cfg.Database.Driver))

	env := &environment{cfg: cfg, logger: logg, db: db}

	if cfg.Storage.Enabled {
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		env.store = store
	}

	return env, nil
}

// applications returns a migrated application service.
func (e *environment) applications(ctx context.Context) (*applications.Service, error) {
	svc := applications.NewService(e.db, e.store, e.cfg.Storage, e.logger)
	if err := svc.Migrate(ctx); err != nil {
		return nil, err
	}
	return svc, nil
}

func (e *environment) close() {
	_ = e.logger.Sync()
	_ = database.Close(e.db)
}
