package integrity

import (
	"context"

	"job-tracker/core/storage"
	"job-tracker/feature/applications/models"
	"job-tracker/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles integrity checks.
type Service struct {
	db      *gorm.DB
	client  storage.Client
	storage storage.Config
	logger  *zap.Logger
}

// NewService creates a new integrity service. client may be nil when the
// import archive is disabled.
func NewService(db *gorm.DB, client storage.Client, storageCfg storage.Config, logger *zap.Logger) *Service {
	return &Service{
		db:      db,
		client:  client,
		storage: storageCfg,
		logger:  logger,
	}
}

// ArchiveEnabled reports whether the import archive is configured.
func (s *Service) ArchiveEnabled() bool {
	return s.storage.Enabled && s.client != nil
}

// CheckSchema compares the record store tables with the application models.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	return checks.CheckSchema(s.db, &models.Application{}, &models.ColumnPreference{})
}

// CheckArchive returns what is missing from the import archive.
func (s *Service) CheckArchive(ctx context.Context) ([]string, error) {
	return checks.CheckArchive(ctx, s.client, s.storage.Bucket, s.storage.Prefix)
}

// FixArchive creates the missing archive bucket and prefix.
func (s *Service) FixArchive(ctx context.Context, missing []string) error {
	return checks.FixArchive(ctx, s.client, s.storage.Bucket, s.storage.Region, s.storage.Prefix, s.logger, missing)
}
