package applications

import (
	"context"

	"job-tracker/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new applications feature.
func NewFeature(db *gorm.DB, client storage.Client, storageCfg storage.Config, logger *zap.Logger) *Feature {
	svc := NewService(db, client, storageCfg, logger)
	return &Feature{service: svc, handler: NewHandler(svc)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "applications"
}

// IsEnabled reports whether the record store is available.
func (f *Feature) IsEnabled() bool {
	return f.service.db != nil
}

// Load creates missing tables and registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	if err := f.service.Migrate(context.Background()); err != nil {
		return err
	}
	f.handler.RegisterRoutes(app)
	return nil
}

// Service exposes the feature's service to the CLI.
func (f *Feature) Service() *Service {
	return f.service
}
