package applications

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"job-tracker/core/reconcile"
	"job-tracker/core/storage"
	"job-tracker/core/tabular"
	"job-tracker/feature/applications/models"
	appreconcile "job-tracker/feature/applications/reconcile"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// ErrUnknownColumn is returned when a preference names no display column.
	ErrUnknownColumn = errors.New("unknown column")
	// ErrUnknownSearchMode is returned for an unsupported search mode.
	ErrUnknownSearchMode = errors.New("unknown search mode")
	// ErrArchiveDisabled is returned when a bucket import is requested without storage.
	ErrArchiveDisabled = errors.New("import archive is disabled")
)

// ImportOptions controls one import.
type ImportOptions struct {
	// DryRun plans the batch without writing to the store or the archive.
	DryRun bool
	// Archive uploads the source CSV to the bucket after a successful commit.
	Archive bool
}

// ImportResult reports the outcome of one import.
type ImportResult struct {
	BatchID  string                `json:"batch_id"`
	Summary  reconcile.PlanSummary `json:"summary"`
	Actions  []reconcile.Action    `json:"actions,omitempty"`
	Inserted int                   `json:"inserted"`
	DryRun   bool                  `json:"dry_run"`
	Archive  string                `json:"archive,omitempty"`
}

// Listing is the display table: visible columns and one cell row per record.
type Listing struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
	Total   int        `json:"total"`
}

// Service handles job application operations.
type Service struct {
	db      *gorm.DB
	client  storage.Client
	storage storage.Config
	logger  *zap.Logger
	spec    *reconcile.Spec

	// mu serializes imports so one batch completes before another starts.
	mu sync.Mutex
}

// NewService creates a new application service. client may be nil when the
// import archive is disabled.
func NewService(db *gorm.DB, client storage.Client, storageCfg storage.Config, logger *zap.Logger) *Service {
	return &Service{
		db:      db,
		client:  client,
		storage: storageCfg,
		logger:  logger,
		spec: &reconcile.Spec{
			Adapter: appreconcile.NewAdapter(),
			Logger:  logger,
		},
	}
}

// Migrate creates the application and preference tables if missing.
func (s *Service) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&models.Application{}, &models.ColumnPreference{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}

func (s *Service) archiveEnabled() bool {
	return s.storage.Enabled && s.client != nil
}

// ImportRows reconciles a batch of raw rows against the store.
func (s *Service) ImportRows(ctx context.Context, rows []reconcile.Row, opts ImportOptions) (*ImportResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.importRows(ctx, uuid.NewString(), rows, opts)
}

func (s *Service) importRows(ctx context.Context, batchID string, rows []reconcile.Row, opts ImportOptions) (*ImportResult, error) {
	l := s.logger.With(zap.String("batch_id", batchID))

	plan, inserted, err := reconcile.ReconcileAndApply(ctx, s.spec, s.db, rows, reconcile.ReconcileOptions{DryRun: opts.DryRun})
	if err != nil {
		l.Error("Import failed", zap.Int("rows", len(rows)), zap.Error(err))
		return nil, err
	}

	l.Info("Import finished",
		zap.Int("rows", plan.Summary.TotalRows),
		zap.Int("inserted", inserted),
		zap.Int("existing", plan.Summary.Existing),
		zap.Int("duplicates", plan.Summary.Duplicates),
		zap.Bool("dry_run", opts.DryRun),
	)

	return &ImportResult{
		BatchID:  batchID,
		Summary:  plan.Summary,
		Actions:  plan.Actions,
		Inserted: inserted,
		DryRun:   opts.DryRun,
	}, nil
}

// ImportCSV decodes a CSV export and reconciles it. When requested and enabled,
// the raw file is archived to the bucket once the batch is committed; an
// archive failure is logged and does not undo the import.
func (s *Service) ImportCSV(ctx context.Context, r io.Reader, opts ImportOptions) (*ImportResult, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}

	rows, err := tabular.ReadCSV(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to decode csv: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	batchID := uuid.NewString()
	result, err := s.importRows(ctx, batchID, rows, opts)
	if err != nil {
		return nil, err
	}

	if opts.Archive && !opts.DryRun && s.archiveEnabled() {
		key, err := s.archive(ctx, batchID, raw)
		if err != nil {
			s.logger.Warn("Failed to archive import", zap.String("batch_id", batchID), zap.Error(err))
		} else {
			result.Archive = key
		}
	}

	return result, nil
}

// ImportObject reconciles a CSV stored in the bucket under key.
func (s *Service) ImportObject(ctx context.Context, key string, opts ImportOptions) (*ImportResult, error) {
	if !s.archiveEnabled() {
		return nil, ErrArchiveDisabled
	}

	obj, err := s.client.GetObject(ctx, s.storage.Bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object %s: %w", key, err)
	}
	defer obj.Close()

	opts.Archive = false
	return s.ImportCSV(ctx, obj, opts)
}

func (s *Service) archive(ctx context.Context, batchID string, raw []byte) (string, error) {
	if err := storage.EnsureBucket(ctx, s.client, s.storage.Bucket, s.storage.Region); err != nil {
		return "", err
	}

	key := s.storage.ArchiveKey(batchID)
	_, err := s.client.PutObject(ctx, s.storage.Bucket, key, bytes.NewReader(raw), int64(len(raw)), minio.PutObjectOptions{
		ContentType: "text/csv",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return key, nil
}

// List returns every stored application in insertion order.
func (s *Service) List(ctx context.Context) ([]models.Application, error) {
	var apps []models.Application
	if err := s.db.WithContext(ctx).Order("id").Find(&apps).Error; err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	return apps, nil
}

// Get returns the application stored under an external identifier.
func (s *Service) Get(ctx context.Context, externalID string) (*models.Application, error) {
	var app models.Application
	if err := s.db.WithContext(ctx).Where("external_id = ?", externalID).First(&app).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

// Records returns the stored applications in display form, filtered by query.
func (s *Service) Records(ctx context.Context, q, mode string) ([]models.Record, error) {
	apps, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]models.Record, 0, len(apps))
	for _, app := range apps {
		records = append(records, app.ToRecord())
	}
	return Search(records, q, mode)
}

// Display returns the filtered records projected to the visible columns.
// When all is set every display column is included regardless of preferences.
func (s *Service) Display(ctx context.Context, q, mode string, all bool) (*Listing, error) {
	records, err := s.Records(ctx, q, mode)
	if err != nil {
		return nil, err
	}

	columns := models.DisplayColumns
	if !all {
		prefs, err := s.Preferences(ctx)
		if err != nil {
			return nil, err
		}
		columns = VisibleColumns(prefs)
	}

	listing := &Listing{
		Columns: columns,
		Rows:    make([][]string, 0, len(records)),
		Total:   len(records),
	}
	for _, r := range records {
		row := make([]string, len(columns))
		for i, c := range columns {
			row[i] = r.Cell(c)
		}
		listing.Rows = append(listing.Rows, row)
	}
	return listing, nil
}

// Preferences returns the column visibility map.
func (s *Service) Preferences(ctx context.Context) (map[string]bool, error) {
	return LoadPreferences(ctx, s.db)
}

// SetPreferences stores column visibility and returns the resulting map.
func (s *Service) SetPreferences(ctx context.Context, prefs map[string]bool) (map[string]bool, error) {
	if err := SavePreferences(ctx, s.db, prefs); err != nil {
		return nil, err
	}
	return s.Preferences(ctx)
}
