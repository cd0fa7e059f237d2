package reconcile

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"job-tracker/core/reconcile"
	"job-tracker/core/utils"
	"job-tracker/feature/applications/models"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gorm.io/gorm"
)

// ErrInvalidRecord is wrapped by validation failures of a normalized application.
var ErrInvalidRecord = errors.New("invalid application record")

// Input column labels of the Simplify.jobs export.
const (
	LabelID           = "id"
	LabelJobTitle     = "Job Title"
	LabelCompanyName  = "Company Name"
	LabelCompany      = "Company"
	LabelJobURL       = "Job URL"
	LabelAppliedDate  = "Applied Date"
	LabelStatus       = "Status"
	LabelStatusDate   = "Status Date"
	LabelArchived     = "Archived"
	LabelDateArchived = "Date Archived"
	LabelNotes        = "Notes"
)

// ApplicationAdapter implements the reconcile.Adapter interface for job applications.
type ApplicationAdapter struct{}

// NewAdapter creates a new application adapter.
func NewAdapter() *ApplicationAdapter {
	return &ApplicationAdapter{}
}

// Name returns the unique name of this adapter.
func (a *ApplicationAdapter) Name() string {
	return "applications"
}

// Normalize converts a raw row into an application record.
// Malformed values degrade to null or false and never fail.
func (a *ApplicationAdapter) Normalize(row reconcile.Row) reconcile.Item {
	company := row[LabelCompanyName]
	if utils.IsMissing(company) {
		company = row[LabelCompany]
	}

	app := &models.Application{
		JobTitle:     utils.CleanValue(row[LabelJobTitle]),
		CompanyName:  utils.StringOrEmpty(company),
		JobURL:       utils.CleanValue(row[LabelJobURL]),
		AppliedDate:  utils.ParseDate(row[LabelAppliedDate]),
		Status:       utils.CleanValue(row[LabelStatus]),
		StatusDate:   utils.ParseDate(row[LabelStatusDate]),
		Archived:     utils.ParseBool(row[LabelArchived]),
		DateArchived: utils.ParseDate(row[LabelDateArchived]),
		Notes:        utils.CleanValue(row[LabelNotes]),
	}

	app.ExternalID = utils.StringOrEmpty(row[LabelID])
	if app.ExternalID == "" {
		app.ExternalID = GenerateID(
			app.CompanyName,
			utils.StringOrEmpty(row[LabelJobTitle]),
			utils.StringOrEmpty(row[LabelJobURL]),
			utils.StringOrEmpty(row[LabelAppliedDate]),
		)
	}

	return app
}

// ExtractKey returns the external identifier of a normalized record.
func (a *ApplicationAdapter) ExtractKey(item reconcile.Item) string {
	return item.(*models.Application).ExternalID
}

// Validate checks the constraints the store enforces.
func (a *ApplicationAdapter) Validate(item reconcile.Item) error {
	app := item.(*models.Application)
	err := validation.ValidateStruct(app,
		validation.Field(&app.ExternalID, validation.Required, validation.Length(1, 255)),
		validation.Field(&app.CompanyName, validation.By(notBlank), validation.Length(0, 255)),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}
	return nil
}

func notBlank(value any) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return errors.New("cannot be blank")
	}
	return nil
}

// LoadIndex returns the set of stored external identifiers.
func (a *ApplicationAdapter) LoadIndex(ctx context.Context, db *gorm.DB) (map[string]struct{}, error) {
	var ids []string
	if err := db.WithContext(ctx).Model(&models.Application{}).Pluck("external_id", &ids).Error; err != nil {
		return nil, err
	}

	index := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		index[id] = struct{}{}
	}
	return index, nil
}

// Exists performs the point lookup by external identifier.
func (a *ApplicationAdapter) Exists(ctx context.Context, db *gorm.DB, key string) (bool, error) {
	var count int64
	err := db.WithContext(ctx).Model(&models.Application{}).Where("external_id = ?", key).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Insert creates the record.
func (a *ApplicationAdapter) Insert(ctx context.Context, db *gorm.DB, item reconcile.Item) error {
	return db.WithContext(ctx).Create(item.(*models.Application)).Error
}
