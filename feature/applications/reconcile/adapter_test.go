package reconcile

import (
	"context"
	"math"
	"testing"
	"time"

	"job-tracker/core/database"
	"job-tracker/core/reconcile"
	"job-tracker/feature/applications/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Application{}))
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func TestGenerateID(t *testing.T) {
	assert.Equal(t, "gen_bda251550bf0", GenerateID("", "", "", ""))
	assert.Equal(t, "gen_9eecc81d1727", GenerateID("Acme", "Engineer", "https://acme.example/jobs/1", "2024-01-15"))
	assert.Equal(t,
		GenerateID("Acme", "Engineer", "", ""),
		GenerateID("Acme", "Engineer", "", ""),
	)
	assert.NotEqual(t,
		GenerateID("Acme", "Engineer", "", "2024-01-15"),
		GenerateID("Acme", "Engineer", "", "2024-01-16"),
	)
}

func TestNormalize(t *testing.T) {
	a := NewAdapter()

	t.Run("full row", func(t *testing.T) {
		item := a.Normalize(reconcile.Row{
			LabelID:           "12345",
			LabelJobTitle:     "Engineer",
			LabelCompanyName:  "Acme",
			LabelJobURL:       "https://acme.example/jobs/1",
			LabelAppliedDate:  "2024-01-15",
			LabelStatus:       "Applied",
			LabelStatusDate:   "2024-01-20 10:00:00",
			LabelArchived:     "TRUE",
			LabelDateArchived: "not-a-date",
			LabelNotes:        "Referral",
			"Unrelated":       "ignored",
		})
		app := item.(*models.Application)

		assert.Equal(t, "12345", app.ExternalID)
		assert.Equal(t, "Acme", app.CompanyName)
		require.NotNil(t, app.JobTitle)
		assert.Equal(t, "Engineer", *app.JobTitle)
		require.NotNil(t, app.AppliedDate)
		assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), app.AppliedDate.UTC())
		require.NotNil(t, app.StatusDate)
		assert.True(t, app.Archived)
		assert.Nil(t, app.DateArchived)
		assert.Equal(t, "Referral", *app.Notes)
	})

	t.Run("derived id and absent fields", func(t *testing.T) {
		item := a.Normalize(reconcile.Row{
			LabelJobTitle:    "Engineer",
			LabelCompanyName: "Acme",
			LabelArchived:    nil,
			LabelNotes:       math.NaN(),
		})
		app := item.(*models.Application)

		assert.Equal(t, GenerateID("Acme", "Engineer", "", ""), app.ExternalID)
		assert.Nil(t, app.JobURL)
		assert.Nil(t, app.AppliedDate)
		assert.Nil(t, app.Notes)
		assert.False(t, app.Archived)
	})

	t.Run("empty id is derived", func(t *testing.T) {
		app := a.Normalize(reconcile.Row{LabelID: "", LabelCompanyName: "Acme"}).(*models.Application)
		assert.Equal(t, GenerateID("Acme", "", "", ""), app.ExternalID)
	})

	t.Run("numeric id keeps natural form", func(t *testing.T) {
		app := a.Normalize(reconcile.Row{LabelID: float64(123), LabelCompanyName: "Acme"}).(*models.Application)
		assert.Equal(t, "123", app.ExternalID)
	})

	t.Run("company fallback label", func(t *testing.T) {
		app := a.Normalize(reconcile.Row{LabelCompany: "Globex"}).(*models.Application)
		assert.Equal(t, "Globex", app.CompanyName)
	})

	t.Run("empty row is deterministic", func(t *testing.T) {
		first := a.ExtractKey(a.Normalize(reconcile.Row{}))
		second := a.ExtractKey(a.Normalize(reconcile.Row{}))
		assert.Equal(t, "gen_bda251550bf0", first)
		assert.Equal(t, first, second)
	})
}

func TestValidate(t *testing.T) {
	a := NewAdapter()

	assert.NoError(t, a.Validate(&models.Application{ExternalID: "1", CompanyName: "Acme"}))

	err := a.Validate(&models.Application{ExternalID: "1", CompanyName: "  "})
	assert.ErrorIs(t, err, ErrInvalidRecord)
	assert.ErrorContains(t, err, "company_name")
}

func TestStoreOperations(t *testing.T) {
	db := setupDB(t)
	a := NewAdapter()
	ctx := context.Background()

	index, err := a.LoadIndex(ctx, db)
	require.NoError(t, err)
	assert.Empty(t, index)

	require.NoError(t, a.Insert(ctx, db, &models.Application{ExternalID: "abc", CompanyName: "Acme"}))

	index, err = a.LoadIndex(ctx, db)
	require.NoError(t, err)
	assert.Contains(t, index, "abc")

	exists, err := a.Exists(ctx, db, "abc")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = a.Exists(ctx, db, "missing")
	require.NoError(t, err)
	assert.False(t, exists)

	err = a.Insert(ctx, db, &models.Application{ExternalID: "abc", CompanyName: "Other"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}
