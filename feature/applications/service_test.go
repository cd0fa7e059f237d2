package applications

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"job-tracker/core/database"
	"job-tracker/core/reconcile"
	"job-tracker/core/storage"
	"job-tracker/core/storage/mocks"
	"job-tracker/feature/applications/models"
	appreconcile "job-tracker/feature/applications/reconcile"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupService(t *testing.T, client storage.Client, cfg storage.Config) *Service {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	svc := NewService(db, client, cfg, zap.NewNop())
	require.NoError(t, svc.Migrate(context.Background()))
	return svc
}

func sampleRows() []reconcile.Row {
	return []reconcile.Row{
		{
			"Job Title":     "Software Engineer",
			"Company Name":  "Test Company",
			"Job URL":       "https://example.com/job",
			"Applied Date":  "2025-03-31",
			"Status":        "APPLIED",
			"Status Date":   "2025-03-31",
			"Archived":      false,
			"Date Archived": nil,
			"Notes":         "Test notes",
			"id":            "12345",
		},
		{
			"Job Title":     "Senior Developer",
			"Company Name":  "Another Company",
			"Job URL":       "https://example.com/job2",
			"Applied Date":  nil,
			"Status":        "SAVED",
			"Status Date":   "2025-03-30",
			"Archived":      nil,
			"Date Archived": "2025-03-31",
			"Notes":         nil,
			"id":            nil,
		},
	}
}

func countApplications(t *testing.T, svc *Service) int {
	apps, err := svc.List(context.Background())
	require.NoError(t, err)
	return len(apps)
}

func TestImportRows_TwoRowBatch(t *testing.T) {
	svc := setupService(t, nil, storage.Config{})
	ctx := context.Background()

	result, err := svc.ImportRows(ctx, sampleRows(), ImportOptions{})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Inserted)
	assert.Equal(t, 2, countApplications(t, svc))

	first, err := svc.Get(ctx, "12345")
	require.NoError(t, err)
	assert.Equal(t, "Software Engineer", *first.JobTitle)
	assert.Equal(t, "APPLIED", *first.Status)
	assert.NotNil(t, first.AppliedDate)
	assert.NotNil(t, first.StatusDate)
	assert.False(t, first.Archived)

	apps, err := svc.List(ctx)
	require.NoError(t, err)
	second := apps[1]
	assert.Equal(t, "Another Company", second.CompanyName)
	assert.True(t, strings.HasPrefix(second.ExternalID, appreconcile.GeneratedIDPrefix))
	assert.Equal(t, appreconcile.GenerateID("Another Company", "Senior Developer", "https://example.com/job2", ""), second.ExternalID)
	assert.False(t, second.Archived)
	assert.Nil(t, second.AppliedDate)
	assert.Nil(t, second.Notes)
}

func TestImportRows_Idempotent(t *testing.T) {
	svc := setupService(t, nil, storage.Config{})
	ctx := context.Background()

	_, err := svc.ImportRows(ctx, sampleRows(), ImportOptions{})
	require.NoError(t, err)

	result, err := svc.ImportRows(ctx, sampleRows(), ImportOptions{})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Inserted)
	assert.Equal(t, 2, result.Summary.Existing)
	assert.Equal(t, 2, countApplications(t, svc))
}

func TestImportRows_InvalidDataDegrades(t *testing.T) {
	svc := setupService(t, nil, storage.Config{})
	ctx := context.Background()

	_, err := svc.ImportRows(ctx, []reconcile.Row{{
		"Job Title":    float64(123),
		"Company Name": "Test Company",
		"Applied Date": "not-a-date",
		"Archived":     "True",
		"id":           "bad-1",
	}}, ImportOptions{})
	require.NoError(t, err)

	app, err := svc.Get(ctx, "bad-1")
	require.NoError(t, err)
	assert.Equal(t, "123", *app.JobTitle)
	assert.Nil(t, app.AppliedDate)
	assert.True(t, app.Archived)
}

func TestImportRows_IdenticalContentStoredOnce(t *testing.T) {
	svc := setupService(t, nil, storage.Config{})
	row := reconcile.Row{"Company Name": "Acme", "Job Title": "Engineer", "Notes": "first"}
	dup := reconcile.Row{"Company Name": "Acme", "Job Title": "Engineer", "Notes": "second"}

	result, err := svc.ImportRows(context.Background(), []reconcile.Row{row, dup}, ImportOptions{})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Inserted)
	assert.Equal(t, 1, result.Summary.Duplicates)

	apps, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, "first", *apps[0].Notes)
}

func TestImportRows_MissingCompanyRejectsBatch(t *testing.T) {
	svc := setupService(t, nil, storage.Config{})
	ctx := context.Background()

	_, err := svc.ImportRows(ctx, sampleRows()[:1], ImportOptions{})
	require.NoError(t, err)

	rows := []reconcile.Row{
		{"Company Name": "Good Co", "Job Title": "Dev"},
		{"Company Name": nil, "Job Title": "No Company"},
	}
	_, err = svc.ImportRows(ctx, rows, ImportOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, reconcile.ErrBatchRejected)
	assert.ErrorIs(t, err, appreconcile.ErrInvalidRecord)

	// Prior state is untouched and nothing from the rejected batch is stored.
	assert.Equal(t, 1, countApplications(t, svc))
}

func TestImportRows_DryRun(t *testing.T) {
	svc := setupService(t, nil, storage.Config{})

	result, err := svc.ImportRows(context.Background(), sampleRows(), ImportOptions{DryRun: true})
	require.NoError(t, err)
	assert.True(t, result.DryRun)
	assert.Equal(t, 2, result.Summary.Inserts)
	assert.Equal(t, 0, result.Inserted)
	assert.Equal(t, 0, countApplications(t, svc))
}

const sampleCSV = "\ufeffid,Job Title,Company Name,Job URL,Applied Date,Status,Archived,Notes\n" +
	"12345,Software Engineer,Test Company,https://example.com/job,2025-03-31,APPLIED,False,Test notes\n" +
	",Senior Developer,Another Company,https://example.com/job2,,SAVED,,\n"

func TestImportCSV_Archives(t *testing.T) {
	client := new(mocks.Client)
	cfg := storage.Config{Enabled: true, Bucket: "job-tracker", Prefix: "imports"}
	client.On("BucketExists", mock.Anything, "job-tracker").Return(true, nil)
	client.On("PutObject", mock.Anything, "job-tracker", mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "imports/") && strings.HasSuffix(key, ".csv")
	}), mock.Anything, int64(len(sampleCSV)), mock.Anything).Return(minio.UploadInfo{}, nil)

	svc := setupService(t, client, cfg)

	result, err := svc.ImportCSV(context.Background(), strings.NewReader(sampleCSV), ImportOptions{Archive: true})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Inserted)
	assert.Equal(t, "imports/"+result.BatchID+".csv", result.Archive)
	client.AssertExpectations(t)
}

func TestImportCSV_ArchiveFailureKeepsImport(t *testing.T) {
	client := new(mocks.Client)
	cfg := storage.Config{Enabled: true, Bucket: "job-tracker", Prefix: "imports"}
	client.On("BucketExists", mock.Anything, "job-tracker").Return(false, errors.New("unreachable"))

	svc := setupService(t, client, cfg)

	result, err := svc.ImportCSV(context.Background(), strings.NewReader(sampleCSV), ImportOptions{Archive: true})
	require.NoError(t, err)
	assert.Empty(t, result.Archive)
	assert.Equal(t, 2, countApplications(t, svc))
}

func TestImportCSV_Empty(t *testing.T) {
	svc := setupService(t, nil, storage.Config{})

	_, err := svc.ImportCSV(context.Background(), strings.NewReader(""), ImportOptions{})
	assert.Error(t, err)
}

func TestImportObject(t *testing.T) {
	client := new(mocks.Client)
	cfg := storage.Config{Enabled: true, Bucket: "job-tracker", Prefix: "imports"}
	client.On("GetObject", mock.Anything, "job-tracker", "imports/export.csv", mock.Anything).
		Return(io.NopCloser(bytes.NewReader([]byte(sampleCSV))), nil)

	svc := setupService(t, client, cfg)

	result, err := svc.ImportObject(context.Background(), "imports/export.csv", ImportOptions{Archive: true})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Inserted)
	assert.Empty(t, result.Archive, "objects read from the bucket are not archived again")
	client.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestImportObject_Disabled(t *testing.T) {
	svc := setupService(t, nil, storage.Config{})

	_, err := svc.ImportObject(context.Background(), "imports/export.csv", ImportOptions{})
	assert.ErrorIs(t, err, ErrArchiveDisabled)
}

func TestDisplay(t *testing.T) {
	svc := setupService(t, nil, storage.Config{})
	ctx := context.Background()

	_, err := svc.ImportRows(ctx, sampleRows(), ImportOptions{})
	require.NoError(t, err)

	listing, err := svc.Display(ctx, "", "", false)
	require.NoError(t, err)
	assert.Equal(t, []string{models.ColumnJobTitle, models.ColumnCompany, models.ColumnStatus, models.ColumnAppliedDate, models.ColumnNotes}, listing.Columns)
	require.Len(t, listing.Rows, 2)
	assert.Equal(t, []string{"Software Engineer", "Test Company", "APPLIED", "2025-03-31", "Test notes"}, listing.Rows[0])

	listing, err = svc.Display(ctx, "another", "", true)
	require.NoError(t, err)
	assert.Equal(t, models.DisplayColumns, listing.Columns)
	require.Len(t, listing.Rows, 1)
	assert.Equal(t, "Another Company", listing.Rows[0][1])

	_, err = svc.Display(ctx, "x", "regex", false)
	assert.ErrorIs(t, err, ErrUnknownSearchMode)
}
