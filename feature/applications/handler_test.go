package applications

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"job-tracker/core/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp(t *testing.T) *fiber.App {
	svc := setupService(t, nil, storage.Config{})
	app := fiber.New()
	NewHandler(svc).RegisterRoutes(app)
	return app
}

func decode(t *testing.T, body io.Reader, v any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(body).Decode(v))
}

func TestHandleImport_Multipart(t *testing.T) {
	app := setupApp(t)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", "export.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte(sampleCSV))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/applications/import", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, err := app.Test(req, 2000)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var result ImportResult
	decode(t, resp.Body, &result)
	assert.Equal(t, 2, result.Inserted)

	resp, err = app.Test(httptest.NewRequest("GET", "/applications?q=senior", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var records []map[string]any
	decode(t, resp.Body, &records)
	require.Len(t, records, 1)
	assert.Equal(t, "Another Company", records[0]["company"])
}

func TestHandleImport_JSON(t *testing.T) {
	app := setupApp(t)

	body := `[{"id":"1","Company Name":"Acme","Job Title":"Engineer"},{"id":"2","Company Name":"","Job Title":"Nobody"}]`
	req := httptest.NewRequest("POST", "/applications/import", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 422, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/applications/1", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode, "rejected batch stores nothing")

	body = `[{"id":"1","Company Name":"Acme","Job Title":"Engineer"}]`
	req = httptest.NewRequest("POST", "/applications/import?dry_run=true", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var result ImportResult
	decode(t, resp.Body, &result)
	assert.True(t, result.DryRun)
	assert.Equal(t, 1, result.Summary.Inserts)
}

func TestHandleImport_BadBody(t *testing.T) {
	app := setupApp(t)

	req := httptest.NewRequest("POST", "/applications/import", strings.NewReader("not json"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestHandleImportObject_Disabled(t *testing.T) {
	app := setupApp(t)

	resp, err := app.Test(httptest.NewRequest("POST", "/applications/import/object?key=imports/a.csv", nil))
	require.NoError(t, err)
	assert.Equal(t, 409, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("POST", "/applications/import/object", nil))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestHandlePreferences(t *testing.T) {
	app := setupApp(t)

	req := httptest.NewRequest("PUT", "/preferences", strings.NewReader(`{"Archived":true}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/preferences", nil))
	require.NoError(t, err)
	var prefs map[string]bool
	decode(t, resp.Body, &prefs)
	assert.True(t, prefs["Archived"])
	assert.False(t, prefs["Status Date"])

	req = httptest.NewRequest("PUT", "/preferences", strings.NewReader(`{"Salary":true}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestHandleTable(t *testing.T) {
	app := setupApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/applications/table?all=true", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var listing Listing
	decode(t, resp.Body, &listing)
	assert.Len(t, listing.Columns, 8)
	assert.Empty(t, listing.Rows)

	resp, err = app.Test(httptest.NewRequest("GET", "/applications/table?mode=regex&q=a", nil))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}
