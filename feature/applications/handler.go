package applications

import (
	"bytes"
	"errors"
	"strings"

	"job-tracker/core/logger"
	"job-tracker/core/reconcile"
	"job-tracker/core/tabular"
	"job-tracker/feature/applications/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Handler handles HTTP requests for job applications.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	// Force import for Swagger
	var _ = models.Record{}
	return &Handler{service: service}
}

// RegisterRoutes registers the application routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/applications")
	group.Post("/import", h.HandleImport)
	group.Post("/import/object", h.HandleImportObject)
	group.Get("/", h.HandleList)
	group.Get("/table", h.HandleTable)
	group.Get("/:id", h.HandleGet)

	prefs := app.Group("/preferences")
	prefs.Get("/", h.HandleGetPreferences)
	prefs.Put("/", h.HandlePutPreferences)
}

// statusFor maps service errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, reconcile.ErrBatchRejected):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, tabular.ErrEmptyInput),
		errors.Is(err, ErrUnknownColumn),
		errors.Is(err, ErrUnknownSearchMode):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrArchiveDisabled):
		return fiber.StatusConflict
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	l := logger.WithRayID(h.service.logger, c)
	status := statusFor(err)
	if status >= fiber.StatusInternalServerError {
		l.Error(msg, zap.Error(err))
	} else {
		l.Warn(msg, zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

// HandleImport syncs an uploaded export into the store.
// @Summary Import Applications
// @Description Reconciles a CSV export (multipart field "file") or a JSON array of rows. The whole batch is committed or rejected.
// @Tags applications
// @Accept mpfd,json
// @Produce json
// @Param file formData file false "CSV export"
// @Param dry_run query boolean false "Plan without writing"
// @Success 200 {object} applications.ImportResult "Import Result"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 422 {object} map[string]string "Batch Rejected"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /applications/import [post]
func (h *Handler) HandleImport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	opts := ImportOptions{DryRun: c.QueryBool("dry_run"), Archive: true}

	var (
		result *ImportResult
		err    error
	)
	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		fh, ferr := c.FormFile("file")
		if ferr != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing form file \"file\""})
		}
		f, ferr := fh.Open()
		if ferr != nil {
			return h.fail(c, "Failed to open upload", ferr)
		}
		defer f.Close()

		l.Info("Importing CSV upload", zap.String("file", fh.Filename), zap.Int64("size", fh.Size))
		result, err = h.service.ImportCSV(c.UserContext(), f, opts)
	} else {
		rows, rerr := tabular.ReadJSON(bytes.NewReader(c.Body()))
		if rerr != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": rerr.Error()})
		}
		l.Info("Importing JSON rows", zap.Int("rows", len(rows)))
		result, err = h.service.ImportRows(c.UserContext(), rows, opts)
	}
	if err != nil {
		return h.fail(c, "Import failed", err)
	}

	return c.JSON(result)
}

// HandleImportObject syncs an export stored in the archive bucket.
// @Summary Import Archived Export
// @Description Reconciles a CSV object from the configured bucket.
// @Tags applications
// @Produce json
// @Param key query string true "Object key"
// @Param dry_run query boolean false "Plan without writing"
// @Success 200 {object} applications.ImportResult "Import Result"
// @Failure 409 {object} map[string]string "Archive Disabled"
// @Failure 422 {object} map[string]string "Batch Rejected"
// @Router /applications/import/object [post]
func (h *Handler) HandleImportObject(c *fiber.Ctx) error {
	key := c.Query("key")
	if key == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "key is required"})
	}

	result, err := h.service.ImportObject(c.UserContext(), key, ImportOptions{DryRun: c.QueryBool("dry_run")})
	if err != nil {
		return h.fail(c, "Object import failed", err)
	}
	return c.JSON(result)
}

// HandleList returns stored applications in display form.
// @Summary List Applications
// @Description Lists applications, optionally filtered by a search query over title, company and notes.
// @Tags applications
// @Produce json
// @Param q query string false "Search query"
// @Param mode query string false "substring (default) or fulltext"
// @Success 200 {array} models.Record "Applications"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /applications [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	records, err := h.service.Records(c.UserContext(), c.Query("q"), c.Query("mode"))
	if err != nil {
		return h.fail(c, "Listing failed", err)
	}
	return c.JSON(records)
}

// HandleTable returns the listing projected to the visible columns.
// @Summary Application Table
// @Description Returns the filtered listing restricted to the visible columns.
// @Tags applications
// @Produce json
// @Param q query string false "Search query"
// @Param mode query string false "substring (default) or fulltext"
// @Param all query boolean false "Include hidden columns"
// @Success 200 {object} applications.Listing "Listing"
// @Router /applications/table [get]
func (h *Handler) HandleTable(c *fiber.Ctx) error {
	listing, err := h.service.Display(c.UserContext(), c.Query("q"), c.Query("mode"), c.QueryBool("all"))
	if err != nil {
		return h.fail(c, "Table failed", err)
	}
	return c.JSON(listing)
}

// HandleGet returns one stored application.
// @Summary Get Application
// @Tags applications
// @Produce json
// @Param id path string true "External identifier"
// @Success 200 {object} models.Application "Application"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /applications/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	app, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.fail(c, "Lookup failed", err)
	}
	return c.JSON(app)
}

// HandleGetPreferences returns the column visibility map.
// @Summary Get Column Preferences
// @Tags preferences
// @Produce json
// @Success 200 {object} map[string]bool "Preferences"
// @Router /preferences [get]
func (h *Handler) HandleGetPreferences(c *fiber.Ctx) error {
	prefs, err := h.service.Preferences(c.UserContext())
	if err != nil {
		return h.fail(c, "Loading preferences failed", err)
	}
	return c.JSON(prefs)
}

// HandlePutPreferences stores column visibility.
// @Summary Set Column Preferences
// @Tags preferences
// @Accept json
// @Produce json
// @Param preferences body map[string]bool true "Column visibility"
// @Success 200 {object} map[string]bool "Preferences"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /preferences [put]
func (h *Handler) HandlePutPreferences(c *fiber.Ctx) error {
	var prefs map[string]bool
	if err := c.BodyParser(&prefs); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	saved, err := h.service.SetPreferences(c.UserContext(), prefs)
	if err != nil {
		return h.fail(c, "Saving preferences failed", err)
	}
	return c.JSON(saved)
}
