package integrity

import (
	"job-tracker/core/logger"
	"job-tracker/feature/integrity/checks"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	// Force import for Swagger
	var _ = checks.SchemaReport{}
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/schema", h.HandleSchemaCheck)
	group.Get("/archive", h.HandleArchiveCheck)
}

// HandleIntegrityCheck triggers all integrity checks.
// @Summary Run All Integrity Checks
// @Description Performs the schema and archive checks.
// @Tags integrity
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	report := make(map[string]interface{})

	if schema, err := h.service.CheckSchema(); err != nil {
		report["schema"] = map[string]interface{}{"status": checks.StatusError, "error": err.Error()}
	} else {
		report["schema"] = schema
	}

	if !h.service.ArchiveEnabled() {
		report["archive"] = map[string]interface{}{"status": checks.StatusDisabled}
	} else if missing, err := h.service.CheckArchive(c.UserContext()); err != nil {
		report["archive"] = map[string]interface{}{"status": checks.StatusError, "error": err.Error()}
	} else {
		report["archive"] = map[string]interface{}{"status": "checked", "missing": missing}
	}

	return c.JSON(report)
}

// HandleSchemaCheck checks the record store schema.
// @Summary Check Schema
// @Description Checks that the record store tables carry every column of the application models.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.SchemaReport "Schema Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/schema [get]
func (h *Handler) HandleSchemaCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckSchema()
	if err != nil {
		l.Error("Schema check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if !report.Matched {
		l.Warn("Schema mismatch detected", zap.String("summary", report.Summary()))
	}

	return c.JSON(report)
}

// HandleArchiveCheck checks and optionally fixes the import archive.
// @Summary Check Import Archive
// @Description Checks that the archive bucket and import prefix exist. Optionally creates them.
// @Tags integrity
// @Produce json
// @Param fix query boolean false "Create missing bucket and prefix"
// @Success 200 {object} map[string]interface{} "Archive Report"
// @Failure 409 {object} map[string]string "Archive Disabled"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/archive [get]
func (h *Handler) HandleArchiveCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	if !h.service.ArchiveEnabled() {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"status": checks.StatusDisabled})
	}
	fix := c.QueryBool("fix")

	missing, err := h.service.CheckArchive(c.UserContext())
	if err != nil {
		l.Error("Archive check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if len(missing) > 0 {
		l.Warn("Archive incomplete", zap.Strings("missing", missing))

		if fix {
			l.Info("Attempting to fix archive")
			if err := h.service.FixArchive(c.UserContext(), missing); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error":   "Failed to fix archive",
					"details": err.Error(),
					"missing": missing,
				})
			}
			return c.JSON(fiber.Map{
				"status": "fixed",
				"fixed":  missing,
			})
		}
	}

	return c.JSON(fiber.Map{
		"status":  "checked",
		"missing": missing,
	})
}
