package integrity

import (
	"netcollector/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/templates", h.HandleTemplatesCheck)
	group.Get("/server", h.HandleServerCheck)
}

// HandleIntegrityCheck triggers all integrity checks.
// @Summary Run All Integrity Checks
// @Description Checks the rule index templates and handlers, then the inventory database schema.
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	report := make(map[string]interface{})
	report["templates"] = h.service.CheckRules(c.UserContext())

	if srvReport, err := h.service.CheckServer(); err != nil {
		report["server"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["server"] = srvReport
	}

	return c.JSON(report)
}

// HandleTemplatesCheck checks the rule index.
// @Summary Check Templates
// @Description Loads and compiles every template of the rule index and verifies that every handler is registered.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.RulesReport "Templates Report"
// @Router /integrity/templates [get]
func (h *Handler) HandleTemplatesCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report := h.service.CheckRules(c.UserContext())
	if report.Status != "ok" {
		l.Warn("Rule index problems detected",
			zap.Int("invalid_templates", len(report.InvalidTemplates)),
			zap.Strings("unknown_handlers", report.UnknownHandlers))
	}
	return c.JSON(report)
}

// HandleServerCheck checks database schema integrity.
// @Summary Check Server Schema
// @Description Checks if the inventory database schema matches the expected models.
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} checks.ServerReport "Server Check Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/server [get]
func (h *Handler) HandleServerCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Starting server schema check")

	report, err := h.service.CheckServer()
	if err != nil {
		l.Error("Server schema check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(report)
}
