package collector

import (
	"netcollector/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the collector.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the collector routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/api/collector")
	group.Post("/", h.HandleCollect)
	group.Get("/", h.HandleUsePost)
	group.Get("/commands", h.HandleCommands)
}

// Response is the envelope of every collector answer.
type Response struct {
	Result bool   `json:"result"`
	Detail string `json:"detail"`
}

// HandleCollect parses submitted command output and syncs it into the inventory.
// @Summary Submit Command Output
// @Description Parses raw command output captured from a device and reconciles it with the inventory.
// @Tags collector
// @Accept json
// @Produce json
// @Param request body Request true "Hostname, command and raw output"
// @Success 200 {object} Response "Processing result"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /api/collector/ [post]
func (h *Handler) HandleCollect(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req Request
	if err := c.BodyParser(&req); err != nil {
		l.Warn("Invalid collector body", zap.Error(err))
		return c.JSON(Response{Result: false, Detail: "Cannot parse a query - check all parameters"})
	}

	res := h.service.process(c.UserContext(), l, req)
	return c.JSON(Response{Result: res.Success, Detail: res.Message})
}

// HandleUsePost answers GET requests on the submission endpoint.
// @Summary Collector Usage
// @Tags collector
// @Produce json
// @Success 200 {object} Response "Usage hint"
// @Router /api/collector/ [get]
func (h *Handler) HandleUsePost(c *fiber.Ctx) error {
	return c.JSON(Response{Result: false, Detail: "Use POST"})
}

// HandleCommands lists the commands the collector understands.
// @Summary List Commands
// @Description Lists every command pattern of the rule index with its description.
// @Tags collector
// @Produce json
// @Success 200 {object} map[string]interface{} "Command listing"
// @Router /api/collector/commands [get]
func (h *Handler) HandleCommands(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"result": true,
		"detail": h.service.Commands(),
	})
}
