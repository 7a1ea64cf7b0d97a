package material

import (
	"bolt-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the material library views.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, log *zap.Logger) *Handler {
	return &Handler{service: service, logger: log}
}

// RegisterRoutes registers the material routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/materials")
	group.Get("/", h.HandleList)
	group.Get("/templates", h.HandleTemplates)
}

// HandleList returns the derived thread materials in the store.
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	infos, err := h.service.Materials(c.UserContext())
	if err != nil {
		l.Error("Failed to list materials", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"materials": infos})
}

// HandleTemplates returns the validation report for every template candidate.
func (h *Handler) HandleTemplates(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	reports, err := h.service.Templates(c.UserContext())
	if err != nil {
		l.Error("Failed to validate templates", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"templates": reports})
}
