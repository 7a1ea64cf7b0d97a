package catalog

import (
	"bolt-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for catalog renderings.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, log *zap.Logger) *Handler {
	return &Handler{service: service, logger: log}
}

// RegisterRoutes registers the catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/catalog")
	group.Get("/", h.HandleList)
	group.Get("/:file", h.HandleTable)
}

// HandleList returns the available table file names.
func (h *Handler) HandleList(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"files": h.service.Files()})
}

// HandleTable renders one catalog table.
func (h *Handler) HandleTable(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)
	file := c.Params("file")

	content, isHTML, err := h.service.Table(file)
	if err != nil {
		l.Warn("Unknown catalog table requested", zap.String("file", file))
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}

	if isHTML {
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	} else {
		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	}
	return c.SendString(content)
}
