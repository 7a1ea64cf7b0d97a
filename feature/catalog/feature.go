package catalog

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature wires the catalog service into the feature loader.
type Feature struct {
	cfg    Config
	logger *zap.Logger
}

// NewFeature creates the catalog feature.
func NewFeature(cfg Config, logger *zap.Logger) *Feature {
	return &Feature{cfg: cfg, logger: logger}
}

// Name returns the feature identifier.
func (f *Feature) Name() string {
	return "catalog"
}

// IsEnabled reports whether the feature is switched on in configuration.
func (f *Feature) IsEnabled() bool {
	return f.cfg.Enabled
}

// Load registers the catalog routes.
func (f *Feature) Load(app fiber.Router) error {
	service := NewService(f.cfg, f.logger)
	handler := NewHandler(service, f.logger)
	handler.RegisterRoutes(app)
	return nil
}
