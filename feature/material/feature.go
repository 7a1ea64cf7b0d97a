package material

import (
	"bolt-manager/core/store"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature wires the material service into the feature loader.
type Feature struct {
	cfg    Config
	store  store.Store
	logger *zap.Logger
}

// NewFeature creates the material feature.
func NewFeature(cfg Config, s store.Store, logger *zap.Logger) *Feature {
	return &Feature{cfg: cfg, store: s, logger: logger}
}

// Name returns the feature identifier.
func (f *Feature) Name() string {
	return "material"
}

// IsEnabled reports whether the feature is switched on in configuration.
func (f *Feature) IsEnabled() bool {
	return f.cfg.Enabled
}

// Load registers the material routes.
func (f *Feature) Load(app fiber.Router) error {
	service := NewService(f.store, f.logger)
	handler := NewHandler(service, f.logger)
	handler.RegisterRoutes(app)
	return nil
}
