package reconciliation

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature wires the reconciliation service into the application.
type Feature struct {
	service *Service
	logger  *zap.Logger
}

// NewFeature creates the reconciliation feature.
func NewFeature(service *Service, logger *zap.Logger) *Feature {
	return &Feature{service: service, logger: logger}
}

// Name returns the feature name.
func (f *Feature) Name() string {
	return "reconciliation"
}

// IsEnabled reports whether the feature should be loaded.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	NewHandler(f.service, f.logger).RegisterRoutes(app)
	return nil
}
