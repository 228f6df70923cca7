package collector

import (
	"netcollector/core/reconcile"
	"netcollector/core/rules"
	"netcollector/core/store"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new collector feature.
func NewFeature(st store.Store, index *rules.Index, registry *reconcile.Registry, parser Parser, logger *zap.Logger) *Feature {
	svc := NewService(st, index, registry, parser, logger)
	return &Feature{service: svc, handler: NewHandler(svc)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "collector"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.service.rules != nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// Service returns the dispatch service, for in-process callers.
func (f *Feature) Service() *Service {
	return f.service
}
