package integrity

import (
	"context"

	"netcollector/core/reconcile"
	"netcollector/core/rules"
	"netcollector/core/store/models"
	"netcollector/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles integrity checks.
type Service struct {
	loader   checks.TemplateLoader
	index    *rules.Index
	registry *reconcile.Registry
	db       *gorm.DB
	logger   *zap.Logger
}

// NewService creates a new integrity service.
func NewService(loader checks.TemplateLoader, index *rules.Index, registry *reconcile.Registry, db *gorm.DB, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		loader:   loader,
		index:    index,
		registry: registry,
		db:       db,
		logger:   logger,
	}
}

// CheckRules verifies the templates and handlers referenced by the rule index.
func (s *Service) CheckRules(ctx context.Context) *checks.RulesReport {
	return checks.CheckRules(ctx, s.loader, s.index, s.registry)
}

// CheckServer verifies the inventory database schema.
func (s *Service) CheckServer() (*checks.ServerReport, error) {
	return checks.CheckServerIntegrity(s.db, models.All())
}
