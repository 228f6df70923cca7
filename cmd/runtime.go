package cmd

import (
	"bytes"
	"context"
	"fmt"

	"netcollector/core/config"
	"netcollector/core/database"
	"netcollector/core/logger"
	"netcollector/core/reconcile"
	"netcollector/core/rules"
	"netcollector/core/storage"
	"netcollector/core/store"
	"netcollector/core/textfsm"
	"netcollector/core/vendor"
	"netcollector/feature/interfaces"
	"netcollector/feature/inventory"
	"netcollector/feature/vms"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// runtime holds what every command builds from the configuration.
type runtime struct {
	cfg     *config.Config
	logger  *zap.Logger
	storage storage.Client
	engine  *textfsm.Engine
	index   *rules.Index
}

func newRuntime(ctx context.Context, logCfg *logger.Config) (*runtime, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if logCfg == nil {
		logCfg = &cfg.Log
	}

	logg, err := logger.New(logCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	rt := &runtime{cfg: cfg, logger: logg}
	if err := rt.loadTemplates(ctx); err != nil {
		return nil, err
	}
	return rt, nil
}

// loadTemplates sets up the template source and reads the rule index from it.
func (rt *runtime) loadTemplates(ctx context.Context) error {
	cc := rt.cfg.Collector

	switch cc.TemplateSource {
	case "bucket":
		client, err := storage.NewClient(rt.cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}
		rt.storage = client

		data, err := storage.ReadObject(ctx, client, rt.cfg.Storage.Bucket, cc.IndexFile)
		if err != nil {
			return fmt.Errorf("failed to read rule index: %w", err)
		}
		if rt.index, err = rules.LoadBytes(cc.IndexFile, bytes.NewReader(data)); err != nil {
			return err
		}
		rt.engine = textfsm.NewEngine(textfsm.BucketSource{
			Client: client,
			Bucket: rt.cfg.Storage.Bucket,
			Prefix: cc.TemplatePrefix,
		}, rt.logger)
	case "dir", "":
		index, err := rules.LoadFile(cc.IndexFile)
		if err != nil {
			return err
		}
		rt.index = index
		rt.engine = textfsm.NewEngine(textfsm.DirSource{Dir: cc.TemplatesDir}, rt.logger)
	default:
		return fmt.Errorf("unknown template source: %s", cc.TemplateSource)
	}

	rt.logger.Info("Rule index loaded",
		zap.String("source", cc.TemplateSource),
		zap.Int("rules", len(rt.index.Rules())))
	return nil
}

// connectDatabase opens the inventory database and migrates it when enabled.
func (rt *runtime) connectDatabase() (*gorm.DB, error) {
	db, err := database.Connect(rt.cfg.Database)
	if err != nil {
		return nil, err
	}
	if rt.cfg.Database.AutoMigrate {
		if err := store.Migrate(db); err != nil {
			return nil, err
		}
		rt.logger.Info("Inventory schema migrated")
	}
	return db, nil
}

// newRegistry binds the reconcilers to their handler identifiers.
func (rt *runtime) newRegistry(st store.Store) (*reconcile.Registry, error) {
	cc := rt.cfg.Collector

	ifaces, err := interfaces.New(st, interfaces.Config{
		MaxMTU:           cc.MaxMTU,
		VirtualPattern:   cc.VirtualPattern,
		AggregatePattern: cc.AggregatePattern,
	}, rt.logger)
	if err != nil {
		return nil, err
	}

	reg := reconcile.NewRegistry()
	for name, rec := range map[string]reconcile.Reconciler{
		interfaces.HandlerName: ifaces,
		inventory.HandlerName:  inventory.New(st, vendor.NewResolver(rt.logger), rt.logger),
		vms.HandlerName:        vms.New(st, vms.Config{Platform: cc.VMPlatform, Role: cc.VMRole}, rt.logger),
	} {
		if err := reg.Register(name, rec); err != nil {
			return nil, err
		}
	}
	return reg, nil
}
