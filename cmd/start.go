package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"netcollector/core/loader"
	"netcollector/core/logger"
	"netcollector/core/middleware/auth"
	"netcollector/core/middleware/rayid"
	"netcollector/core/store"
	"netcollector/feature/collector"
	"netcollector/feature/integrity"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "netcollector/docs/swagger"
)

// @title Network Collector API
// @version 1.0
// @description API for syncing network device command output into the inventory.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the collector server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Configuration, logger, templates and rule index
		rt, err := newRuntime(cmd.Context(), nil)
		if err != nil {
			log.Fatalf("Failed to start: %v", err)
		}
		logg := rt.logger
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 2. Inventory database (required)
		db, err := rt.connectDatabase()
		if err != nil {
			logg.Fatal("Failed to connect to inventory database", zap.Error(err))
		}
		logg.Info("Connected to inventory database", zap.String("driver", rt.cfg.Database.Driver))

		st := store.NewGormStore(db)
		registry, err := rt.newRegistry(st)
		if err != nil {
			logg.Fatal("Failed to register handlers", zap.Error(err))
		}

		// 3. Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			BodyLimit:             rt.cfg.Server.BodyLimit(),
		})

		// 4. Feature Loader
		mgr := loader.NewManager(logg)
		mgr.Register(collector.NewFeature(st, rt.index, registry, rt.engine, logg))
		mgr.Register(integrity.NewFeature(rt.engine, rt.index, registry, db, logg))

		// RayID first, to trace everything
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Swagger stays public
		app.Get("/swagger/*", swagger.HandlerDefault)

		if !rt.cfg.Server.AuthEnabled() {
			logg.Warn("API key not set, authentication disabled")
		}
		app.Use(auth.New(auth.Config{ApiKey: rt.cfg.Server.ApiKey, Skip: []string{"/swagger"}}))

		// 5. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 6. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", rt.cfg.Server.Port))
			if err := app.Listen(":" + rt.cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 7. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
