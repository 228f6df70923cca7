package cmd

import (
	"context"
	"errors"

	"netcollector/core/store"
	"netcollector/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var onlyTemplates bool
var onlyServer bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check templates, handlers and the inventory schema",
	Long: `Loads and compiles every template named by the rule index, checks that every
handler is registered and that the inventory database carries the expected columns.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context())
	},
}

func runIntegrityChecks(ctx context.Context) error {
	rt, err := newRuntime(ctx, nil)
	if err != nil {
		return err
	}
	logg := rt.logger
	defer logg.Sync()

	// Database is optional for the template check
	var db *gorm.DB
	if conn, err := rt.connectDatabase(); err != nil {
		logg.Warn("Optional database connection failed", zap.Error(err))
	} else {
		db = conn
	}

	var st store.Store
	if db != nil {
		st = store.NewGormStore(db)
	}
	registry, err := rt.newRegistry(st)
	if err != nil {
		return err
	}

	svc := integrity.NewService(rt.engine, rt.index, registry, db, logg)
	runTemplates := onlyTemplates || !onlyServer
	runServer := onlyServer || !onlyTemplates
	failed := false

	if runTemplates {
		logg.Info("Checking rule index templates and handlers...")
		report := svc.CheckRules(ctx)
		if report.Status == "ok" {
			logg.Info("Rule index is intact.", zap.Int("rules", report.Rules), zap.Int("templates", report.Templates))
		} else {
			failed = true
			for _, issue := range report.InvalidTemplates {
				logg.Warn("Invalid template", zap.String("template", issue.Template), zap.String("error", issue.Error))
			}
			if len(report.UnknownHandlers) > 0 {
				logg.Warn("Unregistered handlers", zap.Strings("handlers", report.UnknownHandlers))
			}
		}
	}

	if runServer {
		logg.Info("Checking server schema integrity...")
		report, err := svc.CheckServer()
		if err != nil {
			failed = true
			logg.Error("Server schema check failed", zap.Error(err))
		} else if report.Matched {
			logg.Info("Server schema matches expected definition.", zap.String("driver", report.Driver))
		} else {
			failed = true
			logg.Warn("Server schema mismatches found", zap.String("driver", report.Driver))
			for table, tblReport := range report.Tables {
				if tblReport.Status == "ok" {
					continue
				}
				if len(tblReport.MissingColumns) > 0 {
					logg.Warn("Missing Columns", zap.String("table", table), zap.Strings("columns", tblReport.MissingColumns))
				}
				if len(tblReport.TypeMismatches) > 0 {
					logg.Warn("Type Mismatches", zap.String("table", table), zap.Strings("mismatches", tblReport.TypeMismatches))
				}
			}
			for _, e := range report.Errors {
				logg.Error("Inspection Error", zap.String("error", e))
			}
		}
	}

	if failed {
		return errors.New("integrity checks failed")
	}
	return nil
}

func init() {
	integrityCmd.Flags().BoolVar(&onlyTemplates, "templates", false, "Only check the rule index")
	integrityCmd.Flags().BoolVar(&onlyServer, "server", false, "Only check the database schema")
	RootCmd.AddCommand(integrityCmd)
}
