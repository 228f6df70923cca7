// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM to configure MySQL connections (production) and
// SQLite connections (tests, local runs) based on the application's configuration.
//
// # Connect
//
// Connect establishes the connection, applies pool settings and verifies it with a
// ping bounded by the configured timeout.
//
// # Schema Inspection
//
// GetTableColumns lists a table's columns for both dialects. The integrity feature
// uses it to verify that the inventory tables carry the columns the store models expect.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "interfaces")
package database
