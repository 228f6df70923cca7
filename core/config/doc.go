// Package config provides configuration management for the collector.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file. Defaults come from the `default` struct tags of each section.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP port, API key, body limit
//   - Database: inventory database connection (MySQL, SQLite)
//   - Storage: S3/MinIO credentials and bucket used when templates live in a bucket
//   - Log: Logging level and format
//   - Collector: template source, rule index, MTU ceiling, interface naming patterns
//     and the platform/role assigned to synced virtual machines
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Collector.IndexFile)
package config
