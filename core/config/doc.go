// Package config provides configuration management for the job tracker.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file in the working directory.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Database: record store driver and connection details (SQLite by default)
//   - Storage: optional S3/MinIO archive for imported CSV files
//   - Log: Logging level and format
//
// Defaults are declared on the partial config structs with a `default` tag and can be
// overridden with SECTION_KEY environment variables (e.g. DATABASE_NAME=tracker.db).
// LoadConfig validates the result with ozzo-validation: an unknown database driver,
// an unknown log format or an enabled archive without a bucket fail early.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Database.Name)
package config
