// Package database handles the record store connection and schema inspection.
//
// It wraps GORM to open either a local SQLite file (the default for a single-user
// tracker) or a MySQL database, based on the application's configuration.
//
// # Connect
//
// Connect opens the store, applies pool settings suited to the driver and verifies
// the connection with a ping bounded by the configured timeout. Unique constraint
// violations are translated to gorm.ErrDuplicatedKey for every driver.
//
// # Schema Inspection
//
// GetTableColumns and MissingColumns read the live column list of a table. The
// integrity feature uses them to confirm the job_applications table carries every
// column the reconciler writes.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	missing, err := database.MissingColumns(db, "job_applications", []string{"external_id"})
package database
