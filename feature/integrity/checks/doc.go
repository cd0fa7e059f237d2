// Package checks holds the individual integrity checks: the record store
// schema against the gorm models, and the import archive bucket layout.
package checks
