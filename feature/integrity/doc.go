// Package integrity provides health checks for the tracker's infrastructure.
//
// # Checks Provided
//
//   - Schema: Validates that the record store tables carry every column of the
//     application and column preference models.
//   - Archive: Checks that the import archive bucket and its prefix exist, and
//     can create them (?fix=true). Reported as disabled when storage is off.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/schema : Runs the schema check.
//   - GET /integrity/archive : Runs the archive check (supports ?fix=true).
package integrity
