// Package applications implements the job application tracker feature.
//
// It syncs Simplify.jobs CSV exports into the record store through the
// core/reconcile engine and serves the stored applications as a searchable,
// column-configurable listing.
//
// # Components
//
//   - Service: imports (serialized, one transaction per batch), listing, search
//     and column preferences. Imported CSV files can be archived to the bucket.
//   - Handler: HTTP endpoints.
//   - Loader: registers the feature and creates its tables.
//
// # HTTP Endpoints
//
//   - POST /applications/import : Import a CSV upload or a JSON array of rows.
//   - POST /applications/import/object?key= : Import a CSV from the archive bucket.
//   - GET /applications?q=&mode= : List applications, optionally filtered.
//   - GET /applications/table?q=&mode=&all= : Listing projected to visible columns.
//   - GET /applications/:id : Get one application by external identifier.
//   - GET /preferences, PUT /preferences : Column visibility.
package applications
