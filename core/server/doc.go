// Package server holds the HTTP server configuration.
//
// While the start command handles the server startup, this package defines the
// configuration structure for the listening port, the optional API key and the
// maximum upload size accepted for CSV imports.
package server
