// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports a development mode (debug level,
// ISO8601 timestamps) and a production mode, with either JSON or console encoding.
//
// # Context Awareness
//
// The WithRayID helper extracts the RayID from a Fiber context and attaches it to the
// log entry, so every line written while handling an import request can be correlated.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("Sync finished", zap.Int("inserted", n))
package logger
