package storage

import (
	"path"
	"time"
)

// Config holds configuration for the import archive.
type Config struct {
	// Enabled turns on archiving of imported CSV files and imports from the bucket.
	Enabled   bool   `mapstructure:"enabled" default:"false"`
	Endpoint  string `mapstructure:"endpoint" default:"localhost:9000"`
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	UseSSL    bool   `mapstructure:"use_ssl" default:"false"`
	// Bucket holds archived exports.
	Bucket string `mapstructure:"bucket" default:"job-tracker"`
	// Prefix is the key prefix under which imports are archived.
	Prefix         string `mapstructure:"prefix" default:"imports"`
	Region         string `mapstructure:"region" default:""`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" default:"30"`
}

// Timeout returns the dial and handshake timeout, defaulting to 30s.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return defaultTimeout
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// ArchiveKey is the object key an import batch is archived under.
func (c Config) ArchiveKey(batchID string) string {
	return path.Join(c.Prefix, batchID+".csv")
}
