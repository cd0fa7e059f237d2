// Package models defines the persisted job application record, the column
// preference record and the display projection used by listings.
package models
