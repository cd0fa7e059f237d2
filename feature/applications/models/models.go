package models

import (
	"time"
)

// Application represents one row of the 'job_applications' table.
type Application struct {
	ID           uint       `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	ExternalID   string     `gorm:"column:external_id;size:255;uniqueIndex;not null" json:"id"`
	JobTitle     *string    `gorm:"column:job_title;size:255" json:"job_title"`
	CompanyName  string     `gorm:"column:company_name;size:255;not null" json:"company_name"`
	JobURL       *string    `gorm:"column:job_url;size:512" json:"job_url"`
	AppliedDate  *time.Time `gorm:"column:applied_date" json:"applied_date"`
	Status       *string    `gorm:"column:status;size:50" json:"status"`
	StatusDate   *time.Time `gorm:"column:status_date" json:"status_date"`
	Archived     bool       `gorm:"column:archived;not null;default:false" json:"archived"`
	DateArchived *time.Time `gorm:"column:date_archived" json:"date_archived"`
	Notes        *string    `gorm:"column:notes;type:text" json:"notes"`
	CreatedAt    time.Time  `gorm:"column:created_at" json:"created_at"`
}

// TableName overrides the table name.
func (Application) TableName() string {
	return "job_applications"
}

// ColumnPreference stores the visibility of one display column.
type ColumnPreference struct {
	Column  string `gorm:"column:column_name;primaryKey;size:64" json:"column"`
	Visible bool   `gorm:"column:visible;not null" json:"visible"`
}

// TableName overrides the table name.
func (ColumnPreference) TableName() string {
	return "column_preferences"
}

// Display column labels in listing order.
const (
	ColumnJobTitle     = "Job Title"
	ColumnCompany      = "Company"
	ColumnStatus       = "Status"
	ColumnAppliedDate  = "Applied Date"
	ColumnStatusDate   = "Status Date"
	ColumnArchived     = "Archived"
	ColumnDateArchived = "Date Archived"
	ColumnNotes        = "Notes"
)

// DisplayColumns is the fixed order of the listing columns.
var DisplayColumns = []string{
	ColumnJobTitle,
	ColumnCompany,
	ColumnStatus,
	ColumnAppliedDate,
	ColumnStatusDate,
	ColumnArchived,
	ColumnDateArchived,
	ColumnNotes,
}

// DefaultVisibleColumns returns a fresh copy of the default visibility map.
func DefaultVisibleColumns() map[string]bool {
	return map[string]bool{
		ColumnJobTitle:     true,
		ColumnCompany:      true,
		ColumnStatus:       true,
		ColumnAppliedDate:  true,
		ColumnStatusDate:   false,
		ColumnArchived:     false,
		ColumnDateArchived: false,
		ColumnNotes:        true,
	}
}

// IsDisplayColumn reports whether name is a known display column.
func IsDisplayColumn(name string) bool {
	for _, c := range DisplayColumns {
		if c == name {
			return true
		}
	}
	return false
}

// Record is one application materialized for display.
type Record struct {
	JobTitle     string     `json:"job_title"`
	Company      string     `json:"company"`
	Status       string     `json:"status"`
	AppliedDate  *time.Time `json:"applied_date"`
	StatusDate   *time.Time `json:"status_date"`
	Archived     bool       `json:"archived"`
	DateArchived *time.Time `json:"date_archived"`
	Notes        string     `json:"notes"`
}

// ToRecord converts a stored application to its display form.
func (a Application) ToRecord() Record {
	return Record{
		JobTitle:     deref(a.JobTitle),
		Company:      a.CompanyName,
		Status:       deref(a.Status),
		AppliedDate:  a.AppliedDate,
		StatusDate:   a.StatusDate,
		Archived:     a.Archived,
		DateArchived: a.DateArchived,
		Notes:        deref(a.Notes),
	}
}

// Cell returns the display text of a column. Absent dates render empty.
func (r Record) Cell(column string) string {
	switch column {
	case ColumnJobTitle:
		return r.JobTitle
	case ColumnCompany:
		return r.Company
	case ColumnStatus:
		return r.Status
	case ColumnAppliedDate:
		return formatDate(r.AppliedDate)
	case ColumnStatusDate:
		return formatDate(r.StatusDate)
	case ColumnArchived:
		if r.Archived {
			return "true"
		}
		return "false"
	case ColumnDateArchived:
		return formatDate(r.DateArchived)
	case ColumnNotes:
		return r.Notes
	}
	return ""
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 {
		return t.Format("2006-01-02")
	}
	return t.Format("2006-01-02 15:04:05")
}
