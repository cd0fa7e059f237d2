package checks

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"job-tracker/core/database"

	"gorm.io/gorm"
)

// Check statuses.
const (
	StatusOK       = "ok"
	StatusError    = "error"
	StatusMissing  = "missing"
	StatusDisabled = "disabled"
)

// SchemaReport is the result of a schema integrity check.
type SchemaReport struct {
	Matched bool                   `json:"matched"`
	Tables  map[string]TableReport `json:"tables"`
	Errors  []string               `json:"errors"`
}

// TableReport describes one table compared to its model.
type TableReport struct {
	MissingColumns []string `json:"missing_columns"`
	Status         string   `json:"status"` // "ok", "missing", "error"
}

// CheckSchema verifies that every model's table exists with all of its columns.
// The gorm models are the source of truth.
func CheckSchema(db *gorm.DB, models ...any) (*SchemaReport, error) {
	if db == nil {
		return nil, errors.New("database connection is nil")
	}

	report := &SchemaReport{
		Matched: true,
		Tables:  make(map[string]TableReport, len(models)),
		Errors:  []string{},
	}

	for _, model := range models {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(model); err != nil {
			return nil, fmt.Errorf("failed to parse model %T: %w", model, err)
		}
		table := stmt.Schema.Table

		if !db.Migrator().HasTable(table) {
			report.Tables[table] = TableReport{MissingColumns: []string{}, Status: StatusMissing}
			report.Matched = false
			continue
		}

		missing, err := database.MissingColumns(db, table, stmt.Schema.DBNames)
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("Failed to inspect table %s: %v", table, err))
			report.Tables[table] = TableReport{MissingColumns: []string{}, Status: StatusError}
			report.Matched = false
			continue
		}

		if missing == nil {
			missing = []string{}
		}
		tbl := TableReport{MissingColumns: missing, Status: StatusOK}
		if len(missing) > 0 {
			tbl.Status = StatusError
			report.Matched = false
		}
		report.Tables[table] = tbl
	}

	return report, nil
}

// Summary renders a one-line description of the report.
func (r *SchemaReport) Summary() string {
	if r.Matched {
		return "schema matches"
	}
	tables := make([]string, 0, len(r.Tables))
	for table := range r.Tables {
		tables = append(tables, table)
	}
	sort.Strings(tables)

	var parts []string
	for _, table := range tables {
		tbl := r.Tables[table]
		switch tbl.Status {
		case StatusMissing:
			parts = append(parts, table+": table missing")
		case StatusError:
			if len(tbl.MissingColumns) > 0 {
				parts = append(parts, table+": missing "+strings.Join(tbl.MissingColumns, ", "))
			} else {
				parts = append(parts, table+": inspection failed")
			}
		}
	}
	return strings.Join(parts, "; ")
}
