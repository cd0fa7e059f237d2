package database

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ColumnInfo describes a single column as reported by the database.
type ColumnInfo struct {
	Field    string
	Type     string
	Nullable bool
	Key      string
}

// GetTableColumns retrieves the column definitions for a given table.
// A missing table yields an empty slice on SQLite and an error on MySQL.
func GetTableColumns(db *gorm.DB, tableName string) ([]ColumnInfo, error) {
	if db.Dialector.Name() == DriverSQLite {
		type sqliteColumn struct {
			Cid       int
			Name      string
			Type      string
			Notnull   int
			DfltValue *string
			Pk        int
		}
		var rows []sqliteColumn
		if err := db.Raw(fmt.Sprintf("PRAGMA table_info('%s')", tableName)).Scan(&rows).Error; err != nil {
			return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
		}
		columns := make([]ColumnInfo, 0, len(rows))
		for _, col := range rows {
			key := ""
			if col.Pk > 0 {
				key = "PRI"
			}
			columns = append(columns, ColumnInfo{
				Field:    strings.ToLower(col.Name),
				Type:     strings.ToLower(col.Type),
				Nullable: col.Notnull == 0,
				Key:      key,
			})
		}
		return columns, nil
	}

	type mysqlColumn struct {
		Field string
		Type  string
		Null  string
		Key   string
	}
	var rows []mysqlColumn
	if err := db.Raw(fmt.Sprintf("SHOW COLUMNS FROM `%s`", tableName)).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
	}
	columns := make([]ColumnInfo, 0, len(rows))
	for _, col := range rows {
		columns = append(columns, ColumnInfo{
			Field:    strings.ToLower(col.Field),
			Type:     strings.ToLower(col.Type),
			Nullable: strings.EqualFold(col.Null, "YES"),
			Key:      col.Key,
		})
	}
	return columns, nil
}

// MissingColumns returns the expected column names that are absent from the table.
func MissingColumns(db *gorm.DB, tableName string, expected []string) ([]string, error) {
	columns, err := GetTableColumns(db, tableName)
	if err != nil {
		return nil, err
	}
	present := make(map[string]struct{}, len(columns))
	for _, col := range columns {
		present[col.Field] = struct{}{}
	}
	var missing []string
	for _, name := range expected {
		if _, ok := present[strings.ToLower(name)]; !ok {
			missing = append(missing, name)
		}
	}
	return missing, nil
}
