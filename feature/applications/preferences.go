package applications

import (
	"context"
	"fmt"

	"job-tracker/feature/applications/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LoadPreferences returns the column visibility map: stored values merged over
// the defaults. Unknown stored columns are ignored.
func LoadPreferences(ctx context.Context, db *gorm.DB) (map[string]bool, error) {
	var stored []models.ColumnPreference
	if err := db.WithContext(ctx).Find(&stored).Error; err != nil {
		return nil, fmt.Errorf("failed to load column preferences: %w", err)
	}

	prefs := models.DefaultVisibleColumns()
	for _, p := range stored {
		if _, ok := prefs[p.Column]; ok {
			prefs[p.Column] = p.Visible
		}
	}
	return prefs, nil
}

// SavePreferences persists the visibility of every given column.
// All columns must be known display columns; nothing is written otherwise.
func SavePreferences(ctx context.Context, db *gorm.DB, prefs map[string]bool) error {
	rows := make([]models.ColumnPreference, 0, len(prefs))
	for _, column := range models.DisplayColumns {
		if visible, ok := prefs[column]; ok {
			rows = append(rows, models.ColumnPreference{Column: column, Visible: visible})
		}
	}
	if len(rows) != len(prefs) {
		for column := range prefs {
			if !models.IsDisplayColumn(column) {
				return fmt.Errorf("%w: %q", ErrUnknownColumn, column)
			}
		}
	}
	if len(rows) == 0 {
		return nil
	}

	err := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "column_name"}},
		DoUpdates: clause.AssignmentColumns([]string{"visible"}),
	}).Create(&rows).Error
	if err != nil {
		return fmt.Errorf("failed to save column preferences: %w", err)
	}
	return nil
}

// VisibleColumns returns the visible columns of prefs in display order.
func VisibleColumns(prefs map[string]bool) []string {
	visible := make([]string, 0, len(models.DisplayColumns))
	for _, column := range models.DisplayColumns {
		if prefs[column] {
			visible = append(visible, column)
		}
	}
	return visible
}
