package reconcile

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BuildPlan classifies every row of a batch without writing anything.
// It loads the stored key index once, then walks the rows in input order:
// stored keys are skipped, keys repeated within the batch are skipped after their
// first occurrence, and the remaining rows are validated and planned for insertion.
func BuildPlan(ctx context.Context, spec *Spec, db *gorm.DB, rows []Row) (*ReconcilePlan, error) {
	index, err := spec.Adapter.LoadIndex(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s index: %w", spec.Adapter.Name(), err)
	}

	log := spec.logger()
	plan := &ReconcilePlan{
		Actions: make([]Action, 0, len(rows)),
	}
	plan.Summary.TotalRows = len(rows)

	seen := make(map[string]int, len(rows))
	for i, row := range rows {
		item := spec.Adapter.Normalize(row)
		key := spec.Adapter.ExtractKey(item)
		action := Action{Key: key, Row: i}

		if _, stored := index[key]; stored {
			action.Type = ActionSkipExisting
			action.Reason = "already stored"
			plan.Summary.Existing++
		} else if first, dup := seen[key]; dup {
			action.Type = ActionSkipDuplicate
			action.Reason = fmt.Sprintf("same key as row %d", first)
			plan.Summary.Duplicates++
		} else if err := spec.Adapter.Validate(item); err != nil {
			seen[key] = i
			action.Type = ActionInvalid
			action.Reason = err.Error()
			action.Err = err
			plan.Summary.Invalid++
		} else {
			seen[key] = i
			action.Type = ActionInsert
			action.Item = item
			plan.Summary.Inserts++
		}

		log.Debug("Planned row",
			zap.Int("row", i),
			zap.String("key", key),
			zap.String("action", string(action.Type)),
		)
		plan.Actions = append(plan.Actions, action)
	}

	return plan, nil
}
