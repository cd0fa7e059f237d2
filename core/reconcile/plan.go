package reconcile

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ApplyPlan executes the insert actions of a plan as one atomic unit.
// Each insert re-checks existence inside the transaction before writing; a store
// rejection (including a unique violation) rolls the whole batch back and is
// returned wrapped in ErrBatchRejected. Returns the number of records inserted.
func ApplyPlan(ctx context.Context, spec *Spec, db *gorm.DB, plan *ReconcilePlan, opts ReconcileOptions) (int, error) {
	if opts.DryRun {
		return 0, nil
	}

	if invalid, ok := plan.FirstInvalid(); ok {
		return 0, fmt.Errorf("%w: row %d (%s): %w", ErrBatchRejected, invalid.Row, invalid.Key, invalid.Err)
	}

	if plan.Summary.Inserts == 0 {
		return 0, nil
	}

	log := spec.logger()
	inserted := 0

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, action := range plan.Actions {
			if action.Type != ActionInsert {
				continue
			}

			exists, err := spec.Adapter.Exists(ctx, tx, action.Key)
			if err != nil {
				return fmt.Errorf("failed to check key %s: %w", action.Key, err)
			}
			if exists {
				log.Debug("Skipping row stored since planning", zap.String("key", action.Key))
				continue
			}

			if err := spec.Adapter.Insert(ctx, tx, action.Item); err != nil {
				return fmt.Errorf("failed to insert key %s: %w", action.Key, err)
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBatchRejected, err)
	}

	return inserted, nil
}

// ReconcileAndApply is a convenience wrapper that plans and applies a batch.
// It returns the plan, the number of records inserted, and any error.
func ReconcileAndApply(ctx context.Context, spec *Spec, db *gorm.DB, rows []Row, opts ReconcileOptions) (*ReconcilePlan, int, error) {
	plan, err := BuildPlan(ctx, spec, db, rows)
	if err != nil {
		return nil, 0, err
	}

	inserted, err := ApplyPlan(ctx, spec, db, plan, opts)
	return plan, inserted, err
}
