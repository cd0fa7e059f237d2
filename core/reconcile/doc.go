// Package reconcile provides the generic engine that merges a batch of raw rows
// into a record store without creating duplicates.
//
// # Architecture
//
// The reconcile system consists of two parts:
//
// 1. Engine: builds a plan for a batch. Each row is normalized, keyed and classified
//    as an insert, a skip (key already stored, or repeated earlier in the batch) or
//    an invalid row. Planning never writes.
//
// 2. Adapter: model-specific logic that knows how to normalize a row, derive its
//    key, validate it, and read or write the backing table.
//
// # Atomicity
//
// ApplyPlan runs every insert of a batch inside one database transaction. Each
// insert is preceded by an existence check on the transactional handle; the unique
// constraint on the key column is the final guard. Any failure rolls the whole
// batch back and is reported as ErrBatchRejected. Skips are not errors.
//
// # Usage Example
//
//	spec := &reconcile.Spec{Adapter: applications.NewAdapter(), Logger: log}
//
//	// Dry run: plan only
//	plan, err := reconcile.BuildPlan(ctx, spec, db, rows)
//
//	// Plan and apply
//	plan, inserted, err := reconcile.ReconcileAndApply(ctx, spec, db, rows, reconcile.ReconcileOptions{})
//	if errors.Is(err, reconcile.ErrBatchRejected) {
//	    // nothing from this batch was stored
//	}
package reconcile
