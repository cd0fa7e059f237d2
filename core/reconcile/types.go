package reconcile

import (
	"errors"

	"go.uber.org/zap"
)

// ErrBatchRejected is returned when a batch could not be persisted.
// Nothing from the batch is committed when this error is returned.
var ErrBatchRejected = errors.New("batch rejected")

// Row is one raw input row: column label to raw cell value.
type Row = map[string]any

// Item is a normalized record produced by an Adapter.
type Item any

// ActionType represents what the reconciler decided for one input row.
type ActionType string

const (
	// ActionInsert inserts a new record.
	ActionInsert ActionType = "insert"
	// ActionSkipExisting skips a row whose key is already stored.
	ActionSkipExisting ActionType = "skip_existing"
	// ActionSkipDuplicate skips a row whose key appeared earlier in the same batch.
	ActionSkipDuplicate ActionType = "skip_duplicate"
	// ActionInvalid marks a new row that fails validation; it rejects the batch.
	ActionInvalid ActionType = "invalid"
)

// Action represents the planned outcome for one input row.
type Action struct {
	// Type specifies the outcome.
	Type ActionType `json:"type"`

	// Key is the record identifier.
	Key string `json:"key"`

	// Row is the zero-based position of the row in the input batch.
	Row int `json:"row"`

	// Reason explains skips and validation failures.
	Reason string `json:"reason,omitempty"`

	// Item holds the normalized record for inserts.
	Item Item `json:"-"`

	// Err holds the validation error for ActionInvalid.
	Err error `json:"-"`
}

// ReconcilePlan contains the per-row actions for one batch.
type ReconcilePlan struct {
	// Actions are in input order.
	Actions []Action `json:"actions"`

	// Summary provides aggregate counts.
	Summary PlanSummary `json:"summary"`
}

// PlanSummary provides aggregate statistics for a reconcile plan.
type PlanSummary struct {
	// TotalRows is the number of input rows.
	TotalRows int `json:"total_rows"`

	// Inserts counts rows planned for insertion.
	Inserts int `json:"inserts"`

	// Existing counts rows skipped because the key is already stored.
	Existing int `json:"existing"`

	// Duplicates counts rows skipped because the key repeats within the batch.
	Duplicates int `json:"duplicates"`

	// Invalid counts new rows failing validation.
	Invalid int `json:"invalid"`
}

// ReconcileOptions controls apply behavior.
type ReconcileOptions struct {
	// DryRun prevents any write if true.
	DryRun bool
}

// Spec bundles the adapter with the collaborators used while reconciling.
type Spec struct {
	// Adapter provides model-specific reconciliation logic.
	Adapter Adapter

	// Logger receives per-row decisions at debug level. Nil disables logging.
	Logger *zap.Logger
}

func (s *Spec) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

// FirstInvalid returns the first invalid action of the plan, if any.
func (p *ReconcilePlan) FirstInvalid() (Action, bool) {
	for _, a := range p.Actions {
		if a.Type == ActionInvalid {
			return a, true
		}
	}
	return Action{}, false
}
