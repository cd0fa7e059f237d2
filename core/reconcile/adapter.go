package reconcile

import (
	"context"

	"gorm.io/gorm"
)

// Adapter defines the interface for model-specific reconciliation logic.
// Each adapter implements how raw rows become records, how records are keyed,
// and how the record store is queried and written for one table.
type Adapter interface {
	// Name returns the unique name of this adapter (e.g., "applications").
	Name() string

	// Normalize converts a raw row into the adapter's record type.
	// It must not fail: malformed cells degrade to empty values.
	Normalize(row Row) Item

	// ExtractKey returns the stable identifier of a normalized record.
	// The key is what deduplicates rows against the store and within a batch.
	ExtractKey(item Item) string

	// Validate reports whether a record may be persisted.
	// Only records planned for insertion are validated.
	Validate(item Item) error

	// LoadIndex loads the set of keys already present in the store.
	// Implementations should select the key column only.
	LoadIndex(ctx context.Context, db *gorm.DB) (map[string]struct{}, error)

	// Exists performs a point lookup for a single key.
	// It is called inside the import transaction right before each insert.
	Exists(ctx context.Context, db *gorm.DB, key string) (bool, error)

	// Insert persists a single record using the given (transactional) handle.
	Insert(ctx context.Context, db *gorm.DB, item Item) error
}
