// Package history persists the per-owner audit trail of past analyses.
// Entries are append-only: created once, never mutated, deleted only by
// their owner.
package history

import (
	"context"
	"errors"

	"credcheck/types"
)

// ErrNotFound is returned when an entry does not exist or belongs to a
// different owner. The two cases are deliberately indistinguishable so a
// caller cannot probe for another owner's entries.
var ErrNotFound = errors.New("history entry not found")

// Store is the audit recorder contract.
type Store interface {
	// Record persists a new entry, assigning its ID and CreatedAt.
	Record(ctx context.Context, entry types.HistoryEntry) (types.HistoryEntry, error)
	// List returns a one-shot snapshot of the owner's entries,
	// newest first.
	List(ctx context.Context, ownerID string) ([]types.HistoryEntry, error)
	// Delete removes the entry if it exists and is owned by ownerID;
	// otherwise it returns ErrNotFound.
	Delete(ctx context.Context, ownerID, entryID string) error
}
