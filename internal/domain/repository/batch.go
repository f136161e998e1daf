package repository

import (
	"context"

	"landshare/internal/domain/entity"
)

// MaxAtomicBatchSize is the largest number of writes one atomic batch may carry.
const MaxAtomicBatchSize = 500

// BatchWriter stages partial updates for a later commit.
type BatchWriter interface {
	UpdateInvestmentRequest(id string, patch entity.RequestPatch)
	UpdateUserProfile(id string, patch entity.UserPatch)
	// Len returns the number of staged writes.
	Len() int
}

// AtomicBatch commits every staged write or none of them.
// Staging more than MaxAtomicBatchSize writes makes Commit fail.
type AtomicBatch interface {
	BatchWriter
	Commit(ctx context.Context) error
}

// WriteFailure names a staged write that did not land.
type WriteFailure struct {
	ID  string
	Err error
}

// BestEffortBatch commits each staged write independently.
type BestEffortBatch interface {
	BatchWriter
	// Commit returns one entry per write that failed; an empty result means everything landed.
	Commit(ctx context.Context) []WriteFailure
}

// BatchFactory creates batches bound to the entity store.
type BatchFactory interface {
	NewAtomicBatch() AtomicBatch
	NewBestEffortBatch() BestEffortBatch
}
