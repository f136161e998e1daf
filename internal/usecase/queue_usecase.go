package usecase

import (
	"context"
	"time"

	"landshare/internal/domain/entity"
)

// QueueItemHandler performs the type-specific work of a claimed queue item.
type QueueItemHandler interface {
	Handle(ctx context.Context, item *entity.QueueItem, adminID string) error
}

// QueueItemHandlerFunc adapts a function to QueueItemHandler.
type QueueItemHandlerFunc func(ctx context.Context, item *entity.QueueItem, adminID string) error

// Handle calls f.
func (f QueueItemHandlerFunc) Handle(ctx context.Context, item *entity.QueueItem, adminID string) error {
	return f(ctx, item, adminID)
}

// QueueUsecase defines the admin work queue.
type QueueUsecase interface {
	// CalculatePriority scores a request at the given instant.
	CalculatePriority(request *entity.InvestmentRequest, now time.Time) entity.QueuePriority

	// AutoQueueRequests enqueues recent pending requests that are not queued yet and returns how many were added.
	AutoQueueRequests(ctx context.Context) (int, error)

	// ProcessBatch processes items chunk by chunk, concurrently within a chunk.
	ProcessBatch(ctx context.Context, items []*entity.QueueItem, adminID string, batchSize int) (*entity.BulkResult, error)

	// ListPendingItems returns pending items, high priority first then oldest first.
	ListPendingItems(ctx context.Context, limit int) ([]*entity.QueueItem, error)

	GetQueueStats(ctx context.Context) (*entity.QueueStats, error)

	// RegisterHandler installs the handler for one item type, replacing any previous one.
	RegisterHandler(itemType entity.QueueItemType, handler QueueItemHandler)
}
