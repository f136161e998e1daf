package repository

import (
	"context"

	"landshare/internal/domain/entity"
)

// QueueRepository defines the interface for admin queue persistence.
type QueueRepository interface {
	// Create persists a new item, assigning an ID when empty.
	Create(ctx context.Context, item *entity.QueueItem) error

	FindByID(ctx context.Context, id string) (*entity.QueueItem, error)

	// HasActiveForReference reports whether a pending or processing item points at referenceID.
	HasActiveForReference(ctx context.Context, referenceID string) (bool, error)

	// MarkProcessing claims an item for adminID.
	MarkProcessing(ctx context.Context, id, adminID string) error

	// MarkCompleted finishes an item successfully.
	MarkCompleted(ctx context.Context, id string) error

	// MarkFailed finishes an item with an error message.
	MarkFailed(ctx context.Context, id, message string) error

	// ListPending lists pending items, high priority first then oldest first.
	ListPending(ctx context.Context, limit int) ([]*entity.QueueItem, error)

	// ListAll returns every queue item.
	ListAll(ctx context.Context) ([]*entity.QueueItem, error)
}
