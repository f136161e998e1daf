package document

import (
	"context"
	"time"

	"landshare/internal/domain/entity"
	domainerrors "landshare/internal/domain/errors"
	"landshare/internal/domain/repository"
	"landshare/internal/infra/persistence/docstore"

	"landshare/internal/errors"
)

// now is the clock used for store-side timestamps.
var now = func() time.Time { return time.Now().UTC() }

// queueRepository implements the repository.QueueRepository interface.
type queueRepository struct {
	store docstore.Store
}

// NewQueueRepository is the constructor for queueRepository.
func NewQueueRepository(store docstore.Store) repository.QueueRepository {
	return &queueRepository{store: store}
}

func (repo *queueRepository) Create(ctx context.Context, item *entity.QueueItem) error {
	if item.ID == "" {
		item.ID = repo.store.NewID(CollectionAdminQueue)
	}

	if err := repo.store.Create(ctx, CollectionAdminQueue, item.ID, encodeQueueItem(item)); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to create queue item")
	}

	return nil
}

func (repo *queueRepository) FindByID(ctx context.Context, id string) (*entity.QueueItem, error) {
	doc, err := repo.store.Get(ctx, CollectionAdminQueue, id)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, repository.ErrQueueItemNotFound
		}

		return nil, domainerrors.NewStoreExecuteError(err, "failed to find queue item")
	}

	return decodeQueueItem(id, doc), nil
}

func (repo *queueRepository) HasActiveForReference(ctx context.Context, referenceID string) (bool, error) {
	q := docstore.Query{Collection: CollectionAdminQueue, Limit: 1}.
		Where("reference_id", docstore.OpEqual, referenceID).
		Where("status", docstore.OpIn, []any{
			string(entity.QueueItemStatusPending),
			string(entity.QueueItemStatusProcessing),
		})

	snaps, err := queryEitherSpelling(ctx, repo.store, q)
	if err != nil {
		return false, domainerrors.NewStoreExecuteError(err, "failed to check active queue items")
	}

	return len(snaps) > 0, nil
}

func (repo *queueRepository) MarkProcessing(ctx context.Context, id, adminID string) error {
	at := now()
	w := newWriter()
	w.str("status", string(entity.QueueItemStatusProcessing))
	w.str("assigned_to", adminID)
	w.timestamp("started_at", at)
	w.timestamp("updated_at", at)

	return repo.update(ctx, id, w)
}

func (repo *queueRepository) MarkCompleted(ctx context.Context, id string) error {
	at := now()
	w := newWriter()
	w.str("status", string(entity.QueueItemStatusCompleted))
	w.timestamp("completed_at", at)
	w.timestamp("updated_at", at)

	return repo.update(ctx, id, w)
}

func (repo *queueRepository) MarkFailed(ctx context.Context, id, message string) error {
	w := newWriter()
	w.str("status", string(entity.QueueItemStatusFailed))
	w.str("error_message", message)
	w.timestamp("updated_at", now())

	return repo.update(ctx, id, w)
}

// ListPending walks the priority tiers in order, oldest first within a tier.
func (repo *queueRepository) ListPending(ctx context.Context, limit int) ([]*entity.QueueItem, error) {
	items := make([]*entity.QueueItem, 0)
	for _, priority := range entity.QueuePriorities {
		remaining := 0
		if limit > 0 {
			remaining = limit - len(items)
			if remaining <= 0 {
				break
			}
		}

		q := docstore.Query{Collection: CollectionAdminQueue, Limit: remaining}.
			Where("status", docstore.OpEqual, string(entity.QueueItemStatusPending)).
			Where("priority", docstore.OpEqual, string(priority)).
			OrderBy("created_at", docstore.Asc)

		tier, err := repo.list(ctx, q)
		if err != nil {
			return nil, err
		}
		items = append(items, tier...)
	}

	return items, nil
}

func (repo *queueRepository) ListAll(ctx context.Context) ([]*entity.QueueItem, error) {
	return repo.list(ctx, docstore.Query{Collection: CollectionAdminQueue})
}

func (repo *queueRepository) list(ctx context.Context, q docstore.Query) ([]*entity.QueueItem, error) {
	snaps, err := queryEitherSpelling(ctx, repo.store, q)
	if err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "failed to list queue items")
	}

	items := make([]*entity.QueueItem, 0, len(snaps))
	for _, snap := range snaps {
		items = append(items, decodeQueueItem(snap.ID, snap.Data))
	}

	return items, nil
}

func (repo *queueRepository) update(ctx context.Context, id string, w writer) error {
	if err := repo.store.Update(ctx, CollectionAdminQueue, id, w.doc()); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return repository.ErrQueueItemNotFound
		}

		return domainerrors.NewStoreExecuteError(err, "failed to update queue item")
	}

	return nil
}
