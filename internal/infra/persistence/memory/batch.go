package memory

import (
	"context"

	"landshare/internal/infra/persistence/docstore"

	"github.com/pkg/errors"
)

type atomicBatch struct {
	store  *Store
	writes []docstore.Write
}

func (b *atomicBatch) Update(collection, id string, fields docstore.Document) {
	b.writes = append(b.writes, docstore.Write{Collection: collection, ID: id, Fields: fields.Clone()})
}

func (b *atomicBatch) Len() int {
	return len(b.writes)
}

// Commit applies every write or, when any target is missing or faulted, none.
func (b *atomicBatch) Commit(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}
	if len(b.writes) > docstore.MaxAtomicWrites {
		return errors.Wrapf(docstore.ErrBatchTooLarge, "%d writes", len(b.writes))
	}

	s := b.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, w := range b.writes {
		if err := s.checkFault(w.Collection, w.ID); err != nil {
			return err
		}
		if _, ok := s.collections[w.Collection][w.ID]; !ok {
			return errors.Wrapf(docstore.ErrNotFound, "%s/%s", w.Collection, w.ID)
		}
	}

	for _, w := range b.writes {
		if err := s.merge(w.Collection, w.ID, w.Fields); err != nil {
			return err
		}
	}

	return nil
}

type bestEffortBatch struct {
	store  *Store
	writes []docstore.Write
}

func (b *bestEffortBatch) Update(collection, id string, fields docstore.Document) {
	b.writes = append(b.writes, docstore.Write{Collection: collection, ID: id, Fields: fields.Clone()})
}

func (b *bestEffortBatch) Len() int {
	return len(b.writes)
}

// Commit applies each write on its own and reports the ones that failed.
func (b *bestEffortBatch) Commit(ctx context.Context) []docstore.WriteError {
	var failures []docstore.WriteError

	for _, w := range b.writes {
		if err := b.store.Update(ctx, w.Collection, w.ID, w.Fields); err != nil {
			failures = append(failures, docstore.WriteError{Collection: w.Collection, ID: w.ID, Err: err})
		}
	}

	return failures
}
