package postgres

import (
	"context"
	"sync"

	"landshare/internal/infra/persistence/docstore"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

const bestEffortConcurrency = 8

type atomicBatch struct {
	store  *Store
	writes []docstore.Write
}

func (b *atomicBatch) Update(collection, id string, fields docstore.Document) {
	b.writes = append(b.writes, docstore.Write{Collection: collection, ID: id, Fields: fields})
}

func (b *atomicBatch) Len() int {
	return len(b.writes)
}

// Commit runs every write in one transaction; a missing row rolls the batch back.
func (b *atomicBatch) Commit(ctx context.Context) error {
	if len(b.writes) > docstore.MaxAtomicWrites {
		return errors.Wrapf(docstore.ErrBatchTooLarge, "%d writes", len(b.writes))
	}

	return b.store.RunTransaction(ctx, func(tx docstore.Tx) error {
		for _, w := range b.writes {
			if err := tx.Update(w.Collection, w.ID, w.Fields); err != nil {
				return err
			}
		}

		return nil
	})
}

type bestEffortBatch struct {
	store  *Store
	writes []docstore.Write
}

func (b *bestEffortBatch) Update(collection, id string, fields docstore.Document) {
	b.writes = append(b.writes, docstore.Write{Collection: collection, ID: id, Fields: fields})
}

func (b *bestEffortBatch) Len() int {
	return len(b.writes)
}

// Commit issues independent updates with bounded concurrency.
func (b *bestEffortBatch) Commit(ctx context.Context) []docstore.WriteError {
	var (
		mu       sync.Mutex
		failures []docstore.WriteError
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(bestEffortConcurrency)

	for _, w := range b.writes {
		g.Go(func() error {
			if err := b.store.Update(gctx, w.Collection, w.ID, w.Fields); err != nil {
				mu.Lock()
				failures = append(failures, docstore.WriteError{Collection: w.Collection, ID: w.ID, Err: err})
				mu.Unlock()
			}

			// Per-write failures never cancel the remaining writes.
			return nil
		})
	}
	_ = g.Wait()

	return failures
}
