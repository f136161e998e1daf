package firestore

import (
	"context"
	"log/slog"

	"landshare/internal/infra/persistence/docstore"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

// atomicBatch commits through a transaction so a missing target rolls back every write.
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

// bestEffortBatch streams writes through a BulkWriter and collects per-write results.
type bestEffortBatch struct {
	client *firestore.Client
	logger *slog.Logger
	writes []docstore.Write
}

func (b *bestEffortBatch) Update(collection, id string, fields docstore.Document) {
	b.writes = append(b.writes, docstore.Write{Collection: collection, ID: id, Fields: fields})
}

func (b *bestEffortBatch) Len() int {
	return len(b.writes)
}

func (b *bestEffortBatch) Commit(ctx context.Context) []docstore.WriteError {
	if len(b.writes) == 0 {
		return nil
	}

	bw := b.client.BulkWriter(ctx)

	type queued struct {
		write docstore.Write
		job   *firestore.BulkWriterJob
	}

	var failures []docstore.WriteError
	jobs := make([]queued, 0, len(b.writes))

	for _, w := range b.writes {
		job, err := bw.Update(b.client.Collection(w.Collection).Doc(w.ID), toUpdates(w.Fields))
		if err != nil {
			failures = append(failures, docstore.WriteError{Collection: w.Collection, ID: w.ID, Err: errors.WithStack(err)})

			continue
		}
		jobs = append(jobs, queued{write: w, job: job})
	}

	bw.End()

	for _, q := range jobs {
		if _, err := q.job.Results(); err != nil {
			failures = append(failures, docstore.WriteError{
				Collection: q.write.Collection,
				ID:         q.write.ID,
				Err:        translate(err, q.write.Collection, q.write.ID),
			})
		}
	}

	if len(failures) > 0 {
		b.logger.Warn("Bulk writer finished with failures",
			slog.Int("writes", len(b.writes)),
			slog.Int("failures", len(failures)),
		)
	}

	return failures
}
