// Package firestore implements docstore.Store on Cloud Firestore.
package firestore

import (
	"context"
	"log/slog"

	"landshare/internal/infra/persistence/docstore"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Store adapts a Firestore client to docstore.Store.
type Store struct {
	client      *firestore.Client
	maxAttempts int
	logger      *slog.Logger
}

// NewStore wraps client; transactions retry conflicts up to maxAttempts times.
func NewStore(client *firestore.Client, maxAttempts int, logger *slog.Logger) *Store {
	return &Store{
		client:      client,
		maxAttempts: maxAttempts,
		logger:      logger,
	}
}

func (s *Store) NewID(collection string) string {
	return s.client.Collection(collection).NewDoc().ID
}

func (s *Store) Get(ctx context.Context, collection, id string) (docstore.Document, error) {
	snap, err := s.client.Collection(collection).Doc(id).Get(ctx)
	if err != nil {
		return nil, translate(err, collection, id)
	}

	return snap.Data(), nil
}

func (s *Store) Create(ctx context.Context, collection, id string, doc docstore.Document) error {
	_, err := s.client.Collection(collection).Doc(id).Create(ctx, map[string]any(doc))

	return translate(err, collection, id)
}

func (s *Store) Set(ctx context.Context, collection, id string, doc docstore.Document) error {
	_, err := s.client.Collection(collection).Doc(id).Set(ctx, map[string]any(doc))

	return translate(err, collection, id)
}

func (s *Store) Update(ctx context.Context, collection, id string, fields docstore.Document) error {
	_, err := s.client.Collection(collection).Doc(id).Update(ctx, toUpdates(fields))

	return translate(err, collection, id)
}

func (s *Store) Query(ctx context.Context, q docstore.Query) ([]docstore.Snapshot, error) {
	query := s.client.Collection(q.Collection).Query
	for _, f := range q.Filters {
		query = query.Where(f.Field, string(f.Op), f.Value)
	}
	for _, o := range q.Orders {
		dir := firestore.Asc
		if o.Direction == docstore.Desc {
			dir = firestore.Desc
		}
		query = query.OrderBy(o.Field, dir)
	}
	if q.Limit > 0 {
		query = query.Limit(q.Limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var results []docstore.Snapshot
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to query %s", q.Collection)
		}
		results = append(results, docstore.Snapshot{ID: snap.Ref.ID, Data: snap.Data()})
	}

	return results, nil
}

// RunTransaction delegates conflict retries to the Firestore client.
func (s *Store) RunTransaction(ctx context.Context, fn func(tx docstore.Tx) error) error {
	err := s.client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		return fn(&transaction{client: s.client, tx: tx})
	}, firestore.MaxAttempts(s.maxAttempts))
	if err == nil {
		return nil
	}

	if status.Code(errors.Cause(err)) == codes.Aborted {
		return errors.Wrap(docstore.ErrConflict, err.Error())
	}

	return err
}

func (s *Store) NewAtomicBatch() docstore.AtomicBatch {
	return &atomicBatch{store: s}
}

func (s *Store) NewBestEffortBatch() docstore.BestEffortBatch {
	return &bestEffortBatch{client: s.client, logger: s.logger}
}

func toUpdates(fields docstore.Document) []firestore.Update {
	updates := make([]firestore.Update, 0, len(fields))
	for k, v := range fields {
		updates = append(updates, firestore.Update{FieldPath: firestore.FieldPath{k}, Value: v})
	}

	return updates
}

func translate(err error, collection, id string) error {
	if err == nil {
		return nil
	}

	switch status.Code(err) {
	case codes.NotFound:
		return errors.Wrapf(docstore.ErrNotFound, "%s/%s", collection, id)
	case codes.AlreadyExists:
		return errors.Wrapf(docstore.ErrAlreadyExists, "%s/%s", collection, id)
	default:
		return errors.Wrapf(err, "firestore %s/%s", collection, id)
	}
}
