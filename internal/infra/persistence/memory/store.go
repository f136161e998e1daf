// Package memory implements docstore.Store in process memory.
// It keeps the transaction and batch semantics of the hosted stores: optimistic transactions
// retried on version conflicts, reads before writes, all-or-nothing atomic batches.
package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"landshare/internal/infra/persistence/docstore"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const defaultMaxAttempts = 5

// FaultFunc is consulted before every write. A non-nil error fails that write.
type FaultFunc func(collection, id string) error

type record struct {
	doc     docstore.Document
	version int64
}

// Store is a concurrency-safe in-memory document store.
type Store struct {
	mu          sync.RWMutex
	collections map[string]map[string]*record
	maxAttempts int
	fault       FaultFunc
	// beforeCommit runs between a transaction's body and its commit; tests use it to race writers.
	beforeCommit func(attempt int)
}

// New creates an empty store retrying conflicting transactions up to maxAttempts times.
func New(maxAttempts int) *Store {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}

	return &Store{
		collections: make(map[string]map[string]*record),
		maxAttempts: maxAttempts,
	}
}

// SetFault installs a write fault injector. Passing nil clears it.
func (s *Store) SetFault(fn FaultFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.fault = fn
}

// SetBeforeCommit installs a hook run before each transaction commit attempt.
func (s *Store) SetBeforeCommit(fn func(attempt int)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.beforeCommit = fn
}

// NewID allocates a random document ID.
func (s *Store) NewID(string) string {
	return uuid.NewString()
}

// Get returns a copy of the document.
func (s *Store) Get(ctx context.Context, collection, id string) (docstore.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.collections[collection][id]
	if !ok {
		return nil, errors.Wrapf(docstore.ErrNotFound, "%s/%s", collection, id)
	}

	return rec.doc.Clone(), nil
}

// Create stores a new document.
func (s *Store) Create(ctx context.Context, collection, id string, doc docstore.Document) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkFault(collection, id); err != nil {
		return err
	}
	if _, ok := s.collections[collection][id]; ok {
		return errors.Wrapf(docstore.ErrAlreadyExists, "%s/%s", collection, id)
	}
	s.put(collection, id, doc.Clone())

	return nil
}

// Set creates or overwrites a document.
func (s *Store) Set(ctx context.Context, collection, id string, doc docstore.Document) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkFault(collection, id); err != nil {
		return err
	}
	s.put(collection, id, doc.Clone())

	return nil
}

// Update merges fields into an existing document.
func (s *Store) Update(ctx context.Context, collection, id string, fields docstore.Document) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkFault(collection, id); err != nil {
		return err
	}

	return s.merge(collection, id, fields)
}

// Query scans a collection, filters, sorts and limits the result.
// Documents lacking a sort field are excluded.
func (s *Store) Query(ctx context.Context, q docstore.Query) ([]docstore.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	s.mu.RLock()
	results := make([]docstore.Snapshot, 0)
	for id, rec := range s.collections[q.Collection] {
		if matchesAll(rec.doc, q.Filters) && docstore.HasOrderFields(rec.doc, q.Orders) {
			results = append(results, docstore.Snapshot{ID: id, Data: rec.doc.Clone()})
		}
	}
	s.mu.RUnlock()

	slices.SortStableFunc(results, func(a, b docstore.Snapshot) int {
		for _, o := range q.Orders {
			c := docstore.Compare(a.Data[o.Field], b.Data[o.Field])
			if o.Direction == docstore.Desc {
				c = -c
			}
			if c != 0 {
				return c
			}
		}

		return cmp.Compare(a.ID, b.ID)
	})

	if q.Limit > 0 && len(results) > q.Limit {
		results = results[:q.Limit]
	}

	return results, nil
}

// RunTransaction runs fn against a snapshot and commits when nothing it read has changed.
func (s *Store) RunTransaction(ctx context.Context, fn func(tx docstore.Tx) error) error {
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return errors.WithStack(err)
		}

		tx := &transaction{store: s, reads: make(map[key]int64)}
		if err := fn(tx); err != nil {
			return err
		}

		s.mu.RLock()
		hook := s.beforeCommit
		s.mu.RUnlock()
		if hook != nil {
			hook(attempt)
		}

		err := tx.commit()
		if errors.Is(err, errVersionMismatch) {
			continue
		}

		return err
	}

	return errors.Wrapf(docstore.ErrConflict, "gave up after %d attempts", s.maxAttempts)
}

// NewAtomicBatch creates an all-or-nothing batch.
func (s *Store) NewAtomicBatch() docstore.AtomicBatch {
	return &atomicBatch{store: s}
}

// NewBestEffortBatch creates a batch whose writes land independently.
func (s *Store) NewBestEffortBatch() docstore.BestEffortBatch {
	return &bestEffortBatch{store: s}
}

func (s *Store) put(collection, id string, doc docstore.Document) {
	coll, ok := s.collections[collection]
	if !ok {
		coll = make(map[string]*record)
		s.collections[collection] = coll
	}

	version := int64(1)
	if prev, ok := coll[id]; ok {
		version = prev.version + 1
	}
	coll[id] = &record{doc: doc, version: version}
}

// merge requires s.mu to be held.
func (s *Store) merge(collection, id string, fields docstore.Document) error {
	rec, ok := s.collections[collection][id]
	if !ok {
		return errors.Wrapf(docstore.ErrNotFound, "%s/%s", collection, id)
	}

	doc := rec.doc.Clone()
	for k, v := range fields.Clone() {
		doc[k] = v
	}
	s.put(collection, id, doc)

	return nil
}

// checkFault requires s.mu to be held.
func (s *Store) checkFault(collection, id string) error {
	if s.fault == nil {
		return nil
	}

	return s.fault(collection, id)
}

func (s *Store) version(collection, id string) int64 {
	rec, ok := s.collections[collection][id]
	if !ok {
		return 0
	}

	return rec.version
}

func matchesAll(doc docstore.Document, filters []docstore.Filter) bool {
	for _, f := range filters {
		if !docstore.Matches(doc, f) {
			return false
		}
	}

	return true
}
