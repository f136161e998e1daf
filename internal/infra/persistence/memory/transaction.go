package memory

import (
	"landshare/internal/infra/persistence/docstore"

	"github.com/pkg/errors"
)

var errVersionMismatch = errors.New("version mismatch")

type key struct {
	collection string
	id         string
}

type opKind int

const (
	opCreate opKind = iota
	opUpdate
)

type pendingWrite struct {
	kind   opKind
	key    key
	fields docstore.Document
}

// transaction records the versions it read and buffers its writes until commit.
type transaction struct {
	store  *Store
	reads  map[key]int64
	writes []pendingWrite
}

func (tx *transaction) Get(collection, id string) (docstore.Document, error) {
	if len(tx.writes) > 0 {
		return nil, errors.WithStack(docstore.ErrReadAfterWrite)
	}

	tx.store.mu.RLock()
	defer tx.store.mu.RUnlock()

	k := key{collection: collection, id: id}
	tx.reads[k] = tx.store.version(collection, id)

	rec, ok := tx.store.collections[collection][id]
	if !ok {
		return nil, errors.Wrapf(docstore.ErrNotFound, "%s/%s", collection, id)
	}

	return rec.doc.Clone(), nil
}

func (tx *transaction) Create(collection, id string, doc docstore.Document) error {
	tx.writes = append(tx.writes, pendingWrite{
		kind:   opCreate,
		key:    key{collection: collection, id: id},
		fields: doc.Clone(),
	})

	return nil
}

func (tx *transaction) Update(collection, id string, fields docstore.Document) error {
	tx.writes = append(tx.writes, pendingWrite{
		kind:   opUpdate,
		key:    key{collection: collection, id: id},
		fields: fields.Clone(),
	})

	return nil
}

// commit validates every read version and every write precondition before applying anything.
func (tx *transaction) commit() error {
	s := tx.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for k, v := range tx.reads {
		if s.version(k.collection, k.id) != v {
			return errVersionMismatch
		}
	}

	for _, w := range tx.writes {
		if err := s.checkFault(w.key.collection, w.key.id); err != nil {
			return err
		}

		_, exists := s.collections[w.key.collection][w.key.id]
		switch w.kind {
		case opCreate:
			if exists {
				return errors.Wrapf(docstore.ErrAlreadyExists, "%s/%s", w.key.collection, w.key.id)
			}
		case opUpdate:
			if !exists && !tx.createdEarlier(w) {
				return errors.Wrapf(docstore.ErrNotFound, "%s/%s", w.key.collection, w.key.id)
			}
		}
	}

	for _, w := range tx.writes {
		switch w.kind {
		case opCreate:
			s.put(w.key.collection, w.key.id, w.fields)
		case opUpdate:
			if err := s.merge(w.key.collection, w.key.id, w.fields); err != nil {
				return err
			}
		}
	}

	return nil
}

func (tx *transaction) createdEarlier(target pendingWrite) bool {
	for _, w := range tx.writes {
		if w.key == target.key && w.kind == opCreate {
			return true
		}
	}

	return false
}
