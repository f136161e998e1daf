package firestore

import (
	"landshare/internal/infra/persistence/docstore"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

type transaction struct {
	client *firestore.Client
	tx     *firestore.Transaction
	wrote  bool
}

func (t *transaction) Get(collection, id string) (docstore.Document, error) {
	if t.wrote {
		return nil, errors.WithStack(docstore.ErrReadAfterWrite)
	}

	snap, err := t.tx.Get(t.client.Collection(collection).Doc(id))
	if err != nil {
		return nil, translate(err, collection, id)
	}

	return snap.Data(), nil
}

func (t *transaction) Create(collection, id string, doc docstore.Document) error {
	t.wrote = true

	return errors.WithStack(t.tx.Create(t.client.Collection(collection).Doc(id), map[string]any(doc)))
}

func (t *transaction) Update(collection, id string, fields docstore.Document) error {
	t.wrote = true

	return errors.WithStack(t.tx.Update(t.client.Collection(collection).Doc(id), toUpdates(fields)))
}
