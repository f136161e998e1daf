package postgres

import (
	"landshare/internal/infra/persistence/docstore"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// transaction locks every row it reads with SELECT ... FOR UPDATE until commit.
type transaction struct {
	db    *gorm.DB
	wrote bool
}

func (t *transaction) Get(collection, id string) (docstore.Document, error) {
	if t.wrote {
		return nil, errors.WithStack(docstore.ErrReadAfterWrite)
	}

	return getDocument(t.db, collection, id, true)
}

func (t *transaction) Create(collection, id string, doc docstore.Document) error {
	t.wrote = true

	return createDocument(t.db, collection, id, doc)
}

func (t *transaction) Update(collection, id string, fields docstore.Document) error {
	t.wrote = true

	return updateDocument(t.db, collection, id, fields)
}
