package postgres

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func migrations() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		{
			ID: "202610010001_create_documents",
			Migrate: func(tx *gorm.DB) error {
				if err := tx.AutoMigrate(&documentModel{}); err != nil {
					return errors.Wrap(err, "failed to create documents table")
				}

				return errors.WithStack(tx.Exec(
					`CREATE INDEX IF NOT EXISTS idx_documents_data ON documents USING GIN (data jsonb_path_ops)`,
				).Error)
			},
			Rollback: func(tx *gorm.DB) error {
				return errors.WithStack(tx.Migrator().DropTable("documents"))
			},
		},
		{
			ID: "202610010002_index_status_fields",
			Migrate: func(tx *gorm.DB) error {
				return errors.WithStack(tx.Exec(
					`CREATE INDEX IF NOT EXISTS idx_documents_collection_status ON documents (collection, (data->>'status'))`,
				).Error)
			},
			Rollback: func(tx *gorm.DB) error {
				return errors.WithStack(tx.Exec(`DROP INDEX IF EXISTS idx_documents_collection_status`).Error)
			},
		},
	}
}

// Migrate brings the documents schema up to date.
func Migrate(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, migrations())

	return errors.Wrap(m.Migrate(), "failed to migrate document store")
}
