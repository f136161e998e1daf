package postgres

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"landshare/internal/infra/persistence/docstore"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store implements docstore.Store on a single JSONB documents table.
type Store struct {
	db          *gorm.DB
	maxAttempts int
	logger      *slog.Logger
}

// NewStore wraps db; transactions retry serialization failures up to maxAttempts times.
func NewStore(db *gorm.DB, maxAttempts int, logger *slog.Logger) *Store {
	return &Store{
		db:          db,
		maxAttempts: maxAttempts,
		logger:      logger,
	}
}

func (s *Store) NewID(string) string {
	return uuid.NewString()
}

func (s *Store) Get(ctx context.Context, collection, id string) (docstore.Document, error) {
	return getDocument(s.db.WithContext(ctx), collection, id, false)
}

func (s *Store) Create(ctx context.Context, collection, id string, doc docstore.Document) error {
	return createDocument(s.db.WithContext(ctx), collection, id, doc)
}

func (s *Store) Set(ctx context.Context, collection, id string, doc docstore.Document) error {
	now := time.Now()
	m := &documentModel{
		Collection: collection,
		ID:         id,
		Data:       toJSON(doc),
		Version:    1,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "collection"}, {Name: "id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"data":       m.Data,
			"version":    gorm.Expr("documents.version + 1"),
			"updated_at": now,
		}),
	}).Create(m).Error

	return errors.Wrapf(err, "failed to set %s/%s", collection, id)
}

func (s *Store) Update(ctx context.Context, collection, id string, fields docstore.Document) error {
	return updateDocument(s.db.WithContext(ctx), collection, id, fields)
}

func (s *Store) Query(ctx context.Context, q docstore.Query) ([]docstore.Snapshot, error) {
	db, err := applyQuery(s.db.WithContext(ctx).Model(&documentModel{}), q)
	if err != nil {
		return nil, err
	}

	var models []documentModel
	if err := db.Find(&models).Error; err != nil {
		return nil, errors.Wrapf(err, "failed to query %s", q.Collection)
	}

	results := make([]docstore.Snapshot, 0, len(models))
	for _, m := range models {
		results = append(results, docstore.Snapshot{ID: m.ID, Data: fromJSON(m.Data)})
	}

	return results, nil
}

// RunTransaction reruns fn when PostgreSQL reports a serialization failure or deadlock.
func (s *Store) RunTransaction(ctx context.Context, fn func(tx docstore.Tx) error) error {
	var lastErr error

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		err := s.execute(ctx, fn)
		if err == nil {
			return nil
		}
		if !isRetryableTxError(err) {
			return err
		}

		lastErr = err
		s.logger.WarnContext(ctx, "Retrying conflicting transaction",
			slog.Int("attempt", attempt),
			slog.String("error", err.Error()),
		)
	}

	return errors.Wrap(docstore.ErrConflict, lastErr.Error())
}

// execute runs fn within a single database transaction.
func (s *Store) execute(ctx context.Context, fn func(tx docstore.Tx) error) error {
	// Begin a new transaction
	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin transaction")
	}

	// Roll back on panic, then re-panic so upper layers can handle it.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(&transaction{db: tx}); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return errors.Wrapf(err, "transaction rollback failed: %v", rbErr)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	return nil
}

func (s *Store) NewAtomicBatch() docstore.AtomicBatch {
	return &atomicBatch{store: s}
}

func (s *Store) NewBestEffortBatch() docstore.BestEffortBatch {
	return &bestEffortBatch{store: s}
}

func getDocument(db *gorm.DB, collection, id string, forUpdate bool) (docstore.Document, error) {
	if forUpdate {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var m documentModel
	if err := db.Where("collection = ? AND id = ?", collection, id).Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.Wrapf(docstore.ErrNotFound, "%s/%s", collection, id)
		}

		return nil, errors.Wrapf(err, "failed to get %s/%s", collection, id)
	}

	return fromJSON(m.Data), nil
}

func createDocument(db *gorm.DB, collection, id string, doc docstore.Document) error {
	now := time.Now()
	m := &documentModel{
		Collection: collection,
		ID:         id,
		Data:       toJSON(doc),
		Version:    1,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	result := db.Clauses(clause.OnConflict{DoNothing: true}).Create(m)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return errors.Wrapf(docstore.ErrAlreadyExists, "%s/%s", collection, id)
		}

		return errors.Wrapf(result.Error, "failed to create %s/%s", collection, id)
	}
	if result.RowsAffected == 0 {
		return errors.Wrapf(docstore.ErrAlreadyExists, "%s/%s", collection, id)
	}

	return nil
}

// updateDocument merges fields into the stored JSONB object.
func updateDocument(db *gorm.DB, collection, id string, fields docstore.Document) error {
	patch, err := json.Marshal(toJSON(fields))
	if err != nil {
		return errors.WithStack(err)
	}

	result := db.Model(&documentModel{}).
		Where("collection = ? AND id = ?", collection, id).
		Updates(map[string]any{
			"data":       gorm.Expr("data || ?::jsonb", string(patch)),
			"version":    gorm.Expr("version + 1"),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return errors.Wrapf(result.Error, "failed to update %s/%s", collection, id)
	}
	if result.RowsAffected == 0 {
		return errors.Wrapf(docstore.ErrNotFound, "%s/%s", collection, id)
	}

	return nil
}
