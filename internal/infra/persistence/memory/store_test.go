package memory

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"landshare/internal/infra/persistence/docstore"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, s *Store, collection, id string, doc docstore.Document) {
	t.Helper()
	require.NoError(t, s.Set(context.Background(), collection, id, doc))
}

func TestStore_CRUD(t *testing.T) {
	ctx := context.Background()
	s := New(3)

	require.NoError(t, s.Create(ctx, "plots", "p1", docstore.Document{"name": "North", "available_area": 100.0}))
	err := s.Create(ctx, "plots", "p1", docstore.Document{})
	assert.True(t, errors.Is(err, docstore.ErrAlreadyExists))

	require.NoError(t, s.Update(ctx, "plots", "p1", docstore.Document{"available_area": 60.0}))
	doc, err := s.Get(ctx, "plots", "p1")
	require.NoError(t, err)
	assert.Equal(t, "North", doc["name"])
	assert.Equal(t, 60.0, doc["available_area"])

	err = s.Update(ctx, "plots", "missing", docstore.Document{"x": 1})
	assert.True(t, errors.Is(err, docstore.ErrNotFound))

	_, err = s.Get(ctx, "plots", "missing")
	assert.True(t, errors.Is(err, docstore.ErrNotFound))
}

func TestStore_GetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := New(3)
	seed(t, s, "plots", "p1", docstore.Document{"name": "North"})

	doc, err := s.Get(ctx, "plots", "p1")
	require.NoError(t, err)
	doc["name"] = "mutated"

	again, err := s.Get(ctx, "plots", "p1")
	require.NoError(t, err)
	assert.Equal(t, "North", again["name"])
}

func TestStore_Query_FiltersOrdersAndLimits(t *testing.T) {
	ctx := context.Background()
	s := New(3)
	base := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	seed(t, s, "investment_requests", "a", docstore.Document{"status": "pending", "amount_paid": 300.0, "created_at": base})
	seed(t, s, "investment_requests", "b", docstore.Document{"status": "pending", "amount_paid": 100.0, "created_at": base.Add(time.Hour)})
	seed(t, s, "investment_requests", "c", docstore.Document{"status": "approved", "amount_paid": 50.0, "created_at": base})
	seed(t, s, "investment_requests", "d", docstore.Document{"status": "pending", "amount_paid": 200.0, "created_at": base.Add(2 * time.Hour)})

	q := docstore.Query{Collection: "investment_requests"}.
		Where("status", docstore.OpEqual, "pending").
		OrderBy("amount_paid", docstore.Desc)
	q.Limit = 2

	results, err := s.Query(ctx, q)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "a", results[0].ID)
	assert.Equal(t, "d", results[1].ID)

	since, err := s.Query(ctx, docstore.Query{Collection: "investment_requests"}.
		Where("created_at", docstore.OpGreaterEqual, base.Add(30*time.Minute)).
		OrderBy("created_at", docstore.Asc))
	require.NoError(t, err)
	require.Len(t, since, 2)
	assert.Equal(t, "b", since[0].ID)
	assert.Equal(t, "d", since[1].ID)
}

func TestStore_Query_SkipsDocumentsWithoutOrderField(t *testing.T) {
	ctx := context.Background()
	s := New(3)
	base := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	seed(t, s, "investment_requests", "dated", docstore.Document{"status": "pending", "created_at": base})
	seed(t, s, "investment_requests", "undated", docstore.Document{"status": "pending"})

	ordered, err := s.Query(ctx, docstore.Query{Collection: "investment_requests"}.
		Where("status", docstore.OpEqual, "pending").
		OrderBy("created_at", docstore.Asc))
	require.NoError(t, err)
	require.Len(t, ordered, 1)
	assert.Equal(t, "dated", ordered[0].ID)

	unordered, err := s.Query(ctx, docstore.Query{Collection: "investment_requests"}.
		Where("status", docstore.OpEqual, "pending"))
	require.NoError(t, err)
	assert.Len(t, unordered, 2)
}

func TestStore_RunTransaction_CommitsAllWrites(t *testing.T) {
	ctx := context.Background()
	s := New(3)
	seed(t, s, "plots", "p1", docstore.Document{"available_area": 100.0})

	err := s.RunTransaction(ctx, func(tx docstore.Tx) error {
		doc, err := tx.Get("plots", "p1")
		if err != nil {
			return err
		}
		if err := tx.Update("plots", "p1", docstore.Document{"available_area": doc["available_area"].(float64) - 40}); err != nil {
			return err
		}

		return tx.Create("investments", "i1", docstore.Document{"plot_id": "p1"})
	})
	require.NoError(t, err)

	plot, err := s.Get(ctx, "plots", "p1")
	require.NoError(t, err)
	assert.Equal(t, 60.0, plot["available_area"])

	_, err = s.Get(ctx, "investments", "i1")
	assert.NoError(t, err)
}

func TestStore_RunTransaction_MissingUpdateTargetAbortsEverything(t *testing.T) {
	ctx := context.Background()
	s := New(3)

	err := s.RunTransaction(ctx, func(tx docstore.Tx) error {
		if err := tx.Create("investments", "i1", docstore.Document{}); err != nil {
			return err
		}

		return tx.Update("investment_requests", "missing", docstore.Document{"status": "approved"})
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, docstore.ErrNotFound))

	_, err = s.Get(ctx, "investments", "i1")
	assert.True(t, errors.Is(err, docstore.ErrNotFound), "no write may survive an aborted transaction")
}

func TestStore_RunTransaction_RetriesOnConflict(t *testing.T) {
	ctx := context.Background()
	s := New(3)
	seed(t, s, "plots", "p1", docstore.Document{"total_owners": int64(0)})

	s.SetBeforeCommit(func(attempt int) {
		if attempt == 1 {
			// A concurrent writer bumps the counter between read and commit.
			require.NoError(t, s.Update(ctx, "plots", "p1", docstore.Document{"total_owners": int64(1)}))
		}
	})

	var runs int32
	err := s.RunTransaction(ctx, func(tx docstore.Tx) error {
		atomic.AddInt32(&runs, 1)
		doc, err := tx.Get("plots", "p1")
		if err != nil {
			return err
		}
		owners, _ := docstore.ToFloat(doc["total_owners"])

		return tx.Update("plots", "p1", docstore.Document{"total_owners": int64(owners) + 1})
	})
	require.NoError(t, err)

	assert.Equal(t, int32(2), atomic.LoadInt32(&runs))
	plot, err := s.Get(ctx, "plots", "p1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), plot["total_owners"], "the retried transaction must see the concurrent increment")
}

func TestStore_RunTransaction_GivesUpAfterMaxAttempts(t *testing.T) {
	ctx := context.Background()
	s := New(2)
	seed(t, s, "plots", "p1", docstore.Document{"n": int64(0)})

	var bump int64
	s.SetBeforeCommit(func(int) {
		bump++
		require.NoError(t, s.Update(ctx, "plots", "p1", docstore.Document{"n": bump}))
	})

	err := s.RunTransaction(ctx, func(tx docstore.Tx) error {
		if _, err := tx.Get("plots", "p1"); err != nil {
			return err
		}

		return tx.Update("plots", "p1", docstore.Document{"n": int64(-1)})
	})

	assert.True(t, errors.Is(err, docstore.ErrConflict))
}

func TestStore_RunTransaction_RejectsReadAfterWrite(t *testing.T) {
	ctx := context.Background()
	s := New(3)
	seed(t, s, "plots", "p1", docstore.Document{})

	err := s.RunTransaction(ctx, func(tx docstore.Tx) error {
		if err := tx.Update("plots", "p1", docstore.Document{"a": 1.0}); err != nil {
			return err
		}
		_, err := tx.Get("plots", "p1")

		return err
	})

	assert.True(t, errors.Is(err, docstore.ErrReadAfterWrite))
}

func TestAtomicBatch_AllOrNothing(t *testing.T) {
	ctx := context.Background()
	s := New(3)
	seed(t, s, "investment_requests", "r1", docstore.Document{"status": "pending"})

	batch := s.NewAtomicBatch()
	batch.Update("investment_requests", "r1", docstore.Document{"status": "rejected"})
	batch.Update("investment_requests", "ghost", docstore.Document{"status": "rejected"})

	err := batch.Commit(ctx)
	assert.True(t, errors.Is(err, docstore.ErrNotFound))

	doc, err := s.Get(ctx, "investment_requests", "r1")
	require.NoError(t, err)
	assert.Equal(t, "pending", doc["status"])
}

func TestAtomicBatch_RejectsOversizedBatch(t *testing.T) {
	s := New(3)
	batch := s.NewAtomicBatch()
	for range docstore.MaxAtomicWrites + 1 {
		batch.Update("c", "id", docstore.Document{})
	}

	err := batch.Commit(context.Background())

	assert.True(t, errors.Is(err, docstore.ErrBatchTooLarge))
}

func TestBestEffortBatch_ReportsPerWriteFailures(t *testing.T) {
	ctx := context.Background()
	s := New(3)
	seed(t, s, "investment_requests", "r1", docstore.Document{"status": "pending"})
	seed(t, s, "investment_requests", "r2", docstore.Document{"status": "pending"})
	s.SetFault(func(_, id string) error {
		if id == "r2" {
			return errors.New("injected")
		}

		return nil
	})

	batch := s.NewBestEffortBatch()
	batch.Update("investment_requests", "r1", docstore.Document{"status": "rejected"})
	batch.Update("investment_requests", "r2", docstore.Document{"status": "rejected"})
	batch.Update("investment_requests", "ghost", docstore.Document{"status": "rejected"})

	failures := batch.Commit(ctx)
	require.Len(t, failures, 2)
	assert.Equal(t, "r2", failures[0].ID)
	assert.Equal(t, "ghost", failures[1].ID)

	doc, err := s.Get(ctx, "investment_requests", "r1")
	require.NoError(t, err)
	assert.Equal(t, "rejected", doc["status"])
}
