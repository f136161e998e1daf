package document

import (
	"context"

	"landshare/internal/domain/entity"
	"landshare/internal/domain/repository"
	"landshare/internal/infra/persistence/docstore"
)

// batchFactory implements the repository.BatchFactory interface.
type batchFactory struct {
	store docstore.Store
}

// NewBatchFactory is the constructor for batchFactory.
func NewBatchFactory(store docstore.Store) repository.BatchFactory {
	return &batchFactory{store: store}
}

func (f *batchFactory) NewAtomicBatch() repository.AtomicBatch {
	batch := f.store.NewAtomicBatch()

	return &atomicBatch{batchWriter: batchWriter{stager: batch}, batch: batch}
}

func (f *batchFactory) NewBestEffortBatch() repository.BestEffortBatch {
	batch := f.store.NewBestEffortBatch()

	return &bestEffortBatch{batchWriter: batchWriter{stager: batch}, batch: batch}
}

// stager is the staging half shared by both docstore batch kinds.
type stager interface {
	Update(collection, id string, fields docstore.Document)
	Len() int
}

type batchWriter struct {
	stager stager
}

func (w batchWriter) UpdateInvestmentRequest(id string, patch entity.RequestPatch) {
	w.stager.Update(CollectionInvestmentRequests, id, encodeRequestPatch(patch))
}

func (w batchWriter) UpdateUserProfile(id string, patch entity.UserPatch) {
	w.stager.Update(CollectionUserProfiles, id, encodeUserPatch(patch))
}

func (w batchWriter) Len() int {
	return w.stager.Len()
}

type atomicBatch struct {
	batchWriter
	batch docstore.AtomicBatch
}

func (b *atomicBatch) Commit(ctx context.Context) error {
	return b.batch.Commit(ctx)
}

type bestEffortBatch struct {
	batchWriter
	batch docstore.BestEffortBatch
}

func (b *bestEffortBatch) Commit(ctx context.Context) []repository.WriteFailure {
	writeErrs := b.batch.Commit(ctx)
	if len(writeErrs) == 0 {
		return nil
	}

	failures := make([]repository.WriteFailure, 0, len(writeErrs))
	for _, we := range writeErrs {
		failures = append(failures, repository.WriteFailure{ID: we.ID, Err: we.Err})
	}

	return failures
}
