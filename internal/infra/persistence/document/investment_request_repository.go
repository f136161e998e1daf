package document

import (
	"context"

	"landshare/internal/domain/entity"
	domainerrors "landshare/internal/domain/errors"
	"landshare/internal/domain/repository"
	"landshare/internal/infra/persistence/docstore"

	"landshare/internal/errors"
)

// investmentRequestRepository implements the repository.InvestmentRequestRepository interface.
type investmentRequestRepository struct {
	store docstore.Store
}

// NewInvestmentRequestRepository is the constructor for investmentRequestRepository.
func NewInvestmentRequestRepository(store docstore.Store) repository.InvestmentRequestRepository {
	return &investmentRequestRepository{store: store}
}

func (repo *investmentRequestRepository) FindByID(ctx context.Context, id string) (*entity.InvestmentRequest, error) {
	doc, err := repo.store.Get(ctx, CollectionInvestmentRequests, id)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, domainerrors.ErrInvestmentRequestNotFound.WithDetails(id)
		}

		return nil, domainerrors.NewStoreExecuteError(err, "failed to find investment request")
	}

	return decodeRequest(id, doc), nil
}

func (repo *investmentRequestRepository) Exists(ctx context.Context, id string) (bool, error) {
	_, err := repo.store.Get(ctx, CollectionInvestmentRequests, id)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, docstore.ErrNotFound) {
		return false, nil
	}

	return false, domainerrors.NewStoreExecuteError(err, "failed to check investment request")
}

func (repo *investmentRequestRepository) Create(ctx context.Context, request *entity.InvestmentRequest) error {
	if request.ID == "" {
		request.ID = repo.store.NewID(CollectionInvestmentRequests)
	}

	if err := repo.store.Create(ctx, CollectionInvestmentRequests, request.ID, encodeRequest(request)); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to create investment request")
	}

	return nil
}

func (repo *investmentRequestRepository) Update(ctx context.Context, id string, patch entity.RequestPatch) error {
	if err := repo.store.Update(ctx, CollectionInvestmentRequests, id, encodeRequestPatch(patch)); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return domainerrors.ErrInvestmentRequestNotFound.WithDetails(id)
		}

		return domainerrors.NewStoreExecuteError(err, "failed to update investment request")
	}

	return nil
}

// Find queries both field spellings so requests written only under the legacy names are included.
func (repo *investmentRequestRepository) Find(ctx context.Context, query repository.RequestQuery) ([]*entity.InvestmentRequest, error) {
	q := docstore.Query{Collection: CollectionInvestmentRequests, Limit: query.Limit}
	if query.Status != "" {
		q = q.Where("status", docstore.OpEqual, string(query.Status))
	}
	if query.MaxAmountPaid != nil {
		q = q.Where("amount_paid", docstore.OpLessEqual, query.MaxAmountPaid.InexactFloat64())
	}
	if !query.CreatedSince.IsZero() {
		q = q.Where("created_at", docstore.OpGreaterEqual, query.CreatedSince.UTC())
	}

	orders := requestOrders(query.Order)
	if query.ReferredOnly {
		// Firestore only sorts a != filter on its own field first, so the referred set is ordered here.
		q = q.Where("referral_code", docstore.OpNotEqual, "")
		q.Limit = 0
	} else {
		q.Orders = orders
	}

	snaps, err := queryEitherSpelling(ctx, repo.store, q)
	if err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "failed to query investment requests")
	}

	if query.ReferredOnly {
		sortSnapshots(snaps, orders)
		if query.Limit > 0 && len(snaps) > query.Limit {
			snaps = snaps[:query.Limit]
		}
	}

	requests := make([]*entity.InvestmentRequest, 0, len(snaps))
	for _, snap := range snaps {
		requests = append(requests, decodeRequest(snap.ID, snap.Data))
	}

	return requests, nil
}

func requestOrders(order repository.RequestOrder) []docstore.Order {
	switch order {
	case repository.OrderByCreatedAtDesc:
		return []docstore.Order{{Field: "created_at", Direction: docstore.Desc}}
	case repository.OrderByAmountAsc:
		return []docstore.Order{{Field: "amount_paid", Direction: docstore.Asc}}
	case repository.OrderByAmountDesc:
		return []docstore.Order{{Field: "amount_paid", Direction: docstore.Desc}}
	default:
		return []docstore.Order{{Field: "created_at", Direction: docstore.Asc}}
	}
}
