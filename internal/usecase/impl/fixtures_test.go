package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"landshare/internal/domain/entity"
	"landshare/internal/domain/repository"
	"landshare/internal/infra/persistence/docstore"
	"landshare/internal/infra/persistence/document"
	"landshare/internal/infra/persistence/memory"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)

func fixedClock() time.Time {
	return fixedNow
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// storeFixture wires the document repositories over one in-memory store.
type storeFixture struct {
	store       *memory.Store
	requests    repository.InvestmentRequestRepository
	investments repository.InvestmentRepository
	plots       repository.PlotRepository
	projects    repository.ProjectRepository
	users       repository.UserProfileRepository
	referrals   repository.ReferralRepository
	queue       repository.QueueRepository
	txManager   repository.TransactionManager
	batches     repository.BatchFactory
}

func newStoreFixture(t *testing.T) *storeFixture {
	t.Helper()

	store := memory.New(3)

	return &storeFixture{
		store:       store,
		requests:    document.NewInvestmentRequestRepository(store),
		investments: document.NewInvestmentRepository(store),
		plots:       document.NewPlotRepository(store),
		projects:    document.NewProjectRepository(store),
		users:       document.NewUserProfileRepository(store),
		referrals:   document.NewReferralRepository(store),
		queue:       document.NewQueueRepository(store),
		txManager:   document.NewTransactionManager(store),
		batches:     document.NewBatchFactory(store),
	}
}

func (f *storeFixture) seedRequest(t *testing.T, request *entity.InvestmentRequest) *entity.InvestmentRequest {
	t.Helper()
	require.NoError(t, f.requests.Create(context.Background(), request))

	return request
}

// seedWorld stores the plot, user and project that requests built by pendingRequest point at.
func (f *storeFixture) seedWorld(t *testing.T) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, f.plots.Save(ctx, &entity.Plot{
		ID:            "plot-1",
		Name:          "Riverside A",
		ProjectID:     "project-1",
		TotalArea:     5000,
		AvailableArea: 1000,
		TotalOwners:   2,
	}))
	require.NoError(t, f.users.Save(ctx, &entity.UserProfile{
		ID:            "user-1",
		Name:          "Ada",
		Email:         "ada@example.com",
		WalletBalance: decimal.NewFromInt(10_000),
		Status:        entity.UserStatusActive,
	}))
	require.NoError(t, f.projects.Save(ctx, &entity.Project{
		ID:   "project-1",
		Name: "Riverside",
	}))
}

func (f *storeFixture) count(t *testing.T, collection string) int {
	t.Helper()

	snapshots, err := f.store.Query(context.Background(), docstore.Query{Collection: collection})
	require.NoError(t, err)

	return len(snapshots)
}

func (f *storeFixture) mustRequest(t *testing.T, id string) *entity.InvestmentRequest {
	t.Helper()

	request, err := f.requests.FindByID(context.Background(), id)
	require.NoError(t, err)

	return request
}

func pendingRequest(id string, amount int64, createdAt time.Time) *entity.InvestmentRequest {
	return &entity.InvestmentRequest{
		ID:               id,
		UserID:           "user-1",
		UserName:         "Ada",
		UserEmail:        "ada@example.com",
		PlotID:           "plot-1",
		PlotName:         "Riverside A",
		ProjectID:        "project-1",
		ProjectName:      "Riverside",
		AmountPaid:       decimal.NewFromInt(amount),
		AreaPurchased:    100,
		PricePerSqft:     decimal.NewFromInt(50),
		IdentityVerified: true,
		PaymentVerified:  true,
		Status:           entity.RequestStatusPending,
		CreatedAt:        createdAt,
		UpdatedAt:        createdAt,
	}
}
