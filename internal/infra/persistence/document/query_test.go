package document

import (
	"context"
	"testing"
	"time"

	"landshare/internal/domain/entity"
	"landshare/internal/domain/repository"
	"landshare/internal/infra/persistence/docstore"
	"landshare/internal/infra/persistence/memory"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvestmentRequestRepository_Find_IncludesCamelCaseOnlyDocuments(t *testing.T) {
	ctx := context.Background()
	store := memory.New(3)
	repo := NewInvestmentRequestRepository(store)

	base := time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, newRequest("modern", 800, base.Add(time.Hour))))
	require.NoError(t, store.Create(ctx, CollectionInvestmentRequests, "legacy", docstore.Document{
		"status":     "pending",
		"userId":     "user-legacy",
		"amountPaid": 500,
		"createdAt":  base,
	}))

	got, err := repo.Find(ctx, repository.RequestQuery{Status: entity.RequestStatusPending})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "legacy", got[0].ID, "oldest first across both spellings")
	assert.Equal(t, "user-legacy", got[0].UserID)
	assert.Equal(t, "modern", got[1].ID)

	ceiling := decimal.NewFromInt(600)
	got, err = repo.Find(ctx, repository.RequestQuery{
		Status:        entity.RequestStatusPending,
		MaxAmountPaid: &ceiling,
		Order:         repository.OrderByAmountAsc,
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "legacy", got[0].ID)

	got, err = repo.Find(ctx, repository.RequestQuery{Status: entity.RequestStatusPending, Order: repository.OrderByCreatedAtDesc, Limit: 1})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "modern", got[0].ID, "limit applies after merging")
}

func TestInvestmentRequestRepository_Find_ReferredOnlyReachesOlderRequests(t *testing.T) {
	ctx := context.Background()
	store := memory.New(3)
	repo := NewInvestmentRequestRepository(store)

	base := time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC)
	referred := newRequest("referred", 100, base)
	referred.ReferralCode = "FRIEND-1"
	require.NoError(t, repo.Create(ctx, referred))
	for i := range 12 {
		require.NoError(t, repo.Create(ctx, newRequest("plain-"+string(rune('a'+i)), 100, base.Add(time.Duration(i+1)*time.Hour))))
	}
	require.NoError(t, store.Create(ctx, CollectionInvestmentRequests, "legacy-referred", docstore.Document{
		"status":       "pending",
		"referralCode": "FRIEND-2",
		"amountPaid":   50,
		"createdAt":    base.Add(-time.Hour),
	}))

	got, err := repo.Find(ctx, repository.RequestQuery{
		Status:       entity.RequestStatusPending,
		ReferredOnly: true,
		Order:        repository.OrderByCreatedAtDesc,
		Limit:        2,
	})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "referred", got[0].ID)
	assert.Equal(t, "legacy-referred", got[1].ID)
	assert.Equal(t, "FRIEND-2", got[1].ReferralCode)
}

func TestQueueRepository_ReadsCamelCaseOnlyItems(t *testing.T) {
	ctx := context.Background()
	store := memory.New(3)
	repo := NewQueueRepository(store)

	base := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, &entity.QueueItem{
		ID:          "modern",
		Type:        entity.QueueItemTypeInvestmentRequest,
		ReferenceID: "r-modern",
		Priority:    entity.QueuePriorityHigh,
		Status:      entity.QueueItemStatusPending,
		CreatedAt:   base.Add(time.Hour),
	}))
	require.NoError(t, store.Create(ctx, CollectionAdminQueue, "legacy", docstore.Document{
		"type":        string(entity.QueueItemTypeInvestmentRequest),
		"referenceId": "r-legacy",
		"priority":    string(entity.QueuePriorityHigh),
		"status":      string(entity.QueueItemStatusPending),
		"createdAt":   base,
	}))

	pending, err := repo.ListPending(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, "legacy", pending[0].ID)
	assert.Equal(t, "r-legacy", pending[0].ReferenceID)
	assert.Equal(t, "modern", pending[1].ID)

	active, err := repo.HasActiveForReference(ctx, "r-legacy")
	require.NoError(t, err)
	assert.True(t, active)
}

func TestUserProfileRepository_FindByReferralCode_CamelCaseOnly(t *testing.T) {
	ctx := context.Background()
	store := memory.New(3)
	repo := NewUserProfileRepository(store)

	require.NoError(t, store.Create(ctx, CollectionUserProfiles, "u-legacy", docstore.Document{
		"name":         "Grace",
		"referralCode": "GH-1",
	}))

	got, err := repo.FindByReferralCode(ctx, "GH-1")
	require.NoError(t, err)
	assert.Equal(t, "u-legacy", got.ID)
}

func TestReferralRepository_FindUnresolved_CamelCaseOnly(t *testing.T) {
	ctx := context.Background()
	store := memory.New(3)
	repo := NewReferralRepository(store)

	base := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, store.Create(ctx, CollectionReferrals, "legacy", docstore.Document{
		"code":         "CODE",
		"referrerId":   "",
		"resolveAfter": base,
	}))

	got, err := repo.FindUnresolved(ctx, base.Add(time.Hour), 5)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "legacy", got[0].ID)
}
