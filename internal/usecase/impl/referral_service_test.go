package impl

import (
	"context"
	"testing"
	"time"

	"landshare/config"
	"landshare/internal/domain/entity"
	domainerrors "landshare/internal/domain/errors"
	"landshare/internal/domain/service"
	"landshare/internal/domain/repository"
	"landshare/internal/errors"
	"landshare/internal/infra/referral"
	mockRepo "landshare/internal/mocks/repository"
	mockSvc "landshare/internal/mocks/service"
	"landshare/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestReferralService(t *testing.T) (usecase.ReferralUsecase, *mockRepo.MockReferralRepository, *mockSvc.MockReferrerResolver) {
	t.Helper()

	referralRepo := mockRepo.NewMockReferralRepository(t)
	resolver := mockSvc.NewMockReferrerResolver(t)

	srv := NewReferralService(ReferralServiceParams{
		ReferralRepo: referralRepo,
		Resolver:     resolver,
		Config:       &config.Config{Queue: &config.QueueConfig{ReconcileBackoff: time.Hour}},
		Logger:       discardLogger(),
	})
	srv.(*referralService).now = fixedClock

	return srv, referralRepo, resolver
}

func TestReferralService_HandleReferralRecorded_AssignsReferrer(t *testing.T) {
	ctx := context.Background()
	srv, referralRepo, resolver := createTestReferralService(t)

	referralRepo.EXPECT().FindByID(ctx, "ref-1").Return(&entity.Referral{ID: "ref-1", Code: "FRIEND-1"}, nil).Once()
	resolver.EXPECT().Resolve(ctx, "FRIEND-1").Return("user-9", nil).Once()
	referralRepo.EXPECT().AssignReferrer(ctx, "ref-1", "user-9").Return(nil).Once()

	err := srv.HandleReferralRecorded(ctx, &service.ReferralRecordedEvent{ReferralID: "ref-1", ReferralCode: "FRIEND-1"})
	require.NoError(t, err)
}

func TestReferralService_HandleReferralRecorded_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	srv, referralRepo, resolver := createTestReferralService(t)

	referralRepo.EXPECT().
		FindByID(ctx, "ref-1").
		Return(&entity.Referral{ID: "ref-1", Code: "FRIEND-1", ReferrerID: "user-9"}, nil).
		Once()

	require.NoError(t, srv.HandleReferralRecorded(ctx, &service.ReferralRecordedEvent{ReferralID: "ref-1"}))
	resolver.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything)
}

func TestReferralService_HandleReferralRecorded_Failures(t *testing.T) {
	ctx := context.Background()

	t.Run("event without referral id", func(t *testing.T) {
		srv, _, _ := createTestReferralService(t)

		assert.Error(t, srv.HandleReferralRecorded(ctx, &service.ReferralRecordedEvent{}))
		assert.Error(t, srv.HandleReferralRecorded(ctx, nil))
	})

	t.Run("missing referral", func(t *testing.T) {
		srv, referralRepo, _ := createTestReferralService(t)
		referralRepo.EXPECT().FindByID(ctx, "ghost").Return(nil, domainerrors.ErrReferralNotFound).Once()

		err := srv.HandleReferralRecorded(ctx, &service.ReferralRecordedEvent{ReferralID: "ghost"})
		assert.True(t, errors.Is(err, domainerrors.ErrReferralNotFound))
	})

	t.Run("unknown code is deferred", func(t *testing.T) {
		srv, referralRepo, resolver := createTestReferralService(t)
		referralRepo.EXPECT().FindByID(ctx, "ref-1").Return(&entity.Referral{ID: "ref-1", Code: "NOBODY"}, nil).Once()
		resolver.EXPECT().Resolve(ctx, "NOBODY").Return("", nil).Once()
		referralRepo.EXPECT().DeferResolution(ctx, "ref-1", fixedNow.Add(time.Hour)).Return(nil).Once()

		require.NoError(t, srv.HandleReferralRecorded(ctx, &service.ReferralRecordedEvent{ReferralID: "ref-1"}))
		referralRepo.AssertNotCalled(t, "AssignReferrer", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("resolver error", func(t *testing.T) {
		srv, referralRepo, resolver := createTestReferralService(t)
		referralRepo.EXPECT().FindByID(ctx, "ref-1").Return(&entity.Referral{ID: "ref-1", Code: "FRIEND-1"}, nil).Once()
		resolver.EXPECT().Resolve(ctx, "FRIEND-1").Return("", errors.New("store unavailable")).Once()

		assert.Error(t, srv.HandleReferralRecorded(ctx, &service.ReferralRecordedEvent{ReferralID: "ref-1"}))
	})
}

func TestReferralService_ReconcileUnresolved(t *testing.T) {
	ctx := context.Background()
	srv, referralRepo, resolver := createTestReferralService(t)

	referralRepo.EXPECT().FindUnresolved(ctx, fixedNow, 10).Return([]*entity.Referral{
		{ID: "ref-1", Code: "FRIEND-1"},
		{ID: "ref-2", Code: "NOBODY"},
		{ID: "ref-3", Code: "FRIEND-3"},
	}, nil).Once()
	resolver.EXPECT().Resolve(ctx, "FRIEND-1").Return("user-1", nil).Once()
	resolver.EXPECT().Resolve(ctx, "NOBODY").Return("", nil).Once()
	referralRepo.EXPECT().DeferResolution(ctx, "ref-2", fixedNow.Add(time.Hour)).Return(nil).Once()
	resolver.EXPECT().Resolve(ctx, "FRIEND-3").Return("user-3", nil).Once()
	referralRepo.EXPECT().AssignReferrer(ctx, "ref-1", "user-1").Return(nil).Once()
	referralRepo.EXPECT().AssignReferrer(ctx, "ref-3", "user-3").Return(nil).Once()

	resolved, err := srv.ReconcileUnresolved(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, resolved)
}

func TestReferralService_ReconcileUnresolved_StopsOnWriteError(t *testing.T) {
	ctx := context.Background()
	srv, referralRepo, resolver := createTestReferralService(t)

	referralRepo.EXPECT().FindUnresolved(ctx, fixedNow, 5).Return([]*entity.Referral{
		{ID: "ref-1", Code: "FRIEND-1"},
		{ID: "ref-2", Code: "FRIEND-2"},
	}, nil).Once()
	resolver.EXPECT().Resolve(ctx, "FRIEND-1").Return("user-1", nil).Once()
	referralRepo.EXPECT().AssignReferrer(ctx, "ref-1", "user-1").Return(errors.New("conflict")).Once()

	resolved, err := srv.ReconcileUnresolved(ctx, 5)
	require.Error(t, err)
	assert.Zero(t, resolved)
}

func TestReferralService_ReconcileUnresolved_UnknownCodesDoNotStarveLaterReferrals(t *testing.T) {
	ctx := context.Background()
	f := newStoreFixture(t)

	require.NoError(t, f.users.Save(ctx, &entity.UserProfile{ID: "referrer-1", Name: "Lin", ReferralCode: "REAL-1"}))
	require.NoError(t, f.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		referrals := factory.NewReferralRepository()
		for _, ref := range []*entity.Referral{
			{ID: "unknown-1", Code: "GHOST-1", InvestorID: "user-1", CreatedAt: fixedNow.Add(-3 * time.Hour)},
			{ID: "unknown-2", Code: "GHOST-2", InvestorID: "user-2", CreatedAt: fixedNow.Add(-2 * time.Hour)},
			{ID: "valid", Code: "REAL-1", InvestorID: "user-3", CreatedAt: fixedNow.Add(-time.Hour)},
		} {
			if err := referrals.Create(ref); err != nil {
				return err
			}
		}

		return nil
	}))

	srv := NewReferralService(ReferralServiceParams{
		ReferralRepo: f.referrals,
		Resolver:     referral.NewLookupResolver(f.users),
		Config:       &config.Config{Queue: &config.QueueConfig{ReconcileBackoff: time.Hour}},
		Logger:       discardLogger(),
	}).(*referralService)

	clock := fixedNow
	srv.now = func() time.Time { return clock }

	total := 0
	for range 5 {
		resolved, err := srv.ReconcileUnresolved(ctx, 2)
		require.NoError(t, err)
		total += resolved
		clock = clock.Add(10 * time.Minute)
	}
	assert.Equal(t, 1, total)

	valid, err := f.referrals.FindByID(ctx, "valid")
	require.NoError(t, err)
	assert.Equal(t, "referrer-1", valid.ReferrerID)

	ghost, err := f.referrals.FindByID(ctx, "unknown-1")
	require.NoError(t, err)
	assert.False(t, ghost.Resolved())
	assert.Equal(t, fixedNow.Add(time.Hour), ghost.ResolveAfter)
}
