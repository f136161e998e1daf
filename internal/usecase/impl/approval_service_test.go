package impl

import (
	"context"
	"testing"
	"time"

	"landshare/internal/domain/entity"
	domainerrors "landshare/internal/domain/errors"
	"landshare/internal/domain/service"
	"landshare/internal/errors"
	"landshare/internal/infra/persistence/document"
	mockSvc "landshare/internal/mocks/service"
	"landshare/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type approvalMocks struct {
	resolver  *mockSvc.MockReferrerResolver
	publisher *mockSvc.MockEventPublisher
	metrics   *mockSvc.MockMetrics
}

func createTestApprovalService(t *testing.T, f *storeFixture) (usecase.ApprovalUsecase, approvalMocks) {
	t.Helper()

	mocks := approvalMocks{
		resolver:  mockSvc.NewMockReferrerResolver(t),
		publisher: mockSvc.NewMockEventPublisher(t),
		metrics:   mockSvc.NewMockMetrics(t),
	}

	srv := NewApprovalService(ApprovalServiceParams{
		TxManager:   f.txManager,
		RequestRepo: f.requests,
		Resolver:    mocks.resolver,
		Publisher:   mocks.publisher,
		Metrics:     mocks.metrics,
		Logger:      discardLogger(),
	})
	srv.(*approvalService).now = fixedClock

	return srv, mocks
}

func approveCommand(request *entity.InvestmentRequest) usecase.ApproveCommand {
	return usecase.ApproveCommand{
		RequestID:     request.ID,
		UserID:        request.UserID,
		PlotID:        request.PlotID,
		ProjectID:     request.ProjectID,
		AmountPaid:    request.AmountPaid,
		AreaPurchased: request.AreaPurchased,
		PricePerSqft:  request.PricePerSqft,
		AdminID:       "admin-1",
	}
}

func boolPtr(v bool) *bool {
	return &v
}

func TestApprovalService_Approve_AppliesEveryWrite(t *testing.T) {
	ctx := context.Background()
	f := newStoreFixture(t)
	f.seedWorld(t)
	request := f.seedRequest(t, pendingRequest("req-1", 5000, fixedNow.Add(-time.Hour)))
	srv, mocks := createTestApprovalService(t, f)

	cmd := approveCommand(request)
	cmd.ReferralCode = "FRIEND-7"
	cmd.ReferralCommission = decimal.NewFromInt(250)

	var published *service.ReferralRecordedEvent
	mocks.resolver.EXPECT().Resolve(ctx, "FRIEND-7").Return("", nil).Once()
	mocks.publisher.EXPECT().
		PublishReferralRecorded(ctx, mock.AnythingOfType("*service.ReferralRecordedEvent")).
		Run(func(_ context.Context, event *service.ReferralRecordedEvent) { published = event }).
		Return(nil).
		Once()
	mocks.metrics.EXPECT().ObserveApproval("approved", true).Once()

	result, err := srv.Approve(ctx, cmd)
	require.NoError(t, err)

	assert.True(t, result.FullyConsistent())
	assert.Equal(t, []entity.SideEffect{
		entity.SideEffectRequestApproved,
		entity.SideEffectInvestmentCreated,
		entity.SideEffectPlotUpdated,
		entity.SideEffectUserUpdated,
		entity.SideEffectReferralCreated,
		entity.SideEffectProjectUpdated,
	}, result.Applied)
	require.NotEmpty(t, result.InvestmentID)
	require.NotEmpty(t, result.ReferralID)

	stored := f.mustRequest(t, "req-1")
	assert.Equal(t, entity.RequestStatusApproved, stored.Status)
	assert.Equal(t, "admin-1", stored.ApprovedBy)
	assert.Equal(t, "admin-1", stored.ProcessedBy)
	assert.Equal(t, "admin-1", stored.VerifiedBy)
	assert.Equal(t, result.InvestmentID, stored.InvestmentID)
	assert.True(t, stored.ApprovedAt.Equal(fixedNow))

	investment, err := f.investments.FindByID(ctx, result.InvestmentID)
	require.NoError(t, err)
	assert.Equal(t, entity.InvestmentStatusActive, investment.Status)
	assert.Equal(t, "5000", investment.Amount.String())
	assert.Equal(t, "req-1", investment.RequestID)

	plot, err := f.plots.FindByID(ctx, "plot-1")
	require.NoError(t, err)
	assert.InDelta(t, 900, plot.AvailableArea, 1e-9)
	assert.Equal(t, 3, plot.TotalOwners)

	user, err := f.users.FindByID(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "5000", user.TotalInvestment.String())
	assert.Equal(t, "5000", user.WalletBalance.String())
	assert.InDelta(t, 100, user.PortfolioArea, 1e-9)
	assert.Equal(t, 1, user.InvestmentCount)

	project, err := f.projects.FindByID(ctx, "project-1")
	require.NoError(t, err)
	assert.Equal(t, "5000", project.TotalRevenue.String())
	assert.Equal(t, 1, project.TotalInvestors)

	referral, err := f.referrals.FindByID(ctx, result.ReferralID)
	require.NoError(t, err)
	assert.Equal(t, entity.ReferralStatusEarned, referral.Status)
	assert.Equal(t, "user-1", referral.InvestorID)
	assert.Empty(t, referral.ReferrerID)
	assert.Equal(t, "250", referral.Commission.String())

	require.NotNil(t, published)
	assert.Equal(t, result.ReferralID, published.ReferralID)
	assert.Equal(t, "FRIEND-7", published.ReferralCode)
	assert.Equal(t, "250", published.Commission)
}

func TestApprovalService_Approve_SkipsMissingRelatedDocuments(t *testing.T) {
	ctx := context.Background()
	f := newStoreFixture(t)
	request := f.seedRequest(t, pendingRequest("req-1", 5000, fixedNow))
	srv, mocks := createTestApprovalService(t, f)

	mocks.metrics.EXPECT().ObserveApproval("approved", false).Once()

	result, err := srv.Approve(ctx, approveCommand(request))
	require.NoError(t, err)

	assert.False(t, result.FullyConsistent())
	assert.ElementsMatch(t, []entity.SideEffect{
		entity.SideEffectPlotUpdated,
		entity.SideEffectUserUpdated,
		entity.SideEffectProjectUpdated,
	}, result.Skipped)
	assert.True(t, result.Applies(entity.SideEffectInvestmentCreated))
	assert.False(t, result.Applies(entity.SideEffectReferralCreated))
	assert.Empty(t, result.ReferralID)
	assert.Equal(t, entity.RequestStatusApproved, f.mustRequest(t, "req-1").Status)
}

func TestApprovalService_Approve_EmptyPlotAndProjectIDsSkipThoseUpdates(t *testing.T) {
	ctx := context.Background()
	f := newStoreFixture(t)
	f.seedWorld(t)
	request := f.seedRequest(t, pendingRequest("req-1", 5000, fixedNow))
	srv, mocks := createTestApprovalService(t, f)

	mocks.metrics.EXPECT().ObserveApproval("approved", false).Twice()

	cmd := approveCommand(request)
	cmd.ProjectID = ""
	result, err := srv.Approve(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, []entity.SideEffect{entity.SideEffectProjectUpdated}, result.Skipped)
	assert.True(t, result.Applies(entity.SideEffectPlotUpdated))
	assert.True(t, result.Applies(entity.SideEffectUserUpdated))

	project, err := f.projects.FindByID(ctx, "project-1")
	require.NoError(t, err)
	assert.Zero(t, project.TotalInvestors, "project untouched")

	cmd = approveCommand(request)
	cmd.PlotID = ""
	result, err = srv.Approve(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, []entity.SideEffect{entity.SideEffectPlotUpdated}, result.Skipped)
	assert.True(t, result.Applies(entity.SideEffectProjectUpdated))

	plot, err := f.plots.FindByID(ctx, "plot-1")
	require.NoError(t, err)
	assert.InDelta(t, 900, plot.AvailableArea, 1e-9, "only the first approval allocated area")
}

func TestApprovalService_Approve_VerificationRequired(t *testing.T) {
	ctx := context.Background()
	f := newStoreFixture(t)
	f.seedWorld(t)
	request := pendingRequest("req-1", 5000, fixedNow)
	request.PaymentVerified = false
	f.seedRequest(t, request)
	srv, mocks := createTestApprovalService(t, f)

	mocks.metrics.EXPECT().ObserveApproval("rejected_precondition", false).Once()

	result, err := srv.Approve(ctx, approveCommand(request))

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domainerrors.ErrVerificationRequired))

	assert.Equal(t, entity.RequestStatusPending, f.mustRequest(t, "req-1").Status)
	assert.Zero(t, f.count(t, document.CollectionInvestments))

	plot, err := f.plots.FindByID(ctx, "plot-1")
	require.NoError(t, err)
	assert.InDelta(t, 1000, plot.AvailableArea, 1e-9)
}

func TestApprovalService_Approve_OverridesReplaceStoredFlags(t *testing.T) {
	ctx := context.Background()

	t.Run("overrides grant approval", func(t *testing.T) {
		f := newStoreFixture(t)
		request := pendingRequest("req-1", 5000, fixedNow)
		request.IdentityVerified = false
		request.PaymentVerified = false
		f.seedRequest(t, request)
		srv, mocks := createTestApprovalService(t, f)

		mocks.metrics.EXPECT().ObserveApproval("approved", false).Once()

		cmd := approveCommand(request)
		cmd.IdentityVerified = boolPtr(true)
		cmd.PaymentVerified = boolPtr(true)

		_, err := srv.Approve(ctx, cmd)
		require.NoError(t, err)

		stored := f.mustRequest(t, "req-1")
		assert.True(t, stored.IdentityVerified)
		assert.True(t, stored.PaymentVerified)
	})

	t.Run("override revokes a stored flag", func(t *testing.T) {
		f := newStoreFixture(t)
		request := f.seedRequest(t, pendingRequest("req-1", 5000, fixedNow))
		srv, mocks := createTestApprovalService(t, f)

		mocks.metrics.EXPECT().ObserveApproval("rejected_precondition", false).Once()

		cmd := approveCommand(request)
		cmd.IdentityVerified = boolPtr(false)

		_, err := srv.Approve(ctx, cmd)
		assert.True(t, errors.Is(err, domainerrors.ErrVerificationRequired))
	})
}

func TestApprovalService_Approve_FloorsWalletAndInventory(t *testing.T) {
	ctx := context.Background()
	f := newStoreFixture(t)
	require.NoError(t, f.plots.Save(ctx, &entity.Plot{ID: "plot-1", AvailableArea: 40}))
	require.NoError(t, f.users.Save(ctx, &entity.UserProfile{ID: "user-1", WalletBalance: decimal.NewFromInt(1000)}))
	require.NoError(t, f.projects.Save(ctx, &entity.Project{ID: "project-1"}))
	request := f.seedRequest(t, pendingRequest("req-1", 5000, fixedNow))
	srv, mocks := createTestApprovalService(t, f)

	mocks.metrics.EXPECT().ObserveApproval("approved", true).Once()

	_, err := srv.Approve(ctx, approveCommand(request))
	require.NoError(t, err)

	plot, err := f.plots.FindByID(ctx, "plot-1")
	require.NoError(t, err)
	assert.Zero(t, plot.AvailableArea)

	user, err := f.users.FindByID(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, user.WalletBalance.IsZero())
	assert.Equal(t, "5000", user.TotalInvestment.String())
}

func TestApprovalService_Approve_ResolvedReferrerIsNotPublished(t *testing.T) {
	ctx := context.Background()
	f := newStoreFixture(t)
	f.seedWorld(t)
	request := f.seedRequest(t, pendingRequest("req-1", 5000, fixedNow))
	srv, mocks := createTestApprovalService(t, f)

	cmd := approveCommand(request)
	cmd.ReferralCode = "FRIEND-7"
	cmd.ReferralCommission = decimal.NewFromInt(100)

	mocks.resolver.EXPECT().Resolve(ctx, "FRIEND-7").Return("referrer-9", nil).Once()
	mocks.metrics.EXPECT().ObserveApproval("approved", true).Once()

	result, err := srv.Approve(ctx, cmd)
	require.NoError(t, err)

	referral, err := f.referrals.FindByID(ctx, result.ReferralID)
	require.NoError(t, err)
	assert.Equal(t, "referrer-9", referral.ReferrerID)
	mocks.publisher.AssertNotCalled(t, "PublishReferralRecorded", mock.Anything, mock.Anything)
}

func TestApprovalService_Approve_ResolverAndPublisherFailuresDoNotFailApproval(t *testing.T) {
	ctx := context.Background()
	f := newStoreFixture(t)
	f.seedWorld(t)
	request := f.seedRequest(t, pendingRequest("req-1", 5000, fixedNow))
	srv, mocks := createTestApprovalService(t, f)

	cmd := approveCommand(request)
	cmd.ReferralCode = "FRIEND-7"
	cmd.ReferralCommission = decimal.NewFromInt(100)

	mocks.resolver.EXPECT().Resolve(ctx, "FRIEND-7").Return("", errors.New("lookup timeout")).Once()
	mocks.publisher.EXPECT().PublishReferralRecorded(ctx, mock.Anything).Return(errors.New("broker down")).Once()
	mocks.metrics.EXPECT().ObserveApproval("approved", true).Once()

	result, err := srv.Approve(ctx, cmd)
	require.NoError(t, err)
	assert.True(t, result.Applies(entity.SideEffectReferralCreated))
}

func TestApprovalService_Approve_ZeroCommissionWritesNoReferral(t *testing.T) {
	ctx := context.Background()
	f := newStoreFixture(t)
	f.seedWorld(t)
	request := f.seedRequest(t, pendingRequest("req-1", 5000, fixedNow))
	srv, mocks := createTestApprovalService(t, f)

	cmd := approveCommand(request)
	cmd.ReferralCode = "FRIEND-7"

	mocks.metrics.EXPECT().ObserveApproval("approved", true).Once()

	result, err := srv.Approve(ctx, cmd)
	require.NoError(t, err)
	assert.Empty(t, result.ReferralID)
	assert.Zero(t, f.count(t, document.CollectionReferrals))
}

func TestApprovalService_Approve_MissingRequest(t *testing.T) {
	ctx := context.Background()
	f := newStoreFixture(t)
	f.seedWorld(t)
	srv, mocks := createTestApprovalService(t, f)

	mocks.metrics.EXPECT().ObserveApproval("failed", false).Once()

	cmd := approveCommand(pendingRequest("ghost", 5000, fixedNow))
	cmd.IdentityVerified = boolPtr(true)
	cmd.PaymentVerified = boolPtr(true)

	_, err := srv.Approve(ctx, cmd)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvestmentRequestNotFound))
	assert.Zero(t, f.count(t, document.CollectionInvestments))
}

func TestApprovalService_Approve_StoreFailureRollsBackEverything(t *testing.T) {
	ctx := context.Background()
	f := newStoreFixture(t)
	f.seedWorld(t)
	request := f.seedRequest(t, pendingRequest("req-1", 5000, fixedNow))
	srv, mocks := createTestApprovalService(t, f)

	f.store.SetFault(func(collection, _ string) error {
		if collection == document.CollectionProjects {
			return errors.New("disk full")
		}

		return nil
	})
	mocks.metrics.EXPECT().ObserveApproval("failed", false).Once()

	_, err := srv.Approve(ctx, approveCommand(request))
	require.Error(t, err)

	f.store.SetFault(nil)
	assert.Equal(t, entity.RequestStatusPending, f.mustRequest(t, "req-1").Status)
	assert.Zero(t, f.count(t, document.CollectionInvestments))

	user, err := f.users.FindByID(ctx, "user-1")
	require.NoError(t, err)
	assert.Zero(t, user.InvestmentCount)
}

func TestApprovalService_Approve_RetriesOnConflict(t *testing.T) {
	ctx := context.Background()
	f := newStoreFixture(t)
	f.seedWorld(t)
	request := f.seedRequest(t, pendingRequest("req-1", 5000, fixedNow))
	srv, mocks := createTestApprovalService(t, f)

	// A concurrent sale lands between the first attempt's reads and its commit.
	f.store.SetBeforeCommit(func(attempt int) {
		if attempt == 1 {
			require.NoError(t, f.plots.Save(ctx, &entity.Plot{ID: "plot-1", AvailableArea: 800, TotalOwners: 3}))
		}
	})
	mocks.metrics.EXPECT().ObserveApproval("approved", true).Once()

	_, err := srv.Approve(ctx, approveCommand(request))
	require.NoError(t, err)

	plot, err := f.plots.FindByID(ctx, "plot-1")
	require.NoError(t, err)
	assert.InDelta(t, 700, plot.AvailableArea, 1e-9)
	assert.Equal(t, 4, plot.TotalOwners)
	assert.Equal(t, 1, f.count(t, document.CollectionInvestments))
}

func TestApprovalService_Approve_ReapprovalRepeatsSideEffects(t *testing.T) {
	ctx := context.Background()
	f := newStoreFixture(t)
	f.seedWorld(t)
	request := f.seedRequest(t, pendingRequest("req-1", 5000, fixedNow))
	srv, mocks := createTestApprovalService(t, f)

	mocks.metrics.EXPECT().ObserveApproval("approved", true).Twice()

	_, err := srv.Approve(ctx, approveCommand(request))
	require.NoError(t, err)
	_, err = srv.Approve(ctx, approveCommand(request))
	require.NoError(t, err)

	// Status is not re-checked, so a second approval writes everything again.
	assert.Equal(t, 2, f.count(t, document.CollectionInvestments))

	user, err := f.users.FindByID(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 2, user.InvestmentCount)
	assert.Equal(t, "10000", user.TotalInvestment.String())
}

func TestApprovalService_Approve_InvalidCommand(t *testing.T) {
	f := newStoreFixture(t)
	srv, _ := createTestApprovalService(t, f)
	valid := approveCommand(pendingRequest("req-1", 5000, fixedNow))

	tests := []struct {
		name   string
		mutate func(cmd *usecase.ApproveCommand)
	}{
		{"missing admin", func(cmd *usecase.ApproveCommand) { cmd.AdminID = "" }},
		{"missing user", func(cmd *usecase.ApproveCommand) { cmd.UserID = "" }},
		{"missing request", func(cmd *usecase.ApproveCommand) { cmd.RequestID = "" }},
		{"negative amount", func(cmd *usecase.ApproveCommand) { cmd.AmountPaid = decimal.NewFromInt(-1) }},
		{"negative area", func(cmd *usecase.ApproveCommand) { cmd.AreaPurchased = -5 }},
		{"negative commission", func(cmd *usecase.ApproveCommand) { cmd.ReferralCommission = decimal.NewFromInt(-1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := valid
			tt.mutate(&cmd)

			_, err := srv.Approve(context.Background(), cmd)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidApproval))
		})
	}
}

func TestApprovalService_Reject_TouchesOnlyTheRequest(t *testing.T) {
	ctx := context.Background()
	f := newStoreFixture(t)
	f.seedWorld(t)
	f.seedRequest(t, pendingRequest("req-1", 5000, fixedNow))
	srv, _ := createTestApprovalService(t, f)

	require.NoError(t, srv.Reject(ctx, "req-1", "admin-2", "documents unreadable"))

	stored := f.mustRequest(t, "req-1")
	assert.Equal(t, entity.RequestStatusRejected, stored.Status)
	assert.Equal(t, "admin-2", stored.RejectedBy)
	assert.Equal(t, "admin-2", stored.ProcessedBy)
	assert.Equal(t, "documents unreadable", stored.RejectionReason)

	plot, err := f.plots.FindByID(ctx, "plot-1")
	require.NoError(t, err)
	assert.Equal(t, 2, plot.TotalOwners)
	assert.Zero(t, f.count(t, document.CollectionInvestments))

	err = srv.Reject(ctx, "ghost", "admin-2", "n/a")
	assert.True(t, errors.Is(err, domainerrors.ErrInvestmentRequestNotFound))
}

func TestApprovalService_CompleteInvestment(t *testing.T) {
	ctx := context.Background()
	f := newStoreFixture(t)
	f.seedWorld(t)
	request := f.seedRequest(t, pendingRequest("req-1", 5000, fixedNow))
	srv, mocks := createTestApprovalService(t, f)

	mocks.metrics.EXPECT().ObserveApproval("approved", true).Once()
	result, err := srv.Approve(ctx, approveCommand(request))
	require.NoError(t, err)

	t.Run("missing investment leaves the request approved", func(t *testing.T) {
		err := srv.CompleteInvestment(ctx, "req-1", "ghost", "admin-3")
		require.Error(t, err)
		assert.Equal(t, entity.RequestStatusApproved, f.mustRequest(t, "req-1").Status)
	})

	t.Run("completes request and investment together", func(t *testing.T) {
		require.NoError(t, srv.CompleteInvestment(ctx, "req-1", result.InvestmentID, "admin-3"))

		stored := f.mustRequest(t, "req-1")
		assert.Equal(t, entity.RequestStatusCompleted, stored.Status)
		assert.Equal(t, "admin-3", stored.CompletedBy)

		investment, err := f.investments.FindByID(ctx, result.InvestmentID)
		require.NoError(t, err)
		assert.Equal(t, entity.InvestmentStatusCompleted, investment.Status)
		assert.Equal(t, "admin-3", investment.CompletedBy)
	})
}

func TestApprovalService_VerifyDocuments_NeverApproves(t *testing.T) {
	ctx := context.Background()
	f := newStoreFixture(t)
	request := pendingRequest("req-1", 5000, fixedNow)
	request.IdentityVerified = false
	request.PaymentVerified = false
	f.seedRequest(t, request)
	srv, _ := createTestApprovalService(t, f)

	flags := entity.VerificationFlags{IdentityVerified: true, PaymentVerified: true}
	require.NoError(t, srv.VerifyDocuments(ctx, "req-1", flags, "passport checked", "admin-4"))

	stored := f.mustRequest(t, "req-1")
	assert.True(t, stored.IdentityVerified)
	assert.True(t, stored.PaymentVerified)
	assert.Equal(t, "passport checked", stored.VerificationNotes)
	assert.Equal(t, "admin-4", stored.VerifiedBy)
	assert.Equal(t, entity.RequestStatusPending, stored.Status)
}
