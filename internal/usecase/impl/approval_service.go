// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "landshare/internal/delivery/context"
	"landshare/internal/domain/entity"
	domainerrors "landshare/internal/domain/errors"
	"landshare/internal/domain/repository"
	"landshare/internal/domain/service"
	"landshare/internal/errors"
	"landshare/internal/usecase"

	"go.uber.org/fx"
)

// Approval outcomes reported to metrics.
const (
	approvalOutcomeApproved     = "approved"
	approvalOutcomePrecondition = "rejected_precondition"
	approvalOutcomeFailed       = "failed"
)

// approvalService implements the ApprovalUsecase interface.
type approvalService struct {
	txManager   repository.TransactionManager
	requestRepo repository.InvestmentRequestRepository
	resolver    service.ReferrerResolver
	publisher   service.EventPublisher
	metrics     service.Metrics
	logger      *slog.Logger
	now         func() time.Time
}

// ApprovalServiceParams holds dependencies for ApprovalService, injected by Fx.
type ApprovalServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	RequestRepo repository.InvestmentRequestRepository
	Resolver    service.ReferrerResolver
	Publisher   service.EventPublisher
	Metrics     service.Metrics
	Logger      *slog.Logger
}

// NewApprovalService is the constructor for approvalService.
func NewApprovalService(params ApprovalServiceParams) usecase.ApprovalUsecase {
	return &approvalService{
		txManager:   params.TxManager,
		requestRepo: params.RequestRepo,
		resolver:    params.Resolver,
		publisher:   params.Publisher,
		metrics:     params.Metrics,
		logger:      params.Logger,
		now:         utcNow,
	}
}

func utcNow() time.Time {
	return time.Now().UTC()
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *approvalService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Approve realizes a pending request: the request, investment, plot, user, referral and project
// writes commit together or not at all.
func (srv *approvalService) Approve(ctx context.Context, cmd usecase.ApproveCommand) (*entity.ApprovalResult, error) {
	if err := validateApproveCommand(cmd); err != nil {
		return nil, err
	}

	flags, err := srv.resolveVerification(ctx, cmd)
	if err != nil {
		return nil, err
	}
	if !flags.Complete() {
		srv.log(ctx).Warn("Approval blocked by incomplete verification",
			slog.String("requestID", cmd.RequestID),
			slog.Bool("identityVerified", flags.IdentityVerified),
			slog.Bool("paymentVerified", flags.PaymentVerified),
		)
		srv.metrics.ObserveApproval(approvalOutcomePrecondition, false)

		return nil, domainerrors.ErrVerificationRequired.WithDetails(cmd.RequestID)
	}

	withReferral := cmd.ReferralCode != "" && cmd.ReferralCommission.IsPositive()
	referrerID := ""
	if withReferral {
		referrerID = srv.resolveReferrer(ctx, cmd.ReferralCode)
	}

	var result *entity.ApprovalResult
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		attempt, err := srv.applyApproval(repoFactory, cmd, flags, withReferral, referrerID)
		if err != nil {
			return err
		}
		result = attempt

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Approval transaction failed", slog.String("requestID", cmd.RequestID), slog.Any("error", err))
		srv.metrics.ObserveApproval(approvalOutcomeFailed, false)

		return nil, errors.Wrap(err, "failed to execute approval transaction")
	}

	srv.metrics.ObserveApproval(approvalOutcomeApproved, result.FullyConsistent())
	if !result.FullyConsistent() {
		srv.log(ctx).Warn("Approval skipped missing related documents",
			slog.String("requestID", cmd.RequestID),
			slog.Any("skipped", result.Skipped),
		)
	}

	if result.ReferralID != "" && referrerID == "" {
		srv.publishReferral(ctx, cmd, result)
	}

	srv.log(ctx).Info("Investment request approved",
		slog.String("requestID", cmd.RequestID),
		slog.String("investmentID", result.InvestmentID),
		slog.String("adminID", cmd.AdminID),
	)

	return result, nil
}

// validateApproveCommand leaves the plot and project ids optional; an empty one skips that update.
func validateApproveCommand(cmd usecase.ApproveCommand) error {
	switch {
	case cmd.RequestID == "":
		return domainerrors.ErrInvalidApproval.WithDetails("request id is required")
	case cmd.UserID == "":
		return domainerrors.ErrInvalidApproval.WithDetails("user id is required")
	case cmd.AdminID == "":
		return domainerrors.ErrInvalidApproval.WithDetails("admin id is required")
	case cmd.AmountPaid.IsNegative():
		return domainerrors.ErrInvalidApproval.WithDetails("amount paid must not be negative")
	case cmd.AreaPurchased < 0:
		return domainerrors.ErrInvalidApproval.WithDetails("area purchased must not be negative")
	case cmd.PricePerSqft.IsNegative():
		return domainerrors.ErrInvalidApproval.WithDetails("price per sqft must not be negative")
	case cmd.ReferralCommission.IsNegative():
		return domainerrors.ErrInvalidApproval.WithDetails("referral commission must not be negative")
	}

	return nil
}

// resolveVerification applies the overrides on top of the stored flags.
// The stored request is only read when an override is missing.
func (srv *approvalService) resolveVerification(ctx context.Context, cmd usecase.ApproveCommand) (entity.VerificationFlags, error) {
	var flags entity.VerificationFlags
	if cmd.IdentityVerified == nil || cmd.PaymentVerified == nil {
		request, err := srv.requestRepo.FindByID(ctx, cmd.RequestID)
		if err != nil {
			return flags, err
		}
		flags = request.Verification()
	}

	if cmd.IdentityVerified != nil {
		flags.IdentityVerified = *cmd.IdentityVerified
	}
	if cmd.PaymentVerified != nil {
		flags.PaymentVerified = *cmd.PaymentVerified
	}

	return flags, nil
}

// resolveReferrer never fails the approval; an unresolved referrer is reconciled later.
func (srv *approvalService) resolveReferrer(ctx context.Context, code string) string {
	referrerID, err := srv.resolver.Resolve(ctx, code)
	if err != nil {
		srv.log(ctx).Warn("Referrer resolution failed, deferring", slog.String("referralCode", code), slog.Any("error", err))

		return ""
	}

	return referrerID
}

// applyApproval performs every read before the first write.
func (srv *approvalService) applyApproval(
	repoFactory repository.RepositoryFactory,
	cmd usecase.ApproveCommand,
	flags entity.VerificationFlags,
	withReferral bool,
	referrerID string,
) (*entity.ApprovalResult, error) {
	requestRepo := repoFactory.NewInvestmentRequestRepository()
	investmentRepo := repoFactory.NewInvestmentRepository()
	plotRepo := repoFactory.NewPlotRepository()
	userRepo := repoFactory.NewUserProfileRepository()
	projectRepo := repoFactory.NewProjectRepository()
	referralRepo := repoFactory.NewReferralRepository()

	if _, err := requestRepo.FindByID(cmd.RequestID); err != nil {
		return nil, err
	}

	var plot *entity.Plot
	if cmd.PlotID != "" {
		found, err := plotRepo.FindByID(cmd.PlotID)
		if err != nil && !errors.Is(err, repository.ErrPlotNotFound) {
			return nil, errors.Wrap(err, "failed to read plot")
		}
		plot = found
	}
	user, err := userRepo.FindByID(cmd.UserID)
	if err != nil && !errors.Is(err, repository.ErrUserProfileNotFound) {
		return nil, errors.Wrap(err, "failed to read user profile")
	}
	var project *entity.Project
	if cmd.ProjectID != "" {
		found, err := projectRepo.FindByID(cmd.ProjectID)
		if err != nil && !errors.Is(err, repository.ErrProjectNotFound) {
			return nil, errors.Wrap(err, "failed to read project")
		}
		project = found
	}

	now := srv.now()
	result := &entity.ApprovalResult{RequestID: cmd.RequestID}
	result.InvestmentID = investmentRepo.NewID()

	patch := entity.ApprovedPatch(cmd.AdminID, now)
	patch.IdentityVerified = &flags.IdentityVerified
	patch.PaymentVerified = &flags.PaymentVerified
	patch.VerifiedBy = &cmd.AdminID
	patch.VerifiedAt = &now
	patch.InvestmentID = &result.InvestmentID
	if err := requestRepo.Update(cmd.RequestID, patch); err != nil {
		return nil, err
	}
	result.Applied = append(result.Applied, entity.SideEffectRequestApproved)

	investment := &entity.Investment{
		ID:           result.InvestmentID,
		RequestID:    cmd.RequestID,
		UserID:       cmd.UserID,
		PlotID:       cmd.PlotID,
		ProjectID:    cmd.ProjectID,
		Amount:       cmd.AmountPaid,
		Area:         cmd.AreaPurchased,
		PricePerSqft: cmd.PricePerSqft,
		ReferralCode: cmd.ReferralCode,
		Status:       entity.InvestmentStatusActive,
		ApprovedBy:   cmd.AdminID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := investmentRepo.Create(investment); err != nil {
		return nil, err
	}
	result.Applied = append(result.Applied, entity.SideEffectInvestmentCreated)

	if plot != nil {
		plot.AllocateArea(cmd.AreaPurchased, now)
		if err := plotRepo.UpdateInventory(plot); err != nil {
			return nil, err
		}
		result.Applied = append(result.Applied, entity.SideEffectPlotUpdated)
	} else {
		result.Skipped = append(result.Skipped, entity.SideEffectPlotUpdated)
	}

	if user != nil {
		user.RecordInvestment(cmd.AmountPaid, cmd.AreaPurchased, now)
		if err := userRepo.UpdatePortfolio(user); err != nil {
			return nil, err
		}
		result.Applied = append(result.Applied, entity.SideEffectUserUpdated)
	} else {
		result.Skipped = append(result.Skipped, entity.SideEffectUserUpdated)
	}

	if withReferral {
		referral := &entity.Referral{
			ID:               referralRepo.NewID(),
			Code:             cmd.ReferralCode,
			Type:             entity.ReferralTypeInvestmentCommission,
			InvestorID:       cmd.UserID,
			ReferrerID:       referrerID,
			Commission:       cmd.ReferralCommission,
			InvestmentAmount: cmd.AmountPaid,
			InvestmentID:     result.InvestmentID,
			RequestID:        cmd.RequestID,
			Status:           entity.ReferralStatusEarned,
			CreatedAt:        now,
			UpdatedAt:        now,
		}
		if err := referralRepo.Create(referral); err != nil {
			return nil, err
		}
		result.ReferralID = referral.ID
		result.Applied = append(result.Applied, entity.SideEffectReferralCreated)
	}

	if project != nil {
		project.RecordInvestment(cmd.AmountPaid, now)
		if err := projectRepo.UpdateTotals(project); err != nil {
			return nil, err
		}
		result.Applied = append(result.Applied, entity.SideEffectProjectUpdated)
	} else {
		result.Skipped = append(result.Skipped, entity.SideEffectProjectUpdated)
	}

	return result, nil
}

func (srv *approvalService) publishReferral(ctx context.Context, cmd usecase.ApproveCommand, result *entity.ApprovalResult) {
	event := &service.ReferralRecordedEvent{
		RequestID:    deliverycontext.GetRequestIDFromContext(ctx),
		ReferralID:   result.ReferralID,
		ReferralCode: cmd.ReferralCode,
		InvestorID:   cmd.UserID,
		InvestmentID: result.InvestmentID,
		Commission:   cmd.ReferralCommission.String(),
		RecordedAt:   srv.now(),
	}

	if err := srv.publisher.PublishReferralRecorded(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish referral event",
			slog.String("referralID", result.ReferralID),
			slog.Any("error", err),
		)
	}
}

// Reject marks the request rejected in a single update.
func (srv *approvalService) Reject(ctx context.Context, requestID, adminID, reason string) error {
	if requestID == "" || adminID == "" {
		return domainerrors.ErrInvalidApproval.WithDetails("request id and admin id are required")
	}

	if err := srv.requestRepo.Update(ctx, requestID, entity.RejectedPatch(adminID, reason, srv.now())); err != nil {
		srv.log(ctx).Error("Failed to reject investment request", slog.String("requestID", requestID), slog.Any("error", err))

		return errors.Wrap(err, "failed to reject investment request")
	}

	srv.log(ctx).Info("Investment request rejected", slog.String("requestID", requestID), slog.String("adminID", adminID))

	return nil
}

// CompleteInvestment settles an approved request and its investment together.
func (srv *approvalService) CompleteInvestment(ctx context.Context, requestID, investmentID, adminID string) error {
	if requestID == "" || investmentID == "" || adminID == "" {
		return domainerrors.ErrInvalidApproval.WithDetails("request id, investment id and admin id are required")
	}

	now := srv.now()
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewInvestmentRequestRepository().Update(requestID, entity.CompletedPatch(adminID, now)); err != nil {
			return err
		}

		return repoFactory.NewInvestmentRepository().Update(investmentID, entity.CompletedInvestmentPatch(adminID, now))
	})
	if err != nil {
		srv.log(ctx).Error("Failed to complete investment",
			slog.String("requestID", requestID),
			slog.String("investmentID", investmentID),
			slog.Any("error", err),
		)

		return errors.Wrap(err, "failed to complete investment")
	}

	srv.log(ctx).Info("Investment completed", slog.String("requestID", requestID), slog.String("investmentID", investmentID))

	return nil
}

// VerifyDocuments records both verification flags with the verifier metadata.
func (srv *approvalService) VerifyDocuments(ctx context.Context, requestID string, flags entity.VerificationFlags, notes, adminID string) error {
	if requestID == "" || adminID == "" {
		return domainerrors.ErrInvalidApproval.WithDetails("request id and admin id are required")
	}

	now := srv.now()
	patch := entity.RequestPatch{
		IdentityVerified:  &flags.IdentityVerified,
		PaymentVerified:   &flags.PaymentVerified,
		VerificationNotes: &notes,
		VerifiedBy:        &adminID,
		VerifiedAt:        &now,
		UpdatedAt:         now,
	}

	if err := srv.requestRepo.Update(ctx, requestID, patch); err != nil {
		return errors.Wrap(err, "failed to verify documents")
	}

	srv.log(ctx).Info("Investment request documents verified",
		slog.String("requestID", requestID),
		slog.Bool("identityVerified", flags.IdentityVerified),
		slog.Bool("paymentVerified", flags.PaymentVerified),
	)

	return nil
}
