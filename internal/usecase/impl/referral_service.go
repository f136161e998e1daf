package impl

import (
	"context"
	"log/slog"
	"time"

	"landshare/config"
	deliverycontext "landshare/internal/delivery/context"
	"landshare/internal/domain/repository"
	"landshare/internal/domain/service"
	"landshare/internal/errors"
	"landshare/internal/usecase"

	"go.uber.org/fx"
)

// referralService implements the ReferralUsecase interface.
type referralService struct {
	referralRepo repository.ReferralRepository
	resolver     service.ReferrerResolver
	logger       *slog.Logger
	backoff      time.Duration

	now func() time.Time
}

// ReferralServiceParams holds dependencies for ReferralService, injected by Fx.
// The resolver is always the lookup resolver: reconciliation is where deferred codes get resolved.
type ReferralServiceParams struct {
	fx.In

	ReferralRepo repository.ReferralRepository
	Resolver     service.ReferrerResolver `name:"lookupResolver"`
	Config       *config.Config
	Logger       *slog.Logger
}

// NewReferralService is the constructor for referralService.
func NewReferralService(params ReferralServiceParams) usecase.ReferralUsecase {
	return &referralService{
		referralRepo: params.ReferralRepo,
		resolver:     params.Resolver,
		logger:       params.Logger,
		backoff:      params.Config.Queue.ReconcileBackoff,
		now:          utcNow,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *referralService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *referralService) HandleReferralRecorded(ctx context.Context, event *service.ReferralRecordedEvent) error {
	if event == nil || event.ReferralID == "" {
		return errors.New("referral event without referral id")
	}

	referral, err := srv.referralRepo.FindByID(ctx, event.ReferralID)
	if err != nil {
		return errors.Wrap(err, "failed to load referral")
	}
	if referral.Resolved() {
		srv.log(ctx).Debug("Referral already resolved", slog.String("referralID", referral.ID))

		return nil
	}

	_, err = srv.resolve(ctx, referral.ID, referral.Code)

	return err
}

func (srv *referralService) ReconcileUnresolved(ctx context.Context, limit int) (int, error) {
	referrals, err := srv.referralRepo.FindUnresolved(ctx, srv.now(), limit)
	if err != nil {
		return 0, errors.Wrap(err, "failed to list unresolved referrals")
	}

	resolved := 0
	for _, referral := range referrals {
		ok, err := srv.resolve(ctx, referral.ID, referral.Code)
		if err != nil {
			return resolved, err
		}
		if ok {
			resolved++
		}
	}

	srv.log(ctx).Info("Referral reconciliation finished", slog.Int("candidates", len(referrals)), slog.Int("resolved", resolved))

	return resolved, nil
}

// resolve stamps the referrer when the code matches a user.
// An unknown code is pushed back by the backoff so later referrals get their turn.
func (srv *referralService) resolve(ctx context.Context, referralID, code string) (bool, error) {
	referrerID, err := srv.resolver.Resolve(ctx, code)
	if err != nil {
		return false, errors.Wrapf(err, "failed to resolve referral code %q", code)
	}
	if referrerID == "" {
		retryAt := srv.now().Add(srv.backoff)
		srv.log(ctx).Warn("Referral code matches no user",
			slog.String("referralID", referralID),
			slog.String("referralCode", code),
			slog.Time("retryAt", retryAt),
		)

		if err := srv.referralRepo.DeferResolution(ctx, referralID, retryAt); err != nil {
			return false, errors.Wrap(err, "failed to defer referral resolution")
		}

		return false, nil
	}

	if err := srv.referralRepo.AssignReferrer(ctx, referralID, referrerID); err != nil {
		return false, errors.Wrap(err, "failed to assign referrer")
	}

	srv.log(ctx).Info("Referral resolved", slog.String("referralID", referralID), slog.String("referrerID", referrerID))

	return true, nil
}
