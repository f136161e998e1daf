package usecase

import (
	"context"

	"landshare/internal/domain/service"
)

// ReferralUsecase defines the asynchronous referrer reconciliation.
type ReferralUsecase interface {
	// HandleReferralRecorded resolves the referrer of the referral named by the event.
	// Referrals that are already resolved are left alone.
	HandleReferralRecorded(ctx context.Context, event *service.ReferralRecordedEvent) error

	// ReconcileUnresolved resolves up to limit unresolved referrals and returns how many were stamped.
	ReconcileUnresolved(ctx context.Context, limit int) (int, error)
}
