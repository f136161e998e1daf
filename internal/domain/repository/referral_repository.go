package repository

import (
	"context"
	"time"

	"landshare/internal/domain/entity"
)

// ReferralRepository defines the interface for referral persistence outside transactions.
type ReferralRepository interface {
	// FindByID returns domainerrors.ErrReferralNotFound when the referral does not exist.
	FindByID(ctx context.Context, id string) (*entity.Referral, error)

	// AssignReferrer stamps referrer_id on a referral.
	AssignReferrer(ctx context.Context, id, referrerID string) error

	// DeferResolution pushes the next reconciliation attempt of a referral back to until.
	DeferResolution(ctx context.Context, id string, until time.Time) error

	// FindUnresolved lists referrals lacking a referrer whose next attempt is due at asOf, most overdue first.
	FindUnresolved(ctx context.Context, asOf time.Time, limit int) ([]*entity.Referral, error)
}
