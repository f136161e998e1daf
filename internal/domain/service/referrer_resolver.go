package service

import "context"

// ReferrerResolver maps a referral code to the user who owns it.
type ReferrerResolver interface {
	// Resolve returns the referrer's user ID, or "" when the code is left for later reconciliation
	// or matches nobody.
	Resolve(ctx context.Context, code string) (string, error)
}
