package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Referral records a commission earned through a referral code.
// ReferrerID stays empty until the code is resolved to its owner.
// ResolveAfter schedules the next reconciliation attempt of an unresolved referral.
type Referral struct {
	ID               string
	Code             string
	Type             ReferralType
	InvestorID       string
	ReferrerID       string
	Commission       decimal.Decimal
	InvestmentAmount decimal.Decimal
	InvestmentID     string
	RequestID        string
	Status           ReferralStatus
	ResolveAfter     time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Resolved reports whether the referrer is known.
func (r *Referral) Resolved() bool {
	return r.ReferrerID != ""
}
