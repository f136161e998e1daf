package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// UserProfile holds an investor's portfolio aggregates.
type UserProfile struct {
	ID              string
	Name            string
	Email           string
	Phone           string
	ReferralCode    string // the user's own shareable code
	TotalInvestment decimal.Decimal
	PortfolioArea   float64
	WalletBalance   decimal.Decimal
	InvestmentCount int
	Status          UserStatus
	UpdatedBy       string
	UpdatedAt       time.Time
}

// RecordInvestment folds an approved investment into the portfolio.
// The wallet balance never drops below zero.
func (u *UserProfile) RecordInvestment(amount decimal.Decimal, area float64, at time.Time) {
	u.TotalInvestment = u.TotalInvestment.Add(amount)
	u.PortfolioArea += area
	u.WalletBalance = decimal.Max(u.WalletBalance.Sub(amount), decimal.Zero)
	u.InvestmentCount++
	u.UpdatedAt = at
}

// UserPatch is a partial update of a user profile. Nil fields are left untouched.
type UserPatch struct {
	Status    *UserStatus
	UpdatedBy *string
	UpdatedAt time.Time
}

// UserStatusPatch sets the account status on behalf of adminID.
func UserStatusPatch(status UserStatus, adminID string, at time.Time) UserPatch {
	return UserPatch{
		Status:    &status,
		UpdatedBy: &adminID,
		UpdatedAt: at,
	}
}
