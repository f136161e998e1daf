package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Investment is the holding created when a request is approved.
type Investment struct {
	ID           string
	RequestID    string
	UserID       string
	PlotID       string
	ProjectID    string
	Amount       decimal.Decimal
	Area         float64
	PricePerSqft decimal.Decimal
	ReferralCode string
	Status       InvestmentStatus
	ApprovedBy   string
	CompletedBy  string
	CompletedAt  time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// InvestmentPatch is a partial update of an investment. Nil fields are left untouched.
type InvestmentPatch struct {
	Status      *InvestmentStatus
	CompletedBy *string
	CompletedAt *time.Time
	UpdatedAt   time.Time
}

// CompletedInvestmentPatch marks an investment completed by adminID.
func CompletedInvestmentPatch(adminID string, at time.Time) InvestmentPatch {
	status := InvestmentStatusCompleted

	return InvestmentPatch{
		Status:      &status,
		CompletedBy: &adminID,
		CompletedAt: &at,
		UpdatedAt:   at,
	}
}
