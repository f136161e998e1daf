package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvestmentRequest is an investor's application to buy area in a plot.
// Only a pending request may be approved or rejected, and only an approved one completed.
type InvestmentRequest struct {
	ID          string
	UserID      string
	UserName    string
	UserEmail   string
	UserPhone   string
	PlotID      string
	PlotName    string
	ProjectID   string
	ProjectName string

	AmountPaid    decimal.Decimal
	AreaPurchased float64 // square feet
	PricePerSqft  decimal.Decimal

	ReferralCode       string
	ReferralCommission decimal.Decimal

	IdentityVerified  bool
	PaymentVerified   bool
	VerificationNotes string
	VerifiedBy        string
	VerifiedAt        time.Time

	Status          RequestStatus
	ProcessedBy     string
	ProcessedAt     time.Time
	ApprovedBy      string
	ApprovedAt      time.Time
	RejectedBy      string
	RejectedAt      time.Time
	RejectionReason string
	CompletedBy     string
	CompletedAt     time.Time
	InvestmentID    string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasReferral reports whether the request carries a referral code.
func (r *InvestmentRequest) HasReferral() bool {
	return r.ReferralCode != ""
}

// Verification returns the stored verification flags.
func (r *InvestmentRequest) Verification() VerificationFlags {
	return VerificationFlags{
		IdentityVerified: r.IdentityVerified,
		PaymentVerified:  r.PaymentVerified,
	}
}

// VerificationFlags are the two checks that gate approval.
type VerificationFlags struct {
	IdentityVerified bool
	PaymentVerified  bool
}

// Complete reports whether both checks passed.
func (f VerificationFlags) Complete() bool {
	return f.IdentityVerified && f.PaymentVerified
}

// RequestPatch is a partial update of an investment request. Nil fields are left untouched.
type RequestPatch struct {
	Status            *RequestStatus
	IdentityVerified  *bool
	PaymentVerified   *bool
	VerificationNotes *string
	VerifiedBy        *string
	VerifiedAt        *time.Time
	ProcessedBy       *string
	ProcessedAt       *time.Time
	ApprovedBy        *string
	ApprovedAt        *time.Time
	RejectedBy        *string
	RejectedAt        *time.Time
	RejectionReason   *string
	CompletedBy       *string
	CompletedAt       *time.Time
	InvestmentID      *string
	UpdatedAt         time.Time
}

// ApprovedPatch stamps the processed and approved metadata.
func ApprovedPatch(adminID string, at time.Time) RequestPatch {
	status := RequestStatusApproved

	return RequestPatch{
		Status:      &status,
		ProcessedBy: &adminID,
		ProcessedAt: &at,
		ApprovedBy:  &adminID,
		ApprovedAt:  &at,
		UpdatedAt:   at,
	}
}

// RejectedPatch stamps the processed and rejected metadata with the reason.
func RejectedPatch(adminID, reason string, at time.Time) RequestPatch {
	status := RequestStatusRejected

	return RequestPatch{
		Status:          &status,
		ProcessedBy:     &adminID,
		ProcessedAt:     &at,
		RejectedBy:      &adminID,
		RejectedAt:      &at,
		RejectionReason: &reason,
		UpdatedAt:       at,
	}
}

// CompletedPatch stamps the completion metadata.
func CompletedPatch(adminID string, at time.Time) RequestPatch {
	status := RequestStatusCompleted

	return RequestPatch{
		Status:      &status,
		CompletedBy: &adminID,
		CompletedAt: &at,
		UpdatedAt:   at,
	}
}

// StatusPatch moves a request to status and stamps the processing admin.
// Approval metadata is added when the target is approved.
func StatusPatch(status RequestStatus, adminID string, at time.Time) RequestPatch {
	if status == RequestStatusApproved {
		return ApprovedPatch(adminID, at)
	}

	return RequestPatch{
		Status:      &status,
		ProcessedBy: &adminID,
		ProcessedAt: &at,
		UpdatedAt:   at,
	}
}
