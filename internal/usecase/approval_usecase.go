// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"landshare/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// --- Input DTOs ---

// ApproveCommand carries everything needed to approve one investment request.
type ApproveCommand struct {
	RequestID     string
	UserID        string
	PlotID        string
	ProjectID     string
	AmountPaid    decimal.Decimal
	AreaPurchased float64
	PricePerSqft  decimal.Decimal

	ReferralCode       string
	ReferralCommission decimal.Decimal

	// AdminID is the authenticated principal acting on the request.
	AdminID string

	// Verification overrides replace the stored flags when set.
	IdentityVerified *bool
	PaymentVerified  *bool
}

// ApprovalUsecase defines the single-request transitions of an investment request.
type ApprovalUsecase interface {
	// Approve realizes a pending request in one store transaction.
	// It fails with ErrVerificationRequired before any write unless both verification flags hold.
	Approve(ctx context.Context, cmd ApproveCommand) (*entity.ApprovalResult, error)

	// Reject marks a request rejected. No other entity is touched.
	Reject(ctx context.Context, requestID, adminID, reason string) error

	// CompleteInvestment marks a request and its investment completed in one transaction.
	CompleteInvestment(ctx context.Context, requestID, investmentID, adminID string) error

	// VerifyDocuments records the verification flags. It never approves.
	VerifyDocuments(ctx context.Context, requestID string, flags entity.VerificationFlags, notes, adminID string) error
}
