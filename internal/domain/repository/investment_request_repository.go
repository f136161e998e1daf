package repository

import (
	"context"
	"time"

	"landshare/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// RequestOrder selects the ordering of an investment request query.
type RequestOrder int

const (
	// OrderByCreatedAtAsc lists the oldest requests first.
	OrderByCreatedAtAsc RequestOrder = iota
	// OrderByCreatedAtDesc lists the newest requests first.
	OrderByCreatedAtDesc
	// OrderByAmountAsc lists the smallest requests first.
	OrderByAmountAsc
	// OrderByAmountDesc lists the largest requests first.
	OrderByAmountDesc
)

// RequestQuery filters investment requests. Zero-valued fields do not filter.
type RequestQuery struct {
	Status        entity.RequestStatus
	MaxAmountPaid *decimal.Decimal
	CreatedSince  time.Time
	ReferredOnly  bool // keeps only requests carrying a referral code
	Order         RequestOrder
	Limit         int
}

// InvestmentRequestRepository defines the interface for investment request persistence.
type InvestmentRequestRepository interface {
	// FindByID returns domainerrors.ErrInvestmentRequestNotFound when the request does not exist.
	FindByID(ctx context.Context, id string) (*entity.InvestmentRequest, error)

	// Exists reports whether a request document exists.
	Exists(ctx context.Context, id string) (bool, error)

	// Create persists a new request, assigning an ID when empty.
	Create(ctx context.Context, request *entity.InvestmentRequest) error

	// Update applies a partial update. It fails when the request does not exist.
	Update(ctx context.Context, id string, patch entity.RequestPatch) error

	// Find lists requests matching the query.
	Find(ctx context.Context, query RequestQuery) ([]*entity.InvestmentRequest, error)
}
