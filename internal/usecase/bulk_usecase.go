package usecase

import (
	"context"

	"landshare/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// BulkUsecase defines operations that apply one transition to many targets through batched writes.
// Every operation reports per-item accounting in an entity.BulkResult; only input validation fails the call.
type BulkUsecase interface {
	BulkApprove(ctx context.Context, requestIDs []string, adminID string) (*entity.BulkResult, error)
	BulkReject(ctx context.Context, requestIDs []string, adminID, reason string) (*entity.BulkResult, error)
	BulkVerifyDocuments(ctx context.Context, requestIDs []string, adminID string) (*entity.BulkResult, error)
	BulkToggleUsers(ctx context.Context, userIDs []string, adminID string, active bool) (*entity.BulkResult, error)

	// ProcessRequestsByStatus moves up to maxCount of the oldest requests in from to to.
	ProcessRequestsByStatus(ctx context.Context, from, to entity.RequestStatus, adminID string, maxCount int) (*entity.BulkResult, error)

	// AutoProcessLowValueRequests bulk-approves pending requests paid at or below threshold.
	AutoProcessLowValueRequests(ctx context.Context, threshold decimal.Decimal, adminID string) (*entity.BulkResult, error)

	// GetHighPriorityRequests merges the largest pending requests with the newest referred ones.
	GetHighPriorityRequests(ctx context.Context, maxRequests int) ([]*entity.InvestmentRequest, error)
}
