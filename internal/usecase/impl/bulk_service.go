package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"landshare/config"
	deliverycontext "landshare/internal/delivery/context"
	"landshare/internal/domain/entity"
	domainerrors "landshare/internal/domain/errors"
	"landshare/internal/domain/repository"
	"landshare/internal/domain/service"
	"landshare/internal/errors"
	"landshare/internal/usecase"
	"landshare/internal/util"

	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// Bulk operation names reported to metrics.
const (
	opBulkApprove     = "bulk_approve"
	opBulkReject      = "bulk_reject"
	opBulkVerify      = "bulk_verify_documents"
	opBulkToggleUsers = "bulk_toggle_users"
	opProcessByStatus = "process_by_status"
)

// bulkService implements the BulkUsecase interface.
type bulkService struct {
	requestRepo repository.InvestmentRequestRepository
	batches     repository.BatchFactory
	atomic      bool
	metrics     service.Metrics
	logger      *slog.Logger
	now         func() time.Time
}

// BulkServiceParams holds dependencies for BulkService, injected by Fx.
type BulkServiceParams struct {
	fx.In

	RequestRepo repository.InvestmentRequestRepository
	Batches     repository.BatchFactory
	Config      *config.Config
	Metrics     service.Metrics
	Logger      *slog.Logger
}

// NewBulkService is the constructor for bulkService.
func NewBulkService(params BulkServiceParams) usecase.BulkUsecase {
	atomic := true
	if params.Config != nil && params.Config.Bulk != nil {
		atomic = params.Config.Bulk.BatchMode != config.BatchModeBestEffort
	}

	return &bulkService{
		requestRepo: params.RequestRepo,
		batches:     params.Batches,
		atomic:      atomic,
		metrics:     params.Metrics,
		logger:      params.Logger,
		now:         utcNow,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *bulkService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// stageFunc adds the write for one target to a batch.
type stageFunc func(w repository.BatchWriter, id string)

// commit writes one update per id, splitting ids into batches the store accepts.
// An atomic batch that fails counts every item in it failed; a best-effort batch counts only the writes that failed.
func (srv *bulkService) commit(ctx context.Context, ids []string, stage stageFunc) entity.BulkResult {
	result := entity.BulkResult{Success: true}

	for _, chunk := range util.Chunk(ids, repository.MaxAtomicBatchSize) {
		if srv.atomic {
			result.Merge(srv.commitAtomic(ctx, chunk, stage))
		} else {
			result.Merge(srv.commitBestEffort(ctx, chunk, stage))
		}
	}

	return result
}

func (srv *bulkService) commitAtomic(ctx context.Context, ids []string, stage stageFunc) entity.BulkResult {
	batch := srv.batches.NewAtomicBatch()
	for _, id := range ids {
		stage(batch, id)
	}

	if err := batch.Commit(ctx); err != nil {
		srv.log(ctx).Error("Atomic batch commit failed", slog.Int("writes", batch.Len()), slog.Any("error", err))

		result := entity.BulkResult{Failed: len(ids), Errors: make([]string, 0, len(ids))}
		for _, id := range ids {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: batch commit failed: %v", id, err))
		}

		return result
	}

	return entity.BulkResult{Processed: len(ids)}
}

func (srv *bulkService) commitBestEffort(ctx context.Context, ids []string, stage stageFunc) entity.BulkResult {
	batch := srv.batches.NewBestEffortBatch()
	for _, id := range ids {
		stage(batch, id)
	}

	failures := batch.Commit(ctx)
	result := entity.BulkResult{Processed: len(ids) - len(failures), Failed: len(failures)}
	for _, failure := range failures {
		result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", failure.ID, failure.Err))
	}
	if len(failures) > 0 {
		srv.log(ctx).Warn("Best-effort batch had failed writes", slog.Int("writes", len(ids)), slog.Int("failed", len(failures)))
	}

	return result
}

func (srv *bulkService) finish(ctx context.Context, operation string, result *entity.BulkResult) *entity.BulkResult {
	srv.metrics.ObserveBulk(operation, result.Processed, result.Failed)
	srv.log(ctx).Info("Bulk operation finished",
		slog.String("operation", operation),
		slog.Int("processed", result.Processed),
		slog.Int("failed", result.Failed),
	)

	return result
}

func requireAdmin(adminID string) error {
	if adminID == "" {
		return domainerrors.ErrInvalidBulkInput.WithDetails("admin id is required")
	}

	return nil
}

// BulkApprove checks each request exists before staging its approval.
func (srv *bulkService) BulkApprove(ctx context.Context, requestIDs []string, adminID string) (*entity.BulkResult, error) {
	if err := requireAdmin(adminID); err != nil {
		return nil, err
	}

	result := &entity.BulkResult{Success: true}
	existing := make([]string, 0, len(requestIDs))
	for _, id := range util.UniqueStrings(requestIDs) {
		exists, err := srv.requestRepo.Exists(ctx, id)
		switch {
		case err != nil:
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", id, err))
		case !exists:
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("investment request %s not found", id))
		default:
			existing = append(existing, id)
		}
	}

	now := srv.now()
	result.Merge(srv.commit(ctx, existing, func(w repository.BatchWriter, id string) {
		w.UpdateInvestmentRequest(id, entity.ApprovedPatch(adminID, now))
	}))

	return srv.finish(ctx, opBulkApprove, result), nil
}

func (srv *bulkService) BulkReject(ctx context.Context, requestIDs []string, adminID, reason string) (*entity.BulkResult, error) {
	if err := requireAdmin(adminID); err != nil {
		return nil, err
	}

	now := srv.now()
	result := srv.commit(ctx, util.UniqueStrings(requestIDs), func(w repository.BatchWriter, id string) {
		w.UpdateInvestmentRequest(id, entity.RejectedPatch(adminID, reason, now))
	})

	return srv.finish(ctx, opBulkReject, &result), nil
}

func (srv *bulkService) BulkVerifyDocuments(ctx context.Context, requestIDs []string, adminID string) (*entity.BulkResult, error) {
	if err := requireAdmin(adminID); err != nil {
		return nil, err
	}

	now := srv.now()
	verified := true
	result := srv.commit(ctx, util.UniqueStrings(requestIDs), func(w repository.BatchWriter, id string) {
		w.UpdateInvestmentRequest(id, entity.RequestPatch{
			IdentityVerified: &verified,
			VerifiedBy:       &adminID,
			VerifiedAt:       &now,
			UpdatedAt:        now,
		})
	})

	return srv.finish(ctx, opBulkVerify, &result), nil
}

func (srv *bulkService) BulkToggleUsers(ctx context.Context, userIDs []string, adminID string, active bool) (*entity.BulkResult, error) {
	if err := requireAdmin(adminID); err != nil {
		return nil, err
	}

	now := srv.now()
	status := entity.UserStatusFromActive(active)
	result := srv.commit(ctx, util.UniqueStrings(userIDs), func(w repository.BatchWriter, id string) {
		w.UpdateUserProfile(id, entity.UserStatusPatch(status, adminID, now))
	})

	return srv.finish(ctx, opBulkToggleUsers, &result), nil
}

func (srv *bulkService) ProcessRequestsByStatus(ctx context.Context, from, to entity.RequestStatus, adminID string, maxCount int) (*entity.BulkResult, error) {
	if err := requireAdmin(adminID); err != nil {
		return nil, err
	}
	if !from.IsValid() || !to.IsValid() {
		return nil, domainerrors.ErrInvalidStatus.WithDetails(fmt.Sprintf("%q -> %q", from, to))
	}
	if maxCount <= 0 {
		return nil, domainerrors.ErrInvalidBulkInput.WithDetails("max count must be positive")
	}

	requests, err := srv.requestRepo.Find(ctx, repository.RequestQuery{
		Status: from,
		Order:  repository.OrderByCreatedAtAsc,
		Limit:  maxCount,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to query requests by status")
	}

	now := srv.now()
	result := srv.commit(ctx, requestIDs(requests), func(w repository.BatchWriter, id string) {
		w.UpdateInvestmentRequest(id, entity.StatusPatch(to, adminID, now))
	})

	return srv.finish(ctx, opProcessByStatus, &result), nil
}

func (srv *bulkService) AutoProcessLowValueRequests(ctx context.Context, threshold decimal.Decimal, adminID string) (*entity.BulkResult, error) {
	if threshold.IsNegative() {
		return nil, domainerrors.ErrInvalidBulkInput.WithDetails("threshold must not be negative")
	}

	requests, err := srv.requestRepo.Find(ctx, repository.RequestQuery{
		Status:        entity.RequestStatusPending,
		MaxAmountPaid: &threshold,
		Order:         repository.OrderByAmountAsc,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to query low-value requests")
	}

	srv.log(ctx).Info("Auto-approving low-value requests", slog.String("threshold", threshold.String()), slog.Int("candidates", len(requests)))

	return srv.BulkApprove(ctx, requestIDs(requests), adminID)
}

// GetHighPriorityRequests alternates between the largest pending requests and the newest referred ones.
func (srv *bulkService) GetHighPriorityRequests(ctx context.Context, maxRequests int) ([]*entity.InvestmentRequest, error) {
	if maxRequests <= 0 {
		return nil, domainerrors.ErrInvalidBulkInput.WithDetails("max requests must be positive")
	}

	byAmount, err := srv.requestRepo.Find(ctx, repository.RequestQuery{
		Status: entity.RequestStatusPending,
		Order:  repository.OrderByAmountDesc,
		Limit:  maxRequests,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to query high-value requests")
	}

	referred, err := srv.requestRepo.Find(ctx, repository.RequestQuery{
		Status:       entity.RequestStatusPending,
		ReferredOnly: true,
		Order:        repository.OrderByCreatedAtDesc,
		Limit:        maxRequests,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to query referred requests")
	}

	return mergeRanked(maxRequests, byAmount, referred), nil
}

// mergeRanked interleaves the ranked lists, dropping repeated ids, until limit is reached.
func mergeRanked(limit int, lists ...[]*entity.InvestmentRequest) []*entity.InvestmentRequest {
	merged := make([]*entity.InvestmentRequest, 0, limit)
	seen := make(map[string]struct{})

	for i := 0; len(merged) < limit; i++ {
		progressed := false
		for _, list := range lists {
			if i >= len(list) {
				continue
			}
			progressed = true

			r := list[i]
			if _, ok := seen[r.ID]; ok {
				continue
			}
			seen[r.ID] = struct{}{}
			merged = append(merged, r)
			if len(merged) == limit {
				break
			}
		}
		if !progressed {
			break
		}
	}

	return merged
}

func requestIDs(requests []*entity.InvestmentRequest) []string {
	ids := make([]string, 0, len(requests))
	for _, r := range requests {
		ids = append(ids, r.ID)
	}

	return ids
}
