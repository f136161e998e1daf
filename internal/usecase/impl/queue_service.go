package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"landshare/config"
	deliverycontext "landshare/internal/delivery/context"
	"landshare/internal/domain/constants"
	"landshare/internal/domain/entity"
	domainerrors "landshare/internal/domain/errors"
	"landshare/internal/domain/repository"
	"landshare/internal/domain/service"
	"landshare/internal/errors"
	"landshare/internal/usecase"
	"landshare/internal/util"

	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// queueService implements the QueueUsecase interface.
type queueService struct {
	requestRepo repository.InvestmentRequestRepository
	queueRepo   repository.QueueRepository
	scanLock    service.ScanLock
	metrics     service.Metrics
	logger      *slog.Logger

	cooldown         time.Duration
	scanWindow       time.Duration
	defaultBatchSize int

	mu       sync.RWMutex
	handlers map[entity.QueueItemType]usecase.QueueItemHandler

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

// QueueServiceParams holds dependencies for QueueService, injected by Fx.
type QueueServiceParams struct {
	fx.In

	RequestRepo repository.InvestmentRequestRepository
	QueueRepo   repository.QueueRepository
	ScanLock    service.ScanLock
	Config      *config.Config
	Metrics     service.Metrics
	Logger      *slog.Logger
}

// NewQueueService is the constructor for queueService.
// Investment request items get a no-op handler until a real one is registered.
func NewQueueService(params QueueServiceParams) usecase.QueueUsecase {
	srv := &queueService{
		requestRepo:      params.RequestRepo,
		queueRepo:        params.QueueRepo,
		scanLock:         params.ScanLock,
		metrics:          params.Metrics,
		logger:           params.Logger,
		cooldown:         params.Config.Queue.ChunkCooldown,
		scanWindow:       params.Config.Queue.ScanWindow,
		defaultBatchSize: params.Config.Queue.BatchSize,
		handlers:         make(map[entity.QueueItemType]usecase.QueueItemHandler),
		now:              utcNow,
		sleep:            sleepContext,
	}
	srv.handlers[entity.QueueItemTypeInvestmentRequest] = usecase.QueueItemHandlerFunc(noopHandler)

	return srv
}

func noopHandler(context.Context, *entity.QueueItem, string) error {
	return nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	case <-timer.C:
		return nil
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *queueService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *queueService) CalculatePriority(request *entity.InvestmentRequest, now time.Time) entity.QueuePriority {
	return CalculatePriority(request, now)
}

func (srv *queueService) RegisterHandler(itemType entity.QueueItemType, handler usecase.QueueItemHandler) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.handlers[itemType] = handler
}

func (srv *queueService) handler(itemType entity.QueueItemType) (usecase.QueueItemHandler, bool) {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	h, ok := srv.handlers[itemType]

	return h, ok
}

// AutoQueueRequests enqueues pending requests from the scan window that have no active queue item.
// The dedup check is a read followed by a write; the scan lock keeps concurrent scans apart.
func (srv *queueService) AutoQueueRequests(ctx context.Context) (int, error) {
	release, acquired, err := srv.scanLock.TryAcquire(ctx, constants.LockQueueScan)
	if err != nil {
		return 0, errors.Wrap(err, "failed to acquire queue scan lock")
	}
	if !acquired {
		srv.log(ctx).Info("Queue scan already running elsewhere, skipping")

		return 0, nil
	}
	defer release()

	now := srv.now()
	requests, err := srv.requestRepo.Find(ctx, repository.RequestQuery{
		Status:       entity.RequestStatusPending,
		CreatedSince: now.Add(-srv.scanWindow),
		Order:        repository.OrderByCreatedAtAsc,
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to scan pending requests")
	}

	queued := 0
	for _, request := range requests {
		active, err := srv.queueRepo.HasActiveForReference(ctx, request.ID)
		if err != nil {
			return queued, errors.Wrapf(err, "failed to check queue for request %s", request.ID)
		}
		if active {
			continue
		}

		item := &entity.QueueItem{
			Type:        entity.QueueItemTypeInvestmentRequest,
			ReferenceID: request.ID,
			Priority:    CalculatePriority(request, now),
			Status:      entity.QueueItemStatusPending,
			Metadata: entity.QueueMetadata{
				Amount:           request.AmountPaid,
				UserName:         request.UserName,
				UserEmail:        request.UserEmail,
				UserPhone:        request.UserPhone,
				PlotName:         request.PlotName,
				RequestCreatedAt: request.CreatedAt,
			},
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := srv.queueRepo.Create(ctx, item); err != nil {
			return queued, errors.Wrapf(err, "failed to enqueue request %s", request.ID)
		}
		queued++
	}

	srv.log(ctx).Info("Queue scan finished", slog.Int("scanned", len(requests)), slog.Int("queued", queued))

	return queued, nil
}

// ProcessBatch runs each chunk concurrently and pauses for the cooldown between chunks.
func (srv *queueService) ProcessBatch(ctx context.Context, items []*entity.QueueItem, adminID string, batchSize int) (*entity.BulkResult, error) {
	if adminID == "" {
		return nil, domainerrors.ErrInvalidBulkInput.WithDetails("admin id is required")
	}
	if batchSize <= 0 {
		batchSize = srv.defaultBatchSize
	}

	result := &entity.BulkResult{Success: true}
	chunks := util.Chunk(items, batchSize)
	for i, chunk := range chunks {
		result.Merge(srv.processChunk(ctx, chunk, adminID))

		if i < len(chunks)-1 {
			if err := srv.sleep(ctx, srv.cooldown); err != nil {
				return result, err
			}
		}
	}

	srv.log(ctx).Info("Queue batch processed",
		slog.Int("items", len(items)),
		slog.Int("chunks", len(chunks)),
		slog.Int("processed", result.Processed),
		slog.Int("failed", result.Failed),
	)

	return result, nil
}

func (srv *queueService) processChunk(ctx context.Context, chunk []*entity.QueueItem, adminID string) entity.BulkResult {
	var (
		mu     sync.Mutex
		result entity.BulkResult
		group  errgroup.Group
	)

	for _, item := range chunk {
		group.Go(func() error {
			err := srv.processItem(ctx, item, adminID)
			srv.metrics.ObserveQueueItem(string(item.Type), err == nil)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Failed++
				result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", item.ID, err))
			} else {
				result.Processed++
			}

			return nil
		})
	}
	_ = group.Wait()

	return result
}

// processItem claims the item, runs its handler and records the outcome.
func (srv *queueService) processItem(ctx context.Context, item *entity.QueueItem, adminID string) error {
	if err := srv.queueRepo.MarkProcessing(ctx, item.ID, adminID); err != nil {
		return errors.Wrap(err, "failed to claim queue item")
	}

	handler, ok := srv.handler(item.Type)
	if !ok {
		err := errors.Errorf("no handler registered for %s items", item.Type)
		srv.markFailed(ctx, item, err)

		return err
	}

	if err := handler.Handle(ctx, item, adminID); err != nil {
		srv.markFailed(ctx, item, err)

		return err
	}

	if err := srv.queueRepo.MarkCompleted(ctx, item.ID); err != nil {
		return errors.Wrap(err, "failed to complete queue item")
	}

	return nil
}

func (srv *queueService) markFailed(ctx context.Context, item *entity.QueueItem, cause error) {
	if err := srv.queueRepo.MarkFailed(ctx, item.ID, cause.Error()); err != nil {
		srv.log(ctx).Error("Failed to mark queue item failed", slog.String("itemID", item.ID), slog.Any("error", err))
	}
}

func (srv *queueService) ListPendingItems(ctx context.Context, limit int) ([]*entity.QueueItem, error) {
	items, err := srv.queueRepo.ListPending(ctx, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pending queue items")
	}

	return items, nil
}

// GetQueueStats tallies the whole queue on every call.
func (srv *queueService) GetQueueStats(ctx context.Context) (*entity.QueueStats, error) {
	items, err := srv.queueRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list queue items")
	}

	stats := &entity.QueueStats{}
	for _, item := range items {
		stats.Add(item)
	}

	return stats, nil
}
