package handler

import (
	"log/slog"
	"net/http"

	"landshare/config"
	"landshare/internal/delivery/api/response"
	deliverycontext "landshare/internal/delivery/context"
	"landshare/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// QueueHandlerParams holds dependencies for QueueHandler, injected by Fx.
type QueueHandlerParams struct {
	fx.In

	QueueUC usecase.QueueUsecase
	Config  *config.Config
	Logger  *slog.Logger
}

// QueueHandler serves the admin work queue.
type QueueHandler struct {
	queueUC      usecase.QueueUsecase
	defaultLimit int
	logger       *slog.Logger
}

// NewQueueHandler is the constructor for QueueHandler
func NewQueueHandler(params QueueHandlerParams) *QueueHandler {
	return &QueueHandler{
		queueUC:      params.QueueUC,
		defaultLimit: params.Config.Queue.SweepLimit,
		logger:       params.Logger,
	}
}

// ProcessQueueRequest is the optional body of a queue run. Zero values fall back to the configured sizes.
type ProcessQueueRequest struct {
	Limit     int `json:"limit" validate:"gte=0,lte=1000"`
	BatchSize int `json:"batchSize" validate:"gte=0,lte=100"`
}

// ScanResponse reports a queue scan.
type ScanResponse struct {
	Success bool `json:"success"`
	Queued  int  `json:"queued"`
}

// Scan handles POST /queue/scan
func (h *QueueHandler) Scan(c echo.Context) error {
	queued, err := h.queueUC.AutoQueueRequests(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ScanResponse{Success: true, Queued: queued})
}

// Process handles POST /queue/process: it claims the oldest pending items and processes them.
func (h *QueueHandler) Process(c echo.Context) error {
	adminID := deliverycontext.GetAdminID(c)
	if adminID == "" {
		return response.Unauthorized(c, "INVALID_TOKEN", "Admin principal missing")
	}

	var req ProcessQueueRequest
	if c.Request().ContentLength != 0 {
		if err := c.Bind(&req); err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Invalid queue input")
		}
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	limit := req.Limit
	if limit == 0 {
		limit = h.defaultLimit
	}

	ctx := c.Request().Context()
	items, err := h.queueUC.ListPendingItems(ctx, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.queueUC.ProcessBatch(ctx, items, adminID, req.BatchSize)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Bulk(c, result)
}

// Stats handles GET /queue/stats
func (h *QueueHandler) Stats(c echo.Context) error {
	stats, err := h.queueUC.GetQueueStats(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newQueueStatsView(stats))
}
