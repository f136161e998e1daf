package impl

import (
	"context"
	"log/slog"

	"landshare/internal/domain/entity"
	"landshare/internal/domain/repository"
	"landshare/internal/errors"
	"landshare/internal/usecase"
)

// approvalQueueHandler approves the investment request a queue item points at.
type approvalQueueHandler struct {
	requestRepo repository.InvestmentRequestRepository
	approval    usecase.ApprovalUsecase
	logger      *slog.Logger
}

// NewApprovalQueueHandler builds the queue handler that routes investment request items through the approval engine.
func NewApprovalQueueHandler(
	requestRepo repository.InvestmentRequestRepository,
	approval usecase.ApprovalUsecase,
	logger *slog.Logger,
) usecase.QueueItemHandler {
	return &approvalQueueHandler{
		requestRepo: requestRepo,
		approval:    approval,
		logger:      logger,
	}
}

// Handle approves a pending request with its stored verification flags.
// Requests that left pending since they were queued are treated as done.
func (h *approvalQueueHandler) Handle(ctx context.Context, item *entity.QueueItem, adminID string) error {
	request, err := h.requestRepo.FindByID(ctx, item.ReferenceID)
	if err != nil {
		return errors.Wrap(err, "failed to load queued request")
	}

	if request.Status != entity.RequestStatusPending {
		h.logger.Info("Queued request is no longer pending, skipping approval",
			slog.String("itemID", item.ID),
			slog.String("requestID", request.ID),
			slog.String("status", request.Status.String()),
		)

		return nil
	}

	_, err = h.approval.Approve(ctx, usecase.ApproveCommand{
		RequestID:          request.ID,
		UserID:             request.UserID,
		PlotID:             request.PlotID,
		ProjectID:          request.ProjectID,
		AmountPaid:         request.AmountPaid,
		AreaPurchased:      request.AreaPurchased,
		PricePerSqft:       request.PricePerSqft,
		ReferralCode:       request.ReferralCode,
		ReferralCommission: request.ReferralCommission,
		AdminID:            adminID,
	})

	return err
}

// RegisterApprovalQueueHandler replaces the placeholder investment request handler.
func RegisterApprovalQueueHandler(queue usecase.QueueUsecase, handler usecase.QueueItemHandler) {
	queue.RegisterHandler(entity.QueueItemTypeInvestmentRequest, handler)
}
