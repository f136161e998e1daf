package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"landshare/internal/delivery/api/response"
	deliverycontext "landshare/internal/delivery/context"
	"landshare/internal/domain/entity"
	"landshare/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const (
	defaultHighPriorityLimit = 20
	maxHighPriorityLimit     = 200
)

// BulkHandlerParams holds dependencies for BulkHandler, injected by Fx.
type BulkHandlerParams struct {
	fx.In

	BulkUC usecase.BulkUsecase
	Logger *slog.Logger
}

// BulkHandler serves operations over many requests or users.
type BulkHandler struct {
	bulkUC usecase.BulkUsecase
	logger *slog.Logger
}

// NewBulkHandler is the constructor for BulkHandler
func NewBulkHandler(params BulkHandlerParams) *BulkHandler {
	return &BulkHandler{
		bulkUC: params.BulkUC,
		logger: params.Logger,
	}
}

// BulkRequestIDs is the body of bulk approve and verify.
type BulkRequestIDs struct {
	RequestIDs []string `json:"requestIds" validate:"required,min=1,dive,required"`
}

// BulkRejectRequest is the body of a bulk rejection.
type BulkRejectRequest struct {
	RequestIDs []string `json:"requestIds" validate:"required,min=1,dive,required"`
	Reason     string   `json:"reason" validate:"required,max=500"`
}

// BulkUserStatusRequest is the body of a bulk user status change.
type BulkUserStatusRequest struct {
	UserIDs []string `json:"userIds" validate:"required,min=1,dive,required"`
	Active  *bool    `json:"active" validate:"required"`
}

// SweepRequest is the body of a status sweep.
type SweepRequest struct {
	FromStatus string `json:"fromStatus" validate:"required,oneof=pending approved rejected completed"`
	ToStatus   string `json:"toStatus" validate:"required,oneof=pending approved rejected completed"`
	MaxCount   int    `json:"maxCount" validate:"required,gt=0,lte=5000"`
}

// AutoApproveRequest is the body of a low-value auto approval.
type AutoApproveRequest struct {
	Threshold string `json:"threshold" validate:"required,money"`
}

// bindValid binds and validates the body, rendering failures itself.
// It returns false with the rendered response when the handler must stop.
func bindValid(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, response.BindingError(c, "INVALID_INPUT", "Invalid bulk input")
	}

	if err := c.Validate(req); err != nil {
		return false, response.HandleAppError(c, err)
	}

	return true, nil
}

// BulkApprove handles POST /requests/bulk/approve
func (h *BulkHandler) BulkApprove(c echo.Context) error {
	adminID := deliverycontext.GetAdminID(c)
	if adminID == "" {
		return response.Unauthorized(c, "INVALID_TOKEN", "Admin principal missing")
	}

	var req BulkRequestIDs
	if ok, err := bindValid(c, &req); !ok {
		return err
	}

	result, err := h.bulkUC.BulkApprove(c.Request().Context(), req.RequestIDs, adminID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Bulk(c, result)
}

// BulkReject handles POST /requests/bulk/reject
func (h *BulkHandler) BulkReject(c echo.Context) error {
	adminID := deliverycontext.GetAdminID(c)
	if adminID == "" {
		return response.Unauthorized(c, "INVALID_TOKEN", "Admin principal missing")
	}

	var req BulkRejectRequest
	if ok, err := bindValid(c, &req); !ok {
		return err
	}

	result, err := h.bulkUC.BulkReject(c.Request().Context(), req.RequestIDs, adminID, req.Reason)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Bulk(c, result)
}

// BulkVerify handles POST /requests/bulk/verify
func (h *BulkHandler) BulkVerify(c echo.Context) error {
	adminID := deliverycontext.GetAdminID(c)
	if adminID == "" {
		return response.Unauthorized(c, "INVALID_TOKEN", "Admin principal missing")
	}

	var req BulkRequestIDs
	if ok, err := bindValid(c, &req); !ok {
		return err
	}

	result, err := h.bulkUC.BulkVerifyDocuments(c.Request().Context(), req.RequestIDs, adminID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Bulk(c, result)
}

// BulkUserStatus handles POST /users/bulk/status
func (h *BulkHandler) BulkUserStatus(c echo.Context) error {
	adminID := deliverycontext.GetAdminID(c)
	if adminID == "" {
		return response.Unauthorized(c, "INVALID_TOKEN", "Admin principal missing")
	}

	var req BulkUserStatusRequest
	if ok, err := bindValid(c, &req); !ok {
		return err
	}

	result, err := h.bulkUC.BulkToggleUsers(c.Request().Context(), req.UserIDs, adminID, *req.Active)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Bulk(c, result)
}

// Sweep handles POST /requests/sweep
func (h *BulkHandler) Sweep(c echo.Context) error {
	adminID := deliverycontext.GetAdminID(c)
	if adminID == "" {
		return response.Unauthorized(c, "INVALID_TOKEN", "Admin principal missing")
	}

	var req SweepRequest
	if ok, err := bindValid(c, &req); !ok {
		return err
	}

	result, err := h.bulkUC.ProcessRequestsByStatus(
		c.Request().Context(),
		entity.RequestStatus(req.FromStatus),
		entity.RequestStatus(req.ToStatus),
		adminID,
		req.MaxCount,
	)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Bulk(c, result)
}

// AutoApprove handles POST /requests/auto-approve
func (h *BulkHandler) AutoApprove(c echo.Context) error {
	adminID := deliverycontext.GetAdminID(c)
	if adminID == "" {
		return response.Unauthorized(c, "INVALID_TOKEN", "Admin principal missing")
	}

	var req AutoApproveRequest
	if ok, err := bindValid(c, &req); !ok {
		return err
	}

	threshold := decimal.RequireFromString(req.Threshold)
	result, err := h.bulkUC.AutoProcessLowValueRequests(c.Request().Context(), threshold, adminID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Bulk(c, result)
}

// HighPriority handles GET /requests/high-priority?limit=N
func (h *BulkHandler) HighPriority(c echo.Context) error {
	limit := defaultHighPriorityLimit
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return response.BadRequest(c, "INVALID_LIMIT", "limit must be a positive integer")
		}
		limit = min(parsed, maxHighPriorityLimit)
	}

	requests, err := h.bulkUC.GetHighPriorityRequests(c.Request().Context(), limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	views := make([]InvestmentRequestView, 0, len(requests))
	for _, request := range requests {
		views = append(views, newInvestmentRequestView(request))
	}

	return response.Success(c, http.StatusOK, views)
}
