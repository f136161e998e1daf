package handler

import (
	"log/slog"
	"net/http"

	"landshare/internal/delivery/api/response"
	deliverycontext "landshare/internal/delivery/context"
	"landshare/internal/domain/entity"
	"landshare/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// RequestHandlerParams holds dependencies for RequestHandler, injected by Fx.
type RequestHandlerParams struct {
	fx.In

	ApprovalUC usecase.ApprovalUsecase
	Logger     *slog.Logger
}

// RequestHandler serves the single investment request transitions.
type RequestHandler struct {
	approvalUC usecase.ApprovalUsecase
	logger     *slog.Logger
}

// NewRequestHandler is the constructor for RequestHandler
func NewRequestHandler(params RequestHandlerParams) *RequestHandler {
	return &RequestHandler{
		approvalUC: params.ApprovalUC,
		logger:     params.Logger,
	}
}

// ApproveRequest is the body of an approval. Amounts are decimal strings.
type ApproveRequest struct {
	UserID             string  `json:"userId" validate:"required"`
	PlotID             string  `json:"plotId"`
	ProjectID          string  `json:"projectId"`
	AmountPaid         string  `json:"amountPaid" validate:"required,money"`
	AreaPurchased      float64 `json:"areaPurchased" validate:"gte=0"`
	PricePerSqft       string  `json:"pricePerSqft" validate:"required,money"`
	ReferralCode       string  `json:"referralCode"`
	ReferralCommission string  `json:"referralCommission" validate:"omitempty,money"`
	IdentityVerified   *bool   `json:"identityVerified"`
	PaymentVerified    *bool   `json:"paymentVerified"`
}

// RejectRequest is the body of a rejection.
type RejectRequest struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

// CompleteRequest is the body of a completion.
type CompleteRequest struct {
	InvestmentID string `json:"investmentId" validate:"required"`
}

// VerifyRequest is the body of a document verification.
type VerifyRequest struct {
	IdentityVerified bool   `json:"identityVerified"`
	PaymentVerified  bool   `json:"paymentVerified"`
	Notes            string `json:"notes" validate:"max=1000"`
}

// toCommand builds the approval command. The body was validated, so parsing cannot fail.
func (r *ApproveRequest) toCommand(requestID, adminID string) usecase.ApproveCommand {
	commission := decimal.Zero
	if r.ReferralCommission != "" {
		commission = decimal.RequireFromString(r.ReferralCommission)
	}

	return usecase.ApproveCommand{
		RequestID:          requestID,
		UserID:             r.UserID,
		PlotID:             r.PlotID,
		ProjectID:          r.ProjectID,
		AmountPaid:         decimal.RequireFromString(r.AmountPaid),
		AreaPurchased:      r.AreaPurchased,
		PricePerSqft:       decimal.RequireFromString(r.PricePerSqft),
		ReferralCode:       r.ReferralCode,
		ReferralCommission: commission,
		AdminID:            adminID,
		IdentityVerified:   r.IdentityVerified,
		PaymentVerified:    r.PaymentVerified,
	}
}

// Approve handles POST /requests/:id/approve
func (h *RequestHandler) Approve(c echo.Context) error {
	adminID := deliverycontext.GetAdminID(c)
	if adminID == "" {
		return response.Unauthorized(c, "INVALID_TOKEN", "Admin principal missing")
	}

	var req ApproveRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid approval input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.approvalUC.Approve(c.Request().Context(), req.toCommand(c.Param("id"), adminID))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newApprovalView(result))
}

// Reject handles POST /requests/:id/reject
func (h *RequestHandler) Reject(c echo.Context) error {
	adminID := deliverycontext.GetAdminID(c)
	if adminID == "" {
		return response.Unauthorized(c, "INVALID_TOKEN", "Admin principal missing")
	}

	var req RejectRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rejection input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	requestID := c.Param("id")
	if err := h.approvalUC.Reject(c.Request().Context(), requestID, adminID, req.Reason); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Action(c, "Investment request rejected", requestID)
}

// Complete handles POST /requests/:id/complete
func (h *RequestHandler) Complete(c echo.Context) error {
	adminID := deliverycontext.GetAdminID(c)
	if adminID == "" {
		return response.Unauthorized(c, "INVALID_TOKEN", "Admin principal missing")
	}

	var req CompleteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid completion input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	requestID := c.Param("id")
	if err := h.approvalUC.CompleteInvestment(c.Request().Context(), requestID, req.InvestmentID, adminID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Action(c, "Investment completed", requestID)
}

// Verify handles POST /requests/:id/verify
func (h *RequestHandler) Verify(c echo.Context) error {
	adminID := deliverycontext.GetAdminID(c)
	if adminID == "" {
		return response.Unauthorized(c, "INVALID_TOKEN", "Admin principal missing")
	}

	var req VerifyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid verification input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	requestID := c.Param("id")
	flags := entity.VerificationFlags{
		IdentityVerified: req.IdentityVerified,
		PaymentVerified:  req.PaymentVerified,
	}
	if err := h.approvalUC.VerifyDocuments(c.Request().Context(), requestID, flags, req.Notes, adminID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Action(c, "Documents verified", requestID)
}
