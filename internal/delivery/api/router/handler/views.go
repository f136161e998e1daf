package handler

import (
	"time"

	"landshare/internal/domain/entity"
)

// InvestmentRequestView is the JSON shape of an investment request.
type InvestmentRequestView struct {
	ID                 string    `json:"id"`
	UserID             string    `json:"userId"`
	UserName           string    `json:"userName,omitempty"`
	UserEmail          string    `json:"userEmail,omitempty"`
	PlotID             string    `json:"plotId"`
	PlotName           string    `json:"plotName,omitempty"`
	ProjectID          string    `json:"projectId"`
	AmountPaid         string    `json:"amountPaid"`
	AreaPurchased      float64   `json:"areaPurchased"`
	PricePerSqft       string    `json:"pricePerSqft"`
	ReferralCode       string    `json:"referralCode,omitempty"`
	ReferralCommission string    `json:"referralCommission,omitempty"`
	IdentityVerified   bool      `json:"identityVerified"`
	PaymentVerified    bool      `json:"paymentVerified"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"createdAt"`
}

func newInvestmentRequestView(request *entity.InvestmentRequest) InvestmentRequestView {
	view := InvestmentRequestView{
		ID:               request.ID,
		UserID:           request.UserID,
		UserName:         request.UserName,
		UserEmail:        request.UserEmail,
		PlotID:           request.PlotID,
		PlotName:         request.PlotName,
		ProjectID:        request.ProjectID,
		AmountPaid:       request.AmountPaid.String(),
		AreaPurchased:    request.AreaPurchased,
		PricePerSqft:     request.PricePerSqft.String(),
		ReferralCode:     request.ReferralCode,
		IdentityVerified: request.IdentityVerified,
		PaymentVerified:  request.PaymentVerified,
		Status:           request.Status.String(),
		CreatedAt:        request.CreatedAt,
	}
	if request.HasReferral() {
		view.ReferralCommission = request.ReferralCommission.String()
	}

	return view
}

// ApprovalView reports the writes of an approval.
type ApprovalView struct {
	Success         bool     `json:"success"`
	Message         string   `json:"message"`
	ID              string   `json:"id"`
	InvestmentID    string   `json:"investmentId"`
	ReferralID      string   `json:"referralId,omitempty"`
	Applied         []string `json:"applied"`
	Skipped         []string `json:"skipped"`
	FullyConsistent bool     `json:"fullyConsistent"`
}

func newApprovalView(result *entity.ApprovalResult) ApprovalView {
	return ApprovalView{
		Success:         true,
		Message:         "Investment request approved",
		ID:              result.RequestID,
		InvestmentID:    result.InvestmentID,
		ReferralID:      result.ReferralID,
		Applied:         sideEffectNames(result.Applied),
		Skipped:         sideEffectNames(result.Skipped),
		FullyConsistent: result.FullyConsistent(),
	}
}

func sideEffectNames(effects []entity.SideEffect) []string {
	names := make([]string, 0, len(effects))
	for _, effect := range effects {
		names = append(names, string(effect))
	}

	return names
}

// QueueStatsView is the JSON shape of queue statistics.
type QueueStatsView struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	Processing int `json:"processing"`
	Completed  int `json:"completed"`
	Failed     int `json:"failed"`
	High       int `json:"high"`
	Medium     int `json:"medium"`
	Low        int `json:"low"`
}

func newQueueStatsView(stats *entity.QueueStats) QueueStatsView {
	return QueueStatsView{
		Total:      stats.Total,
		Pending:    stats.Pending,
		Processing: stats.Processing,
		Completed:  stats.Completed,
		Failed:     stats.Failed,
		High:       stats.High,
		Medium:     stats.Medium,
		Low:        stats.Low,
	}
}
