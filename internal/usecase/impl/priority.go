package impl

import (
	"time"

	"landshare/internal/domain/entity"

	"github.com/shopspring/decimal"
)

var (
	highPriorityAmount   = decimal.NewFromInt(100_000)
	mediumPriorityAmount = decimal.NewFromInt(25_000)
)

const (
	highPriorityAge   = 12 * time.Hour
	mediumPriorityAge = 4 * time.Hour
)

// CalculatePriority escalates large, referred and aging requests.
// Any single trigger is enough; the triggers are not weighted.
func CalculatePriority(request *entity.InvestmentRequest, now time.Time) entity.QueuePriority {
	age := now.Sub(request.CreatedAt)

	switch {
	case request.AmountPaid.GreaterThan(highPriorityAmount), request.HasReferral(), age > highPriorityAge:
		return entity.QueuePriorityHigh
	case request.AmountPaid.GreaterThan(mediumPriorityAmount), age > mediumPriorityAge:
		return entity.QueuePriorityMedium
	default:
		return entity.QueuePriorityLow
	}
}
