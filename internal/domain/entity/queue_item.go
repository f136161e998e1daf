package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// QueueItemType is the kind of work a queue item refers to.
type QueueItemType string

const (
	QueueItemTypeInvestmentRequest QueueItemType = "investment_request"
	QueueItemTypeWithdrawal        QueueItemType = "withdrawal"
	QueueItemTypeKYCVerification   QueueItemType = "kyc_verification"
)

// QueuePriority is the urgency tier of a queue item.
type QueuePriority string

const (
	QueuePriorityHigh   QueuePriority = "high"
	QueuePriorityMedium QueuePriority = "medium"
	QueuePriorityLow    QueuePriority = "low"
)

// QueuePriorities lists the tiers in processing order.
var QueuePriorities = []QueuePriority{QueuePriorityHigh, QueuePriorityMedium, QueuePriorityLow}

// QueueItemStatus is the processing state of a queue item.
type QueueItemStatus string

const (
	QueueItemStatusPending    QueueItemStatus = "pending"
	QueueItemStatusProcessing QueueItemStatus = "processing"
	QueueItemStatusCompleted  QueueItemStatus = "completed"
	QueueItemStatusFailed     QueueItemStatus = "failed"
)

// IsActive reports whether the item still occupies its reference.
func (s QueueItemStatus) IsActive() bool {
	return s == QueueItemStatusPending || s == QueueItemStatusProcessing
}

// QueueMetadata is a snapshot of the referenced request taken at enqueue time.
type QueueMetadata struct {
	Amount           decimal.Decimal
	UserName         string
	UserEmail        string
	UserPhone        string
	PlotName         string
	RequestCreatedAt time.Time
}

// QueueItem is a unit of administrative work.
type QueueItem struct {
	ID           string
	Type         QueueItemType
	ReferenceID  string
	Priority     QueuePriority
	Status       QueueItemStatus
	AssignedTo   string
	Metadata     QueueMetadata
	ErrorMessage string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	StartedAt    time.Time
	CompletedAt  time.Time
}

// QueueStats tallies queue items by status and priority.
type QueueStats struct {
	Total      int
	Pending    int
	Processing int
	Completed  int
	Failed     int
	High       int
	Medium     int
	Low        int
}

// Add counts one item.
func (s *QueueStats) Add(item *QueueItem) {
	s.Total++

	switch item.Status {
	case QueueItemStatusPending:
		s.Pending++
	case QueueItemStatusProcessing:
		s.Processing++
	case QueueItemStatusCompleted:
		s.Completed++
	case QueueItemStatusFailed:
		s.Failed++
	}

	switch item.Priority {
	case QueuePriorityHigh:
		s.High++
	case QueuePriorityMedium:
		s.Medium++
	case QueuePriorityLow:
		s.Low++
	}
}
