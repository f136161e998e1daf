package service

import (
	"context"
	"time"
)

// ReferralRecordedEvent announces a referral written without a resolved referrer
type ReferralRecordedEvent struct {
	RequestID    string    `json:"request_id,omitempty"` // For distributed tracing
	ReferralID   string    `json:"referral_id"`
	ReferralCode string    `json:"referral_code"`
	InvestorID   string    `json:"investor_id"`
	InvestmentID string    `json:"investment_id"`
	Commission   string    `json:"commission"` // decimal string
	RecordedAt   time.Time `json:"recorded_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishReferralRecorded publishes a referral event for async reconciliation
	PublishReferralRecorded(ctx context.Context, event *ReferralRecordedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
