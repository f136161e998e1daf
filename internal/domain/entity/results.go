package entity

import "slices"

// SideEffect names one write performed by an approval.
type SideEffect string

const (
	SideEffectRequestApproved   SideEffect = "request_approved"
	SideEffectInvestmentCreated SideEffect = "investment_created"
	SideEffectPlotUpdated       SideEffect = "plot_updated"
	SideEffectUserUpdated       SideEffect = "user_updated"
	SideEffectReferralCreated   SideEffect = "referral_created"
	SideEffectProjectUpdated    SideEffect = "project_updated"
)

// ApprovalResult describes what an approval wrote and what it had to skip.
type ApprovalResult struct {
	RequestID    string
	InvestmentID string
	ReferralID   string
	Applied      []SideEffect
	Skipped      []SideEffect
}

// FullyConsistent reports whether every expected side effect was applied.
func (r *ApprovalResult) FullyConsistent() bool {
	return len(r.Skipped) == 0
}

// Applies reports whether the side effect was applied.
func (r *ApprovalResult) Applies(effect SideEffect) bool {
	return slices.Contains(r.Applied, effect)
}

// BulkResult aggregates a bulk operation. Success is true whenever the operation ran.
type BulkResult struct {
	Success   bool
	Processed int
	Failed    int
	Errors    []string
}

// Merge folds another result into r.
func (r *BulkResult) Merge(other BulkResult) {
	r.Processed += other.Processed
	r.Failed += other.Failed
	r.Errors = append(r.Errors, other.Errors...)
}
