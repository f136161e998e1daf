// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// RequestStatus is the lifecycle state of an investment request.
type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusApproved  RequestStatus = "approved"
	RequestStatusRejected  RequestStatus = "rejected"
	RequestStatusCompleted RequestStatus = "completed"
)

// String returns the string representation of the RequestStatus.
func (s RequestStatus) String() string {
	return string(s)
}

// IsValid checks if the RequestStatus is a valid value.
func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestStatusPending, RequestStatusApproved, RequestStatusRejected, RequestStatusCompleted:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition leaves this status.
func (s RequestStatus) IsTerminal() bool {
	return s == RequestStatusRejected || s == RequestStatusCompleted
}

// InvestmentStatus is the lifecycle state of an investment.
type InvestmentStatus string

const (
	InvestmentStatusActive    InvestmentStatus = "active"
	InvestmentStatusCompleted InvestmentStatus = "completed"
)

// UserStatus is the account state of a user profile.
type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
)

// UserStatusFromActive maps an active flag onto a UserStatus.
func UserStatusFromActive(active bool) UserStatus {
	if active {
		return UserStatusActive
	}

	return UserStatusInactive
}

// ReferralType classifies a referral record.
type ReferralType string

const ReferralTypeInvestmentCommission ReferralType = "investment_commission"

// ReferralStatus is the payout state of a referral record.
type ReferralStatus string

const ReferralStatusEarned ReferralStatus = "earned"
