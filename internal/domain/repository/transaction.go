package repository

import (
	"context"

	"landshare/internal/domain/entity"
)

// TransactionManager defines the interface for running entity store transactions.
// This allows the use case layer to handle transactions without depending on a specific store driver.
type TransactionManager interface {
	// Execute runs a function within a store transaction.
	// If the function returns an error, every write is discarded. Otherwise, they are committed together.
	// Write conflicts rerun fn from the start up to the configured attempt limit, so fn must not keep state
	// between attempts. Inside fn all reads must happen before the first write.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances that are bound to a specific transaction.
// Transaction-bound repositories inherit the context passed to Execute.
type RepositoryFactory interface {
	// NewInvestmentRequestRepository returns an InvestmentRequestTxRepository bound to the current transaction.
	NewInvestmentRequestRepository() InvestmentRequestTxRepository

	// NewInvestmentRepository returns an InvestmentTxRepository bound to the current transaction.
	NewInvestmentRepository() InvestmentTxRepository

	// NewPlotRepository returns a PlotTxRepository bound to the current transaction.
	NewPlotRepository() PlotTxRepository

	// NewUserProfileRepository returns a UserProfileTxRepository bound to the current transaction.
	NewUserProfileRepository() UserProfileTxRepository

	// NewProjectRepository returns a ProjectTxRepository bound to the current transaction.
	NewProjectRepository() ProjectTxRepository

	// NewReferralRepository returns a ReferralTxRepository bound to the current transaction.
	NewReferralRepository() ReferralTxRepository
}

// InvestmentRequestTxRepository reads and updates investment requests inside a transaction.
type InvestmentRequestTxRepository interface {
	// FindByID returns domainerrors.ErrInvestmentRequestNotFound when the request does not exist.
	FindByID(id string) (*entity.InvestmentRequest, error)
	Update(id string, patch entity.RequestPatch) error
}

// InvestmentTxRepository writes investments inside a transaction.
type InvestmentTxRepository interface {
	// NewID allocates an identifier for an investment that is about to be created.
	NewID() string
	Create(investment *entity.Investment) error
	Update(id string, patch entity.InvestmentPatch) error
}

// PlotTxRepository reads and updates plot inventory inside a transaction.
type PlotTxRepository interface {
	// FindByID returns ErrPlotNotFound when the plot does not exist.
	FindByID(id string) (*entity.Plot, error)
	// UpdateInventory writes available_area and total_owners.
	UpdateInventory(plot *entity.Plot) error
}

// UserProfileTxRepository reads and updates portfolio aggregates inside a transaction.
type UserProfileTxRepository interface {
	// FindByID returns ErrUserProfileNotFound when the profile does not exist.
	FindByID(id string) (*entity.UserProfile, error)
	// UpdatePortfolio writes total_investment, portfolio_area, wallet_balance and investment_count.
	UpdatePortfolio(user *entity.UserProfile) error
}

// ProjectTxRepository reads and updates project totals inside a transaction.
type ProjectTxRepository interface {
	// FindByID returns ErrProjectNotFound when the project does not exist.
	FindByID(id string) (*entity.Project, error)
	// UpdateTotals writes total_revenue and total_investors.
	UpdateTotals(project *entity.Project) error
}

// ReferralTxRepository writes referral records inside a transaction.
type ReferralTxRepository interface {
	NewID() string
	Create(referral *entity.Referral) error
}
