package repository

import (
	"context"

	"landshare/internal/domain/entity"
)

// InvestmentRepository defines the interface for investment reads outside transactions.
type InvestmentRepository interface {
	// FindByID returns domainerrors.ErrInvestmentNotFound when the investment does not exist.
	FindByID(ctx context.Context, id string) (*entity.Investment, error)
}
