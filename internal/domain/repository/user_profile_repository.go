package repository

import (
	"context"

	"landshare/internal/domain/entity"
)

// UserProfileRepository defines the interface for user profile persistence outside transactions.
type UserProfileRepository interface {
	FindByID(ctx context.Context, id string) (*entity.UserProfile, error)

	// FindByReferralCode returns the profile owning code, or ErrUserProfileNotFound.
	FindByReferralCode(ctx context.Context, code string) (*entity.UserProfile, error)

	Save(ctx context.Context, user *entity.UserProfile) error
}
