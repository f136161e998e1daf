package service

import (
	"context"

	"landshare/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims of admin access tokens.
type Claims struct {
	Email string   `json:"email,omitempty"`
	Roles []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// TokenVerifier turns a bearer token into an authenticated principal.
// This abstracts the identity provider from the delivery layer.
type TokenVerifier interface {
	// Verify checks the token and returns its principal. Role checks are left to the caller.
	Verify(ctx context.Context, token string) (*entity.AdminPrincipal, error)
}
