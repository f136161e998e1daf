package auth

import (
	"context"
	"log/slog"

	"landshare/config"
	"landshare/internal/domain/lifecycle"
	"landshare/internal/domain/service"
	"landshare/internal/errors"
	"landshare/internal/infra/firebase"
)

// NewTokenVerifier selects the admin token verifier from auth.provider.
func NewTokenVerifier(cfg *config.Config, apps *firebase.AppProvider, logger *slog.Logger) (service.TokenVerifier, error) {
	switch cfg.Auth.Provider {
	case config.AuthProviderJWT:
		logger.Info("Verifying admin tokens as HS256 JWTs")

		return NewJWTVerifier(cfg.Auth.Secret, cfg.Auth.Issuer)

	case config.AuthProviderFirebase:
		ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancel()

		client, err := apps.Auth(ctx)
		if err != nil {
			return nil, err
		}
		logger.Info("Verifying admin tokens as Firebase ID tokens")

		return NewFirebaseVerifier(client, cfg.Auth.AdminRole), nil

	default:
		return nil, errors.Errorf("unknown auth provider: %s", cfg.Auth.Provider)
	}
}
