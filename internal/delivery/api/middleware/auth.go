package middleware

import (
	"log/slog"
	"strings"

	"landshare/config"
	deliverycontext "landshare/internal/delivery/context"
	domainerrors "landshare/internal/domain/errors"
	"landshare/internal/domain/entity"
	"landshare/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AdminAuthMiddleware authenticates bearer tokens and admits admins only.
type AdminAuthMiddleware struct {
	verifier  service.TokenVerifier
	adminRole entity.Role
	logger    *slog.Logger
}

// NewAdminAuthMiddleware is the constructor for AdminAuthMiddleware.
func NewAdminAuthMiddleware(verifier service.TokenVerifier, cfg *config.Config, logger *slog.Logger) *AdminAuthMiddleware {
	adminRole := entity.RoleAdmin
	if cfg != nil && cfg.Auth != nil && cfg.Auth.AdminRole != "" {
		adminRole = entity.Role(cfg.Auth.AdminRole)
	}

	return &AdminAuthMiddleware{
		verifier:  verifier,
		adminRole: adminRole,
		logger:    logger,
	}
}

// Authenticate verifies the bearer token, requires the admin role and stores the principal for handlers.
func (m *AdminAuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			return domainerrors.ErrInvalidToken
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
		if token == "" {
			return domainerrors.ErrInvalidToken
		}

		ctx := c.Request().Context()
		principal, err := m.verifier.Verify(ctx, token)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Warn("Rejected admin token", slog.Any("error", err))

			return domainerrors.ErrInvalidToken
		}

		if principal.ID == "" || !principal.Roles.Contains(m.adminRole) {
			return domainerrors.ErrAdminRequired
		}

		deliverycontext.SetPrincipal(c, principal)

		// Downstream logs carry the acting admin
		reqLogger := deliverycontext.GetLoggerOrDefault(ctx, m.logger).With(slog.String("admin_id", principal.ID))
		c.SetRequest(c.Request().WithContext(deliverycontext.WithLogger(ctx, reqLogger)))

		return next(c)
	}
}
