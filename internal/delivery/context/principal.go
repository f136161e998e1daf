package context

import (
	"landshare/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeyPrincipal is the key for storing the authenticated admin in echo.Context.
const KeyPrincipal ContextKey = "principal"

// SetPrincipal stores the authenticated admin in echo.Context.
func SetPrincipal(c echo.Context, principal *entity.AdminPrincipal) {
	c.Set(string(KeyPrincipal), principal)
}

// GetPrincipal returns the authenticated admin, if any.
func GetPrincipal(c echo.Context) (*entity.AdminPrincipal, bool) {
	principal, ok := c.Get(string(KeyPrincipal)).(*entity.AdminPrincipal)
	if !ok || principal == nil {
		return nil, false
	}

	return principal, true
}

// GetAdminID returns the id of the authenticated admin or an empty string.
func GetAdminID(c echo.Context) string {
	if principal, ok := GetPrincipal(c); ok {
		return principal.ID
	}

	return ""
}
