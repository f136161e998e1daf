package auth

import (
	"context"

	"landshare/internal/domain/entity"
	domainerrors "landshare/internal/domain/errors"
	"landshare/internal/errors"

	"firebase.google.com/go/v4/auth"
)

// idTokenVerifier is the part of the Firebase auth client used here.
type idTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// FirebaseVerifier verifies Firebase ID tokens. Roles come from the custom claims
// "roles" (list) or "admin" (boolean).
type FirebaseVerifier struct {
	client    idTokenVerifier
	adminRole string
}

// NewFirebaseVerifier is the constructor for FirebaseVerifier.
func NewFirebaseVerifier(client idTokenVerifier, adminRole string) *FirebaseVerifier {
	return &FirebaseVerifier{client: client, adminRole: adminRole}
}

func (v *FirebaseVerifier) Verify(ctx context.Context, idToken string) (*entity.AdminPrincipal, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, domainerrors.ErrInvalidToken.WrapMessage(err.Error())
	}
	if token.UID == "" {
		return nil, errors.WithStack(domainerrors.ErrInvalidToken)
	}

	principal := &entity.AdminPrincipal{ID: token.UID}
	if email, ok := token.Claims["email"].(string); ok {
		principal.Email = email
	}

	switch roles := token.Claims["roles"].(type) {
	case []any:
		for _, r := range roles {
			if s, ok := r.(string); ok && s != "" {
				principal.Roles = append(principal.Roles, entity.Role(s))
			}
		}
	case string:
		principal.Roles = entity.RolesFromStrings([]string{roles})
	}
	if isAdmin, ok := token.Claims["admin"].(bool); ok && isAdmin && !principal.Roles.Contains(entity.Role(v.adminRole)) {
		principal.Roles = append(principal.Roles, entity.Role(v.adminRole))
	}

	return principal, nil
}
