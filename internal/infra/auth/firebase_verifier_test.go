package auth

import (
	"context"
	"testing"

	"landshare/internal/domain/entity"
	domainerrors "landshare/internal/domain/errors"
	"landshare/internal/errors"

	"firebase.google.com/go/v4/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubIDTokenVerifier struct {
	token *auth.Token
	err   error
}

func (s stubIDTokenVerifier) VerifyIDToken(context.Context, string) (*auth.Token, error) {
	return s.token, s.err
}

func TestFirebaseVerifier_MapsClaims(t *testing.T) {
	verifier := NewFirebaseVerifier(stubIDTokenVerifier{token: &auth.Token{
		UID: "uid-1",
		Claims: map[string]any{
			"email": "ops@example.com",
			"admin": true,
		},
	}}, "admin")

	principal, err := verifier.Verify(context.Background(), "token")
	require.NoError(t, err)
	assert.Equal(t, "uid-1", principal.ID)
	assert.Equal(t, "ops@example.com", principal.Email)
	assert.True(t, principal.Roles.Contains(entity.RoleAdmin))
}

func TestFirebaseVerifier_ReadsRoleList(t *testing.T) {
	verifier := NewFirebaseVerifier(stubIDTokenVerifier{token: &auth.Token{
		UID:    "uid-2",
		Claims: map[string]any{"roles": []any{"investor", ""}},
	}}, "admin")

	principal, err := verifier.Verify(context.Background(), "token")
	require.NoError(t, err)
	assert.Equal(t, entity.Roles{entity.RoleInvestor}, principal.Roles)
}

func TestFirebaseVerifier_RejectsInvalidToken(t *testing.T) {
	verifier := NewFirebaseVerifier(stubIDTokenVerifier{err: errors.New("token has expired")}, "admin")

	principal, err := verifier.Verify(context.Background(), "token")
	assert.Nil(t, principal)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}
