// Package auth provides concrete implementations of the admin token verifiers.
package auth

import (
	"context"
	"time"

	"landshare/internal/domain/entity"
	domainerrors "landshare/internal/domain/errors"
	"landshare/internal/domain/service"
	"landshare/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// JWTVerifier verifies HS256 admin tokens signed with a shared secret.
type JWTVerifier struct {
	secret []byte
	issuer string
}

// NewJWTVerifier is the constructor for JWTVerifier.
func NewJWTVerifier(secret, issuer string) (*JWTVerifier, error) {
	if secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &JWTVerifier{secret: []byte(secret), issuer: issuer}, nil
}

// Verify parses and validates the token, returning the principal named by its subject.
func (v *JWTVerifier) Verify(_ context.Context, tokenString string) (*entity.AdminPrincipal, error) {
	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		options = append(options, jwt.WithIssuer(v.issuer))
	}

	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}, options...)
	if err != nil {
		return nil, domainerrors.ErrInvalidToken.WrapMessage(err.Error())
	}
	if !token.Valid || claims.Subject == "" {
		return nil, domainerrors.ErrInvalidToken
	}

	return &entity.AdminPrincipal{
		ID:    claims.Subject,
		Email: claims.Email,
		Roles: entity.RolesFromStrings(claims.Roles),
	}, nil
}

// Issue signs a token for subject. Operators use it to mint tokens for local environments.
func (v *JWTVerifier) Issue(subject, email string, roles entity.Roles, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := service.Claims{
		Email: email,
		Roles: roles.ToStrings(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    v.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}
