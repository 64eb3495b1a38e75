// Package auth mints and verifies the HS256 access tokens that carry a
// caller's principal to the registry.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/songregistry/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims are the registered JWT claims; Subject holds the principal.
type Claims struct {
	jwt.RegisteredClaims
}

// GenerateToken signs a token for principal that expires after validityDuration.
func GenerateToken(principal string, secretKey []byte, validityDuration time.Duration) (string, error) {
	if principal == "" {
		return "", errors.New("empty principal")
	}
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   principal,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
	})

	return token.SignedString(secretKey)
}

// PrincipalFromToken verifies tokenString and returns its subject. Only
// HS256 is accepted. Expired tokens fail with an error wrapping jwt.ErrTokenExpired;
// every other failure wraps common.ErrInvalidToken.
func PrincipalFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", err
		}
		return "", fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	if !token.Valid || claims.Subject == "" {
		return "", common.ErrInvalidToken
	}

	return claims.Subject, nil
}
