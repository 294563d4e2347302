package auth

import (
	"errors"
	"fmt"
	"time"

	"notes-saas/internal/domain/users"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers malformed, tampered, and expired tokens alike.
var ErrInvalidToken = errors.New("invalid or expired token")

// DefaultTTL is the session token lifetime.
const DefaultTTL = 24 * time.Hour

// Claims are the identity claims carried by a session token. Everything a
// request guard needs is in here; no database lookup is required to
// authenticate a request.
type Claims struct {
	UserID   string     `json:"userId"`
	Role     users.Role `json:"role"`
	TenantID string     `json:"tenantId"`
	jwt.RegisteredClaims
}

// Sign issues an HS256 token for u, valid for ttl.
func Sign(secret []byte, ttl time.Duration, u *users.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   u.ID,
		Role:     u.Role,
		TenantID: u.TenantID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// Parse verifies signature and expiry and returns the decoded claims.
// Only HMAC-signed tokens are accepted.
func Parse(secret []byte, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.UserID == "" || claims.TenantID == "" || !claims.Role.Valid() {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
