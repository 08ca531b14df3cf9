package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/commercekit/commercekit/errors"
)

// SessionClaims are the claims carried by a customer session token.
type SessionClaims struct {
	jwt.RegisteredClaims
	CustomerID string `json:"customer_id"`
	Email      string `json:"email"`
}

// ParseSessionToken validates an HMAC-signed session token against the store
// secret and returns its claims. Expired or tampered tokens fail with an
// UPSTREAM 401 so callers treat them exactly like a rejected backend session.
func ParseSessionToken(token, secret string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Upstream(401, "unexpected token signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, errors.Upstream(401, "invalid session token").WithDetail("cause", err.Error())
	}
	if !parsed.Valid {
		return nil, errors.Upstream(401, "invalid session token")
	}
	return claims, nil
}

// SignSessionToken mints a session token for a customer. Providers backed by
// a platform that issues its own tokens do not use this; it exists for local
// fixtures and test backends.
func SignSessionToken(customerID, email, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   customerID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		CustomerID: customerID,
		Email:      email,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
