package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned by Verify for any token that fails signature,
// expiry, or claims checks. The underlying jwt error is wrapped for logging
// but handlers should expose only a generic 401.
var ErrInvalidToken = errors.New("invalid token")

// Issuer mints and verifies HS256 session tokens.
type Issuer struct {
	secret   []byte
	duration SessionDuration
}

// NewIssuer constructs an Issuer signing with secret and issuing sessions
// of the given duration.
func NewIssuer(secret []byte, duration SessionDuration) *Issuer {
	return &Issuer{secret: secret, duration: duration}
}

// Issue returns a signed token whose subject is the user id.
// Tokens carry an expiry claim unless the issuer's duration is "never".
func (i *Issuer) Issue(userID string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:  userID,
		IssuedAt: jwt.NewNumericDate(now),
	}
	if ttl, ok := i.duration.TTL(); ok {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("auth.Issuer.Issue: %w", err)
	}
	return signed, nil
}

// Verify checks the token's signature and expiry and returns its subject
// (the user id). Returns ErrInvalidToken for anything unacceptable.
func (i *Issuer) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return i.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	return claims.Subject, nil
}
