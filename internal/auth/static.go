package auth

import (
	"context"
	"crypto/subtle"
	"errors"
)

// ErrBadCredentials is returned by StaticChecker for any failed login.
var ErrBadCredentials = errors.New("bad credentials")

// StaticChecker authenticates against a fixed username→password table from
// configuration. It stands in for a real identity provider in development
// and small deployments; the username doubles as the store namespace key.
type StaticChecker map[string]string

// Authenticate returns the username as the user id when the password
// matches. Comparison is constant-time.
func (c StaticChecker) Authenticate(_ context.Context, username, password string) (string, error) {
	want, ok := c[username]
	if !ok {
		return "", ErrBadCredentials
	}
	if subtle.ConstantTimeCompare([]byte(want), []byte(password)) != 1 {
		return "", ErrBadCredentials
	}
	return username, nil
}
