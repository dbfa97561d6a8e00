// Package tokens inspects access tokens on the client side. Nothing here
// verifies signatures: the backend stays the only authority, the client only
// reads claims for display.
package tokens

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrNotJWT       = errors.New("token is not a JWT")
	ErrNoExpiration = errors.New("token has no exp claim")
)

// Info is what the client can tell about a token without the server's key.
type Info struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Expired reports whether ExpiresAt lies before now.
func (i Info) Expired(now time.Time) bool {
	return !i.ExpiresAt.IsZero() && i.ExpiresAt.Before(now)
}

// Remaining is the time left until expiry, never negative.
func (i Info) Remaining(now time.Time) time.Duration {
	if i.ExpiresAt.IsZero() || i.ExpiresAt.Before(now) {
		return 0
	}
	return i.ExpiresAt.Sub(now)
}

// Inspect reads the registered claims of token without verifying it.
func Inspect(token string) (Info, error) {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return Info{}, ErrNotJWT
	}

	info := Info{Subject: claims.Subject}
	if claims.IssuedAt != nil {
		info.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt == nil {
		return info, ErrNoExpiration
	}
	info.ExpiresAt = claims.ExpiresAt.Time
	return info, nil
}
