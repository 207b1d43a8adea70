package domain

import (
	"errors"
	"time"
)

var (
	ErrMissingToken        = errors.New("token is missing")
	ErrMalformedToken      = errors.New("token is malformed")
	ErrBadSignature        = errors.New("token signature is invalid")
	ErrTokenExpired        = errors.New("token is expired")
	ErrUpstreamUnavailable = errors.New("token validation upstream unavailable")
)

// Claims is the signed payload carried inside a bearer token. A token is
// self-contained: validity is a function of its own signed bytes and the
// wall clock, never of server-side session state.
type Claims struct {
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}
