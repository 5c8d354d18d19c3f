package session

import "errors"

// Typed failures surfaced by the session service. The handler layer maps
// each variant to an HTTP status; no string inspection anywhere.
var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
	ErrUserNotFound        = errors.New("user not found")
)

// ErrNotFound is the store-level missing-record sentinel. The service
// translates it into the variant appropriate to the operation.
var ErrNotFound = errors.New("record not found")
