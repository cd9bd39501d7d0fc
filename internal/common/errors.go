// Package common defines shared sentinel errors used across the gateway
// and server layers of the user directory. Callers should use errors.Is
// to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound         = errors.New("not found")
	ErrStoreUnavailable = errors.New("store unavailable")

	// Directory service errors.
	ErrDuplicateEmail     = errors.New("email already exists")
	ErrInvalidLimit       = errors.New("invalid limit")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
)
