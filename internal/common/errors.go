// Package common defines shared constants and sentinel errors used across
// client and server layers of the file explorer. Callers should use
// errors.Is to match these values.
package common

import "errors"

var (
	// Path resolution / repository errors.
	ErrAccessDenied = errors.New("access denied")
	ErrNotFound     = errors.New("not found")

	// Service-level errors.
	ErrInternal     = errors.New("internal error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrConflict     = errors.New("already exists")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")
)
