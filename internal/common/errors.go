// Package common defines shared constants and sentinel errors used across
// the admin backend layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Validation errors (malformed or missing input).
	ErrValidation = errors.New("validation error")

	// Registration errors.
	ErrEmailExists = errors.New("email already registered")

	// Login errors. Deliberately covers both "unknown email" and "wrong
	// password" so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Password-reset errors. Covers both "unknown token" and "expired token".
	ErrInvalidResetToken = errors.New("invalid or expired reset token")

	// Change-password errors.
	ErrIncorrectPassword = errors.New("current password is incorrect")

	// Notifier errors (the reset email could not be delivered).
	ErrNotificationFailure = errors.New("notification failure")

	// Auth errors (invalid or malformed session token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")
)
