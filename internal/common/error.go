// Package common defines shared constants and sentinel errors used across
// client and server layers of Taskkeeper. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrForbidden = errors.New("forbidden")
	ErrInvalidID = errors.New("invalid id format")

	// Credential errors.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailInUse         = errors.New("email already in use")

	// Profile update rules checked before any write.
	ErrCurrentPasswordRequired  = errors.New("current password is required")
	ErrIncorrectCurrentPassword = errors.New("incorrect current password")
	ErrNewPasswordRequired      = errors.New("new password is required")

	// Request body could not be decoded.
	ErrMalformedBody = errors.New("malformed body")

	// Auth errors, one per guard failure path.
	ErrTokenMissing   = errors.New("missing token")
	ErrTokenBadFormat = errors.New("token is not in bearer format")
	ErrTokenExpired   = errors.New("token expired")
	ErrInvalidToken   = errors.New("invalid token")
)
