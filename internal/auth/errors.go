package auth

import "errors"

// Sentinel errors returned by the auth service. Handlers map these to HTTP
// statuses; nothing below this package leaks raw storage or crypto errors.
var (
	// ErrValidation indicates missing or malformed input.
	ErrValidation = errors.New("email and password are required")

	// ErrDuplicateUser indicates the email is already registered.
	ErrDuplicateUser = errors.New("user already exists")

	// ErrInvalidCredentials covers both unknown email and wrong password so
	// callers cannot enumerate registered accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken indicates a malformed, tampered, or expired token.
	ErrInvalidToken = errors.New("invalid token")

	// ErrUserNotFound indicates the authenticated user no longer exists.
	ErrUserNotFound = errors.New("user not found")

	// ErrStoreUnavailable indicates the credential store could not be
	// reached. Safe to retry.
	ErrStoreUnavailable = errors.New("credential store unavailable")
)
