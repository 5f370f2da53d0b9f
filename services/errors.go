package services

import "errors"

var (
	// ErrInvalidProfile marks nutrition input outside the accepted ranges.
	ErrInvalidProfile = errors.New("invalid profile")

	// ErrValidation marks malformed signup input (empty name, bad email,
	// password below policy minimum).
	ErrValidation = errors.New("validation failed")

	// ErrDuplicateAccount means an account already exists for the
	// normalized email.
	ErrDuplicateAccount = errors.New("account already exists")

	// ErrInvalidCredentials covers both unknown email and wrong password,
	// so login responses never reveal which one failed.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidToken covers malformed, tampered, and expired tokens.
	ErrInvalidToken = errors.New("invalid token")

	// ErrNotFound is returned when a verified token no longer resolves to
	// a stored account.
	ErrNotFound = errors.New("account not found")

	// ErrServerMisconfigured is fatal for the operation: no token may be
	// issued or verified without a signing secret.
	ErrServerMisconfigured = errors.New("server misconfigured: signing secret not set")
)
