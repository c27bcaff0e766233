package domain

import "errors"

// Sentinel errors for the domain layer. These provide consistent, checkable
// errors for authentication failures.
var (
	// ErrInvalidCredentials indicates a sign-in attempt failed due to an
	// incorrect email or password combination. Any other authentication
	// error is treated as unexpected.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
