package entity

import "errors"

// Sentinel errors shared between usecases, repositories and handlers.
// Handlers map these to HTTP statuses with errors.Is.
var (
	// ErrValidation covers missing or malformed input.
	ErrValidation = errors.New("validation error")
	// ErrInvalidCredentials is returned for any login failure. The message
	// never says whether the email or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrDuplicateEmail is returned when registering an email that already exists.
	ErrDuplicateEmail = errors.New("user already exists")
	// ErrDuplicateKey is returned on a natural-key collision (trial ID, DOI).
	ErrDuplicateKey = errors.New("record already exists")
	// ErrUserNotFound is returned when a user record cannot be found.
	ErrUserNotFound = errors.New("user not found")
	// ErrNotFound is returned when a referenced record cannot be found.
	ErrNotFound = errors.New("not found")
	// ErrForbidden is returned when the authenticated role may not perform the operation.
	ErrForbidden = errors.New("forbidden")

	// Token verification errors. The auth middleware collapses all of these
	// to a single 401 so clients cannot tell signature from expiry failures.
	ErrTokenExpired          = errors.New("token expired")
	ErrTokenInvalidSignature = errors.New("token signature invalid")
	ErrTokenMalformed        = errors.New("token malformed")
)
