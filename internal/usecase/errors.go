package usecase

import "errors"

var (
	// ErrStorage covers every datastore failure. Handlers never expose its cause.
	ErrStorage = errors.New("storage error")

	// ErrUnauthorized is returned for an unknown phone and for a wrong password alike.
	ErrUnauthorized = errors.New("invalid credentials")

	ErrNotFound      = errors.New("user not found")
	ErrAdminNotFound = errors.New("admin not found")

	ErrTokenMissing = errors.New("token missing")
	ErrTokenInvalid = errors.New("invalid token")
)
