package usecase

import "errors"

var (
	// ErrValidation marks malformed signup/login input.
	ErrValidation = errors.New("user: invalid input")

	// ErrDuplicate marks a username or email already registered.
	ErrDuplicate = errors.New("user: already registered")

	// ErrCredentials marks a failed email/password check. Deliberately the
	// same for unknown email and wrong password.
	ErrCredentials = errors.New("user: invalid credentials")

	// ErrNotFound marks a user id that does not resolve.
	ErrNotFound = errors.New("user: not found")

	// ErrPersistence marks a store failure.
	ErrPersistence = errors.New("user: persistence error")
)
