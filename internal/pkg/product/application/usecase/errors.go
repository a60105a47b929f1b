package usecase

import "errors"

// Error taxonomy for the product surface. Controllers map these to HTTP
// statuses with errors.Is.
var (
	ErrValidation    = errors.New("validation error")
	ErrNotFound      = errors.New("not found")
	ErrNotAuthorized = errors.New("not authorized")
	ErrPersistence   = errors.New("persistence error")
)
