package usecase

import "errors"

// Error taxonomy shared by the chat use cases. Controllers map these to HTTP
// statuses or socket error frames via errors.Is; none of them is fatal to a
// live connection.
var (
	// ErrValidation marks malformed input; no state was mutated.
	ErrValidation = errors.New("chat: invalid input")

	// ErrNotFound marks a referenced user or message that does not exist.
	ErrNotFound = errors.New("chat: not found")

	// ErrNotAuthorized marks an actor not entitled to the mutation.
	ErrNotAuthorized = errors.New("chat: not authorized")

	// ErrPersistence marks a store failure. Reported to the immediate caller
	// only; the core does not retry.
	ErrPersistence = errors.New("chat: persistence error")
)
