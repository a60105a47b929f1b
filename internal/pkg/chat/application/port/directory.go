package port

import (
	"context"
	"errors"
)

// ErrUserNotFound is returned by UserDirectory implementations when an id
// does not resolve to a user.
var ErrUserNotFound = errors.New("user not found")

// UserRef is the slice of a user profile the chat core needs: identity plus
// the display name denormalized onto every message.
type UserRef struct {
	ID       string
	Username string
	Email    string
}

// UserDirectory resolves user identities. Backed by the account service,
// possibly through a cache; the chat core never touches user storage directly.
type UserDirectory interface {
	// FindByID returns the user, or an error wrapping ErrUserNotFound when
	// the id does not resolve.
	FindByID(ctx context.Context, userID string) (*UserRef, error)
}
