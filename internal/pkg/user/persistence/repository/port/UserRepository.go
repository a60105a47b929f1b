package repository

import (
	"context"
	"errors"

	user "go-bazaar/internal/pkg/user/domain"
)

var (
	// ErrUserNotFound signals an id or email that does not resolve.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicate signals a username or email already in use.
	ErrDuplicate = errors.New("username or email already in use")
)

// UserRepository defines persistence operations for marketplace accounts.
type UserRepository interface {
	// CreateUser persists u and returns it with the store-assigned id.
	// ErrDuplicate when username or email is taken.
	CreateUser(ctx context.Context, u user.User) (*user.User, error)

	// FindByID fetches a user by id; ErrUserNotFound if absent.
	FindByID(ctx context.Context, id string) (*user.User, error)

	// FindByEmail fetches a user by email; ErrUserNotFound if absent.
	FindByEmail(ctx context.Context, email string) (*user.User, error)
}
