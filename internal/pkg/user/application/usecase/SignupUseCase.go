package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-bazaar/internal/pkg/auth"
	user "go-bazaar/internal/pkg/user/domain"
	repository "go-bazaar/internal/pkg/user/persistence/repository/port"
)

// SignupInput carries a registration request.
type SignupInput struct {
	Username string
	Email    string
	Password string
}

// SignupOutput is the created account plus its session token.
type SignupOutput struct {
	User  user.User
	Token string
}

// SignupUseCase registers a new account and issues its first token.
type SignupUseCase struct {
	Repo   repository.UserRepository
	Hasher *auth.PasswordHasher
	Tokens *auth.JWTManager
}

func NewSignupUseCase(repo repository.UserRepository, hasher *auth.PasswordHasher, tokens *auth.JWTManager) *SignupUseCase {
	return &SignupUseCase{Repo: repo, Hasher: hasher, Tokens: tokens}
}

func (uc *SignupUseCase) Execute(ctx context.Context, in SignupInput) (*SignupOutput, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.ToLower(strings.TrimSpace(in.Email))

	switch {
	case username == "":
		return nil, fmt.Errorf("%w: username is required", ErrValidation)
	case len(username) > 30:
		return nil, fmt.Errorf("%w: username cannot exceed 30 characters", ErrValidation)
	case email == "" || !strings.Contains(email, "@"):
		return nil, fmt.Errorf("%w: a valid email is required", ErrValidation)
	case len(in.Password) < 6:
		return nil, fmt.Errorf("%w: password must be at least 6 characters", ErrValidation)
	}

	hash, err := uc.Hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	created, err := uc.Repo.CreateUser(ctx, user.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("%w: username or email already in use", ErrDuplicate)
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	token, err := uc.Tokens.Issue(created.ID, created.Username)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	return &SignupOutput{User: *created, Token: token}, nil
}
