package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go-bazaar/internal/pkg/auth"
	user "go-bazaar/internal/pkg/user/domain"
	repository "go-bazaar/internal/pkg/user/persistence/repository/port"
)

// LoginInput carries a credential check request.
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput is the authenticated account plus a fresh token.
type LoginOutput struct {
	User  user.User
	Token string
}

// LoginUseCase verifies email/password credentials and issues a token.
type LoginUseCase struct {
	Repo   repository.UserRepository
	Hasher *auth.PasswordHasher
	Tokens *auth.JWTManager
}

func NewLoginUseCase(repo repository.UserRepository, hasher *auth.PasswordHasher, tokens *auth.JWTManager) *LoginUseCase {
	return &LoginUseCase{Repo: repo, Hasher: hasher, Tokens: tokens}
}

func (uc *LoginUseCase) Execute(ctx context.Context, in LoginInput) (*LoginOutput, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrValidation)
	}

	found, err := uc.Repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrCredentials
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	if !uc.Hasher.Verify(in.Password, found.PasswordHash) {
		return nil, ErrCredentials
	}

	token, err := uc.Tokens.Issue(found.ID, found.Username)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	return &LoginOutput{User: *found, Token: token}, nil
}
