package usecase

import (
	"context"
	"fmt"

	repository "go-bazaar/internal/pkg/chat/persistence/repository/port"
)

// GetUnreadCountUseCase counts messages addressed to the user that are still
// unread, for notification badges.
type GetUnreadCountUseCase struct {
	Repo repository.MessageRepository
}

func NewGetUnreadCountUseCase(repo repository.MessageRepository) *GetUnreadCountUseCase {
	return &GetUnreadCountUseCase{Repo: repo}
}

func (uc *GetUnreadCountUseCase) Execute(ctx context.Context, userID string) (int, error) {
	count, err := uc.Repo.CountUnread(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return count, nil
}
