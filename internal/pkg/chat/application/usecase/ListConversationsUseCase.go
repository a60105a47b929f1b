package usecase

import (
	"context"
	"fmt"

	chat "go-bazaar/internal/pkg/chat/domain"
	repository "go-bazaar/internal/pkg/chat/persistence/repository/port"
)

// ListConversationsUseCase returns one summary per counterpart the user has
// exchanged messages with, most recent conversation first.
type ListConversationsUseCase struct {
	Repo repository.MessageRepository
}

func NewListConversationsUseCase(repo repository.MessageRepository) *ListConversationsUseCase {
	return &ListConversationsUseCase{Repo: repo}
}

func (uc *ListConversationsUseCase) Execute(ctx context.Context, userID string) ([]chat.ConversationSummary, error) {
	summaries, err := uc.Repo.ListConversationSummaries(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return summaries, nil
}
