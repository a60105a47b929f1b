package usecase

import (
	"context"
	"errors"
	"fmt"

	repository "go-bazaar/internal/pkg/chat/persistence/repository/port"
)

// MarkMessageReadInput identifies one message and the actor flipping it.
type MarkMessageReadInput struct {
	MessageID string
	ActorID   string
}

// MarkMessageReadUseCase flips a single message's read flag. Only the
// message's receiver may do so.
type MarkMessageReadUseCase struct {
	Repo repository.MessageRepository
}

func NewMarkMessageReadUseCase(repo repository.MessageRepository) *MarkMessageReadUseCase {
	return &MarkMessageReadUseCase{Repo: repo}
}

func (uc *MarkMessageReadUseCase) Execute(ctx context.Context, in MarkMessageReadInput) error {
	if in.MessageID == "" {
		return fmt.Errorf("%w: message id is required", ErrValidation)
	}

	msg, err := uc.Repo.GetMessage(ctx, in.MessageID)
	if err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return fmt.Errorf("%w: message not found", ErrNotFound)
		}
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	if msg.ReceiverID != in.ActorID {
		return fmt.Errorf("%w: only the receiver may mark a message read", ErrNotAuthorized)
	}

	if err := uc.Repo.MarkMessageRead(ctx, in.MessageID); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}
