package usecase

import (
	"context"
	"fmt"

	"go-bazaar/internal/pkg/chat/application/port"
	repository "go-bazaar/internal/pkg/chat/persistence/repository/port"
)

// MarkConversationReadInput names the counterpart whose messages the reader
// has caught up on. ReaderID comes from the authenticated identity.
type MarkConversationReadInput struct {
	ReaderID      string
	CounterpartID string
}

// MarkConversationReadUseCase bulk-flips every unread message from the
// counterpart to the reader and pushes a read receipt to the counterpart's
// live connections. Idempotent: a second call finds nothing left to flip.
type MarkConversationReadUseCase struct {
	Repo     repository.MessageRepository
	Notifier port.Notifier
}

func NewMarkConversationReadUseCase(repo repository.MessageRepository, n port.Notifier) *MarkConversationReadUseCase {
	return &MarkConversationReadUseCase{Repo: repo, Notifier: n}
}

func (uc *MarkConversationReadUseCase) Execute(ctx context.Context, in MarkConversationReadInput) error {
	if in.CounterpartID == "" {
		return fmt.Errorf("%w: sender user id is required", ErrValidation)
	}
	if err := uc.Repo.BulkMarkRead(ctx, in.CounterpartID, in.ReaderID); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	uc.Notifier.MessagesRead(in.CounterpartID, in.ReaderID)
	return nil
}
