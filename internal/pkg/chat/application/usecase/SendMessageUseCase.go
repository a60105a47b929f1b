package usecase

import (
	"context"
	"errors"
	"fmt"

	"go-bazaar/internal/pkg/chat/application/port"
	chat "go-bazaar/internal/pkg/chat/domain"
	repository "go-bazaar/internal/pkg/chat/persistence/repository/port"
)

// SendMessageInput carries a validated-at-the-edge message intent. SenderID
// and SenderName come from the authenticated identity, never from the payload.
type SendMessageInput struct {
	SenderID   string
	SenderName string
	ReceiverID string
	Body       string
}

// SendMessageUseCase validates, resolves the receiver, persists, then fans
// out live events. Both the socket path and the REST path run through here,
// which is what guarantees exactly one broadcast per persisted message.
type SendMessageUseCase struct {
	Repo      repository.MessageRepository
	Directory port.UserDirectory
	Notifier  port.Notifier
}

func NewSendMessageUseCase(repo repository.MessageRepository, dir port.UserDirectory, n port.Notifier) *SendMessageUseCase {
	return &SendMessageUseCase{Repo: repo, Directory: dir, Notifier: n}
}

// Execute persists the message and, only after persistence succeeded,
// notifies the conversation room and the receiver's personal channel. A
// lookup or store failure leaves no partial delivery behind.
func (uc *SendMessageUseCase) Execute(ctx context.Context, in SendMessageInput) (*chat.Message, error) {
	receiver, err := uc.resolveReceiver(ctx, in.ReceiverID)
	if err != nil {
		return nil, err
	}

	msg, err := chat.NewMessage(in.SenderID, in.ReceiverID, in.SenderName, receiver.Username, in.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	persisted, err := uc.Repo.SaveMessage(ctx, *msg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	uc.Notifier.MessageCreated(*persisted)
	return persisted, nil
}

func (uc *SendMessageUseCase) resolveReceiver(ctx context.Context, receiverID string) (*port.UserRef, error) {
	if receiverID == "" {
		return nil, fmt.Errorf("%w: %v", ErrValidation, chat.ErrReceiverRequired)
	}
	receiver, err := uc.Directory.FindByID(ctx, receiverID)
	if err != nil {
		if errors.Is(err, port.ErrUserNotFound) {
			return nil, fmt.Errorf("%w: receiver not found", ErrNotFound)
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return receiver, nil
}
