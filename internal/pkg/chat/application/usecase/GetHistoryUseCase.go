package usecase

import (
	"context"
	"errors"
	"fmt"

	"go-bazaar/internal/pkg/chat/application/port"
	chat "go-bazaar/internal/pkg/chat/domain"
	repository "go-bazaar/internal/pkg/chat/persistence/repository/port"
)

const (
	// DefaultHistoryLimit bounds history fetches when the caller does not ask
	// for a specific page size.
	DefaultHistoryLimit = 50
	// MaxHistoryLimit caps the page size a caller may request.
	MaxHistoryLimit = 200
)

// GetHistoryInput identifies the requested conversation slice.
type GetHistoryInput struct {
	RequesterID   string
	CounterpartID string
	Limit         int
}

// GetHistoryOutput is the history snapshot plus the counterpart profile.
type GetHistoryOutput struct {
	Messages    []chat.Message
	Counterpart port.UserRef
}

// GetHistoryUseCase returns the most recent messages between the requester
// and a counterpart, oldest first, and flips every unread message from that
// counterpart to read as a side effect. The read receipt is also pushed live
// so catching up via history and via the socket look the same to the sender.
type GetHistoryUseCase struct {
	Repo      repository.MessageRepository
	Directory port.UserDirectory
	Notifier  port.Notifier
}

func NewGetHistoryUseCase(repo repository.MessageRepository, dir port.UserDirectory, n port.Notifier) *GetHistoryUseCase {
	return &GetHistoryUseCase{Repo: repo, Directory: dir, Notifier: n}
}

func (uc *GetHistoryUseCase) Execute(ctx context.Context, in GetHistoryInput) (*GetHistoryOutput, error) {
	if in.CounterpartID == "" {
		return nil, fmt.Errorf("%w: counterpart user id is required", ErrValidation)
	}

	counterpart, err := uc.Directory.FindByID(ctx, in.CounterpartID)
	if err != nil {
		if errors.Is(err, port.ErrUserNotFound) {
			return nil, fmt.Errorf("%w: user not found", ErrNotFound)
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	limit := in.Limit
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}

	// Fetched newest-first so the limit trims old messages, then reversed to
	// the oldest-first order clients render.
	msgs, err := uc.Repo.GetConversation(ctx, in.RequesterID, in.CounterpartID, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	reverse(msgs)

	if err := uc.Repo.BulkMarkRead(ctx, in.CounterpartID, in.RequesterID); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	uc.Notifier.MessagesRead(in.CounterpartID, in.RequesterID)

	return &GetHistoryOutput{Messages: msgs, Counterpart: *counterpart}, nil
}

func reverse(msgs []chat.Message) {
	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
}
