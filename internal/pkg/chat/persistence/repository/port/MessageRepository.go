package repository

import (
	"context"
	"errors"

	chat "go-bazaar/internal/pkg/chat/domain"
)

// ErrMessageNotFound signals that a message id does not resolve.
var ErrMessageNotFound = errors.New("message not found")

// MessageRepository defines persistence operations for the chat message log.
// The store is the sole source of truth for read flags and history; no
// in-memory view of messages is authoritative.
type MessageRepository interface {
	// SaveMessage persists m and returns it with the store-assigned id.
	SaveMessage(ctx context.Context, m chat.Message) (*chat.Message, error)

	// GetConversation returns up to limit most recent messages exchanged
	// between the two users, newest first.
	GetConversation(ctx context.Context, userA, userB string, limit int) ([]chat.Message, error)

	// BulkMarkRead flips every unread message from senderID to receiverID to
	// read. Idempotent.
	BulkMarkRead(ctx context.Context, senderID, receiverID string) error

	// GetMessage fetches one message by id; ErrMessageNotFound if absent.
	GetMessage(ctx context.Context, id string) (*chat.Message, error)

	// MarkMessageRead flips a single message's read flag to true.
	MarkMessageRead(ctx context.Context, id string) error

	// CountUnread counts persisted messages with receiver=userID, read=false.
	CountUnread(ctx context.Context, userID string) (int, error)

	// ListConversationSummaries returns one summary per distinct counterpart
	// of userID, ordered by most recent message first.
	ListConversationSummaries(ctx context.Context, userID string) ([]chat.ConversationSummary, error)
}
