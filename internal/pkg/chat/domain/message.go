package chat

import (
	"errors"
	"sort"
	"strings"
	"time"
)

// MaxBodyLength caps the message body size in characters.
const MaxBodyLength = 1000

// Domain-level errors for message construction
var (
	ErrReceiverRequired = errors.New("chat: receiver_id is required")
	ErrEmptyBody        = errors.New("chat: message body is empty")
	ErrBodyTooLong      = errors.New("chat: message body exceeds 1000 characters")
)

// Message is a persisted direct message between two users. It is append-only:
// after creation the only permitted mutation is flipping IsRead to true, and
// only on behalf of the receiver.
type Message struct {
	ID           string    `db:"id"`
	SenderID     string    `db:"sender_id"`
	ReceiverID   string    `db:"receiver_id"`
	SenderName   string    `db:"sender_name"`
	ReceiverName string    `db:"receiver_name"`
	Body         string    `db:"body"`
	IsRead       bool      `db:"is_read"`
	CreatedAt    time.Time `db:"created_at"`
}

// NewMessage validates and normalizes an outgoing message intent. The body is
// trimmed and must be non-empty and within MaxBodyLength. The timestamp is
// always server-assigned here, never taken from the caller.
func NewMessage(senderID, receiverID, senderName, receiverName, body string) (*Message, error) {
	if receiverID == "" {
		return nil, ErrReceiverRequired
	}
	trimmed := strings.TrimSpace(body)
	if trimmed == "" {
		return nil, ErrEmptyBody
	}
	if len([]rune(trimmed)) > MaxBodyLength {
		return nil, ErrBodyTooLong
	}
	return &Message{
		SenderID:     senderID,
		ReceiverID:   receiverID,
		SenderName:   senderName,
		ReceiverName: receiverName,
		Body:         trimmed,
		IsRead:       false,
		CreatedAt:    time.Now().UTC(),
	}, nil
}

// ConversationRoomID derives the canonical room identifier for a pair of
// users: both ids sorted and joined with "-", so the two participants always
// compute the same id regardless of argument order. User ids are fixed-length
// values from a single namespace, which keeps the concatenation collision-free
// across distinct pairs.
func ConversationRoomID(userA, userB string) string {
	pair := []string{userA, userB}
	sort.Strings(pair)
	return pair[0] + "-" + pair[1]
}

// ConversationSummary is a derived view of one conversation from the
// perspective of a single user: the counterpart, the most recent message and
// how many messages from that counterpart are still unread. Recomputed on
// demand, never stored.
type ConversationSummary struct {
	UserID      string  `json:"userId"`
	Username    string  `json:"username"`
	Email       string  `json:"email"`
	LastMessage Message `json:"lastMessage"`
	UnreadCount int     `json:"unreadCount"`
}
