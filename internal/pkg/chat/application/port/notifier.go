package port

import (
	chat "go-bazaar/internal/pkg/chat/domain"
)

// Notifier is the live fan-out seam for the chat use cases. Implementations
// push events to whatever connections are currently subscribed; delivery is
// best-effort and must not fail the calling operation. A future multi-node
// deployment would implement this port on top of an external pub/sub layer.
type Notifier interface {
	// MessageCreated announces a freshly persisted message: once to the
	// conversation room and once to the receiver's personal channel. Called
	// exactly once per persisted message, never before persistence succeeds.
	MessageCreated(m chat.Message)

	// MessagesRead tells the counterpart's live connections that readerID has
	// read all of their messages.
	MessagesRead(counterpartID, readerID string)
}

// NopNotifier discards all events. Used where no live layer is attached.
type NopNotifier struct{}

func (NopNotifier) MessageCreated(chat.Message) {}
func (NopNotifier) MessagesRead(_, _ string)    {}
