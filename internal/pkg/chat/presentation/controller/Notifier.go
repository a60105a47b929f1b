package controller

import (
	"encoding/json"
	"log"

	"go-bazaar/internal/infrastructure/realtime"
	"go-bazaar/internal/pkg/chat/application/port"
	chat "go-bazaar/internal/pkg/chat/domain"
)

// LiveNotifier implements the use-case Notifier port on top of the in-process
// connection registry. Delivery is best-effort: a marshal or send problem is
// logged and swallowed, never propagated to the calling operation.
type LiveNotifier struct {
	Registry *realtime.Registry
}

func NewLiveNotifier(registry *realtime.Registry) *LiveNotifier {
	return &LiveNotifier{Registry: registry}
}

var _ port.Notifier = (*LiveNotifier)(nil)

// MessageCreated pushes the persisted message to every connection in the
// conversation room, then a lighter notification to the receiver's personal
// channel so unread badges update even with no chat window open.
func (n *LiveNotifier) MessageCreated(m chat.Message) {
	roomID := chat.ConversationRoomID(m.SenderID, m.ReceiverID)

	n.push(roomID, "", newMessageEvent{
		Type:         "new-message",
		ID:           m.ID,
		Sender:       m.SenderID,
		Receiver:     m.ReceiverID,
		SenderName:   m.SenderName,
		ReceiverName: m.ReceiverName,
		Message:      m.Body,
		Timestamp:    m.CreatedAt,
		IsRead:       m.IsRead,
	})

	n.push("", m.ReceiverID, messageNotificationEvent{
		Type:      "message-notification",
		From:      m.SenderID,
		FromName:  m.SenderName,
		Message:   m.Body,
		Timestamp: m.CreatedAt,
	})
}

// MessagesRead tells the counterpart that readerID caught up on their messages.
func (n *LiveNotifier) MessagesRead(counterpartID, readerID string) {
	n.push("", counterpartID, messagesReadEvent{Type: "messages-read", ReadBy: readerID})
}

// UserTyping forwards a typing indicator to the receiver's personal channel.
func (n *LiveNotifier) UserTyping(receiverID, userID, username string) {
	n.push("", receiverID, userTypingEvent{Type: "user-typing", UserID: userID, Username: username})
}

// UserStopTyping clears a typing indicator.
func (n *LiveNotifier) UserStopTyping(receiverID, userID string) {
	n.push("", receiverID, userStopTypingEvent{Type: "user-stop-typing", UserID: userID})
}

// push marshals the event and delivers it to a room, a personal channel, or
// both, depending on which targets are set.
func (n *LiveNotifier) push(roomID, userID string, event any) {
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("realtime: encode event: %v", err)
		return
	}
	if roomID != "" {
		n.Registry.Broadcast(roomID, payload)
	}
	if userID != "" {
		n.Registry.NotifyUser(userID, payload)
	}
}
