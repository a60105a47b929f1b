package controller

import (
	"time"
)

// Live-channel frames. Every frame carries a "type" discriminator; each event
// name has exactly one variant with a fixed payload shape.

// Inbound event names.
const (
	frameJoinConversation = "join-conversation"
	frameSendMessage      = "send-message"
	frameTyping           = "typing"
	frameStopTyping       = "stop-typing"
	frameMarkRead         = "mark-read"
)

// inboundFrame is the superset envelope clients send; the handler for each
// type reads only its own fields.
type inboundFrame struct {
	Type        string `json:"type"`
	OtherUserID string `json:"otherUserId,omitempty"`
	ReceiverID  string `json:"receiverId,omitempty"`
	SenderID    string `json:"senderId,omitempty"`
	Message     string `json:"message,omitempty"`
}

// Outbound event variants.

type connectedEvent struct {
	Type   string `json:"type"` // "connected"
	UserID string `json:"userId"`
}

type newMessageEvent struct {
	Type         string    `json:"type"` // "new-message"
	ID           string    `json:"id"`
	Sender       string    `json:"sender"`
	Receiver     string    `json:"receiver"`
	SenderName   string    `json:"senderName"`
	ReceiverName string    `json:"receiverName"`
	Message      string    `json:"message"`
	Timestamp    time.Time `json:"timestamp"`
	IsRead       bool      `json:"isRead"`
}

type messageNotificationEvent struct {
	Type      string    `json:"type"` // "message-notification"
	From      string    `json:"from"`
	FromName  string    `json:"fromName"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type userTypingEvent struct {
	Type     string `json:"type"` // "user-typing"
	UserID   string `json:"userId"`
	Username string `json:"username"`
}

type userStopTypingEvent struct {
	Type   string `json:"type"` // "user-stop-typing"
	UserID string `json:"userId"`
}

type messagesReadEvent struct {
	Type   string `json:"type"` // "messages-read"
	ReadBy string `json:"readBy"`
}

type errorEvent struct {
	Type    string `json:"type"` // "error"
	Message string `json:"message"`
}
