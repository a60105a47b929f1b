package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"go-bazaar/internal/pkg/chat/application/usecase"
	chat "go-bazaar/internal/pkg/chat/domain"
)

// respondError maps the chat error taxonomy to HTTP statuses. Validation and
// not-found report their own reason; store failures get a generic message so
// internals never leak.
func respondError(c *gin.Context, err error, internalMessage string) {
	status := http.StatusInternalServerError
	message := internalMessage
	switch {
	case errors.Is(err, usecase.ErrValidation):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, usecase.ErrNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, usecase.ErrNotAuthorized):
		status = http.StatusForbidden
		message = "Not authorized"
	}
	c.JSON(status, gin.H{"success": false, "message": message})
}

// messageJSON is the wire shape of a persisted message.
type messageJSON struct {
	ID           string    `json:"id"`
	Sender       string    `json:"sender"`
	Receiver     string    `json:"receiver"`
	SenderName   string    `json:"senderName"`
	ReceiverName string    `json:"receiverName"`
	Message      string    `json:"message"`
	IsRead       bool      `json:"isRead"`
	Timestamp    time.Time `json:"timestamp"`
}

func toMessageJSON(m chat.Message) messageJSON {
	return messageJSON{
		ID:           m.ID,
		Sender:       m.SenderID,
		Receiver:     m.ReceiverID,
		SenderName:   m.SenderName,
		ReceiverName: m.ReceiverName,
		Message:      m.Body,
		IsRead:       m.IsRead,
		Timestamp:    m.CreatedAt,
	}
}
