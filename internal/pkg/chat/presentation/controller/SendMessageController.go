package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"go-bazaar/internal/pkg/auth"
	"go-bazaar/internal/pkg/chat/application/usecase"
)

// SendMessageController handles the synchronous send endpoint. It runs the
// same use case as the live path, so other open connections still see the
// message pushed live.
type SendMessageController struct {
	UC *usecase.SendMessageUseCase
}

func NewSendMessageController(uc *usecase.SendMessageUseCase) *SendMessageController {
	return &SendMessageController{UC: uc}
}

type sendMessageRequest struct {
	ReceiverID string `json:"receiverId"`
	Message    string `json:"message"`
}

func (h *SendMessageController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, username, ok := auth.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "No token provided. Please login."})
			return
		}

		var req sendMessageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		msg, err := h.UC.Execute(ctx, usecase.SendMessageInput{
			SenderID:   userID,
			SenderName: username,
			ReceiverID: req.ReceiverID,
			Body:       req.Message,
		})
		if err != nil {
			respondError(c, err, "Error sending message")
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"success":     true,
			"message":     "Message sent successfully",
			"chatMessage": toMessageJSON(*msg),
		})
	}
}
