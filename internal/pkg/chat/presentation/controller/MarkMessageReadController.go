package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"go-bazaar/internal/pkg/auth"
	"go-bazaar/internal/pkg/chat/application/usecase"
)

// MarkMessageReadController flips one message's read flag. Only the receiver
// of the message is allowed to.
type MarkMessageReadController struct {
	UC *usecase.MarkMessageReadUseCase
}

func NewMarkMessageReadController(uc *usecase.MarkMessageReadUseCase) *MarkMessageReadController {
	return &MarkMessageReadController{UC: uc}
}

func (h *MarkMessageReadController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _, ok := auth.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "No token provided. Please login."})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		err := h.UC.Execute(ctx, usecase.MarkMessageReadInput{
			MessageID: c.Param("id"),
			ActorID:   userID,
		})
		if err != nil {
			respondError(c, err, "Error marking message as read")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Message marked as read",
		})
	}
}
