package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"go-bazaar/internal/pkg/auth"
	"go-bazaar/internal/pkg/chat/application/usecase"
)

// UnreadCountController reports how many messages addressed to the caller are
// still unread, for the notification badge.
type UnreadCountController struct {
	UC *usecase.GetUnreadCountUseCase
}

func NewUnreadCountController(uc *usecase.GetUnreadCountUseCase) *UnreadCountController {
	return &UnreadCountController{UC: uc}
}

func (h *UnreadCountController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _, ok := auth.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "No token provided. Please login."})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		count, err := h.UC.Execute(ctx, userID)
		if err != nil {
			respondError(c, err, "Error fetching unread count")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":     true,
			"unreadCount": count,
		})
	}
}
