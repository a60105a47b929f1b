package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"go-bazaar/internal/pkg/auth"
	"go-bazaar/internal/pkg/chat/application/usecase"
)

// ListConversationsController returns one summary per counterpart: the last
// message exchanged and the unread count contributed by that counterpart.
type ListConversationsController struct {
	UC *usecase.ListConversationsUseCase
}

func NewListConversationsController(uc *usecase.ListConversationsUseCase) *ListConversationsController {
	return &ListConversationsController{UC: uc}
}

func (h *ListConversationsController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _, ok := auth.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "No token provided. Please login."})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		summaries, err := h.UC.Execute(ctx, userID)
		if err != nil {
			respondError(c, err, "Error fetching conversations")
			return
		}

		conversations := make([]gin.H, 0, len(summaries))
		for _, s := range summaries {
			conversations = append(conversations, gin.H{
				"userId":      s.UserID,
				"username":    s.Username,
				"email":       s.Email,
				"lastMessage": toMessageJSON(s.LastMessage),
				"unreadCount": s.UnreadCount,
			})
		}

		c.JSON(http.StatusOK, gin.H{
			"success":       true,
			"conversations": conversations,
		})
	}
}
