package controller

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"go-bazaar/internal/pkg/auth"
	"go-bazaar/internal/pkg/chat/application/usecase"
)

// GetHistoryController returns the message history with one counterpart,
// oldest first. Fetching history flips the counterpart's unread messages to
// read as a side effect.
type GetHistoryController struct {
	UC *usecase.GetHistoryUseCase
}

func NewGetHistoryController(uc *usecase.GetHistoryUseCase) *GetHistoryController {
	return &GetHistoryController{UC: uc}
}

func (h *GetHistoryController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _, ok := auth.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "No token provided. Please login."})
			return
		}

		limit := usecase.DefaultHistoryLimit
		if v := c.Query("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				limit = n
			}
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		out, err := h.UC.Execute(ctx, usecase.GetHistoryInput{
			RequesterID:   userID,
			CounterpartID: c.Param("userId"),
			Limit:         limit,
		})
		if err != nil {
			respondError(c, err, "Error fetching messages")
			return
		}

		messages := make([]messageJSON, 0, len(out.Messages))
		for _, m := range out.Messages {
			messages = append(messages, toMessageJSON(m))
		}

		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"messages": messages,
			"otherUser": gin.H{
				"id":       out.Counterpart.ID,
				"username": out.Counterpart.Username,
				"email":    out.Counterpart.Email,
			},
		})
	}
}
