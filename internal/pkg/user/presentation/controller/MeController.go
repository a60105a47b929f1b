package controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"go-bazaar/internal/pkg/auth"
	chatport "go-bazaar/internal/pkg/chat/application/port"
)

// MeController returns the profile behind the presented token. It resolves
// through the shared user directory so a revoked or deleted account reads as
// not found even while its token is still formally valid.
type MeController struct {
	Directory chatport.UserDirectory
}

func NewMeController(directory chatport.UserDirectory) *MeController {
	return &MeController{Directory: directory}
}

func (h *MeController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _, ok := auth.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "No token provided. Please login."})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		ref, err := h.Directory.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, chatport.ErrUserNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching user"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"user":    userJSON{ID: ref.ID, Username: ref.Username, Email: ref.Email},
		})
	}
}
