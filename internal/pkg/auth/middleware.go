package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	ctxUserIDKey   = "auth.user_id"
	ctxUsernameKey = "auth.username"
)

// ExistsFunc reports whether a user id still resolves to an account. It lets
// the middleware reject tokens whose subject has been deleted without
// coupling this package to user storage.
type ExistsFunc func(ctx context.Context, userID string) (bool, error)

// Middleware authenticates requests via a Bearer token. On success the
// identity is attached to the gin context; otherwise the request is rejected
// with 401 before any handler logic runs.
func Middleware(tokens *JWTManager, exists ExistsFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			abortUnauthorized(c, "No token provided. Please login.")
			return
		}

		claims, err := tokens.Verify(token)
		if err != nil {
			abortUnauthorized(c, "Invalid or expired token. Please login again.")
			return
		}

		ok, err := exists(c.Request.Context(), claims.UserID)
		if err != nil || !ok {
			abortUnauthorized(c, "User not found. Please login again.")
			return
		}

		c.Set(ctxUserIDKey, claims.UserID)
		c.Set(ctxUsernameKey, claims.Username)
		c.Next()
	}
}

// CurrentUser returns the authenticated identity set by Middleware.
func CurrentUser(c *gin.Context) (userID, username string, ok bool) {
	id, okID := c.Get(ctxUserIDKey)
	name, okName := c.Get(ctxUsernameKey)
	if !okID || !okName {
		return "", "", false
	}
	return id.(string), name.(string), true
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"message": message,
	})
}
