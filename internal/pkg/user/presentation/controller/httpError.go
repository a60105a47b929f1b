package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-bazaar/internal/pkg/user/application/usecase"
	user "go-bazaar/internal/pkg/user/domain"
)

// respondError maps the account error taxonomy to HTTP statuses. Credential
// failures stay deliberately vague; store failures get the generic message so
// internals never leak.
func respondError(c *gin.Context, err error, internalMessage string) {
	status := http.StatusInternalServerError
	message := internalMessage
	switch {
	case errors.Is(err, usecase.ErrValidation):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, usecase.ErrDuplicate):
		status = http.StatusConflict
		message = err.Error()
	case errors.Is(err, usecase.ErrCredentials):
		status = http.StatusUnauthorized
		message = "Invalid email or password"
	case errors.Is(err, usecase.ErrNotFound):
		status = http.StatusNotFound
		message = "User not found"
	}
	c.JSON(status, gin.H{"success": false, "message": message})
}

// userJSON is the public wire shape of an account. The password hash never
// leaves this package.
type userJSON struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func toUserJSON(u user.User) userJSON {
	return userJSON{ID: u.ID, Username: u.Username, Email: u.Email}
}
