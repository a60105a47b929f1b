package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"go-bazaar/internal/pkg/auth"
	"go-bazaar/internal/pkg/product/application/usecase"
)

// DeleteProductController handles listing removal.
type DeleteProductController struct {
	UC *usecase.DeleteProductUseCase
}

func NewDeleteProductController(uc *usecase.DeleteProductUseCase) *DeleteProductController {
	return &DeleteProductController{UC: uc}
}

func (h *DeleteProductController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _, ok := auth.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "No token provided. Please login."})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		if err := h.UC.Execute(ctx, c.Param("id"), userID); err != nil {
			respondError(c, err, "Error deleting product")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Product deleted successfully",
		})
	}
}
