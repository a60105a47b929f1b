package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"go-bazaar/internal/pkg/product/application/usecase"
)

// GetProductController handles single-listing reads.
type GetProductController struct {
	UC *usecase.GetProductUseCase
}

func NewGetProductController(uc *usecase.GetProductUseCase) *GetProductController {
	return &GetProductController{UC: uc}
}

func (h *GetProductController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		found, err := h.UC.Execute(ctx, c.Param("id"))
		if err != nil {
			respondError(c, err, "Error fetching product")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"product": toProductJSON(*found),
		})
	}
}
