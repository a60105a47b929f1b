package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"go-bazaar/internal/pkg/auth"
	"go-bazaar/internal/pkg/product/application/usecase"
)

// UpdateProductController handles partial listing edits.
type UpdateProductController struct {
	UC *usecase.UpdateProductUseCase
}

func NewUpdateProductController(uc *usecase.UpdateProductUseCase) *UpdateProductController {
	return &UpdateProductController{UC: uc}
}

// Pointer fields distinguish "absent" from "set to zero value".
type updateProductRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	ImageURL    *string  `json:"imageUrl"`
}

func (h *UpdateProductController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _, ok := auth.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "No token provided. Please login."})
			return
		}

		var req updateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		updated, err := h.UC.Execute(ctx, usecase.UpdateProductInput{
			ProductID:   c.Param("id"),
			RequesterID: userID,
			Title:       req.Title,
			Description: req.Description,
			Price:       req.Price,
			ImageURL:    req.ImageURL,
		})
		if err != nil {
			respondError(c, err, "Error updating product")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Product updated successfully",
			"product": toProductJSON(*updated),
		})
	}
}
