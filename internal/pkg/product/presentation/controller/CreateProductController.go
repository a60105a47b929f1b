package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"go-bazaar/internal/pkg/auth"
	"go-bazaar/internal/pkg/product/application/usecase"
)

// CreateProductController handles new listings.
type CreateProductController struct {
	UC *usecase.CreateProductUseCase
}

func NewCreateProductController(uc *usecase.CreateProductUseCase) *CreateProductController {
	return &CreateProductController{UC: uc}
}

type createProductRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl"`
}

func (h *CreateProductController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, username, ok := auth.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "No token provided. Please login."})
			return
		}

		var req createProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		created, err := h.UC.Execute(ctx, usecase.CreateProductInput{
			SellerID:    userID,
			SellerName:  username,
			Title:       req.Title,
			Description: req.Description,
			Price:       req.Price,
			ImageURL:    req.ImageURL,
		})
		if err != nil {
			respondError(c, err, "Error creating product")
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "Product created successfully",
			"product": toProductJSON(*created),
		})
	}
}
