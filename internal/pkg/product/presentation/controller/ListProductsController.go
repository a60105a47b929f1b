package controller

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"go-bazaar/internal/pkg/product/application/usecase"
)

// ListProductsController handles the public catalog query.
type ListProductsController struct {
	UC *usecase.ListProductsUseCase
}

func NewListProductsController(uc *usecase.ListProductsUseCase) *ListProductsController {
	return &ListProductsController{UC: uc}
}

func (h *ListProductsController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.Query("limit"))
		page, _ := strconv.Atoi(c.Query("page"))

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		out, err := h.UC.Execute(ctx, usecase.ListProductsInput{
			Search: c.Query("search"),
			Limit:  limit,
			Page:   page,
		})
		if err != nil {
			respondError(c, err, "Error fetching products")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"products": toProductListJSON(out.Products),
			"total":    out.Total,
			"page":     out.Page,
			"pages":    out.Pages,
		})
	}
}
