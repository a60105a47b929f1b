package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"go-bazaar/internal/pkg/product/application/usecase"
	product "go-bazaar/internal/pkg/product/domain"
)

// respondError maps the product error taxonomy to HTTP statuses.
func respondError(c *gin.Context, err error, internalMessage string) {
	status := http.StatusInternalServerError
	message := internalMessage
	switch {
	case errors.Is(err, usecase.ErrValidation):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, usecase.ErrNotFound):
		status = http.StatusNotFound
		message = "Product not found"
	case errors.Is(err, usecase.ErrNotAuthorized):
		status = http.StatusForbidden
		message = "Not authorized"
	}
	c.JSON(status, gin.H{"success": false, "message": message})
}

// productJSON is the wire shape of a listing.
type productJSON struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	ImageURL    string    `json:"imageUrl"`
	Seller      string    `json:"seller"`
	SellerName  string    `json:"sellerName"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toProductJSON(p product.Product) productJSON {
	return productJSON{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		ImageURL:    p.ImageURL,
		Seller:      p.SellerID,
		SellerName:  p.SellerName,
		CreatedAt:   p.CreatedAt,
	}
}

func toProductListJSON(ps []product.Product) []productJSON {
	out := make([]productJSON, 0, len(ps))
	for _, p := range ps {
		out = append(out, toProductJSON(p))
	}
	return out
}
