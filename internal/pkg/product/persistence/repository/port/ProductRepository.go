package port

import (
	"context"
	"errors"

	product "go-bazaar/internal/pkg/product/domain"
)

var ErrProductNotFound = errors.New("product not found")

// ListQuery narrows and pages a listing query. Search matches title or
// description, case-insensitive. Page is 1-based.
type ListQuery struct {
	Search string
	Limit  int
	Page   int
}

// ListResult carries one page of listings plus the total match count so
// callers can paginate.
type ListResult struct {
	Products []product.Product
	Total    int
}

type ProductRepository interface {
	// CreateProduct inserts the listing and returns it with the assigned id.
	CreateProduct(ctx context.Context, p product.Product) (*product.Product, error)

	// FindByID returns one listing, ErrProductNotFound when absent.
	FindByID(ctx context.Context, id string) (*product.Product, error)

	// List returns listings newest first, filtered and paged per the query.
	List(ctx context.Context, q ListQuery) (*ListResult, error)

	// UpdateProduct persists an edited listing, ErrProductNotFound when absent.
	UpdateProduct(ctx context.Context, p product.Product) error

	// DeleteProduct removes a listing, ErrProductNotFound when absent.
	DeleteProduct(ctx context.Context, id string) error
}
