package usecase

import (
	"context"
	"fmt"

	product "go-bazaar/internal/pkg/product/domain"
	repository "go-bazaar/internal/pkg/product/persistence/repository/port"
)

// DefaultListLimit caps a listings page when the caller does not say.
const DefaultListLimit = 50

// ListProductsInput narrows and pages the catalog.
type ListProductsInput struct {
	Search string
	Limit  int
	Page   int
}

// ListProductsOutput is one page of the catalog plus paging math.
type ListProductsOutput struct {
	Products []product.Product
	Total    int
	Page     int
	Pages    int
}

// ListProductsUseCase fetches the catalog newest first.
type ListProductsUseCase struct {
	Repo repository.ProductRepository
}

func NewListProductsUseCase(repo repository.ProductRepository) *ListProductsUseCase {
	return &ListProductsUseCase{Repo: repo}
}

func (uc *ListProductsUseCase) Execute(ctx context.Context, in ListProductsInput) (*ListProductsOutput, error) {
	if in.Limit <= 0 {
		in.Limit = DefaultListLimit
	}
	if in.Page <= 0 {
		in.Page = 1
	}

	res, err := uc.Repo.List(ctx, repository.ListQuery{Search: in.Search, Limit: in.Limit, Page: in.Page})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	pages := res.Total / in.Limit
	if res.Total%in.Limit != 0 || pages == 0 {
		pages++
	}
	return &ListProductsOutput{
		Products: res.Products,
		Total:    res.Total,
		Page:     in.Page,
		Pages:    pages,
	}, nil
}
