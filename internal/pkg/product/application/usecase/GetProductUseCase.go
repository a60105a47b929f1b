package usecase

import (
	"context"
	"errors"
	"fmt"

	product "go-bazaar/internal/pkg/product/domain"
	repository "go-bazaar/internal/pkg/product/persistence/repository/port"
)

// GetProductUseCase fetches a single listing.
type GetProductUseCase struct {
	Repo repository.ProductRepository
}

func NewGetProductUseCase(repo repository.ProductRepository) *GetProductUseCase {
	return &GetProductUseCase{Repo: repo}
}

func (uc *GetProductUseCase) Execute(ctx context.Context, id string) (*product.Product, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: product id is required", ErrValidation)
	}
	found, err := uc.Repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, fmt.Errorf("%w: product %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return found, nil
}
