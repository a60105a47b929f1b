package usecase

import (
	"context"
	"errors"
	"fmt"

	product "go-bazaar/internal/pkg/product/domain"
	repository "go-bazaar/internal/pkg/product/persistence/repository/port"
)

// UpdateProductInput is a partial edit. Nil fields keep their stored value.
type UpdateProductInput struct {
	ProductID   string
	RequesterID string
	Title       *string
	Description *string
	Price       *float64
	ImageURL    *string
}

// UpdateProductUseCase edits a listing. Only the seller may edit.
type UpdateProductUseCase struct {
	Repo repository.ProductRepository
}

func NewUpdateProductUseCase(repo repository.ProductRepository) *UpdateProductUseCase {
	return &UpdateProductUseCase{Repo: repo}
}

func (uc *UpdateProductUseCase) Execute(ctx context.Context, in UpdateProductInput) (*product.Product, error) {
	if in.ProductID == "" {
		return nil, fmt.Errorf("%w: product id is required", ErrValidation)
	}

	found, err := uc.Repo.FindByID(ctx, in.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, fmt.Errorf("%w: product %s", ErrNotFound, in.ProductID)
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if found.SellerID != in.RequesterID {
		return nil, fmt.Errorf("%w: only the seller can update a product", ErrNotAuthorized)
	}

	if err := found.ApplyUpdate(in.Title, in.Description, in.Price, in.ImageURL); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if err := uc.Repo.UpdateProduct(ctx, *found); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, fmt.Errorf("%w: product %s", ErrNotFound, in.ProductID)
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return found, nil
}
