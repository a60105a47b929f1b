package usecase

import (
	"context"
	"errors"
	"fmt"

	repository "go-bazaar/internal/pkg/product/persistence/repository/port"
)

// DeleteProductUseCase removes a listing. Only the seller may delete.
type DeleteProductUseCase struct {
	Repo repository.ProductRepository
}

func NewDeleteProductUseCase(repo repository.ProductRepository) *DeleteProductUseCase {
	return &DeleteProductUseCase{Repo: repo}
}

func (uc *DeleteProductUseCase) Execute(ctx context.Context, productID, requesterID string) error {
	if productID == "" {
		return fmt.Errorf("%w: product id is required", ErrValidation)
	}

	found, err := uc.Repo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return fmt.Errorf("%w: product %s", ErrNotFound, productID)
		}
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if found.SellerID != requesterID {
		return fmt.Errorf("%w: only the seller can delete a product", ErrNotAuthorized)
	}

	if err := uc.Repo.DeleteProduct(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return fmt.Errorf("%w: product %s", ErrNotFound, productID)
		}
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}
