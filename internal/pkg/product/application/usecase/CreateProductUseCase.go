package usecase

import (
	"context"
	"fmt"

	product "go-bazaar/internal/pkg/product/domain"
	repository "go-bazaar/internal/pkg/product/persistence/repository/port"
)

// CreateProductInput carries a new listing. Seller identity comes from the
// authenticated caller, never from the request body.
type CreateProductInput struct {
	SellerID    string
	SellerName  string
	Title       string
	Description string
	Price       float64
	ImageURL    string
}

// CreateProductUseCase validates and stores a new listing.
type CreateProductUseCase struct {
	Repo repository.ProductRepository
}

func NewCreateProductUseCase(repo repository.ProductRepository) *CreateProductUseCase {
	return &CreateProductUseCase{Repo: repo}
}

func (uc *CreateProductUseCase) Execute(ctx context.Context, in CreateProductInput) (*product.Product, error) {
	p, err := product.NewProduct(in.SellerID, in.SellerName, in.Title, in.Description, in.Price, in.ImageURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	created, err := uc.Repo.CreateProduct(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return created, nil
}
