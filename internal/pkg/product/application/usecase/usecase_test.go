package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	product "go-bazaar/internal/pkg/product/domain"
	repository "go-bazaar/internal/pkg/product/persistence/repository/port"
)

type fakeProductRepo struct {
	products map[string]product.Product
	nextID   int
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[string]product.Product{}}
}

func (f *fakeProductRepo) CreateProduct(_ context.Context, p product.Product) (*product.Product, error) {
	f.nextID++
	p.ID = fmt.Sprintf("p%d", f.nextID)
	f.products[p.ID] = p
	return &p, nil
}

func (f *fakeProductRepo) FindByID(_ context.Context, id string) (*product.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	return &p, nil
}

func (f *fakeProductRepo) List(_ context.Context, q repository.ListQuery) (*repository.ListResult, error) {
	matched := make([]product.Product, 0, len(f.products))
	needle := strings.ToLower(q.Search)
	for _, p := range f.products {
		if needle == "" ||
			strings.Contains(strings.ToLower(p.Title), needle) ||
			strings.Contains(strings.ToLower(p.Description), needle) {
			matched = append(matched, p)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })

	total := len(matched)
	start := (q.Page - 1) * q.Limit
	if start > total {
		start = total
	}
	end := start + q.Limit
	if end > total {
		end = total
	}
	return &repository.ListResult{Products: matched[start:end], Total: total}, nil
}

func (f *fakeProductRepo) UpdateProduct(_ context.Context, p product.Product) error {
	if _, ok := f.products[p.ID]; !ok {
		return repository.ErrProductNotFound
	}
	f.products[p.ID] = p
	return nil
}

func (f *fakeProductRepo) DeleteProduct(_ context.Context, id string) error {
	if _, ok := f.products[id]; !ok {
		return repository.ErrProductNotFound
	}
	delete(f.products, id)
	return nil
}

func seedProduct(t *testing.T, repo *fakeProductRepo, sellerID, title string, price float64) product.Product {
	t.Helper()
	p, err := product.NewProduct(sellerID, "seller-"+sellerID, title, "", price, "")
	require.NoError(t, err)
	p.CreatedAt = time.Now().UTC().Add(time.Duration(repo.nextID) * time.Second)
	created, err := repo.CreateProduct(context.Background(), p)
	require.NoError(t, err)
	return *created
}

func TestCreateProduct_DefaultsAndValidation(t *testing.T) {
	repo := newFakeProductRepo()
	uc := NewCreateProductUseCase(repo)

	created, err := uc.Execute(context.Background(), CreateProductInput{
		SellerID: "u1", SellerName: "alice", Title: "  Bike  ", Price: 120,
	})
	require.NoError(t, err)
	assert.Equal(t, "Bike", created.Title)
	assert.Equal(t, product.DefaultImageURL, created.ImageURL)
	assert.Equal(t, "alice", created.SellerName)

	_, err = uc.Execute(context.Background(), CreateProductInput{SellerID: "u1", Title: "  "})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = uc.Execute(context.Background(), CreateProductInput{SellerID: "u1", Title: "Bike", Price: -1})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Len(t, repo.products, 1, "rejected listings are never stored")
}

func TestListProducts_SearchAndPaging(t *testing.T) {
	repo := newFakeProductRepo()
	for i := 0; i < 5; i++ {
		seedProduct(t, repo, "u1", fmt.Sprintf("Lamp %d", i), 10)
	}
	seedProduct(t, repo, "u2", "Mountain bike", 300)
	uc := NewListProductsUseCase(repo)

	out, err := uc.Execute(context.Background(), ListProductsInput{Search: "lamp", Limit: 2, Page: 2})
	require.NoError(t, err)
	assert.Equal(t, 5, out.Total)
	assert.Equal(t, 3, out.Pages)
	assert.Len(t, out.Products, 2)

	out, err = uc.Execute(context.Background(), ListProductsInput{})
	require.NoError(t, err)
	assert.Equal(t, 6, out.Total)
	assert.Equal(t, 1, out.Page)
	assert.Equal(t, "Mountain bike", out.Products[0].Title, "newest listing comes first")
}

func TestGetProduct_NotFound(t *testing.T) {
	uc := NewGetProductUseCase(newFakeProductRepo())

	_, err := uc.Execute(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateProduct_OwnerOnly(t *testing.T) {
	repo := newFakeProductRepo()
	p := seedProduct(t, repo, "u1", "Bike", 120)
	uc := NewUpdateProductUseCase(repo)

	newPrice := 99.0
	_, err := uc.Execute(context.Background(), UpdateProductInput{
		ProductID: p.ID, RequesterID: "u2", Price: &newPrice,
	})
	assert.ErrorIs(t, err, ErrNotAuthorized)

	updated, err := uc.Execute(context.Background(), UpdateProductInput{
		ProductID: p.ID, RequesterID: "u1", Price: &newPrice,
	})
	require.NoError(t, err)
	assert.Equal(t, 99.0, updated.Price)
	assert.Equal(t, "Bike", updated.Title, "untouched fields survive a partial update")
	assert.Equal(t, 99.0, repo.products[p.ID].Price)
}

func TestUpdateProduct_RejectsInvalidEdit(t *testing.T) {
	repo := newFakeProductRepo()
	p := seedProduct(t, repo, "u1", "Bike", 120)
	uc := NewUpdateProductUseCase(repo)

	empty := ""
	_, err := uc.Execute(context.Background(), UpdateProductInput{
		ProductID: p.ID, RequesterID: "u1", Title: &empty,
	})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "Bike", repo.products[p.ID].Title)
}

func TestDeleteProduct_OwnerOnly(t *testing.T) {
	repo := newFakeProductRepo()
	p := seedProduct(t, repo, "u1", "Bike", 120)
	uc := NewDeleteProductUseCase(repo)

	err := uc.Execute(context.Background(), p.ID, "u2")
	assert.ErrorIs(t, err, ErrNotAuthorized)
	assert.Len(t, repo.products, 1)

	require.NoError(t, uc.Execute(context.Background(), p.ID, "u1"))
	assert.Empty(t, repo.products)

	err = uc.Execute(context.Background(), p.ID, "u1")
	assert.ErrorIs(t, err, ErrNotFound)
}
