package adapter

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	product "go-bazaar/internal/pkg/product/domain"
	repository "go-bazaar/internal/pkg/product/persistence/repository/port"
)

// PgProductRepository persists marketplace listings in Postgres.
type PgProductRepository struct {
	pool *pgxpool.Pool
}

func NewPgProductRepository(pool *pgxpool.Pool) *PgProductRepository {
	return &PgProductRepository{pool: pool}
}

var _ repository.ProductRepository = (*PgProductRepository)(nil)

func (r *PgProductRepository) CreateProduct(ctx context.Context, p product.Product) (*product.Product, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgProductRepository: nil pool")
	}
	err := r.pool.QueryRow(ctx, `
		INSERT INTO products (title, description, price, image_url, seller_id, seller_name, created_at)
		VALUES ($1, $2, $3, $4, $5::uuid, $6, $7)
		RETURNING id::text, created_at
	`, p.Title, p.Description, p.Price, p.ImageURL, p.SellerID, p.SellerName, p.CreatedAt).
		Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PgProductRepository) FindByID(ctx context.Context, id string) (*product.Product, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgProductRepository: nil pool")
	}
	var p product.Product
	err := r.pool.QueryRow(ctx, `
		SELECT id::text, title, description, price, image_url, seller_id::text, seller_name, created_at
		FROM products WHERE id = $1::uuid
	`, id).Scan(&p.ID, &p.Title, &p.Description, &p.Price, &p.ImageURL, &p.SellerID, &p.SellerName, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, repository.ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PgProductRepository) List(ctx context.Context, q repository.ListQuery) (*repository.ListResult, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgProductRepository: nil pool")
	}
	if q.Limit <= 0 {
		q.Limit = 50
	}
	if q.Page <= 0 {
		q.Page = 1
	}
	pattern := "%" + q.Search + "%"

	var total int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM products
		WHERE $1 = '' OR title ILIKE $2 OR description ILIKE $2
	`, q.Search, pattern).Scan(&total)
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id::text, title, description, price, image_url, seller_id::text, seller_name, created_at
		FROM products
		WHERE $1 = '' OR title ILIKE $2 OR description ILIKE $2
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4
	`, q.Search, pattern, q.Limit, (q.Page-1)*q.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]product.Product, 0, q.Limit)
	for rows.Next() {
		var p product.Product
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Price, &p.ImageURL, &p.SellerID, &p.SellerName, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &repository.ListResult{Products: out, Total: total}, nil
}

func (r *PgProductRepository) UpdateProduct(ctx context.Context, p product.Product) error {
	if r == nil || r.pool == nil {
		return errors.New("PgProductRepository: nil pool")
	}
	tag, err := r.pool.Exec(ctx, `
		UPDATE products
		SET title = $2, description = $3, price = $4, image_url = $5
		WHERE id = $1::uuid
	`, p.ID, p.Title, p.Description, p.Price, p.ImageURL)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrProductNotFound
	}
	return nil
}

func (r *PgProductRepository) DeleteProduct(ctx context.Context, id string) error {
	if r == nil || r.pool == nil {
		return errors.New("PgProductRepository: nil pool")
	}
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM products WHERE id = $1::uuid
	`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrProductNotFound
	}
	return nil
}
