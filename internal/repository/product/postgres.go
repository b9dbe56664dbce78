package product

import (
	"context"
	"errors"
	"io"
	"log"

	"storefront/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const productColumns = `id::text, name, company, COALESCE(description, ''), price_cents, image_url, image_key, featured, created_at`

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) List(ctx context.Context, search string) ([]domain.Product, error) {
	const q = `
SELECT ` + productColumns + `
FROM products
WHERE $1 = '' OR name ILIKE '%' || $1 || '%' OR company ILIKE '%' || $1 || '%'
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q, search)
	if err != nil {
		r.logger.Printf("product repo: list search=%q error=%v", search, err)
		return nil, err
	}
	defer rows.Close()
	return scanProducts(rows)
}

func (r *postgresRepo) ListFeatured(ctx context.Context) ([]domain.Product, error) {
	const q = `
SELECT ` + productColumns + `
FROM products
WHERE featured
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("product repo: list featured error=%v", err)
		return nil, err
	}
	defer rows.Close()
	return scanProducts(rows)
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	const q = `
SELECT ` + productColumns + `
FROM products
WHERE id = $1
`
	var p domain.Product
	err := r.pool.QueryRow(ctx, q, id).Scan(&p.ID, &p.Name, &p.Company, &p.Description, &p.PriceCents, &p.ImageURL, &p.ImageKey, &p.Featured, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: get id=%s error=%v", id, err)
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) Create(ctx context.Context, in CreateProductInput) (*domain.Product, error) {
	const q = `
INSERT INTO products (name, company, description, price_cents, image_url, image_key, featured)
VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7)
RETURNING ` + productColumns + `
`
	var p domain.Product
	err := r.pool.QueryRow(ctx, q, in.Name, in.Company, in.Description, in.PriceCents, in.ImageURL, in.ImageKey, in.Featured).
		Scan(&p.ID, &p.Name, &p.Company, &p.Description, &p.PriceCents, &p.ImageURL, &p.ImageKey, &p.Featured, &p.CreatedAt)
	if err != nil {
		r.logger.Printf("product repo: create name=%q error=%v", in.Name, err)
		return nil, err
	}
	r.logger.Printf("product repo: created id=%s name=%q", p.ID, p.Name)
	return &p, nil
}

func (r *postgresRepo) Update(ctx context.Context, id string, in UpdateProductInput) (*domain.Product, error) {
	const q = `
UPDATE products
SET name = $2, company = $3, description = NULLIF($4, ''), price_cents = $5, featured = $6
WHERE id = $1
RETURNING ` + productColumns + `
`
	var p domain.Product
	err := r.pool.QueryRow(ctx, q, id, in.Name, in.Company, in.Description, in.PriceCents, in.Featured).
		Scan(&p.ID, &p.Name, &p.Company, &p.Description, &p.PriceCents, &p.ImageURL, &p.ImageKey, &p.Featured, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: update id=%s error=%v", id, err)
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) SetImage(ctx context.Context, id, imageURL, imageKey string) error {
	const q = `
UPDATE products
SET image_url = $2, image_key = $3
WHERE id = $1
`
	cmd, err := r.pool.Exec(ctx, q, id, imageURL, imageKey)
	if err != nil {
		r.logger.Printf("product repo: set image id=%s error=%v", id, err)
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) (*domain.Product, error) {
	const q = `
DELETE FROM products
WHERE id = $1
RETURNING ` + productColumns + `
`
	var p domain.Product
	err := r.pool.QueryRow(ctx, q, id).Scan(&p.ID, &p.Name, &p.Company, &p.Description, &p.PriceCents, &p.ImageURL, &p.ImageKey, &p.Featured, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: delete id=%s error=%v", id, err)
		return nil, err
	}
	r.logger.Printf("product repo: deleted id=%s name=%q", p.ID, p.Name)
	return &p, nil
}

func scanProducts(rows pgx.Rows) ([]domain.Product, error) {
	var result []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Company, &p.Description, &p.PriceCents, &p.ImageURL, &p.ImageKey, &p.Featured, &p.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
