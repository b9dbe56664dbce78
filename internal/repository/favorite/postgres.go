package favorite

import (
	"context"
	"errors"

	"storefront/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) FindID(ctx context.Context, ownerID, productID string) (string, error) {
	const q = `
SELECT id::text
FROM favorites
WHERE owner_id = $1 AND product_id = $2
`
	var id string
	err := r.pool.QueryRow(ctx, q, ownerID, productID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.ErrNotFound
		}
		return "", err
	}
	return id, nil
}

func (r *postgresRepo) Create(ctx context.Context, ownerID, productID string) (*domain.Favorite, error) {
	const q = `
INSERT INTO favorites (owner_id, product_id)
VALUES ($1, $2)
ON CONFLICT (product_id, owner_id) DO UPDATE SET owner_id = EXCLUDED.owner_id
RETURNING id::text, product_id::text, owner_id, created_at
`
	var fav domain.Favorite
	err := r.pool.QueryRow(ctx, q, ownerID, productID).Scan(&fav.ID, &fav.ProductID, &fav.OwnerID, &fav.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &fav, nil
}

func (r *postgresRepo) DeleteOwned(ctx context.Context, id, ownerID string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM favorites WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) ListByOwner(ctx context.Context, ownerID string) ([]domain.Favorite, error) {
	const q = `
SELECT f.id::text, f.product_id::text, f.owner_id, f.created_at,
       p.id::text, p.name, p.company, COALESCE(p.description, ''), p.price_cents, p.image_url, p.image_key, p.featured, p.created_at
FROM favorites f
JOIN products p ON p.id = f.product_id
WHERE f.owner_id = $1
ORDER BY f.created_at DESC
`
	rows, err := r.pool.Query(ctx, q, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Favorite
	for rows.Next() {
		var fav domain.Favorite
		var product domain.Product
		if err := rows.Scan(&fav.ID, &fav.ProductID, &fav.OwnerID, &fav.CreatedAt,
			&product.ID, &product.Name, &product.Company, &product.Description, &product.PriceCents,
			&product.ImageURL, &product.ImageKey, &product.Featured, &product.CreatedAt); err != nil {
			return nil, err
		}
		fav.Product = &product
		result = append(result, fav)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
