package review

import (
	"context"
	"errors"
	"io"
	"log"

	"storefront/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const reviewColumns = `id::text, product_id::text, owner_id, author_name, author_image_url, rating, comment, created_at`

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

func (r *postgresRepo) Create(ctx context.Context, in CreateReviewInput) (*domain.Review, error) {
	const q = `
INSERT INTO reviews (product_id, owner_id, author_name, author_image_url, rating, comment)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + reviewColumns + `
`
	var rev domain.Review
	err := r.pool.QueryRow(ctx, q, in.ProductID, in.OwnerID, in.AuthorName, in.AuthorImageURL, in.Rating, in.Comment).
		Scan(&rev.ID, &rev.ProductID, &rev.OwnerID, &rev.AuthorName, &rev.AuthorImageURL, &rev.Rating, &rev.Comment, &rev.CreatedAt)
	if err != nil {
		r.logger.Printf("review repo: create product=%s owner=%s error=%v", in.ProductID, in.OwnerID, err)
		return nil, err
	}
	return &rev, nil
}

func (r *postgresRepo) ListByProduct(ctx context.Context, productID string) ([]domain.Review, error) {
	const q = `
SELECT ` + reviewColumns + `
FROM reviews
WHERE product_id = $1
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReviews(rows)
}

func (r *postgresRepo) ListByOwner(ctx context.Context, ownerID string) ([]domain.Review, error) {
	const q = `
SELECT r.id::text, r.product_id::text, r.owner_id, r.author_name, r.author_image_url, r.rating, r.comment, r.created_at,
       p.name, p.image_url
FROM reviews r
JOIN products p ON p.id = r.product_id
WHERE r.owner_id = $1
ORDER BY r.created_at DESC
`
	rows, err := r.pool.Query(ctx, q, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Review
	for rows.Next() {
		var rev domain.Review
		var product domain.Product
		if err := rows.Scan(&rev.ID, &rev.ProductID, &rev.OwnerID, &rev.AuthorName, &rev.AuthorImageURL, &rev.Rating, &rev.Comment, &rev.CreatedAt,
			&product.Name, &product.ImageURL); err != nil {
			return nil, err
		}
		product.ID = rev.ProductID
		rev.Product = &product
		result = append(result, rev)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) FindByOwnerAndProduct(ctx context.Context, ownerID, productID string) (*domain.Review, error) {
	const q = `
SELECT ` + reviewColumns + `
FROM reviews
WHERE owner_id = $1 AND product_id = $2
LIMIT 1
`
	var rev domain.Review
	err := r.pool.QueryRow(ctx, q, ownerID, productID).
		Scan(&rev.ID, &rev.ProductID, &rev.OwnerID, &rev.AuthorName, &rev.AuthorImageURL, &rev.Rating, &rev.Comment, &rev.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &rev, nil
}

func (r *postgresRepo) DeleteOwned(ctx context.Context, id, ownerID string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM reviews WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) Rating(ctx context.Context, productID string) (domain.ProductRating, error) {
	const q = `
SELECT COALESCE(ROUND(AVG(rating)::numeric, 1), 0)::float8, COUNT(rating)
FROM reviews
WHERE product_id = $1
GROUP BY product_id
`
	var rating domain.ProductRating
	err := r.pool.QueryRow(ctx, q, productID).Scan(&rating.Average, &rating.Count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// No reviews yet.
			return domain.ProductRating{}, nil
		}
		return domain.ProductRating{}, err
	}
	return rating, nil
}

func scanReviews(rows pgx.Rows) ([]domain.Review, error) {
	var result []domain.Review
	for rows.Next() {
		var rev domain.Review
		if err := rows.Scan(&rev.ID, &rev.ProductID, &rev.OwnerID, &rev.AuthorName, &rev.AuthorImageURL, &rev.Rating, &rev.Comment, &rev.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, rev)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
