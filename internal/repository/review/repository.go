package review

import (
	"context"

	"storefront/internal/domain"
)

type CreateReviewInput struct {
	ProductID      string
	OwnerID        string
	AuthorName     string
	AuthorImageURL string
	Rating         int
	Comment        string
}

type Repository interface {
	Create(ctx context.Context, in CreateReviewInput) (*domain.Review, error)
	ListByProduct(ctx context.Context, productID string) ([]domain.Review, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Review, error)
	FindByOwnerAndProduct(ctx context.Context, ownerID, productID string) (*domain.Review, error)
	// DeleteOwned deletes a review only when it belongs to ownerID.
	DeleteOwned(ctx context.Context, id, ownerID string) error
	// Rating aggregates the average (one decimal) and count for a product.
	Rating(ctx context.Context, productID string) (domain.ProductRating, error)
}
