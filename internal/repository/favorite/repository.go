package favorite

import (
	"context"

	"storefront/internal/domain"
)

type Repository interface {
	// FindID returns the favorite id for (ownerID, productID) or
	// domain.ErrNotFound.
	FindID(ctx context.Context, ownerID, productID string) (string, error)
	Create(ctx context.Context, ownerID, productID string) (*domain.Favorite, error)
	// DeleteOwned deletes a favorite only when it belongs to ownerID.
	DeleteOwned(ctx context.Context, id, ownerID string) error
	// ListByOwner returns the owner's favorites joined with their products.
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Favorite, error)
}
