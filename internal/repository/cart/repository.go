package cart

import (
	"context"

	"storefront/internal/domain"
)

// CartDefaults seed the tax rate and flat shipping on first creation.
type CartDefaults struct {
	TaxRate       float64
	ShippingCents int64
}

type Repository interface {
	// GetOrCreateByOwner returns the single cart for ownerID, creating an
	// empty one with the given defaults when absent.
	GetOrCreateByOwner(ctx context.Context, ownerID string, defaults CartDefaults) (*domain.Cart, error)
	// GetByOwner returns the cart for ownerID or domain.ErrNotFound.
	GetByOwner(ctx context.Context, ownerID string) (*domain.Cart, error)
	// NumItemsByOwner reads the persisted item count; 0 when no cart exists.
	NumItemsByOwner(ctx context.Context, ownerID string) (int, error)

	// AddLine merges amount into the line for productID (one line per
	// product) and recomputes aggregates, all in one transaction.
	AddLine(ctx context.Context, cartID, productID string, amount int) error
	// SetLineAmount replaces the amount of a line scoped to (lineID, cartID)
	// and recomputes aggregates.
	SetLineAmount(ctx context.Context, cartID, lineID string, amount int) error
	// RemoveLine deletes a line scoped to (lineID, cartID) and recomputes
	// aggregates.
	RemoveLine(ctx context.Context, cartID, lineID string) error

	// Recompute re-derives and persists the aggregate fields from the lines
	// joined with current product prices, returning the updated cart.
	Recompute(ctx context.Context, cartID string) (*domain.Cart, error)

	Delete(ctx context.Context, cartID string) error
}
