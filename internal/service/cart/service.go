// Package cart orchestrates the cart read and mutation paths. Every path
// funnels through the repository recompute, which is the single authoritative
// source for the persisted totals.
package cart

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/domain"
	cartrepo "storefront/internal/repository/cart"
)

type Service struct {
	repo     cartRepo
	products productRepo
	defaults cartrepo.CartDefaults
}

type cartRepo interface {
	GetOrCreateByOwner(ctx context.Context, ownerID string, defaults cartrepo.CartDefaults) (*domain.Cart, error)
	GetByOwner(ctx context.Context, ownerID string) (*domain.Cart, error)
	NumItemsByOwner(ctx context.Context, ownerID string) (int, error)
	AddLine(ctx context.Context, cartID, productID string, amount int) error
	SetLineAmount(ctx context.Context, cartID, lineID string, amount int) error
	RemoveLine(ctx context.Context, cartID, lineID string) error
	Recompute(ctx context.Context, cartID string) (*domain.Cart, error)
}

type productRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

func New(repo cartrepo.Repository, products productRepo, defaults cartrepo.CartDefaults) *Service {
	return &Service{repo: repo, products: products, defaults: defaults}
}

// Get returns the owner's cart, creating an empty one on first access, with
// totals recomputed against current product prices.
func (s *Service) Get(ctx context.Context, ownerID string) (*domain.Cart, error) {
	cart, err := s.repo.GetOrCreateByOwner(ctx, ownerID, s.defaults)
	if err != nil {
		return nil, err
	}
	return s.repo.Recompute(ctx, cart.ID)
}

// CountItems reads the persisted item count for the cart badge. Users
// without a cart get 0, never an implicit cart.
func (s *Service) CountItems(ctx context.Context, ownerID string) (int, error) {
	return s.repo.NumItemsByOwner(ctx, ownerID)
}

// AddItem merges amount of productID into the owner's cart, creating the
// cart when absent. The product must exist; its live price is what the
// recompute sees.
func (s *Service) AddItem(ctx context.Context, ownerID, productID string, amount int) (*domain.Cart, error) {
	if productID == "" {
		return nil, fmt.Errorf("%w: productId required", domain.ErrValidation)
	}
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be a positive integer", domain.ErrValidation)
	}
	if _, err := s.products.GetByID(ctx, productID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("product %s: %w", productID, domain.ErrNotFound)
		}
		return nil, err
	}

	cart, err := s.repo.GetOrCreateByOwner(ctx, ownerID, s.defaults)
	if err != nil {
		return nil, err
	}
	if err := s.repo.AddLine(ctx, cart.ID, productID, amount); err != nil {
		return nil, err
	}
	return s.repo.GetByOwner(ctx, ownerID)
}

// UpdateItem replaces a line's amount. The cart must already exist; callers
// remove a line instead of setting it to zero.
func (s *Service) UpdateItem(ctx context.Context, ownerID, lineID string, amount int) (*domain.Cart, error) {
	if lineID == "" {
		return nil, fmt.Errorf("%w: line item id required", domain.ErrValidation)
	}
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be a positive integer", domain.ErrValidation)
	}

	cart, err := s.repo.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.SetLineAmount(ctx, cart.ID, lineID, amount); err != nil {
		return nil, err
	}
	return s.repo.GetByOwner(ctx, ownerID)
}

// RemoveItem deletes a line scoped to the owner's cart. Ids from other carts
// fail with not-found and mutate nothing.
func (s *Service) RemoveItem(ctx context.Context, ownerID, lineID string) (*domain.Cart, error) {
	if lineID == "" {
		return nil, fmt.Errorf("%w: line item id required", domain.ErrValidation)
	}

	cart, err := s.repo.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.RemoveLine(ctx, cart.ID, lineID); err != nil {
		return nil, err
	}
	return s.repo.GetByOwner(ctx, ownerID)
}
