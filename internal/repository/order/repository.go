package order

import (
	"context"

	"storefront/internal/domain"
)

type CreateOrderInput struct {
	OwnerID         string
	Products        int
	OrderTotalCents int64
	TaxCents        int64
	ShippingCents   int64
	Email           string
}

type Repository interface {
	// CreateFromSnapshot purges the owner's unpaid orders and inserts a new
	// unpaid order in one transaction, so at most one order is ever in
	// flight per user.
	CreateFromSnapshot(ctx context.Context, in CreateOrderInput) (*domain.Order, error)
	ListPaidByOwner(ctx context.Context, ownerID string) ([]domain.Order, error)
	ListPaid(ctx context.Context) ([]domain.Order, error)
	// FinalizePayment marks the order paid and deletes the cart as a single
	// transaction. A half-applied state here is a correctness bug, not a
	// cosmetic one.
	FinalizePayment(ctx context.Context, orderID, cartID string) error
}
