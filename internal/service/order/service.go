// Package order materializes priced carts into immutable orders and settles
// them when the payment provider reports the checkout session complete.
package order

import (
	"context"
	"fmt"
	"io"
	"log"

	"storefront/internal/domain"
	"storefront/internal/payment"
	orderrepo "storefront/internal/repository/order"
)

type Service struct {
	orders   orderRepo
	carts    cartRepo
	provider payment.Provider
	logger   *log.Logger
}

type orderRepo interface {
	CreateFromSnapshot(ctx context.Context, in orderrepo.CreateOrderInput) (*domain.Order, error)
	ListPaidByOwner(ctx context.Context, ownerID string) ([]domain.Order, error)
	ListPaid(ctx context.Context) ([]domain.Order, error)
	FinalizePayment(ctx context.Context, orderID, cartID string) error
}

type cartRepo interface {
	GetByOwner(ctx context.Context, ownerID string) (*domain.Cart, error)
}

func New(orders orderRepo, carts cartRepo, provider payment.Provider, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{orders: orders, carts: carts, provider: provider, logger: logger}
}

// Place snapshots the owner's cart into an unpaid order and opens a hosted
// checkout session, returning the redirect destination. The snapshot uses
// the cart's persisted aggregates, so the order charges exactly what the
// user last saw, not a total that could shift between display and submit.
func (s *Service) Place(ctx context.Context, ownerID, email string) (string, error) {
	if email == "" {
		return "", fmt.Errorf("%w: email required", domain.ErrValidation)
	}

	cart, err := s.carts.GetByOwner(ctx, ownerID)
	if err != nil {
		return "", err
	}

	order, err := s.orders.CreateFromSnapshot(ctx, orderrepo.CreateOrderInput{
		OwnerID:         ownerID,
		Products:        cart.NumItems,
		OrderTotalCents: cart.OrderTotalCents,
		TaxCents:        cart.TaxCents,
		ShippingCents:   cart.ShippingCents,
		Email:           email,
	})
	if err != nil {
		return "", err
	}

	sess, err := s.provider.CreateSession(ctx, payment.CreateSessionInput{
		OrderID:     order.ID,
		CartID:      cart.ID,
		Email:       email,
		AmountCents: order.OrderTotalCents,
		Products:    order.Products,
	})
	if err != nil {
		return "", err
	}
	s.logger.Printf("order service: placed order=%s cart=%s session=%s total=%d", order.ID, cart.ID, sess.ID, order.OrderTotalCents)
	return sess.RedirectURL, nil
}

// Confirm consumes the payment provider's completion callback. Only status
// "complete" finalizes: the order is marked paid and the cart deleted in one
// transaction. Any other status leaves all state untouched.
func (s *Service) Confirm(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return fmt.Errorf("%w: session id required", domain.ErrValidation)
	}

	res, err := s.provider.RetrieveSession(ctx, sessionID)
	if err != nil {
		return err
	}
	if res.Status != payment.StatusComplete {
		s.logger.Printf("order service: session=%s status=%s ignored", sessionID, res.Status)
		return nil
	}
	if res.OrderID == "" || res.CartID == "" {
		return fmt.Errorf("session %s: metadata missing order or cart id", sessionID)
	}
	return s.orders.FinalizePayment(ctx, res.OrderID, res.CartID)
}

// ListOwn returns the owner's paid orders, newest first.
func (s *Service) ListOwn(ctx context.Context, ownerID string) ([]domain.Order, error) {
	return s.orders.ListPaidByOwner(ctx, ownerID)
}

// ListAll returns every paid order, newest first. Admin only; the route layer
// gates it.
func (s *Service) ListAll(ctx context.Context) ([]domain.Order, error) {
	return s.orders.ListPaid(ctx)
}
