package cart

import (
	"context"
	"errors"
	"testing"

	"storefront/internal/domain"
	cartrepo "storefront/internal/repository/cart"
)

type stubRepo struct {
	getOrCreateCart *domain.Cart
	getOrCreateErr  error
	getByOwnerCarts []*domain.Cart
	getByOwnerErr   error
	getByOwnerCalls int
	numItems        int
	numItemsErr     error
	addLineErr      error
	setAmountErr    error
	removeLineErr   error
	recomputeCart   *domain.Cart
	recomputeErr    error
	recomputeCalls  int

	lastDefaults    cartrepo.CartDefaults
	lastAddCartID   string
	lastAddProduct  string
	lastAddAmount   int
	lastSetCartID   string
	lastSetLineID   string
	lastSetAmount   int
	lastRemoveCart  string
	lastRemoveLine  string
	lastRecomputeID string
}

func (s *stubRepo) GetOrCreateByOwner(_ context.Context, _ string, defaults cartrepo.CartDefaults) (*domain.Cart, error) {
	s.lastDefaults = defaults
	return s.getOrCreateCart, s.getOrCreateErr
}

func (s *stubRepo) GetByOwner(_ context.Context, _ string) (*domain.Cart, error) {
	if s.getByOwnerErr != nil {
		return nil, s.getByOwnerErr
	}
	var res *domain.Cart
	if len(s.getByOwnerCarts) > 0 {
		idx := s.getByOwnerCalls
		if idx >= len(s.getByOwnerCarts) {
			idx = len(s.getByOwnerCarts) - 1
		}
		res = s.getByOwnerCarts[idx]
	}
	s.getByOwnerCalls++
	return res, nil
}

func (s *stubRepo) NumItemsByOwner(_ context.Context, _ string) (int, error) {
	return s.numItems, s.numItemsErr
}

func (s *stubRepo) AddLine(_ context.Context, cartID, productID string, amount int) error {
	s.lastAddCartID = cartID
	s.lastAddProduct = productID
	s.lastAddAmount = amount
	return s.addLineErr
}

func (s *stubRepo) SetLineAmount(_ context.Context, cartID, lineID string, amount int) error {
	s.lastSetCartID = cartID
	s.lastSetLineID = lineID
	s.lastSetAmount = amount
	return s.setAmountErr
}

func (s *stubRepo) RemoveLine(_ context.Context, cartID, lineID string) error {
	s.lastRemoveCart = cartID
	s.lastRemoveLine = lineID
	return s.removeLineErr
}

func (s *stubRepo) Recompute(_ context.Context, cartID string) (*domain.Cart, error) {
	s.lastRecomputeID = cartID
	s.recomputeCalls++
	return s.recomputeCart, s.recomputeErr
}

func (s *stubRepo) Delete(_ context.Context, _ string) error {
	return nil
}

type stubProductRepo struct {
	product *domain.Product
	err     error
	lastID  string
}

func (s *stubProductRepo) GetByID(_ context.Context, id string) (*domain.Product, error) {
	s.lastID = id
	return s.product, s.err
}

func TestGetRecomputesOnEveryRead(t *testing.T) {
	stale := &domain.Cart{ID: "cart", OrderTotalCents: 1}
	fresh := &domain.Cart{ID: "cart", OrderTotalCents: 2660}
	repo := &stubRepo{getOrCreateCart: stale, recomputeCart: fresh}
	svc := &Service{repo: repo, defaults: cartrepo.CartDefaults{TaxRate: 0.08, ShippingCents: 500}}

	got, err := svc.Get(context.Background(), "user")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != fresh {
		t.Fatalf("expected recomputed cart, got %+v", got)
	}
	if repo.recomputeCalls != 1 || repo.lastRecomputeID != "cart" {
		t.Fatalf("recompute not invoked for cart read")
	}
	if repo.lastDefaults.TaxRate != 0.08 || repo.lastDefaults.ShippingCents != 500 {
		t.Fatalf("defaults not passed on create: %+v", repo.lastDefaults)
	}
}

func TestCountItemsWithoutCart(t *testing.T) {
	svc := &Service{repo: &stubRepo{numItems: 0}}
	n, err := svc.CountItems(context.Background(), "user")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected 0, got %d", n)
	}
}

func TestAddItemValidation(t *testing.T) {
	svc := &Service{repo: &stubRepo{}, products: &stubProductRepo{}}

	_, err := svc.AddItem(context.Background(), "user", "", 1)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}

	for _, amount := range []int{0, -3} {
		_, err = svc.AddItem(context.Background(), "user", "prod", amount)
		if !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("amount %d: expected validation error, got %v", amount, err)
		}
	}
}

func TestAddItemUnknownProduct(t *testing.T) {
	repo := &stubRepo{}
	svc := &Service{repo: repo, products: &stubProductRepo{err: domain.ErrNotFound}}
	_, err := svc.AddItem(context.Background(), "user", "ghost", 1)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if repo.lastAddCartID != "" {
		t.Fatalf("mutation attempted for unknown product")
	}
}

func TestAddItemHappyPath(t *testing.T) {
	updated := &domain.Cart{ID: "cart", NumItems: 2, CartTotalCents: 2000}
	repo := &stubRepo{
		getOrCreateCart: &domain.Cart{ID: "cart"},
		getByOwnerCarts: []*domain.Cart{updated},
	}
	products := &stubProductRepo{product: &domain.Product{ID: "prod", PriceCents: 1000}}
	svc := &Service{repo: repo, products: products}

	got, err := svc.AddItem(context.Background(), "user", "prod", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != updated {
		t.Fatalf("unexpected cart: %+v", got)
	}
	if repo.lastAddCartID != "cart" || repo.lastAddProduct != "prod" || repo.lastAddAmount != 2 {
		t.Fatalf("add line not called as expected")
	}
	if products.lastID != "prod" {
		t.Fatalf("product lookup skipped")
	}
}

func TestUpdateItemRequiresExistingCart(t *testing.T) {
	repo := &stubRepo{getByOwnerErr: domain.ErrNotFound}
	svc := &Service{repo: repo}
	_, err := svc.UpdateItem(context.Background(), "user", "line", 3)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if repo.lastSetCartID != "" {
		t.Fatalf("mutation attempted without a cart")
	}
}

func TestUpdateItemValidation(t *testing.T) {
	svc := &Service{repo: &stubRepo{}}
	_, err := svc.UpdateItem(context.Background(), "user", "line", 0)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	_, err = svc.UpdateItem(context.Background(), "user", "", 1)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpdateItemHappyPath(t *testing.T) {
	current := &domain.Cart{ID: "cart"}
	updated := &domain.Cart{ID: "cart", NumItems: 3}
	repo := &stubRepo{getByOwnerCarts: []*domain.Cart{current, updated}}
	svc := &Service{repo: repo}

	got, err := svc.UpdateItem(context.Background(), "user", "line", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != updated {
		t.Fatalf("unexpected cart: %+v", got)
	}
	if repo.lastSetCartID != "cart" || repo.lastSetLineID != "line" || repo.lastSetAmount != 3 {
		t.Fatalf("set line amount not called as expected")
	}
}

func TestRemoveItemForeignLine(t *testing.T) {
	repo := &stubRepo{
		getByOwnerCarts: []*domain.Cart{{ID: "cart"}},
		removeLineErr:   domain.ErrNotFound,
	}
	svc := &Service{repo: repo}
	_, err := svc.RemoveItem(context.Background(), "user", "someone-elses-line")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestRemoveItemHappyPath(t *testing.T) {
	current := &domain.Cart{ID: "cart", NumItems: 1}
	emptied := &domain.Cart{ID: "cart", NumItems: 0}
	repo := &stubRepo{getByOwnerCarts: []*domain.Cart{current, emptied}}
	svc := &Service{repo: repo}

	got, err := svc.RemoveItem(context.Background(), "user", "line")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != emptied {
		t.Fatalf("unexpected cart: %+v", got)
	}
	if repo.lastRemoveCart != "cart" || repo.lastRemoveLine != "line" {
		t.Fatalf("remove line not called as expected")
	}
}
