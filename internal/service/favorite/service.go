package favorite

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"storefront/internal/domain"
)

type favoriteRepo interface {
	FindID(ctx context.Context, ownerID, productID string) (string, error)
	Create(ctx context.Context, ownerID, productID string) (*domain.Favorite, error)
	DeleteOwned(ctx context.Context, id, ownerID string) error
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Favorite, error)
}

type productRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

type Service struct {
	favorites favoriteRepo
	products  productRepo
	logger    *log.Logger
}

func New(favorites favoriteRepo, products productRepo, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{favorites: favorites, products: products, logger: logger}
}

// Toggle favorites a product when it is not favorited yet and removes
// the favorite otherwise. It returns the favorite id after the toggle,
// empty when the product ended up unfavorited.
func (s *Service) Toggle(ctx context.Context, ownerID, productID string) (string, error) {
	if _, err := s.products.GetByID(ctx, productID); err != nil {
		return "", fmt.Errorf("look up product: %w", err)
	}

	id, err := s.favorites.FindID(ctx, ownerID, productID)
	switch {
	case err == nil:
		if err := s.favorites.DeleteOwned(ctx, id, ownerID); err != nil {
			return "", fmt.Errorf("remove favorite: %w", err)
		}
		s.logger.Printf("favorite removed: product=%s", productID)
		return "", nil
	case errors.Is(err, domain.ErrNotFound):
		fav, err := s.favorites.Create(ctx, ownerID, productID)
		if err != nil {
			return "", fmt.Errorf("create favorite: %w", err)
		}
		s.logger.Printf("favorite added: product=%s", productID)
		return fav.ID, nil
	default:
		return "", fmt.Errorf("look up favorite: %w", err)
	}
}

// FavoriteID returns the caller's favorite id for a product, empty when
// the product is not favorited.
func (s *Service) FavoriteID(ctx context.Context, ownerID, productID string) (string, error) {
	id, err := s.favorites.FindID(ctx, ownerID, productID)
	if errors.Is(err, domain.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Service) ListOwn(ctx context.Context, ownerID string) ([]domain.Favorite, error) {
	return s.favorites.ListByOwner(ctx, ownerID)
}
