package review

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"storefront/internal/domain"
	reviewrepo "storefront/internal/repository/review"
)

type reviewRepo interface {
	Create(ctx context.Context, in reviewrepo.CreateReviewInput) (*domain.Review, error)
	ListByProduct(ctx context.Context, productID string) ([]domain.Review, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Review, error)
	FindByOwnerAndProduct(ctx context.Context, ownerID, productID string) (*domain.Review, error)
	DeleteOwned(ctx context.Context, id, ownerID string) error
	Rating(ctx context.Context, productID string) (domain.ProductRating, error)
}

type productRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

type Service struct {
	reviews  reviewRepo
	products productRepo
	logger   *log.Logger
}

func New(reviews reviewRepo, products productRepo, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{reviews: reviews, products: products, logger: logger}
}

type CreateInput struct {
	ProductID      string
	AuthorName     string
	AuthorImageURL string
	Rating         int
	Comment        string
}

// Create adds a review for a product. A user may review each product
// at most once.
func (s *Service) Create(ctx context.Context, ownerID string, in CreateInput) (*domain.Review, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", domain.ErrValidation)
	}
	if strings.TrimSpace(in.Comment) == "" {
		return nil, fmt.Errorf("%w: comment is required", domain.ErrValidation)
	}
	if strings.TrimSpace(in.AuthorName) == "" {
		return nil, fmt.Errorf("%w: author name is required", domain.ErrValidation)
	}

	if _, err := s.products.GetByID(ctx, in.ProductID); err != nil {
		return nil, fmt.Errorf("look up product: %w", err)
	}

	existing, err := s.reviews.FindByOwnerAndProduct(ctx, ownerID, in.ProductID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("check existing review: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: product already reviewed", domain.ErrAlreadyExists)
	}

	review, err := s.reviews.Create(ctx, reviewrepo.CreateReviewInput{
		ProductID:      in.ProductID,
		OwnerID:        ownerID,
		AuthorName:     strings.TrimSpace(in.AuthorName),
		AuthorImageURL: in.AuthorImageURL,
		Rating:         in.Rating,
		Comment:        strings.TrimSpace(in.Comment),
	})
	if err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}
	s.logger.Printf("review created: product=%s rating=%d", in.ProductID, in.Rating)
	return review, nil
}

func (s *Service) ListByProduct(ctx context.Context, productID string) ([]domain.Review, error) {
	return s.reviews.ListByProduct(ctx, productID)
}

func (s *Service) ListOwn(ctx context.Context, ownerID string) ([]domain.Review, error) {
	return s.reviews.ListByOwner(ctx, ownerID)
}

// HasReviewed reports whether ownerID already reviewed productID.
func (s *Service) HasReviewed(ctx context.Context, ownerID, productID string) (bool, error) {
	_, err := s.reviews.FindByOwnerAndProduct(ctx, ownerID, productID)
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *Service) DeleteOwn(ctx context.Context, id, ownerID string) error {
	return s.reviews.DeleteOwned(ctx, id, ownerID)
}

func (s *Service) Rating(ctx context.Context, productID string) (domain.ProductRating, error) {
	return s.reviews.Rating(ctx, productID)
}
