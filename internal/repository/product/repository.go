package product

import (
	"context"

	"storefront/internal/domain"
)

type CreateProductInput struct {
	Name        string
	Company     string
	Description string
	PriceCents  int64
	ImageURL    string
	ImageKey    string
	Featured    bool
}

type UpdateProductInput struct {
	Name        string
	Company     string
	Description string
	PriceCents  int64
	Featured    bool
}

type Repository interface {
	List(ctx context.Context, search string) ([]domain.Product, error)
	ListFeatured(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, in CreateProductInput) (*domain.Product, error)
	Update(ctx context.Context, id string, in UpdateProductInput) (*domain.Product, error)
	SetImage(ctx context.Context, id, imageURL, imageKey string) error
	Delete(ctx context.Context, id string) (*domain.Product, error)
}
