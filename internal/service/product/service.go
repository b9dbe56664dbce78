// Package product serves the catalog and the admin CRUD workflow, including
// image upload to object storage.
package product

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"storefront/internal/domain"
	productrepo "storefront/internal/repository/product"
	"storefront/internal/storage"
)

// maxImageBytes caps uploads at 1 MiB.
const maxImageBytes = 1 << 20

type Service struct {
	repo   productrepo.Repository
	store  storage.Store
	logger *log.Logger
}

func New(repo productrepo.Repository, store storage.Store, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{repo: repo, store: store, logger: logger}
}

type Fields struct {
	Name        string
	Company     string
	Description string
	PriceCents  int64
	Featured    bool
}

// ImageUpload is a pending image file; Reader is consumed at most once.
type ImageUpload struct {
	Filename    string
	Size        int64
	ContentType string
	Reader      io.Reader
}

func (s *Service) List(ctx context.Context, search string) ([]domain.Product, error) {
	return s.repo.List(ctx, strings.TrimSpace(search))
}

func (s *Service) Featured(ctx context.Context) ([]domain.Product, error) {
	return s.repo.ListFeatured(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// Create validates the fields and the image, uploads the image, then inserts
// the product. Nothing is mutated when validation fails; an upload left
// behind by a failed insert is removed best-effort.
func (s *Service) Create(ctx context.Context, fields Fields, image ImageUpload) (*domain.Product, error) {
	if err := validateFields(fields); err != nil {
		return nil, err
	}
	if err := validateImage(image); err != nil {
		return nil, err
	}

	obj, err := s.store.Put(ctx, image.Filename, image.Reader, image.Size, image.ContentType)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, productrepo.CreateProductInput{
		Name:        fields.Name,
		Company:     fields.Company,
		Description: fields.Description,
		PriceCents:  fields.PriceCents,
		ImageURL:    obj.URL,
		ImageKey:    obj.Key,
		Featured:    fields.Featured,
	})
	if err != nil {
		if rmErr := s.store.Remove(ctx, obj.Key); rmErr != nil {
			s.logger.Printf("product service: orphaned image key=%s error=%v", obj.Key, rmErr)
		}
		return nil, err
	}
	return created, nil
}

func (s *Service) Update(ctx context.Context, id string, fields Fields) (*domain.Product, error) {
	if err := validateFields(fields); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, productrepo.UpdateProductInput{
		Name:        fields.Name,
		Company:     fields.Company,
		Description: fields.Description,
		PriceCents:  fields.PriceCents,
		Featured:    fields.Featured,
	})
}

// ReplaceImage uploads the new image, points the product at it, then removes
// the previous object by its stored key.
func (s *Service) ReplaceImage(ctx context.Context, id string, image ImageUpload) (*domain.Product, error) {
	if err := validateImage(image); err != nil {
		return nil, err
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	obj, err := s.store.Put(ctx, image.Filename, image.Reader, image.Size, image.ContentType)
	if err != nil {
		return nil, err
	}
	if err := s.repo.SetImage(ctx, id, obj.URL, obj.Key); err != nil {
		if rmErr := s.store.Remove(ctx, obj.Key); rmErr != nil {
			s.logger.Printf("product service: orphaned image key=%s error=%v", obj.Key, rmErr)
		}
		return nil, err
	}
	if current.ImageKey != "" {
		if err := s.store.Remove(ctx, current.ImageKey); err != nil {
			s.logger.Printf("product service: stale image key=%s error=%v", current.ImageKey, err)
		}
	}
	return s.repo.GetByID(ctx, id)
}

// Delete removes the product row and its stored image.
func (s *Service) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if deleted.ImageKey != "" {
		if err := s.store.Remove(ctx, deleted.ImageKey); err != nil {
			s.logger.Printf("product service: stale image key=%s error=%v", deleted.ImageKey, err)
		}
	}
	return nil
}

func validateFields(fields Fields) error {
	name := strings.TrimSpace(fields.Name)
	if len(name) < 5 || len(name) > 30 {
		return fmt.Errorf("%w: name must be between 5 and 30 characters", domain.ErrValidation)
	}
	if strings.TrimSpace(fields.Company) == "" {
		return fmt.Errorf("%w: company required", domain.ErrValidation)
	}
	if fields.PriceCents < 0 {
		return fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}
	words := len(strings.Fields(fields.Description))
	if words < 10 || words > 1000 {
		return fmt.Errorf("%w: description must be between 10 and 1000 words", domain.ErrValidation)
	}
	return nil
}

func validateImage(image ImageUpload) error {
	if image.Reader == nil || image.Size <= 0 {
		return fmt.Errorf("%w: image required", domain.ErrValidation)
	}
	if image.Size > maxImageBytes {
		return fmt.Errorf("%w: image must be 1MB or smaller", domain.ErrValidation)
	}
	if !strings.HasPrefix(image.ContentType, "image/") {
		return fmt.Errorf("%w: file must be an image", domain.ErrValidation)
	}
	return nil
}
