package product

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"storefront/internal/domain"
	productrepo "storefront/internal/repository/product"
	"storefront/internal/storage"
)

type stubRepo struct {
	products   []domain.Product
	listErr    error
	lastSearch string

	product *domain.Product
	getErr  error

	created    *domain.Product
	createErr  error
	lastCreate productrepo.CreateProductInput

	updated    *domain.Product
	updateErr  error
	lastUpdate productrepo.UpdateProductInput

	setImageErr  error
	lastImageURL string
	lastImageKey string

	deleted   *domain.Product
	deleteErr error
}

func (s *stubRepo) List(_ context.Context, search string) ([]domain.Product, error) {
	s.lastSearch = search
	return s.products, s.listErr
}

func (s *stubRepo) ListFeatured(_ context.Context) ([]domain.Product, error) {
	return s.products, s.listErr
}

func (s *stubRepo) GetByID(_ context.Context, _ string) (*domain.Product, error) {
	return s.product, s.getErr
}

func (s *stubRepo) Create(_ context.Context, in productrepo.CreateProductInput) (*domain.Product, error) {
	s.lastCreate = in
	return s.created, s.createErr
}

func (s *stubRepo) Update(_ context.Context, _ string, in productrepo.UpdateProductInput) (*domain.Product, error) {
	s.lastUpdate = in
	return s.updated, s.updateErr
}

func (s *stubRepo) SetImage(_ context.Context, _, imageURL, imageKey string) error {
	s.lastImageURL = imageURL
	s.lastImageKey = imageKey
	return s.setImageErr
}

func (s *stubRepo) Delete(_ context.Context, _ string) (*domain.Product, error) {
	return s.deleted, s.deleteErr
}

type memStore struct {
	object   storage.Object
	putErr   error
	putCalls int
	removed  []string
}

func (s *memStore) Put(_ context.Context, _ string, _ io.Reader, _ int64, _ string) (storage.Object, error) {
	s.putCalls++
	if s.putErr != nil {
		return storage.Object{}, s.putErr
	}
	return s.object, nil
}

func (s *memStore) Remove(_ context.Context, key string) error {
	s.removed = append(s.removed, key)
	return nil
}

func validFields() Fields {
	return Fields{
		Name:        "Wooden Chair",
		Company:     "Acme",
		Description: strings.Repeat("sturdy ", 12),
		PriceCents:  19999,
	}
}

func validImage() ImageUpload {
	return ImageUpload{
		Filename:    "chair.png",
		Size:        512,
		ContentType: "image/png",
		Reader:      strings.NewReader("png-bytes"),
	}
}

func TestValidateFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Fields)
	}{
		{"short name", func(f *Fields) { f.Name = "abc" }},
		{"long name", func(f *Fields) { f.Name = strings.Repeat("x", 31) }},
		{"missing company", func(f *Fields) { f.Company = "  " }},
		{"negative price", func(f *Fields) { f.PriceCents = -1 }},
		{"short description", func(f *Fields) { f.Description = "too short" }},
		{"long description", func(f *Fields) { f.Description = strings.Repeat("word ", 1001) }},
	}
	for _, c := range cases {
		fields := validFields()
		c.mutate(&fields)
		if err := validateFields(fields); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("%s: expected validation error, got %v", c.name, err)
		}
	}
	if err := validateFields(validFields()); err != nil {
		t.Fatalf("valid fields rejected: %v", err)
	}
}

func TestValidateImage(t *testing.T) {
	img := validImage()
	if err := validateImage(img); err != nil {
		t.Fatalf("valid image rejected: %v", err)
	}

	img = validImage()
	img.Size = maxImageBytes + 1
	if err := validateImage(img); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("oversized image: expected validation error, got %v", err)
	}

	img = validImage()
	img.ContentType = "application/pdf"
	if err := validateImage(img); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("non-image upload: expected validation error, got %v", err)
	}

	img = validImage()
	img.Reader = nil
	if err := validateImage(img); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("missing file: expected validation error, got %v", err)
	}
}

func TestCreateRejectsBeforeUpload(t *testing.T) {
	repo := &stubRepo{}
	store := &memStore{}
	svc := New(repo, store, nil)

	fields := validFields()
	fields.Name = "abc"
	_, err := svc.Create(context.Background(), fields, validImage())
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if store.putCalls != 0 {
		t.Fatalf("upload attempted despite invalid fields")
	}
	if repo.lastCreate.Name != "" {
		t.Fatalf("insert attempted despite invalid fields")
	}
}

func TestCreateHappyPath(t *testing.T) {
	created := &domain.Product{ID: "p1", Name: "Wooden Chair"}
	repo := &stubRepo{created: created}
	store := &memStore{object: storage.Object{URL: "https://img.example/b/key", Key: "key"}}
	svc := New(repo, store, nil)

	got, err := svc.Create(context.Background(), validFields(), validImage())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != created {
		t.Fatalf("unexpected product: %+v", got)
	}
	if repo.lastCreate.ImageURL != "https://img.example/b/key" || repo.lastCreate.ImageKey != "key" {
		t.Fatalf("image not linked: %+v", repo.lastCreate)
	}
}

func TestCreateCleansUpOrphanedUpload(t *testing.T) {
	repo := &stubRepo{createErr: errors.New("insert failed")}
	store := &memStore{object: storage.Object{URL: "u", Key: "key"}}
	svc := New(repo, store, nil)

	_, err := svc.Create(context.Background(), validFields(), validImage())
	if err == nil {
		t.Fatalf("expected error")
	}
	if len(store.removed) != 1 || store.removed[0] != "key" {
		t.Fatalf("orphaned upload not removed: %v", store.removed)
	}
}

func TestReplaceImageRemovesOldKey(t *testing.T) {
	repo := &stubRepo{product: &domain.Product{ID: "p1", ImageKey: "old-key"}}
	store := &memStore{object: storage.Object{URL: "https://img.example/b/new-key", Key: "new-key"}}
	svc := New(repo, store, nil)

	_, err := svc.ReplaceImage(context.Background(), "p1", validImage())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastImageKey != "new-key" {
		t.Fatalf("image not repointed: %q", repo.lastImageKey)
	}
	if len(store.removed) != 1 || store.removed[0] != "old-key" {
		t.Fatalf("old image not removed by key: %v", store.removed)
	}
}

func TestDeleteRemovesStoredImage(t *testing.T) {
	repo := &stubRepo{deleted: &domain.Product{ID: "p1", ImageKey: "key"}}
	store := &memStore{}
	svc := New(repo, store, nil)

	if err := svc.Delete(context.Background(), "p1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.removed) != 1 || store.removed[0] != "key" {
		t.Fatalf("image not removed: %v", store.removed)
	}
}

func TestDeleteUnknownProduct(t *testing.T) {
	repo := &stubRepo{deleteErr: domain.ErrNotFound}
	svc := New(repo, &memStore{}, nil)
	if err := svc.Delete(context.Background(), "ghost"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
