package review

import (
	"context"
	"errors"
	"testing"

	"storefront/internal/domain"
	reviewrepo "storefront/internal/repository/review"
)

type stubReviewRepo struct {
	created    *domain.Review
	createErr  error
	lastCreate reviewrepo.CreateReviewInput

	existing *domain.Review
	findErr  error

	byProduct []domain.Review
	byOwner   []domain.Review

	deleteErr   error
	lastDelete  string
	deleteOwner string

	rating domain.ProductRating
}

func (s *stubReviewRepo) Create(_ context.Context, in reviewrepo.CreateReviewInput) (*domain.Review, error) {
	s.lastCreate = in
	return s.created, s.createErr
}

func (s *stubReviewRepo) ListByProduct(_ context.Context, _ string) ([]domain.Review, error) {
	return s.byProduct, nil
}

func (s *stubReviewRepo) ListByOwner(_ context.Context, _ string) ([]domain.Review, error) {
	return s.byOwner, nil
}

func (s *stubReviewRepo) FindByOwnerAndProduct(_ context.Context, _, _ string) (*domain.Review, error) {
	return s.existing, s.findErr
}

func (s *stubReviewRepo) DeleteOwned(_ context.Context, id, ownerID string) error {
	s.lastDelete = id
	s.deleteOwner = ownerID
	return s.deleteErr
}

func (s *stubReviewRepo) Rating(_ context.Context, _ string) (domain.ProductRating, error) {
	return s.rating, nil
}

type stubProductRepo struct {
	product *domain.Product
	err     error
}

func (s *stubProductRepo) GetByID(_ context.Context, _ string) (*domain.Product, error) {
	return s.product, s.err
}

func validInput() CreateInput {
	return CreateInput{
		ProductID:  "p1",
		AuthorName: "Jo",
		Rating:     4,
		Comment:    "solid build",
	}
}

func TestCreateValidatesInput(t *testing.T) {
	reviews := &stubReviewRepo{findErr: domain.ErrNotFound}
	products := &stubProductRepo{product: &domain.Product{ID: "p1"}}
	svc := New(reviews, products, nil)

	cases := []struct {
		name   string
		mutate func(*CreateInput)
	}{
		{"rating too low", func(in *CreateInput) { in.Rating = 0 }},
		{"rating too high", func(in *CreateInput) { in.Rating = 6 }},
		{"blank comment", func(in *CreateInput) { in.Comment = "   " }},
		{"blank author", func(in *CreateInput) { in.AuthorName = "" }},
	}
	for _, c := range cases {
		in := validInput()
		c.mutate(&in)
		if _, err := svc.Create(context.Background(), "u1", in); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("%s: expected validation error, got %v", c.name, err)
		}
	}
	if reviews.lastCreate.ProductID != "" {
		t.Fatalf("insert attempted despite invalid input")
	}
}

func TestCreateUnknownProduct(t *testing.T) {
	reviews := &stubReviewRepo{findErr: domain.ErrNotFound}
	products := &stubProductRepo{err: domain.ErrNotFound}
	svc := New(reviews, products, nil)

	_, err := svc.Create(context.Background(), "u1", validInput())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCreateRejectsSecondReview(t *testing.T) {
	reviews := &stubReviewRepo{existing: &domain.Review{ID: "r1"}}
	products := &stubProductRepo{product: &domain.Product{ID: "p1"}}
	svc := New(reviews, products, nil)

	_, err := svc.Create(context.Background(), "u1", validInput())
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected already exists, got %v", err)
	}
	if reviews.lastCreate.ProductID != "" {
		t.Fatalf("duplicate review inserted")
	}
}

func TestCreateHappyPath(t *testing.T) {
	created := &domain.Review{ID: "r1", ProductID: "p1", Rating: 4}
	reviews := &stubReviewRepo{created: created, findErr: domain.ErrNotFound}
	products := &stubProductRepo{product: &domain.Product{ID: "p1"}}
	svc := New(reviews, products, nil)

	in := validInput()
	in.AuthorName = "  Jo  "
	got, err := svc.Create(context.Background(), "u1", in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != created {
		t.Fatalf("unexpected review: %+v", got)
	}
	if reviews.lastCreate.OwnerID != "u1" || reviews.lastCreate.AuthorName != "Jo" {
		t.Fatalf("unexpected create input: %+v", reviews.lastCreate)
	}
}

func TestHasReviewed(t *testing.T) {
	svc := New(&stubReviewRepo{existing: &domain.Review{ID: "r1"}}, &stubProductRepo{}, nil)
	ok, err := svc.HasReviewed(context.Background(), "u1", "p1")
	if err != nil || !ok {
		t.Fatalf("expected reviewed, got %v %v", ok, err)
	}

	svc = New(&stubReviewRepo{findErr: domain.ErrNotFound}, &stubProductRepo{}, nil)
	ok, err = svc.HasReviewed(context.Background(), "u1", "p1")
	if err != nil || ok {
		t.Fatalf("expected not reviewed, got %v %v", ok, err)
	}
}

func TestDeleteOwnScopedToOwner(t *testing.T) {
	reviews := &stubReviewRepo{deleteErr: domain.ErrNotFound}
	svc := New(reviews, &stubProductRepo{}, nil)

	err := svc.DeleteOwn(context.Background(), "r1", "intruder")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if reviews.lastDelete != "r1" || reviews.deleteOwner != "intruder" {
		t.Fatalf("owner scoping not forwarded: %q %q", reviews.lastDelete, reviews.deleteOwner)
	}
}
