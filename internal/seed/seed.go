package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type productSeed struct {
	ID          string
	Name        string
	Company     string
	Description string
	PriceCents  int64
	ImageURL    string
	Featured    bool
}

// Apply inserts basic seed data for manual testing. Fixed ids make it
// idempotent via ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	products := []productSeed{
		{
			ID:          "5fd12584-4371-4dbd-b784-b3b5f1e0120f",
			Name:        "avant-garde lamp",
			Company:     "Modenza",
			Description: "A sculptural table lamp with a warm brass finish that anchors any reading corner without crowding it.",
			PriceCents:  17999,
			ImageURL:    "https://images.example.com/seed/lamp.jpg",
			Featured:    true,
		},
		{
			ID:          "a9a2c9b1-6f3e-4f6d-9f87-0f9a4f2aa111",
			Name:        "comfy couch",
			Company:     "Luxora",
			Description: "Deep cushions and a sturdy hardwood frame make this sofa the centerpiece of a relaxed living room.",
			PriceCents:  99999,
			ImageURL:    "https://images.example.com/seed/couch.jpg",
			Featured:    true,
		},
		{
			ID:          "2f1f0a6e-3c7d-4e56-8a1b-53f6f1f0b222",
			Name:        "coffee table",
			Company:     "Artifex",
			Description: "A low oak table with rounded corners, sized for small apartments and generous enough for board games.",
			PriceCents:  27999,
			ImageURL:    "https://images.example.com/seed/table.jpg",
			Featured:    false,
		},
		{
			ID:          "c4d0e8aa-91b2-4c3f-b1de-7b8f9d0ce333",
			Name:        "wooden shelf",
			Company:     "Homestead",
			Description: "Five open shelves of solid pine, finished with a clear matte coat that shows the grain.",
			PriceCents:  38999,
			ImageURL:    "https://images.example.com/seed/shelf.jpg",
			Featured:    false,
		},
	}

	for _, p := range products {
		if err := upsertProduct(ctx, pool, p); err != nil {
			return fmt.Errorf("upsert product %s: %w", p.Name, err)
		}
	}

	return nil
}

func upsertProduct(ctx context.Context, pool *pgxpool.Pool, p productSeed) error {
	const q = `
INSERT INTO products (id, name, company, description, price_cents, image_url, featured)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (id) DO UPDATE
SET name = EXCLUDED.name,
    company = EXCLUDED.company,
    description = EXCLUDED.description,
    price_cents = EXCLUDED.price_cents,
    image_url = EXCLUDED.image_url,
    featured = EXCLUDED.featured
`
	_, err := pool.Exec(ctx, q, p.ID, p.Name, p.Company, p.Description, p.PriceCents, p.ImageURL, p.Featured)
	return err
}
