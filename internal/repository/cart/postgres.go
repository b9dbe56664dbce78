package cart

import (
	"context"
	"errors"

	"storefront/internal/domain"
	"storefront/internal/pricing"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const cartColumns = `id::text, owner_id, tax_rate, shipping_cents, num_items, cart_total_cents, tax_cents, order_total_cents, created_at`

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) GetOrCreateByOwner(ctx context.Context, ownerID string, defaults CartDefaults) (*domain.Cart, error) {
	// The unique index on owner_id makes concurrent first-touch requests
	// converge on a single row.
	const q = `
INSERT INTO carts (owner_id, tax_rate, shipping_cents)
VALUES ($1, $2, $3)
ON CONFLICT (owner_id) DO NOTHING
`
	if _, err := r.pool.Exec(ctx, q, ownerID, defaults.TaxRate, defaults.ShippingCents); err != nil {
		return nil, err
	}
	return r.GetByOwner(ctx, ownerID)
}

func (r *postgresRepo) GetByOwner(ctx context.Context, ownerID string) (*domain.Cart, error) {
	const q = `
SELECT ` + cartColumns + `
FROM carts
WHERE owner_id = $1
`
	var cart domain.Cart
	err := r.pool.QueryRow(ctx, q, ownerID).Scan(
		&cart.ID,
		&cart.OwnerID,
		&cart.TaxRate,
		&cart.ShippingCents,
		&cart.NumItems,
		&cart.CartTotalCents,
		&cart.TaxCents,
		&cart.OrderTotalCents,
		&cart.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	lines, err := loadLines(ctx, r.pool, cart.ID)
	if err != nil {
		return nil, err
	}
	cart.Lines = lines
	return &cart, nil
}

func (r *postgresRepo) NumItemsByOwner(ctx context.Context, ownerID string) (int, error) {
	const q = `
SELECT num_items
FROM carts
WHERE owner_id = $1
`
	var numItems int
	err := r.pool.QueryRow(ctx, q, ownerID).Scan(&numItems)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, err
	}
	return numItems, nil
}

func (r *postgresRepo) AddLine(ctx context.Context, cartID, productID string, amount int) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := lockCart(ctx, tx, cartID); err != nil {
		return err
	}

	// Merge semantics: the unique (cart_id, product_id) index guarantees a
	// single line per product, repeated adds sum their amounts.
	const q = `
INSERT INTO cart_items (cart_id, product_id, amount)
VALUES ($1, $2, $3)
ON CONFLICT (cart_id, product_id) DO UPDATE SET amount = cart_items.amount + EXCLUDED.amount
`
	if _, err := tx.Exec(ctx, q, cartID, productID, amount); err != nil {
		return err
	}

	if _, err := recomputeTx(ctx, tx, cartID); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *postgresRepo) SetLineAmount(ctx context.Context, cartID, lineID string, amount int) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := lockCart(ctx, tx, cartID); err != nil {
		return err
	}

	const q = `
UPDATE cart_items
SET amount = $3
WHERE id = $2 AND cart_id = $1
`
	cmd, err := tx.Exec(ctx, q, cartID, lineID, amount)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	if _, err := recomputeTx(ctx, tx, cartID); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *postgresRepo) RemoveLine(ctx context.Context, cartID, lineID string) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := lockCart(ctx, tx, cartID); err != nil {
		return err
	}

	const q = `
DELETE FROM cart_items
WHERE id = $2 AND cart_id = $1
`
	cmd, err := tx.Exec(ctx, q, cartID, lineID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	if _, err := recomputeTx(ctx, tx, cartID); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *postgresRepo) Recompute(ctx context.Context, cartID string) (*domain.Cart, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if err := lockCart(ctx, tx, cartID); err != nil {
		return nil, err
	}

	cart, err := recomputeTx(ctx, tx, cartID)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return cart, nil
}

func (r *postgresRepo) Delete(ctx context.Context, cartID string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM carts WHERE id = $1`, cartID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// lockCart serializes writers for one cart. Every mutation and recompute
// takes this row lock first, so read-merge-write and read-aggregate-write
// never interleave for the same cart.
func lockCart(ctx context.Context, tx pgx.Tx, cartID string) error {
	var id string
	err := tx.QueryRow(ctx, `SELECT id::text FROM carts WHERE id = $1 FOR UPDATE`, cartID).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

// recomputeTx re-derives the aggregate fields inside the caller's
// transaction. Line items are joined with the current product rows, so a
// price change since the last recompute is reflected immediately.
func recomputeTx(ctx context.Context, tx pgx.Tx, cartID string) (*domain.Cart, error) {
	var cart domain.Cart
	err := tx.QueryRow(ctx, `
SELECT `+cartColumns+`
FROM carts
WHERE id = $1
`, cartID).Scan(
		&cart.ID,
		&cart.OwnerID,
		&cart.TaxRate,
		&cart.ShippingCents,
		&cart.NumItems,
		&cart.CartTotalCents,
		&cart.TaxCents,
		&cart.OrderTotalCents,
		&cart.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	lines, err := loadLines(ctx, tx, cart.ID)
	if err != nil {
		return nil, err
	}

	priced := make([]pricing.Line, 0, len(lines))
	for _, line := range lines {
		priced = append(priced, pricing.Line{Amount: line.Amount, UnitPriceCents: line.Product.PriceCents})
	}
	totals := pricing.Compute(priced, cart.TaxRate, cart.ShippingCents)

	const q = `
UPDATE carts
SET num_items = $2, cart_total_cents = $3, tax_cents = $4, order_total_cents = $5
WHERE id = $1
`
	if _, err := tx.Exec(ctx, q, cart.ID, totals.NumItems, totals.CartTotalCents, totals.TaxCents, totals.OrderTotalCents); err != nil {
		return nil, err
	}

	cart.NumItems = totals.NumItems
	cart.CartTotalCents = totals.CartTotalCents
	cart.TaxCents = totals.TaxCents
	cart.OrderTotalCents = totals.OrderTotalCents
	cart.Lines = lines
	return &cart, nil
}

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func loadLines(ctx context.Context, q querier, cartID string) ([]domain.CartLine, error) {
	const linesQuery = `
SELECT i.id::text, i.cart_id::text, i.product_id::text, i.amount, i.created_at,
       p.id::text, p.name, p.company, COALESCE(p.description, ''), p.price_cents, p.image_url, p.image_key, p.featured, p.created_at
FROM cart_items i
JOIN products p ON p.id = i.product_id
WHERE i.cart_id = $1
ORDER BY i.created_at ASC
`
	rows, err := q.Query(ctx, linesQuery, cartID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []domain.CartLine
	for rows.Next() {
		var line domain.CartLine
		if err := rows.Scan(
			&line.ID,
			&line.CartID,
			&line.ProductID,
			&line.Amount,
			&line.CreatedAt,
			&line.Product.ID,
			&line.Product.Name,
			&line.Product.Company,
			&line.Product.Description,
			&line.Product.PriceCents,
			&line.Product.ImageURL,
			&line.Product.ImageKey,
			&line.Product.Featured,
			&line.Product.CreatedAt,
		); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
