package order

import (
	"context"
	"io"
	"log"

	"storefront/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const orderColumns = `id::text, owner_id, products, order_total_cents, tax_cents, shipping_cents, email, is_paid, created_at`

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) CreateFromSnapshot(ctx context.Context, in CreateOrderInput) (*domain.Order, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	// Checkout retries start from a clean slate: only the newest unpaid
	// order may exist for an owner.
	if _, err := tx.Exec(ctx, `DELETE FROM orders WHERE owner_id = $1 AND NOT is_paid`, in.OwnerID); err != nil {
		return nil, err
	}

	const q = `
INSERT INTO orders (owner_id, products, order_total_cents, tax_cents, shipping_cents, email)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + orderColumns + `
`
	var o domain.Order
	err = tx.QueryRow(ctx, q, in.OwnerID, in.Products, in.OrderTotalCents, in.TaxCents, in.ShippingCents, in.Email).
		Scan(&o.ID, &o.OwnerID, &o.Products, &o.OrderTotalCents, &o.TaxCents, &o.ShippingCents, &o.Email, &o.IsPaid, &o.CreatedAt)
	if err != nil {
		r.logger.Printf("order repo: create owner=%s error=%v", in.OwnerID, err)
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	r.logger.Printf("order repo: created id=%s owner=%s total=%d", o.ID, o.OwnerID, o.OrderTotalCents)
	return &o, nil
}

func (r *postgresRepo) ListPaidByOwner(ctx context.Context, ownerID string) ([]domain.Order, error) {
	const q = `
SELECT ` + orderColumns + `
FROM orders
WHERE owner_id = $1 AND is_paid
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q, ownerID)
	if err != nil {
		r.logger.Printf("order repo: list owner=%s error=%v", ownerID, err)
		return nil, err
	}
	defer rows.Close()
	return scanOrders(rows)
}

func (r *postgresRepo) ListPaid(ctx context.Context) ([]domain.Order, error) {
	const q = `
SELECT ` + orderColumns + `
FROM orders
WHERE is_paid
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("order repo: list paid error=%v", err)
		return nil, err
	}
	defer rows.Close()
	return scanOrders(rows)
}

func (r *postgresRepo) FinalizePayment(ctx context.Context, orderID, cartID string) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	cmd, err := tx.Exec(ctx, `UPDATE orders SET is_paid = TRUE WHERE id = $1`, orderID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	// Cart rows cascade their line items. A repeated callback finds the
	// cart already gone, which is fine.
	if _, err := tx.Exec(ctx, `DELETE FROM carts WHERE id = $1`, cartID); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}
	r.logger.Printf("order repo: finalized id=%s cart=%s", orderID, cartID)
	return nil
}

func scanOrders(rows pgx.Rows) ([]domain.Order, error) {
	var result []domain.Order
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.OwnerID, &o.Products, &o.OrderTotalCents, &o.TaxCents, &o.ShippingCents, &o.Email, &o.IsPaid, &o.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
