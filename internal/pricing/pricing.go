// Package pricing computes cart aggregates. It is the single source of truth
// for every total the API shows; carts, orders and handlers never derive
// totals on their own.
package pricing

import "math"

// Line is the (quantity, unit price) pair a cart line contributes.
type Line struct {
	Amount         int
	UnitPriceCents int64
}

// Totals are the derived aggregate fields persisted onto the cart row.
type Totals struct {
	NumItems        int
	CartTotalCents  int64
	TaxCents        int64
	ShippingCents   int64
	OrderTotalCents int64
}

// Compute derives cart totals from line items. Tax is rounded to the nearest
// cent. An empty or zero-value cart incurs no shipping. Compute is pure, so
// recomputing with unchanged input always yields identical totals.
func Compute(lines []Line, taxRate float64, shippingCents int64) Totals {
	var t Totals
	for _, line := range lines {
		t.NumItems += line.Amount
		t.CartTotalCents += int64(line.Amount) * line.UnitPriceCents
	}
	t.TaxCents = int64(math.Round(taxRate * float64(t.CartTotalCents)))
	if t.CartTotalCents > 0 {
		t.ShippingCents = shippingCents
	}
	t.OrderTotalCents = t.CartTotalCents + t.TaxCents + t.ShippingCents
	return t
}
