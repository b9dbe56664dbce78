package pricing

import "testing"

func TestComputeEmptyCart(t *testing.T) {
	got := Compute(nil, 0.08, 500)
	if got.NumItems != 0 || got.CartTotalCents != 0 || got.TaxCents != 0 {
		t.Fatalf("expected all-zero aggregates, got %+v", got)
	}
	if got.ShippingCents != 0 {
		t.Fatalf("empty cart must not incur shipping, got %d", got.ShippingCents)
	}
	if got.OrderTotalCents != 0 {
		t.Fatalf("expected zero order total, got %d", got.OrderTotalCents)
	}
}

func TestComputeSingleLine(t *testing.T) {
	// 2 x 1000 at 8% tax with 500 flat shipping.
	got := Compute([]Line{{Amount: 2, UnitPriceCents: 1000}}, 0.08, 500)
	if got.NumItems != 2 {
		t.Fatalf("num items: got %d want 2", got.NumItems)
	}
	if got.CartTotalCents != 2000 {
		t.Fatalf("cart total: got %d want 2000", got.CartTotalCents)
	}
	if got.TaxCents != 160 {
		t.Fatalf("tax: got %d want 160", got.TaxCents)
	}
	if got.ShippingCents != 500 {
		t.Fatalf("shipping: got %d want 500", got.ShippingCents)
	}
	if got.OrderTotalCents != 2660 {
		t.Fatalf("order total: got %d want 2660", got.OrderTotalCents)
	}
}

func TestComputeMultipleLines(t *testing.T) {
	lines := []Line{
		{Amount: 5, UnitPriceCents: 1000},
		{Amount: 1, UnitPriceCents: 333},
		{Amount: 3, UnitPriceCents: 1299},
	}
	got := Compute(lines, 0.1, 750)
	if got.NumItems != 9 {
		t.Fatalf("num items: got %d want 9", got.NumItems)
	}
	wantCart := int64(5*1000 + 333 + 3*1299)
	if got.CartTotalCents != wantCart {
		t.Fatalf("cart total: got %d want %d", got.CartTotalCents, wantCart)
	}
	if got.OrderTotalCents != got.CartTotalCents+got.TaxCents+got.ShippingCents {
		t.Fatalf("order total identity violated: %+v", got)
	}
}

func TestComputeTaxRounding(t *testing.T) {
	// 0.08 * 333 = 26.64, rounds to 27 cents.
	got := Compute([]Line{{Amount: 1, UnitPriceCents: 333}}, 0.08, 0)
	if got.TaxCents != 27 {
		t.Fatalf("tax: got %d want 27", got.TaxCents)
	}
	// 0.05 * 10 = 0.5, rounds up to 1 cent.
	got = Compute([]Line{{Amount: 1, UnitPriceCents: 10}}, 0.05, 0)
	if got.TaxCents != 1 {
		t.Fatalf("tax: got %d want 1", got.TaxCents)
	}
}

func TestComputeShippingIgnoresTaxRate(t *testing.T) {
	got := Compute([]Line{{Amount: 1, UnitPriceCents: 100}}, 0, 500)
	if got.ShippingCents != 500 {
		t.Fatalf("shipping: got %d want 500", got.ShippingCents)
	}
	got = Compute([]Line{{Amount: 1, UnitPriceCents: 100}}, 0.99, 500)
	if got.ShippingCents != 500 {
		t.Fatalf("shipping: got %d want 500", got.ShippingCents)
	}
}

func TestComputeZeroPriceLinesIncurNoShipping(t *testing.T) {
	got := Compute([]Line{{Amount: 3, UnitPriceCents: 0}}, 0.08, 500)
	if got.NumItems != 3 {
		t.Fatalf("num items: got %d want 3", got.NumItems)
	}
	if got.ShippingCents != 0 {
		t.Fatalf("zero-value cart must not incur shipping, got %d", got.ShippingCents)
	}
	if got.OrderTotalCents != 0 {
		t.Fatalf("order total: got %d want 0", got.OrderTotalCents)
	}
}

func TestComputeIdempotent(t *testing.T) {
	lines := []Line{
		{Amount: 2, UnitPriceCents: 1999},
		{Amount: 7, UnitPriceCents: 1299},
	}
	first := Compute(lines, 0.0825, 500)
	second := Compute(lines, 0.0825, 500)
	if first != second {
		t.Fatalf("recompute diverged: %+v vs %+v", first, second)
	}
}
