package domain

import "time"

// Cart holds one user's open cart. The four aggregate fields are persisted
// caches recomputed from the lines on every read and mutation.
type Cart struct {
	ID              string     `json:"id"`
	OwnerID         string     `json:"-"`
	TaxRate         float64    `json:"taxRate"`
	ShippingCents   int64      `json:"shippingCents"`
	NumItems        int        `json:"numItemsInCart"`
	CartTotalCents  int64      `json:"cartTotalCents"`
	TaxCents        int64      `json:"taxCents"`
	OrderTotalCents int64      `json:"orderTotalCents"`
	CreatedAt       time.Time  `json:"createdAt"`
	Lines           []CartLine `json:"lineItems"`
}

// CartLine pairs a product with a quantity inside one cart. Product carries
// the current catalog row, joined at read time so price changes propagate
// into the next recompute.
type CartLine struct {
	ID        string    `json:"id"`
	CartID    string    `json:"cartId"`
	ProductID string    `json:"productId"`
	Amount    int       `json:"amount"`
	Product   Product   `json:"product"`
	CreatedAt time.Time `json:"createdAt"`
}
