package domain

import "time"

// Order is an immutable snapshot of a priced cart taken at checkout time.
type Order struct {
	ID              string    `json:"id"`
	OwnerID         string    `json:"-"`
	Products        int       `json:"products"`
	OrderTotalCents int64     `json:"orderTotalCents"`
	TaxCents        int64     `json:"taxCents"`
	ShippingCents   int64     `json:"shippingCents"`
	Email           string    `json:"email"`
	IsPaid          bool      `json:"isPaid"`
	CreatedAt       time.Time `json:"createdAt"`
}
