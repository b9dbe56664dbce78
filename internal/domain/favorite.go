package domain

import "time"

type Favorite struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	OwnerID   string    `json:"-"`
	Product   *Product  `json:"product,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
