package domain

import "time"

type Review struct {
	ID             string    `json:"id"`
	ProductID      string    `json:"productId"`
	OwnerID        string    `json:"-"`
	AuthorName     string    `json:"authorName"`
	AuthorImageURL string    `json:"authorImageUrl,omitempty"`
	Rating         int       `json:"rating"`
	Comment        string    `json:"comment"`
	Product        *Product  `json:"product,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}
