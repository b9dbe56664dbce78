package domain

// Identity is the resolved owner of a request. UserID is the opaque id the
// external identity provider issued; this system never mints its own.
type Identity struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
}
