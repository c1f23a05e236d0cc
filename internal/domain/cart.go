package domain

type CartRepository interface {
	// GetCart returns the single active cart. A document with no carts
	// yields an empty cart with ID 1.
	GetCart() (*Cart, error)

	// UpdateCart runs fn against the active cart and persists the result
	// as one read-modify-write cycle.
	UpdateCart(fn func(cart *Cart) error) error
}
