package domain

type OrderRepository interface {
	GetOrderByID(id int) (*Order, error)

	// PlaceOrder assigns the next sequential identifier, appends the
	// order and empties the active cart in a single document write.
	PlaceOrder(order *Order) (*Order, error)
}
