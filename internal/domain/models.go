package domain

import "time"

// Prices are stored in integer cents everywhere; display units are
// cents/100 and are computed by the use case layer.

type Product struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Price      int64  `json:"price"`
	CategoryID int    `json:"categoryId"`
	Image      string `json:"image"`
}

type Category struct {
	ID   int    `json:"id"`
	Slug string `json:"slug"` // unique, matched case-insensitively
	Name string `json:"name"`
}

type CartItem struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

// Cart is the single active cart. At most one CartItem exists per
// product; adding the same product again increments its quantity.
type Cart struct {
	ID    int        `json:"id"`
	Items []CartItem `json:"items"`
}

type Customer struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Country   string `json:"country"`
	Region    string `json:"region"`
	ZipCode   string `json:"zipCode"`
	Phone     string `json:"phone"`
}

// OrderLine snapshots a product's name and price at checkout time.
// Later catalog price edits never change past orders.
type OrderLine struct {
	ProductID int    `json:"productId"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
}

type Order struct {
	ID        int         `json:"id"`
	Customer  Customer    `json:"customer"`
	Lines     []OrderLine `json:"lines"`
	Total     int64       `json:"total"`
	CreatedAt time.Time   `json:"createdAt"`
}

// Document is the whole persisted store: one JSON file holding the
// catalog, the single active cart (index 0) and the append-only orders.
type Document struct {
	Categories []Category `json:"categories"`
	Products   []Product  `json:"products"`
	Carts      []Cart     `json:"carts"`
	Orders     []Order    `json:"orders"`
}
