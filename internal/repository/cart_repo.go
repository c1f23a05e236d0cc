package repository

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"storefront/internal/domain"
	"storefront/pkg/db"
)

type documentCartRepository struct {
	store *db.Store
	log   *logrus.Logger
}

func NewDocumentCartRepository(store *db.Store, logger *logrus.Logger) domain.CartRepository {
	return &documentCartRepository{
		store: store,
		log:   logger,
	}
}

// activeCart returns a copy of the cart at index 0, lazily treating an
// absent cart as an empty cart with ID 1.
func activeCart(doc *domain.Document) domain.Cart {
	if len(doc.Carts) == 0 {
		return domain.Cart{ID: 1, Items: []domain.CartItem{}}
	}
	cart := doc.Carts[0]
	if cart.Items == nil {
		cart.Items = []domain.CartItem{}
	}
	return cart
}

func storeCart(doc *domain.Document, cart domain.Cart) {
	if len(doc.Carts) == 0 {
		doc.Carts = append(doc.Carts, cart)
		return
	}
	doc.Carts[0] = cart
}

func (r *documentCartRepository) GetCart() (*domain.Cart, error) {
	doc, err := r.store.Read()
	if err != nil {
		r.log.Errorf("Failed to read document for cart lookup: %v", err)
		return nil, fmt.Errorf("could not load cart: %w", err)
	}
	cart := activeCart(doc)
	return &cart, nil
}

func (r *documentCartRepository) UpdateCart(fn func(cart *domain.Cart) error) error {
	err := r.store.Update(func(doc *domain.Document) error {
		cart := activeCart(doc)
		if err := fn(&cart); err != nil {
			return err
		}
		storeCart(doc, cart)
		return nil
	})
	if err != nil {
		r.log.Errorf("Failed to update cart: %v", err)
		return fmt.Errorf("could not update cart: %w", err)
	}
	return nil
}
