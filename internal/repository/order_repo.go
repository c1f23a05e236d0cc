package repository

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"storefront/internal/domain"
	"storefront/pkg/db"
)

type documentOrderRepository struct {
	store *db.Store
	log   *logrus.Logger
}

func NewDocumentOrderRepository(store *db.Store, logger *logrus.Logger) domain.OrderRepository {
	return &documentOrderRepository{
		store: store,
		log:   logger,
	}
}

func (r *documentOrderRepository) GetOrderByID(id int) (*domain.Order, error) {
	doc, err := r.store.Read()
	if err != nil {
		r.log.Errorf("Failed to read document for order lookup: %v", err)
		return nil, fmt.Errorf("could not look up order: %w", err)
	}

	for _, order := range doc.Orders {
		if order.ID == id {
			found := order
			return &found, nil
		}
	}

	r.log.Warnf("Order not found for ID: %d", id)
	return nil, domain.NotFoundError("Page not found", fmt.Sprintf("no order with id %d", id))
}

// PlaceOrder appends the order and empties the active cart inside one
// document update, so a crash can never persist the order without also
// clearing the cart. Identifiers are max(existing)+1, starting at 1.
func (r *documentOrderRepository) PlaceOrder(order *domain.Order) (*domain.Order, error) {
	err := r.store.Update(func(doc *domain.Document) error {
		next := 1
		for _, existing := range doc.Orders {
			if existing.ID >= next {
				next = existing.ID + 1
			}
		}
		order.ID = next

		doc.Orders = append(doc.Orders, *order)

		cart := activeCart(doc)
		cart.Items = []domain.CartItem{}
		storeCart(doc, cart)
		return nil
	})
	if err != nil {
		r.log.Errorf("Failed to persist order: %v", err)
		return nil, fmt.Errorf("could not place order: %w", err)
	}

	r.log.Infof("Order %d persisted with %d lines", order.ID, len(order.Lines))
	return order, nil
}
