package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain"
)

func sampleOrder() *domain.Order {
	return &domain.Order{
		Customer: domain.Customer{Email: "jo@example.com", FirstName: "Jo", LastName: "Doe", Address: "1 Main St"},
		Lines: []domain.OrderLine{
			{ProductID: 1, Name: "Classic White Mug", Price: 1500, Quantity: 2},
		},
		Total:     3000,
		CreatedAt: time.Now().UTC(),
	}
}

func TestPlaceOrderAssignsSequentialIDs(t *testing.T) {
	store := newTestStore(t, domain.Document{
		Carts: []domain.Cart{{ID: 1, Items: []domain.CartItem{{ProductID: 1, Quantity: 2}}}},
	})
	repo := NewDocumentOrderRepository(store, testLogger())

	first, err := repo.PlaceOrder(sampleOrder())
	require.NoError(t, err)
	assert.Equal(t, 1, first.ID)

	second, err := repo.PlaceOrder(sampleOrder())
	require.NoError(t, err)
	assert.Equal(t, 2, second.ID)
}

func TestPlaceOrderContinuesAfterExistingIDs(t *testing.T) {
	store := newTestStore(t, domain.Document{
		Orders: []domain.Order{{ID: 41}},
	})
	repo := NewDocumentOrderRepository(store, testLogger())

	order, err := repo.PlaceOrder(sampleOrder())
	require.NoError(t, err)
	assert.Equal(t, 42, order.ID)
}

func TestPlaceOrderClearsCartInSameWrite(t *testing.T) {
	store := newTestStore(t, domain.Document{
		Carts: []domain.Cart{{ID: 1, Items: []domain.CartItem{{ProductID: 1, Quantity: 2}}}},
	})
	repo := NewDocumentOrderRepository(store, testLogger())

	_, err := repo.PlaceOrder(sampleOrder())
	require.NoError(t, err)

	doc, err := store.Read()
	require.NoError(t, err)
	require.Len(t, doc.Orders, 1)
	require.Len(t, doc.Carts, 1)
	assert.Empty(t, doc.Carts[0].Items)
}

func TestGetOrderByID(t *testing.T) {
	store := newTestStore(t, domain.Document{
		Orders: []domain.Order{{ID: 3, Total: 3000}},
	})
	repo := NewDocumentOrderRepository(store, testLogger())

	order, err := repo.GetOrderByID(3)
	require.NoError(t, err)
	assert.Equal(t, int64(3000), order.Total)

	_, err = repo.GetOrderByID(99)
	assert.True(t, domain.IsNotFound(err))
}
