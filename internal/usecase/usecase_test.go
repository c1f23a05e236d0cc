package usecase

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain"
	"storefront/internal/repository"
	"storefront/pkg/db"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestStore(t *testing.T, doc domain.Document) *db.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.json")
	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	store, err := db.Open(path, testLogger())
	require.NoError(t, err)
	return store
}

func seedDocument() domain.Document {
	return domain.Document{
		Categories: []domain.Category{
			{ID: 1, Slug: "mugs", Name: "Mugs"},
			{ID: 2, Slug: "t-shirts", Name: "T-Shirts"},
		},
		Products: []domain.Product{
			{ID: 1, Name: "Classic White Mug", Price: 1500, CategoryID: 1, Image: "/img/mug.jpg"},
			{ID: 2, Name: "Black Ceramic Mug", Price: 1750, CategoryID: 1, Image: "/img/mug-black.jpg"},
			{ID: 3, Name: "Logo T-Shirt", Price: 2999, CategoryID: 2, Image: "/img/tshirt.jpg"},
		},
	}
}

type fixture struct {
	store    *db.Store
	catalog  CatalogUseCase
	cart     CartUseCase
	checkout CheckoutUseCase
}

func newFixture(t *testing.T, doc domain.Document) *fixture {
	t.Helper()
	store := newTestStore(t, doc)
	logger := testLogger()

	catalogRepo := repository.NewDocumentCatalogRepository(store, logger)
	cartRepo := repository.NewDocumentCartRepository(store, logger)
	orderRepo := repository.NewDocumentOrderRepository(store, logger)

	return &fixture{
		store:    store,
		catalog:  NewCatalogUseCase(catalogRepo, logger),
		cart:     NewCartUseCase(cartRepo, catalogRepo, logger),
		checkout: NewCheckoutUseCase(cartRepo, catalogRepo, orderRepo, logger),
	}
}
