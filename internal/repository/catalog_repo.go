package repository

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"storefront/internal/domain"
	"storefront/pkg/db"
)

type documentCatalogRepository struct {
	store *db.Store
	log   *logrus.Logger
}

func NewDocumentCatalogRepository(store *db.Store, logger *logrus.Logger) domain.CatalogRepository {
	return &documentCatalogRepository{
		store: store,
		log:   logger,
	}
}

func (r *documentCatalogRepository) ListCategories() ([]domain.Category, error) {
	doc, err := r.store.Read()
	if err != nil {
		r.log.Errorf("Failed to read document for category listing: %v", err)
		return nil, fmt.Errorf("could not list categories: %w", err)
	}
	return doc.Categories, nil
}

func (r *documentCatalogRepository) GetCategoryBySlug(slug string) (*domain.Category, error) {
	doc, err := r.store.Read()
	if err != nil {
		r.log.Errorf("Failed to read document for category lookup: %v", err)
		return nil, fmt.Errorf("could not look up category: %w", err)
	}

	for _, category := range doc.Categories {
		if strings.EqualFold(category.Slug, slug) {
			found := category
			return &found, nil
		}
	}

	r.log.Warnf("Category not found for slug: %s", slug)
	return nil, domain.NotFoundError("Page not found", fmt.Sprintf("no category matches %q", slug))
}

func (r *documentCatalogRepository) GetProductByID(id int) (*domain.Product, error) {
	doc, err := r.store.Read()
	if err != nil {
		r.log.Errorf("Failed to read document for product lookup: %v", err)
		return nil, fmt.Errorf("could not look up product: %w", err)
	}

	for _, product := range doc.Products {
		if product.ID == id {
			found := product
			return &found, nil
		}
	}

	r.log.Warnf("Product not found for ID: %d", id)
	return nil, domain.NotFoundError("Page not found", fmt.Sprintf("no product with id %d", id))
}

func (r *documentCatalogRepository) ListProductsByCategory(categoryID int) ([]domain.Product, error) {
	doc, err := r.store.Read()
	if err != nil {
		r.log.Errorf("Failed to read document for product listing: %v", err)
		return nil, fmt.Errorf("could not list products: %w", err)
	}

	products := make([]domain.Product, 0)
	for _, product := range doc.Products {
		if product.CategoryID == categoryID {
			products = append(products, product)
		}
	}
	return products, nil
}
