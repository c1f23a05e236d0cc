package usecase

import (
	"github.com/sirupsen/logrus"

	"storefront/internal/domain"
)

type CatalogUseCase interface {
	ListCategories() ([]domain.Category, error)
	GetProductByID(id int) (*domain.Product, error)
	CategoryView(slug, minPriceRaw, maxPriceRaw string) (*CategoryView, error)
}

// CategoryView is what the category page renders: the category, its
// (possibly filtered) products, the echoed filter inputs and an
// optional validation error when the filter inputs were rejected.
type CategoryView struct {
	Category    domain.Category  `json:"category"`
	Products    []domain.Product `json:"products"`
	MinPrice    string           `json:"minPrice"`
	MaxPrice    string           `json:"maxPrice"`
	FilterError *domain.Error    `json:"filterError,omitempty"`
}

type catalogUseCase struct {
	catalogRepo domain.CatalogRepository
	log         *logrus.Logger
}

func NewCatalogUseCase(repo domain.CatalogRepository, logger *logrus.Logger) CatalogUseCase {
	return &catalogUseCase{
		catalogRepo: repo,
		log:         logger,
	}
}

func (uc *catalogUseCase) ListCategories() ([]domain.Category, error) {
	categories, err := uc.catalogRepo.ListCategories()
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list categories: %v", err)
		return nil, err
	}
	return categories, nil
}

func (uc *catalogUseCase) GetProductByID(id int) (*domain.Product, error) {
	if id <= 0 {
		uc.log.Warnf("Use Case: Attempted to get product with invalid ID: %d", id)
		return nil, domain.NotFoundError("Page not found", "no such product")
	}

	product, err := uc.catalogRepo.GetProductByID(id)
	if err != nil {
		uc.log.Warnf("Use Case: Repository failed to get product ID %d: %v", id, err)
		return nil, err
	}
	return product, nil
}

// CategoryView resolves the category by slug and applies the price
// filter. Rejected filter inputs fail open: the view carries the full
// unfiltered product list alongside the validation error, so browsing
// is never blocked by a bad filter.
func (uc *catalogUseCase) CategoryView(slug, minPriceRaw, maxPriceRaw string) (*CategoryView, error) {
	category, err := uc.catalogRepo.GetCategoryBySlug(slug)
	if err != nil {
		uc.log.Warnf("Use Case: Category lookup failed for slug %q: %v", slug, err)
		return nil, err
	}

	products, err := uc.catalogRepo.ListProductsByCategory(category.ID)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list products for category %d: %v", category.ID, err)
		return nil, err
	}

	view := &CategoryView{
		Category: *category,
		Products: products,
		MinPrice: minPriceRaw,
		MaxPrice: maxPriceRaw,
	}

	filter, ferr := ParsePriceFilter(minPriceRaw, maxPriceRaw)
	if ferr != nil {
		uc.log.Warnf("Use Case: Rejected price filter for category %q: %s", category.Slug, ferr.Message)
		view.FilterError = ferr
		return view, nil
	}

	view.Products = filter.Apply(products)
	uc.log.Infof("Use Case: Category %q view with %d of %d products", category.Slug, len(view.Products), len(products))
	return view, nil
}
