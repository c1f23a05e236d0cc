package domain

type CatalogRepository interface {
	ListCategories() ([]Category, error)
	GetCategoryBySlug(slug string) (*Category, error)
	GetProductByID(id int) (*Product, error)
	ListProductsByCategory(categoryID int) ([]Product, error)
}
