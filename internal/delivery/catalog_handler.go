package delivery

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"storefront/internal/domain"
	"storefront/internal/usecase"
)

type CatalogHandler struct {
	catalog usecase.CatalogUseCase
	cart    usecase.CartUseCase
	log     *logrus.Logger
}

func NewCatalogHandler(catalog usecase.CatalogUseCase, cart usecase.CartUseCase, logger *logrus.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
		cart:    cart,
		log:     logger,
	}
}

func (h *CatalogHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/", h.Home)
	router.GET("/category/:slug", h.Category)
	router.GET("/product/:id", h.Product)
}

type homeView struct {
	Categories []domain.Category `json:"categories"`
	CartCount  int               `json:"cartCount"`
}

func (h *CatalogHandler) Home(c *gin.Context) {
	categories, err := h.catalog.ListCategories()
	if err != nil {
		ErrorPage(c, h.log, err, "/")
		return
	}

	count, err := h.cart.ItemCount()
	if err != nil {
		ErrorPage(c, h.log, err, "/")
		return
	}

	SuccessResponse(c, http.StatusOK, "Home view", homeView{
		Categories: categories,
		CartCount:  count,
	})
}

func (h *CatalogHandler) Category(c *gin.Context) {
	slug := c.Param("slug")
	minPrice := c.Query("minPrice")
	maxPrice := c.Query("maxPrice")

	view, err := h.catalog.CategoryView(slug, minPrice, maxPrice)
	if err != nil {
		h.log.Warnf("Failed to build category view for slug %q: %v", slug, err)
		ErrorPage(c, h.log, err, "/")
		return
	}

	// Rejected filters fail open: the full list renders together with
	// the validation error.
	SuccessResponse(c, http.StatusOK, "Category view", view)
}

func (h *CatalogHandler) Product(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		h.log.Warnf("Invalid product ID parameter: %s", idStr)
		ErrorPage(c, h.log, invalidIDError("product", idStr), "/")
		return
	}

	product, err := h.catalog.GetProductByID(id)
	if err != nil {
		ErrorPage(c, h.log, err, "/")
		return
	}

	SuccessResponse(c, http.StatusOK, "Product view", product)
}
