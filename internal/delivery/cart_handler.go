package delivery

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"storefront/internal/domain"
	"storefront/internal/usecase"
)

type CartHandler struct {
	useCase usecase.CartUseCase
	log     *logrus.Logger
}

func NewCartHandler(uc usecase.CartUseCase, logger *logrus.Logger) *CartHandler {
	return &CartHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *CartHandler) RegisterRoutes(router gin.IRouter) {
	cart := router.Group("/cart")
	{
		cart.GET("", h.ViewCart)
		cart.POST("/add-product", h.AddProduct)
		cart.POST("/update-item", h.UpdateItem)
		cart.POST("/delete-item", h.DeleteItem)
	}
}

func (h *CartHandler) ViewCart(c *gin.Context) {
	view, err := h.useCase.View()
	if err != nil {
		ErrorPage(c, h.log, err, "/")
		return
	}
	SuccessResponse(c, http.StatusOK, "Cart view", view)
}

func (h *CartHandler) AddProduct(c *gin.Context) {
	var form struct {
		ProductID   string `form:"productId"`
		PathProduct string `form:"pathProduct"`
	}
	if err := c.ShouldBind(&form); err != nil {
		h.log.Errorf("Failed to bind add-product form: %v", err)
		ErrorPage(c, h.log, invalidIDError("product", form.ProductID), "/")
		return
	}

	backPath := form.PathProduct
	if backPath == "" {
		backPath = "/"
	}

	id, err := strconv.Atoi(form.ProductID)
	if err != nil || id <= 0 {
		h.log.Warnf("Invalid productId in add-product form: %s", form.ProductID)
		ErrorPage(c, h.log, invalidIDError("product", form.ProductID), backPath)
		return
	}

	if _, err := h.useCase.AddItem(id); err != nil {
		h.log.Warnf("Failed to add product %d to cart: %v", id, err)
		ErrorPage(c, h.log, err, backPath)
		return
	}

	c.Redirect(http.StatusFound, "/product/"+strconv.Itoa(id))
}

func (h *CartHandler) UpdateItem(c *gin.Context) {
	var form struct {
		ProductID string `form:"productId"`
		Quantity  string `form:"quantity"`
	}
	if err := c.ShouldBind(&form); err != nil {
		h.log.Errorf("Failed to bind update-item form: %v", err)
		ErrorPage(c, h.log, invalidIDError("product", form.ProductID), "/cart")
		return
	}

	id, err := strconv.Atoi(form.ProductID)
	if err != nil || id <= 0 {
		h.log.Warnf("Invalid productId in update-item form: %s", form.ProductID)
		ErrorPage(c, h.log, invalidIDError("product", form.ProductID), "/cart")
		return
	}

	quantity, err := strconv.Atoi(form.Quantity)
	if err != nil {
		h.log.Warnf("Invalid quantity in update-item form: %s", form.Quantity)
		ErrorPage(c, h.log, domain.ValidationError("Invalid quantity",
			"the quantity must be an integer, got "+strconv.Quote(form.Quantity)), "/cart")
		return
	}

	if err := h.useCase.UpdateItemQuantity(id, quantity); err != nil {
		ErrorPage(c, h.log, err, "/cart")
		return
	}

	c.Redirect(http.StatusFound, "/cart")
}

func (h *CartHandler) DeleteItem(c *gin.Context) {
	var form struct {
		ProductID string `form:"productId"`
	}
	if err := c.ShouldBind(&form); err != nil {
		h.log.Errorf("Failed to bind delete-item form: %v", err)
		ErrorPage(c, h.log, invalidIDError("product", form.ProductID), "/cart")
		return
	}

	id, err := strconv.Atoi(form.ProductID)
	if err != nil || id <= 0 {
		h.log.Warnf("Invalid productId in delete-item form: %s", form.ProductID)
		ErrorPage(c, h.log, invalidIDError("product", form.ProductID), "/cart")
		return
	}

	if err := h.useCase.RemoveItem(id); err != nil {
		ErrorPage(c, h.log, err, "/cart")
		return
	}

	c.Redirect(http.StatusFound, "/cart")
}
