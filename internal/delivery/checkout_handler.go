package delivery

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"storefront/internal/domain"
	"storefront/internal/usecase"
)

type CheckoutHandler struct {
	useCase usecase.CheckoutUseCase
	log     *logrus.Logger
}

func NewCheckoutHandler(uc usecase.CheckoutUseCase, logger *logrus.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *CheckoutHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/checkout", h.Checkout)
	router.POST("/checkout", h.PlaceOrder)
	router.GET("/order-confirmation/:orderId", h.OrderConfirmation)
}

func (h *CheckoutHandler) Checkout(c *gin.Context) {
	view, err := h.useCase.PrepareCheckout()
	if err != nil {
		if errors.Is(err, domain.ErrCartEmpty) {
			h.log.Info("Checkout requested with empty cart, redirecting to cart")
			c.Redirect(http.StatusFound, "/cart")
			return
		}
		ErrorPage(c, h.log, err, "/cart")
		return
	}

	SuccessResponse(c, http.StatusOK, "Checkout view", view)
}

type customerForm struct {
	Email     string `form:"email"`
	FirstName string `form:"firstName"`
	LastName  string `form:"lastName"`
	Address   string `form:"address"`
	City      string `form:"city"`
	Country   string `form:"country"`
	Region    string `form:"region"`
	ZipCode   string `form:"zipCode"`
	Phone     string `form:"phone"`
}

func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	var form customerForm
	if err := c.ShouldBind(&form); err != nil {
		h.log.Errorf("Failed to bind checkout form: %v", err)
		ErrorPage(c, h.log, domain.ValidationError("Invalid checkout details",
			"could not read the submitted checkout form"), "/checkout")
		return
	}

	order, err := h.useCase.PlaceOrder(domain.Customer{
		Email:     form.Email,
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Address:   form.Address,
		City:      form.City,
		Country:   form.Country,
		Region:    form.Region,
		ZipCode:   form.ZipCode,
		Phone:     form.Phone,
	})
	if err != nil {
		if errors.Is(err, domain.ErrCartEmpty) {
			h.log.Info("Order placement with empty cart, redirecting to cart")
			c.Redirect(http.StatusFound, "/cart")
			return
		}
		h.log.Warnf("Failed to place order: %v", err)
		ErrorPage(c, h.log, err, "/checkout")
		return
	}

	h.log.Infof("Order %d placed, redirecting to confirmation", order.ID)
	c.Redirect(http.StatusFound, "/order-confirmation/"+strconv.Itoa(order.ID))
}

func (h *CheckoutHandler) OrderConfirmation(c *gin.Context) {
	idStr := c.Param("orderId")
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		h.log.Warnf("Invalid order ID parameter: %s", idStr)
		ErrorPage(c, h.log, invalidIDError("order", idStr), "/")
		return
	}

	view, err := h.useCase.GetOrderByID(id)
	if err != nil {
		ErrorPage(c, h.log, err, "/")
		return
	}

	SuccessResponse(c, http.StatusOK, "Order confirmation view", view)
}
