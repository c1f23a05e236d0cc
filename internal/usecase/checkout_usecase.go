package usecase

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"storefront/internal/domain"
)

type CheckoutUseCase interface {
	PrepareCheckout() (*CheckoutView, error)
	PlaceOrder(customer domain.Customer) (*domain.Order, error)
	GetOrderByID(id int) (*OrderView, error)
}

type CheckoutLine struct {
	ProductID int             `json:"productId"`
	Name      string          `json:"name"`
	Image     string          `json:"image"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type CheckoutView struct {
	Lines []CheckoutLine  `json:"items"`
	Total decimal.Decimal `json:"total"`
}

// OrderView pairs the persisted order (totals in cents) with its total
// in display units for the confirmation page.
type OrderView struct {
	Order domain.Order    `json:"order"`
	Total decimal.Decimal `json:"total"`
}

type checkoutUseCase struct {
	cartRepo    domain.CartRepository
	catalogRepo domain.CatalogRepository
	orderRepo   domain.OrderRepository
	log         *logrus.Logger
}

func NewCheckoutUseCase(cartRepo domain.CartRepository, catalogRepo domain.CatalogRepository, orderRepo domain.OrderRepository, logger *logrus.Logger) CheckoutUseCase {
	return &checkoutUseCase{
		cartRepo:    cartRepo,
		catalogRepo: catalogRepo,
		orderRepo:   orderRepo,
		log:         logger,
	}
}

// snapshotLines captures current product name/price per cart item.
// Items whose product no longer exists are dropped.
func (uc *checkoutUseCase) snapshotLines(cart *domain.Cart) ([]domain.OrderLine, []CheckoutLine, error) {
	lines := make([]domain.OrderLine, 0, len(cart.Items))
	viewLines := make([]CheckoutLine, 0, len(cart.Items))

	for _, item := range cart.Items {
		product, err := uc.catalogRepo.GetProductByID(item.ProductID)
		if err != nil {
			if domain.IsNotFound(err) {
				uc.log.Warnf("Use Case: Dropping checkout line for missing product %d", item.ProductID)
				continue
			}
			return nil, nil, err
		}

		lines = append(lines, domain.OrderLine{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  item.Quantity,
		})
		viewLines = append(viewLines, CheckoutLine{
			ProductID: product.ID,
			Name:      product.Name,
			Image:     product.Image,
			Price:     decimal.NewFromInt(product.Price).Div(hundred),
			Quantity:  item.Quantity,
			Subtotal:  lineSubtotal(product.Price, item.Quantity),
		})
	}
	return lines, viewLines, nil
}

// PrepareCheckout builds the checkout summary. An empty cart signals
// ErrCartEmpty so the handler redirects back to the cart.
func (uc *checkoutUseCase) PrepareCheckout() (*CheckoutView, error) {
	cart, err := uc.cartRepo.GetCart()
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, domain.ErrCartEmpty
	}

	_, viewLines, err := uc.snapshotLines(cart)
	if err != nil {
		return nil, err
	}
	if len(viewLines) == 0 {
		return nil, domain.ErrCartEmpty
	}

	view := &CheckoutView{Lines: viewLines, Total: decimal.Zero}
	for _, line := range view.Lines {
		view.Total = view.Total.Add(line.Subtotal)
	}
	return view, nil
}

func validateCustomer(customer domain.Customer) *domain.Error {
	switch {
	case customer.Email == "":
		return domain.ValidationError("Invalid checkout details", "email cannot be empty")
	case customer.FirstName == "":
		return domain.ValidationError("Invalid checkout details", "first name cannot be empty")
	case customer.LastName == "":
		return domain.ValidationError("Invalid checkout details", "last name cannot be empty")
	case customer.Address == "":
		return domain.ValidationError("Invalid checkout details", "address cannot be empty")
	}
	return nil
}

// PlaceOrder snapshots the cart into an immutable order, allocates the
// next sequential identifier, clears the cart and persists both in one
// write. The order total is frozen at checkout time.
func (uc *checkoutUseCase) PlaceOrder(customer domain.Customer) (*domain.Order, error) {
	cart, err := uc.cartRepo.GetCart()
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, domain.ErrCartEmpty
	}

	if verr := validateCustomer(customer); verr != nil {
		uc.log.Warnf("Use Case: Rejected checkout details: %s", verr.Message)
		return nil, verr
	}

	lines, _, err := uc.snapshotLines(cart)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		uc.log.Warn("Use Case: Cart holds only orphaned items, nothing to order")
		return nil, domain.ErrCartEmpty
	}

	var total int64
	for _, line := range lines {
		total += line.Price * int64(line.Quantity)
	}

	order := &domain.Order{
		Customer:  customer,
		Lines:     lines,
		Total:     total,
		CreatedAt: time.Now().UTC(),
	}

	placed, err := uc.orderRepo.PlaceOrder(order)
	if err != nil {
		uc.log.Errorf("Use Case: Failed to place order for %s: %v", customer.Email, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Order %d placed for %s (total %d cents)", placed.ID, customer.Email, placed.Total)
	return placed, nil
}

func (uc *checkoutUseCase) GetOrderByID(id int) (*OrderView, error) {
	if id <= 0 {
		return nil, domain.NotFoundError("Page not found", "no such order")
	}

	order, err := uc.orderRepo.GetOrderByID(id)
	if err != nil {
		uc.log.Warnf("Use Case: Order lookup failed for ID %d: %v", id, err)
		return nil, err
	}

	return &OrderView{
		Order: *order,
		Total: decimal.NewFromInt(order.Total).Div(hundred),
	}, nil
}
