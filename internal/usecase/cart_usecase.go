package usecase

import (
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"storefront/internal/domain"
)

type CartUseCase interface {
	AddItem(productID int) (*domain.Product, error)
	UpdateItemQuantity(productID, quantity int) error
	RemoveItem(productID int) error
	View() (*CartView, error)
	ItemCount() (int, error)
}

type CartLine struct {
	Product  domain.Product  `json:"product"`
	Quantity int             `json:"quantity"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

type CartView struct {
	Lines []CartLine      `json:"items"`
	Total decimal.Decimal `json:"total"`
}

type cartUseCase struct {
	cartRepo    domain.CartRepository
	catalogRepo domain.CatalogRepository
	log         *logrus.Logger
}

func NewCartUseCase(cartRepo domain.CartRepository, catalogRepo domain.CatalogRepository, logger *logrus.Logger) CartUseCase {
	return &cartUseCase{
		cartRepo:    cartRepo,
		catalogRepo: catalogRepo,
		log:         logger,
	}
}

var hundred = decimal.NewFromInt(100)

// lineSubtotal converts cents to display units exactly.
func lineSubtotal(priceCents int64, quantity int) decimal.Decimal {
	return decimal.NewFromInt(priceCents).
		Mul(decimal.NewFromInt(int64(quantity))).
		Div(hundred)
}

// AddItem resolves the product in the catalog and either increments the
// existing line's quantity or appends a new line with quantity 1. One
// line per product, always.
func (uc *cartUseCase) AddItem(productID int) (*domain.Product, error) {
	product, err := uc.catalogRepo.GetProductByID(productID)
	if err != nil {
		if domain.IsNotFound(err) {
			uc.log.Warnf("Use Case: Product ID %d not available for add to cart", productID)
			return nil, domain.NotFoundError("Product not found",
				"the selected product is not available")
		}
		uc.log.Errorf("Use Case: Catalog lookup failed for product ID %d: %v", productID, err)
		return nil, err
	}

	err = uc.cartRepo.UpdateCart(func(cart *domain.Cart) error {
		for i := range cart.Items {
			if cart.Items[i].ProductID == productID {
				cart.Items[i].Quantity++
				return nil
			}
		}
		cart.Items = append(cart.Items, domain.CartItem{ProductID: productID, Quantity: 1})
		return nil
	})
	if err != nil {
		uc.log.Errorf("Use Case: Failed to add product %d to cart: %v", productID, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Product %d added to cart", productID)
	return product, nil
}

// UpdateItemQuantity sets the quantity of an existing line. A product
// not present in the cart is a no-op, not an error. A quantity of zero
// or less removes the line.
func (uc *cartUseCase) UpdateItemQuantity(productID, quantity int) error {
	if quantity <= 0 {
		uc.log.Infof("Use Case: Quantity %d for product %d treated as removal", quantity, productID)
		return uc.RemoveItem(productID)
	}

	return uc.cartRepo.UpdateCart(func(cart *domain.Cart) error {
		for i := range cart.Items {
			if cart.Items[i].ProductID == productID {
				cart.Items[i].Quantity = quantity
				uc.log.Infof("Use Case: Cart quantity for product %d set to %d", productID, quantity)
				return nil
			}
		}
		uc.log.Warnf("Use Case: Product %d not in cart, ignoring quantity update", productID)
		return nil
	})
}

func (uc *cartUseCase) RemoveItem(productID int) error {
	return uc.cartRepo.UpdateCart(func(cart *domain.Cart) error {
		kept := cart.Items[:0]
		for _, item := range cart.Items {
			if item.ProductID != productID {
				kept = append(kept, item)
			}
		}
		cart.Items = kept
		return nil
	})
}

// View enriches each cart line with its product and computes subtotals
// and the cart total in display units. Lines whose product no longer
// exists are dropped from the view but left in storage.
func (uc *cartUseCase) View() (*CartView, error) {
	cart, err := uc.cartRepo.GetCart()
	if err != nil {
		return nil, err
	}

	view := &CartView{
		Lines: make([]CartLine, 0, len(cart.Items)),
		Total: decimal.Zero,
	}
	for _, item := range cart.Items {
		product, err := uc.catalogRepo.GetProductByID(item.ProductID)
		if err != nil {
			if domain.IsNotFound(err) {
				uc.log.Warnf("Use Case: Dropping cart line for missing product %d", item.ProductID)
				continue
			}
			return nil, err
		}

		subtotal := lineSubtotal(product.Price, item.Quantity)
		view.Lines = append(view.Lines, CartLine{
			Product:  *product,
			Quantity: item.Quantity,
			Subtotal: subtotal,
		})
		view.Total = view.Total.Add(subtotal)
	}
	return view, nil
}

func (uc *cartUseCase) ItemCount() (int, error) {
	cart, err := uc.cartRepo.GetCart()
	if err != nil {
		return 0, err
	}
	count := 0
	for _, item := range cart.Items {
		count += item.Quantity
	}
	return count, nil
}
