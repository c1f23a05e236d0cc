package usecase

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"storefront/internal/domain"
)

// PriceFilter holds validated minimum/maximum bounds in display units
// (stored prices are cents; bounds compare against price/100). An
// absent bound is unbounded.
type PriceFilter struct {
	Min    float64
	Max    float64
	HasMin bool
	HasMax bool
}

// ParsePriceFilter validates raw minPrice/maxPrice query inputs. An
// input counts as present only if non-empty after trimming. Validation
// short-circuits on the first failure: bad minimum, then bad maximum,
// then minimum exceeding maximum.
func ParsePriceFilter(minRaw, maxRaw string) (PriceFilter, *domain.Error) {
	var filter PriceFilter

	minRaw = strings.TrimSpace(minRaw)
	maxRaw = strings.TrimSpace(maxRaw)

	if minRaw != "" {
		value, err := strconv.ParseFloat(minRaw, 64)
		if err != nil || math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
			return filter, domain.ValidationError("Invalid minimum price",
				fmt.Sprintf("minimum price must be a non-negative number, got %q", minRaw))
		}
		filter.Min = value
		filter.HasMin = true
	}

	if maxRaw != "" {
		value, err := strconv.ParseFloat(maxRaw, 64)
		if err != nil || math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
			return filter, domain.ValidationError("Invalid maximum price",
				fmt.Sprintf("maximum price must be a non-negative number, got %q", maxRaw))
		}
		filter.Max = value
		filter.HasMax = true
	}

	if filter.HasMin && filter.HasMax && filter.Min > filter.Max {
		return filter, domain.ValidationError("Invalid price filters",
			"minimum price must not exceed maximum price")
	}

	return filter, nil
}

// Match reports whether the product's display price falls inside the
// bounds, both ends inclusive.
func (f PriceFilter) Match(product domain.Product) bool {
	display := float64(product.Price) / 100
	if f.HasMin && display < f.Min {
		return false
	}
	if f.HasMax && display > f.Max {
		return false
	}
	return true
}

func (f PriceFilter) Apply(products []domain.Product) []domain.Product {
	filtered := make([]domain.Product, 0, len(products))
	for _, product := range products {
		if f.Match(product) {
			filtered = append(filtered, product)
		}
	}
	return filtered
}
