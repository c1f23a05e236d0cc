package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain"
)

func TestParsePriceFilterAbsentInputs(t *testing.T) {
	for _, inputs := range [][2]string{{"", ""}, {"  ", ""}, {"", "\t"}} {
		filter, ferr := ParsePriceFilter(inputs[0], inputs[1])
		require.Nil(t, ferr)
		assert.False(t, filter.HasMin)
		assert.False(t, filter.HasMax)
	}
}

func TestParsePriceFilterInvalidMinimum(t *testing.T) {
	cases := []string{"abc", "-1", "NaN", "Inf", "1e309"}
	for _, raw := range cases {
		_, ferr := ParsePriceFilter(raw, "100")
		require.NotNil(t, ferr, "input %q", raw)
		assert.Equal(t, "Invalid minimum price", ferr.Title)
		assert.Equal(t, domain.KindValidation, ferr.Kind)
	}
}

func TestParsePriceFilterEchoesRawInput(t *testing.T) {
	_, ferr := ParsePriceFilter("abc", "")
	require.NotNil(t, ferr)
	assert.Contains(t, ferr.Message, `"abc"`)
}

func TestParsePriceFilterInvalidMaximum(t *testing.T) {
	_, ferr := ParsePriceFilter("10", "xyz")
	require.NotNil(t, ferr)
	assert.Equal(t, "Invalid maximum price", ferr.Title)
	assert.Contains(t, ferr.Message, `"xyz"`)
}

func TestParsePriceFilterMinimumFailureWins(t *testing.T) {
	// Both inputs are bad; the minimum is reported first.
	_, ferr := ParsePriceFilter("bad", "worse")
	require.NotNil(t, ferr)
	assert.Equal(t, "Invalid minimum price", ferr.Title)
}

func TestParsePriceFilterMinExceedsMax(t *testing.T) {
	_, ferr := ParsePriceFilter("50", "10")
	require.NotNil(t, ferr)
	assert.Equal(t, "Invalid price filters", ferr.Title)
}

func TestPriceFilterBoundariesInclusive(t *testing.T) {
	filter, ferr := ParsePriceFilter("15", "29.99")
	require.Nil(t, ferr)

	assert.True(t, filter.Match(domain.Product{Price: 1500}))
	assert.True(t, filter.Match(domain.Product{Price: 2999}))
	assert.False(t, filter.Match(domain.Product{Price: 1499}))
	assert.False(t, filter.Match(domain.Product{Price: 3000}))
}

func TestPriceFilterOpenBounds(t *testing.T) {
	minOnly, ferr := ParsePriceFilter("20", "")
	require.Nil(t, ferr)
	assert.True(t, minOnly.Match(domain.Product{Price: 1000000}))
	assert.False(t, minOnly.Match(domain.Product{Price: 1999}))

	maxOnly, ferr := ParsePriceFilter("", "20")
	require.Nil(t, ferr)
	assert.True(t, maxOnly.Match(domain.Product{Price: 0}))
	assert.False(t, maxOnly.Match(domain.Product{Price: 2001}))
}

func TestPriceFilterApply(t *testing.T) {
	products := []domain.Product{
		{ID: 1, Price: 1500},
		{ID: 2, Price: 1750},
		{ID: 3, Price: 2999},
	}

	filter, ferr := ParsePriceFilter("16", "29")
	require.Nil(t, ferr)

	filtered := filter.Apply(products)
	require.Len(t, filtered, 1)
	assert.Equal(t, 2, filtered[0].ID)

	none, ferr := ParsePriceFilter("", "")
	require.Nil(t, ferr)
	assert.Len(t, none.Apply(products), 3)
}
