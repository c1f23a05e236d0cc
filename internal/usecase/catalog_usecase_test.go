package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain"
)

func TestCategoryViewUnfiltered(t *testing.T) {
	f := newFixture(t, seedDocument())

	view, err := f.catalog.CategoryView("mugs", "", "")
	require.NoError(t, err)
	assert.Equal(t, "Mugs", view.Category.Name)
	assert.Len(t, view.Products, 2)
	assert.Nil(t, view.FilterError)
}

func TestCategoryViewFiltered(t *testing.T) {
	f := newFixture(t, seedDocument())

	view, err := f.catalog.CategoryView("mugs", "16", "20")
	require.NoError(t, err)
	require.Len(t, view.Products, 1)
	assert.Equal(t, "Black Ceramic Mug", view.Products[0].Name)
	assert.Equal(t, "16", view.MinPrice)
	assert.Equal(t, "20", view.MaxPrice)
}

func TestCategoryViewFailsOpenOnBadFilter(t *testing.T) {
	f := newFixture(t, seedDocument())

	view, err := f.catalog.CategoryView("mugs", "abc", "")
	require.NoError(t, err, "a bad filter must not block browsing")
	require.NotNil(t, view.FilterError)
	assert.Equal(t, "Invalid minimum price", view.FilterError.Title)
	assert.Contains(t, view.FilterError.Message, `"abc"`)
	assert.Len(t, view.Products, 2, "full unfiltered list renders alongside the error")
}

func TestCategoryViewMinExceedsMaxFailsOpen(t *testing.T) {
	f := newFixture(t, seedDocument())

	view, err := f.catalog.CategoryView("mugs", "50", "10")
	require.NoError(t, err)
	require.NotNil(t, view.FilterError)
	assert.Len(t, view.Products, 2)
}

func TestCategoryViewSlugCaseInsensitive(t *testing.T) {
	f := newFixture(t, seedDocument())

	view, err := f.catalog.CategoryView("T-SHIRTS", "", "")
	require.NoError(t, err)
	assert.Equal(t, 2, view.Category.ID)
}

func TestCategoryViewUnknownSlug(t *testing.T) {
	f := newFixture(t, seedDocument())

	_, err := f.catalog.CategoryView("hats", "", "")
	assert.True(t, domain.IsNotFound(err))
}

func TestGetProductByIDInvalid(t *testing.T) {
	f := newFixture(t, seedDocument())

	_, err := f.catalog.GetProductByID(0)
	assert.True(t, domain.IsNotFound(err))

	product, err := f.catalog.GetProductByID(3)
	require.NoError(t, err)
	assert.Equal(t, "Logo T-Shirt", product.Name)
}
