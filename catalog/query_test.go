package catalog

import (
	"testing"

	"everbloom/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() []models.Product {
	return []models.Product{
		{ProductID: "1", Name: "Rose Bouquet", Price: 1499, Type: "bouquet", FlowerType: "satin ribbon", Size: "large", Categories: models.Categories{Occasion: "romance"}},
		{ProductID: "2", Name: "Celebration Bouquet", Price: 1899, Type: "bouquet", FlowerType: "pipe cleaner", Size: "small", Categories: models.Categories{Occasion: "celebrations"}},
		{ProductID: "3", Name: "Fantasy Single Flower", Price: 2299, Type: "single flower", FlowerType: "pipe cleaner", Categories: models.Categories{Fandom: "fantasy"}},
		{ProductID: "9", Name: "Single Red Rose", Price: 350, Type: "single flower", FlowerType: "pipe cleaner", Size: "small", Categories: models.Categories{Occasion: "valentine"}},
		{ProductID: "10", Name: "Sunflower Arrangement", Price: 1500, Type: "bouquet", FlowerType: "satin ribbon", Size: "large", Categories: models.Categories{Occasion: "birthday"}},
	}
}

func ids(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ProductID
	}
	return out
}

func TestFilterByOccasion(t *testing.T) {
	got := Filters{Occasion: "romance"}.Apply(sample())
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ProductID)
}

func TestFilterCombinesWithAnd(t *testing.T) {
	got := Filters{Type: "bouquet", FlowerType: "satin ribbon"}.Apply(sample())
	assert.Equal(t, []string{"1", "10"}, ids(got))
}

func TestFilterPriceRangeInclusive(t *testing.T) {
	got := Filters{PriceMin: 350, PriceMax: 1500}.Apply(sample())
	assert.Equal(t, []string{"1", "9", "10"}, ids(got))
}

func TestFilterOrderIsCommutative(t *testing.T) {
	products := sample()

	occasionThenPrice := Filters{PriceMin: 300, PriceMax: 1600}.Apply(Filters{Occasion: "valentine"}.Apply(products))
	priceThenOccasion := Filters{Occasion: "valentine"}.Apply(Filters{PriceMin: 300, PriceMax: 1600}.Apply(products))

	assert.Equal(t, ids(priceThenOccasion), ids(occasionThenPrice))
}

func TestSearchMatchesAnyField(t *testing.T) {
	products := sample()

	// name match
	assert.Equal(t, []string{"10"}, ids(Filters{Search: "sunflower"}.Apply(products)))
	// material match, case-insensitive
	assert.Equal(t, []string{"2", "3", "9"}, ids(Filters{Search: "Pipe Cleaner"}.Apply(products)))
	// fandom match
	assert.Equal(t, []string{"3"}, ids(Filters{Search: "fantasy"}.Apply(products)))
	// no match
	assert.Empty(t, Filters{Search: "orchid"}.Apply(products))
}

func TestSortByPrice(t *testing.T) {
	products := sample()
	SortProducts(products, SortPriceAsc)
	assert.Equal(t, []string{"9", "1", "10", "2", "3"}, ids(products))

	SortProducts(products, SortPriceDesc)
	assert.Equal(t, []string{"3", "2", "10", "1", "9"}, ids(products))
}

func TestSortByName(t *testing.T) {
	products := sample()
	SortProducts(products, SortNameAsc)
	assert.Equal(t, "Celebration Bouquet", products[0].Name)

	SortProducts(products, SortNameDesc)
	assert.Equal(t, "Sunflower Arrangement", products[0].Name)
}

func TestSortDateUsesNumericID(t *testing.T) {
	products := sample()
	SortProducts(products, SortDateNewOld)
	// "10" must sort after "9", not lexically between "1" and "2"
	assert.Equal(t, []string{"10", "9", "3", "2", "1"}, ids(products))

	SortProducts(products, SortDateOldNew)
	assert.Equal(t, []string{"1", "2", "3", "9", "10"}, ids(products))
}

func TestSortUnknownKeyKeepsOrder(t *testing.T) {
	products := sample()
	SortProducts(products, "bogus")
	assert.Equal(t, []string{"1", "2", "3", "9", "10"}, ids(products))
}

func TestPaginateSliceLength(t *testing.T) {
	products := sample() // N = 5
	cases := []struct {
		page, size, want int
	}{
		{1, 2, 2},
		{2, 2, 2},
		{3, 2, 1},
		{4, 2, 0},
		{1, 10, 5},
		{2, 10, 0},
	}
	for _, tc := range cases {
		got := Paginate(products, tc.page, tc.size)
		assert.Lenf(t, got, tc.want, "page %d size %d", tc.page, tc.size)
	}
}

func TestPaginateOutOfRangeIsEmptyNotNil(t *testing.T) {
	got := Paginate(sample(), 99, 10)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestBundledCatalogIsCopied(t *testing.T) {
	a := Bundled()
	a[0].Name = "mutated"
	b := Bundled()
	assert.NotEqual(t, "mutated", b[0].Name)
}

func TestBundledByID(t *testing.T) {
	p, ok := BundledByID("21")
	require.True(t, ok)
	assert.Equal(t, "Sunflower Bouquet", p.Name)

	_, ok = BundledByID("999")
	assert.False(t, ok)
}
