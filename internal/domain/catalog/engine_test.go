package catalog

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id, title, category, subcategory string, price float64, rating float64) Product {
	return Product{
		ID:          id,
		Title:       title,
		Description: "Description of " + title,
		Price:       decimal.NewFromFloat(price),
		Category:    category,
		Subcategory: subcategory,
		Rating:      Rating{Rate: rating},
	}
}

func fixtureProducts() []Product {
	return []Product{
		product("1", "Pixel Phone", "Electronics", "Phones", 699, 4.5),
		product("2", "Gold Ring", "Jewelry", "Rings", 250, 4.9),
		product("3", "Leather Bag", "Accessories", "Bags", 120, 3.8),
		product("4", "Ultrabook", "Electronics", "Laptops", 1299.99, 4.7),
		product("5", "Denim Jacket", "Fashion", "Men", 89.5, 4.1),
		product("6", "USB-C Cable", "electronics", "accessories", 9.99, 0),
	}
}

func ids(products []Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestApply_IsDeterministic(t *testing.T) {
	products := fixtureProducts()
	states := []FilterState{
		DefaultFilterState(),
		DefaultFilterState().WithSort(SortPriceLow),
		DefaultFilterState().WithSort(SortPopular).WithSearch("o"),
		DefaultFilterState().WithCategory("Electronics").WithSort(SortPriceHigh),
	}

	for _, state := range states {
		first := Apply(products, state)
		second := Apply(products, state)
		assert.Equal(t, first, second)
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	products := fixtureProducts()
	before := ids(products)

	Apply(products, DefaultFilterState().WithSort(SortPriceHigh))
	Apply(products, DefaultFilterState())

	if diff := cmp.Diff(before, ids(products)); diff != "" {
		t.Errorf("input reordered (-before +after):\n%s", diff)
	}
}

func TestFilter_AllKeepsEverything(t *testing.T) {
	products := fixtureProducts()
	page := Apply(products, DefaultFilterState())
	assert.Equal(t, len(products), page.Total)
}

func TestFilter_CategoryIsCaseInsensitive(t *testing.T) {
	got := Filter(fixtureProducts(), DefaultFilterState().WithCategory("ELECTRONICS"))
	assert.Equal(t, []string{"1", "4", "6"}, ids(got))
}

func TestFilter_SubcategoryNeedsCategory(t *testing.T) {
	products := fixtureProducts()

	withoutCategory := DefaultFilterState().WithSubcategory("Phones")
	assert.Len(t, Filter(products, withoutCategory), len(products))

	withCategory := DefaultFilterState().WithCategory("Electronics").WithSubcategory("phones")
	assert.Equal(t, []string{"1"}, ids(Filter(products, withCategory)))
}

func TestFilter_SearchMatchesTitleDescriptionAndSubcategory(t *testing.T) {
	products := fixtureProducts()
	products[2].Description = "Handmade in Italy"

	cases := map[string][]string{
		"PIXEL":  {"1"},
		"italy":  {"3"},
		"laptop": {"4"},
		"zzz":    {},
	}
	for search, want := range cases {
		got := Filter(products, DefaultFilterState().WithSearch(search))
		assert.Equal(t, want, ids(got), "search %q", search)
	}
}

func TestFilter_BlankSearchIsIgnored(t *testing.T) {
	products := fixtureProducts()
	got := Filter(products, DefaultFilterState().WithSearch("   "))
	assert.Len(t, got, len(products))
}

func TestFilter_SearchRespectsCategory(t *testing.T) {
	state := DefaultFilterState().WithCategory("Jewelry").WithSearch("ring")
	assert.Equal(t, []string{"2"}, ids(Filter(fixtureProducts(), state)))

	state = DefaultFilterState().WithCategory("Fashion").WithSearch("ring")
	assert.Empty(t, Filter(fixtureProducts(), state))
}

func TestSort_PriceLowIsAscending(t *testing.T) {
	page := Apply(fixtureProducts(), DefaultFilterState().WithSort(SortPriceLow))
	require.NotEmpty(t, page.Products)
	for i := 1; i < len(page.Products); i++ {
		assert.True(t, page.Products[i-1].Price.LessThanOrEqual(page.Products[i].Price))
	}
}

func TestSort_PriceHighIsDescendingAndStable(t *testing.T) {
	products := []Product{
		product("a", "A", "All", "", 10, 0),
		product("b", "B", "All", "", 20, 0),
		product("c", "C", "All", "", 10, 0),
	}
	Sort(products, SortPriceHigh)
	assert.Equal(t, []string{"b", "a", "c"}, ids(products))
}

func TestSort_PopularTreatsMissingRatingAsZero(t *testing.T) {
	products := []Product{
		product("a", "A", "All", "", 1, 0),
		product("b", "B", "All", "", 1, 4),
		product("c", "C", "All", "", 1, 0),
		product("d", "D", "All", "", 1, 5),
	}
	Sort(products, SortPopular)
	assert.Equal(t, []string{"d", "b", "a", "c"}, ids(products))
}

func TestSort_NewestReversesFetchOrder(t *testing.T) {
	products := fixtureProducts()
	Sort(products, SortNewest)
	assert.Equal(t, []string{"6", "5", "4", "3", "2", "1"}, ids(products))
}

func TestSort_NewestUsesTimestampsWhenComplete(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	products := []Product{
		product("old", "Old", "All", "", 1, 0),
		product("new", "New", "All", "", 1, 0),
		product("mid", "Mid", "All", "", 1, 0),
	}
	products[0].CreatedAt = base
	products[1].CreatedAt = base.Add(48 * time.Hour)
	products[2].CreatedAt = base.Add(24 * time.Hour)

	Sort(products, SortNewest)
	assert.Equal(t, []string{"new", "mid", "old"}, ids(products))
}

func TestPaginate(t *testing.T) {
	products := make([]Product, 0, 19)
	for i := 1; i <= 19; i++ {
		products = append(products, product(fmt.Sprint(i), fmt.Sprintf("P%d", i), "All", "", float64(i), 0))
	}

	first := Paginate(products, 1)
	assert.Equal(t, 19, first.Total)
	assert.Equal(t, 3, first.TotalPages)
	assert.Len(t, first.Products, PageSize)
	assert.True(t, first.HasNext())
	assert.False(t, first.HasPrev())

	last := Paginate(products, 3)
	assert.Equal(t, []string{"17", "18", "19"}, ids(last.Products))
	assert.False(t, last.HasNext())

	beyond := Paginate(products, 4)
	assert.Empty(t, beyond.Products)
	assert.Equal(t, 19, beyond.Total)

	zero := Paginate(products, 0)
	assert.Empty(t, zero.Products)
}

func TestApply_EmptyInputIsEmptyPage(t *testing.T) {
	page := Apply(nil, DefaultFilterState())
	assert.True(t, page.Empty())
	assert.Equal(t, 0, page.TotalPages)
	assert.NotNil(t, page.Products)
	assert.Empty(t, page.Products)
}

func TestFeatured(t *testing.T) {
	products := fixtureProducts()
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(Featured(products, 4)))
	assert.Len(t, Featured(products[:2], 4), 2)
	assert.Empty(t, Featured(nil, 4))
}
