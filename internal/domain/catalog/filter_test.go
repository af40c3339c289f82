package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/alexisbeaulieu97/shopmate/pkg/errors"
)

func TestFilterState_CategoryChangeClearsSubcategoryAndPage(t *testing.T) {
	state := DefaultFilterState().
		WithCategory("Electronics").
		WithSubcategory("Phones").
		WithPage(3)

	next := state.WithCategory("Fashion")
	assert.Equal(t, "Fashion", next.Category)
	assert.Empty(t, next.Subcategory)
	assert.Equal(t, 1, next.Page)

	// The original value is untouched.
	assert.Equal(t, "Phones", state.Subcategory)
}

func TestFilterState_SearchResetsPageButSortDoesNot(t *testing.T) {
	state := DefaultFilterState().WithPage(2)

	assert.Equal(t, 1, state.WithSearch("phone").Page)
	assert.Equal(t, 2, state.WithSort(SortPopular).Page)
	assert.Equal(t, 1, state.WithSubcategory("Rings").Page)
}

func TestFilterState_BlankCategoryMeansAll(t *testing.T) {
	assert.Equal(t, CategoryAll, DefaultFilterState().WithCategory(" ").Category)
}

func TestFilterState_ClearedAndIsFiltered(t *testing.T) {
	state := DefaultFilterState()
	assert.False(t, state.IsFiltered())

	state = state.WithSearch("ring").WithSort(SortPriceHigh)
	assert.True(t, state.IsFiltered())
	assert.Equal(t, DefaultFilterState(), state.Cleared())
}

func TestParseSortKey(t *testing.T) {
	key, err := ParseSortKey("pricelow")
	require.NoError(t, err)
	assert.Equal(t, SortPriceLow, key)

	key, err = ParseSortKey("")
	require.NoError(t, err)
	assert.Equal(t, SortNewest, key)

	_, err = ParseSortKey("cheapest")
	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "sort", validationErr.Field)
}

func TestSortKey_NextCycles(t *testing.T) {
	key := SortNewest
	seen := []SortKey{key}
	for i := 0; i < 3; i++ {
		key = key.Next()
		seen = append(seen, key)
	}
	assert.Equal(t, SortKeys(), seen)
	assert.Equal(t, SortNewest, SortPopular.Next())
	assert.Equal(t, "Most Popular", SortPopular.Label())
}

func TestLookupCategory(t *testing.T) {
	cat, ok := LookupCategory("Fashion")
	require.True(t, ok)
	assert.Equal(t, []string{"Men", "Women", "Kids"}, cat.Subcategories)

	_, ok = LookupCategory("fashion")
	assert.False(t, ok, "deep links must name the category exactly")

	assert.Equal(t, "🛒", CategoryIcon("Toys"))
	assert.Equal(t, "📱", CategoryIcon("electronics"))
	assert.Equal(t, CategoryAll, Categories()[0].Name)
}
