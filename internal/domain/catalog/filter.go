package catalog

import (
	"fmt"
	"strings"

	apperrors "github.com/alexisbeaulieu97/shopmate/pkg/errors"
)

// SortKey selects the ordering applied to the filtered catalog.
type SortKey string

const (
	SortNewest    SortKey = "newest"
	SortPriceLow  SortKey = "priceLow"
	SortPriceHigh SortKey = "priceHigh"
	SortPopular   SortKey = "popular"
)

// SortKeys lists the sort keys in menu order.
func SortKeys() []SortKey {
	return []SortKey{SortNewest, SortPriceLow, SortPriceHigh, SortPopular}
}

// Label returns the human-readable menu label.
func (k SortKey) Label() string {
	switch k {
	case SortPriceLow:
		return "Price: Low to High"
	case SortPriceHigh:
		return "Price: High to Low"
	case SortPopular:
		return "Most Popular"
	default:
		return "Newest"
	}
}

// Next cycles through SortKeys.
func (k SortKey) Next() SortKey {
	keys := SortKeys()
	for i, key := range keys {
		if key == k {
			return keys[(i+1)%len(keys)]
		}
	}
	return SortNewest
}

// ParseSortKey accepts the canonical keys case-insensitively.
func ParseSortKey(value string) (SortKey, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return SortNewest, nil
	}
	for _, key := range SortKeys() {
		if strings.EqualFold(string(key), trimmed) {
			return key, nil
		}
	}
	return "", apperrors.NewValidationError("sort", fmt.Sprintf("unknown sort key %q (want newest, priceLow, priceHigh or popular)", value), nil)
}

// FilterState is the ephemeral catalog view state. It is a value: every
// transition returns a new state.
type FilterState struct {
	Category    string
	Subcategory string
	Search      string
	Sort        SortKey
	Page        int
}

// DefaultFilterState returns the state a fresh catalog view starts in.
func DefaultFilterState() FilterState {
	return FilterState{
		Category: CategoryAll,
		Sort:     SortNewest,
		Page:     1,
	}
}

// WithCategory selects a category, clearing the subcategory and returning
// to the first page.
func (s FilterState) WithCategory(category string) FilterState {
	if strings.TrimSpace(category) == "" {
		category = CategoryAll
	}
	s.Category = category
	s.Subcategory = ""
	s.Page = 1
	return s
}

// WithSubcategory selects a subcategory and returns to the first page. An
// empty value clears the selection.
func (s FilterState) WithSubcategory(subcategory string) FilterState {
	s.Subcategory = subcategory
	s.Page = 1
	return s
}

// WithSearch replaces the search text and returns to the first page.
func (s FilterState) WithSearch(search string) FilterState {
	s.Search = search
	s.Page = 1
	return s
}

// WithSort changes the ordering. The current page is kept.
func (s FilterState) WithSort(key SortKey) FilterState {
	s.Sort = key
	return s
}

// WithPage moves to page. The value is not clamped here.
func (s FilterState) WithPage(page int) FilterState {
	s.Page = page
	return s
}

// Cleared resets every filter while keeping nothing from s.
func (s FilterState) Cleared() FilterState {
	return DefaultFilterState()
}

// IsFiltered reports whether any filter narrows the catalog.
func (s FilterState) IsFiltered() bool {
	return !isAll(s.Category) || s.Subcategory != "" || strings.TrimSpace(s.Search) != ""
}

func isAll(category string) bool {
	return category == "" || category == CategoryAll
}
