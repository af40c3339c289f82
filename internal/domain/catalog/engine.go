package catalog

import (
	"sort"
	"strings"
)

// PageSize is the number of products shown per catalog page.
const PageSize = 8

// FeaturedCount is how many products the home screen features.
const FeaturedCount = 4

// Page is one page of the filtered and sorted catalog.
type Page struct {
	Products   []Product
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}

// Empty reports whether the filters matched nothing at all.
func (p Page) Empty() bool {
	return p.Total == 0
}

// HasNext reports whether a later page exists.
func (p Page) HasNext() bool {
	return p.Page < p.TotalPages
}

// HasPrev reports whether an earlier page exists.
func (p Page) HasPrev() bool {
	return p.Page > 1
}

// Apply filters, sorts and paginates products according to state. It never
// mutates products and is deterministic: identical inputs give identical
// pages. An out-of-range page yields no products rather than an error.
func Apply(products []Product, state FilterState) Page {
	matched := Filter(products, state)
	Sort(matched, state.Sort)
	return Paginate(matched, state.Page)
}

// Filter returns the products passing the category, subcategory and search
// filters, in input order. The result never aliases products.
func Filter(products []Product, state FilterState) []Product {
	filtered := make([]Product, 0, len(products))

	categorySelected := !isAll(state.Category)
	subcategorySelected := categorySelected && state.Subcategory != ""
	searching := strings.TrimSpace(state.Search) != ""
	needle := strings.ToLower(state.Search)

	for _, p := range products {
		if categorySelected && !strings.EqualFold(p.Category, state.Category) {
			continue
		}
		if subcategorySelected && (p.Subcategory == "" || !strings.EqualFold(p.Subcategory, state.Subcategory)) {
			continue
		}
		if searching && !matchesSearch(p, needle) {
			continue
		}
		filtered = append(filtered, p)
	}

	return filtered
}

func matchesSearch(p Product, needle string) bool {
	return strings.Contains(strings.ToLower(p.Title), needle) ||
		strings.Contains(strings.ToLower(p.Description), needle) ||
		(p.Subcategory != "" && strings.Contains(strings.ToLower(p.Subcategory), needle))
}

// Sort orders products in place. Price and popularity sorts are stable.
// Newest uses creation timestamps when every product has one and otherwise
// reverses the fetch order.
func Sort(products []Product, key SortKey) {
	switch key {
	case SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.LessThan(products[j].Price)
		})
	case SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.GreaterThan(products[j].Price)
		})
	case SortPopular:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating.Rate > products[j].Rating.Rate
		})
	case SortNewest:
		if allTimestamped(products) {
			sort.SliceStable(products, func(i, j int) bool {
				return products[i].CreatedAt.After(products[j].CreatedAt)
			})
			return
		}
		for i, j := 0, len(products)-1; i < j; i, j = i+1, j-1 {
			products[i], products[j] = products[j], products[i]
		}
	}
}

func allTimestamped(products []Product) bool {
	if len(products) == 0 {
		return false
	}
	for _, p := range products {
		if p.CreatedAt.IsZero() {
			return false
		}
	}
	return true
}

// Paginate slices out the 1-based page of size PageSize.
func Paginate(products []Product, page int) Page {
	total := len(products)
	totalPages := total / PageSize
	if total%PageSize > 0 {
		totalPages++
	}

	result := Page{
		Products:   []Product{},
		Total:      total,
		Page:       page,
		PageSize:   PageSize,
		TotalPages: totalPages,
	}

	if page < 1 || page > totalPages {
		return result
	}

	start := (page - 1) * PageSize
	end := start + PageSize
	if end > total {
		end = total
	}
	result.Products = products[start:end]
	return result
}

// Featured returns the first n products in fetch order for the home screen.
func Featured(products []Product, n int) []Product {
	if n > len(products) {
		n = len(products)
	}
	if n <= 0 {
		return []Product{}
	}
	out := make([]Product, n)
	copy(out, products[:n])
	return out
}
