package catalog

import "strings"

// Category is an entry of the shop's category menu.
type Category struct {
	Name          string
	Icon          string
	Color         string
	Subcategories []string
}

var shopCategories = []Category{
	{Name: CategoryAll, Icon: "🛍️", Color: "#3a0ca3"},
	{Name: "Electronics", Icon: "📱", Color: "#4361ee", Subcategories: []string{"Phones", "Laptops", "Accessories"}},
	{Name: "Fashion", Icon: "👗", Color: "#f72585", Subcategories: []string{"Men", "Women", "Kids"}},
	{Name: "Jewelry", Icon: "💍", Color: "#7209b7", Subcategories: []string{"Necklaces", "Rings", "Earrings"}},
	{Name: "Accessories", Icon: "👜", Color: "#4cc9f0", Subcategories: []string{"Bags", "Watches", "Sunglasses"}},
}

// Categories returns the category menu, All first.
func Categories() []Category {
	out := make([]Category, len(shopCategories))
	copy(out, shopCategories)
	return out
}

// LookupCategory finds a menu category by exact name. Deep links such as
// /products?category=Fashion are honored only for names found here.
func LookupCategory(name string) (Category, bool) {
	for _, c := range shopCategories {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}

// CategoryIcon returns the menu icon for a category, or the generic cart.
func CategoryIcon(name string) string {
	for _, c := range shopCategories {
		if strings.EqualFold(c.Name, name) {
			return c.Icon
		}
	}
	return "🛒"
}

// CategoryColor returns the menu color for a category, or the brand primary.
func CategoryColor(name string) string {
	for _, c := range shopCategories {
		if strings.EqualFold(c.Name, name) {
			return c.Color
		}
	}
	return "#3a0ca3"
}
