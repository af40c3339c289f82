// Package nav maps route paths to screens.
package nav

import (
	"net/url"
	"strings"
)

// Screen identifies one view of the storefront.
type Screen string

const (
	ScreenHome     Screen = "home"
	ScreenProducts Screen = "products"
	ScreenProduct  Screen = "product"
	ScreenCart     Screen = "cart"
	ScreenWishlist Screen = "wishlist"
	ScreenCheckout Screen = "checkout"
	ScreenLogin    Screen = "login"
	ScreenRegister Screen = "register"
)

// Route paths.
const (
	HomePath     = "/"
	ProductsPath = "/products"
	CartPath     = "/cart"
	WishlistPath = "/wishlist"
	CheckoutPath = "/checkout"
	LoginPath    = "/login"
	RegisterPath = "/register"
)

const productPrefix = "/product/"

var staticRoutes = map[string]Screen{
	HomePath:     ScreenHome,
	ProductsPath: ScreenProducts,
	CartPath:     ScreenCart,
	WishlistPath: ScreenWishlist,
	CheckoutPath: ScreenCheckout,
	LoginPath:    ScreenLogin,
	RegisterPath: ScreenRegister,
}

// Route is a resolved path.
type Route struct {
	Path   string
	Screen Screen
	Params map[string]string
	Query  url.Values
}

// Param returns a path parameter.
func (r Route) Param(name string) string {
	return r.Params[name]
}

// Resolve maps a path, optionally carrying a query string, to its route.
// Unknown paths resolve to home. Route.Path keeps the escaped form so it can
// be resolved again.
func Resolve(raw string) Route {
	u, err := url.Parse(raw)
	if err != nil {
		return home()
	}

	path := u.EscapedPath()
	if path == "" {
		path = HomePath
	}
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}

	if screen, ok := staticRoutes[path]; ok {
		return Route{Path: path, Screen: screen, Params: map[string]string{}, Query: u.Query()}
	}

	if segment, ok := strings.CutPrefix(path, productPrefix); ok && segment != "" && !strings.Contains(segment, "/") {
		id, err := url.PathUnescape(segment)
		if err != nil || id == "" {
			return home()
		}
		return Route{Path: path, Screen: ScreenProduct, Params: map[string]string{"id": id}, Query: u.Query()}
	}

	return home()
}

func home() Route {
	return Route{Path: HomePath, Screen: ScreenHome, Params: map[string]string{}, Query: url.Values{}}
}

// Product builds the detail path of a product.
func Product(id string) string {
	return productPrefix + url.PathEscape(id)
}

// Products builds the listing path, optionally deep-linked to a category.
func Products(category string) string {
	if category == "" {
		return ProductsPath
	}
	return ProductsPath + "?" + url.Values{"category": {category}}.Encode()
}

// Login builds the login path, remembering where to return after login.
func Login(from string) string {
	if from == "" {
		return LoginPath
	}
	return LoginPath + "?" + url.Values{"from": {from}}.Encode()
}
