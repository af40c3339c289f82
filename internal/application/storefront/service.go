// Package storefront coordinates the catalog API, the cart and wishlist, the
// theme and the login session. Each operation reports where the UI should go
// next.
package storefront

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexisbeaulieu97/shopmate/internal/domain/auth"
	"github.com/alexisbeaulieu97/shopmate/internal/domain/cart"
	"github.com/alexisbeaulieu97/shopmate/internal/domain/catalog"
	"github.com/alexisbeaulieu97/shopmate/internal/domain/checkout"
	"github.com/alexisbeaulieu97/shopmate/internal/domain/session"
	"github.com/alexisbeaulieu97/shopmate/internal/domain/theme"
	"github.com/alexisbeaulieu97/shopmate/internal/domain/wishlist"
	"github.com/alexisbeaulieu97/shopmate/internal/nav"
	"github.com/alexisbeaulieu97/shopmate/internal/ports"
)

// Deps are the collaborators of a Service. Products, Auth, Theme and Session
// are required; the rest default to fresh in-memory state.
type Deps struct {
	Products ports.ProductAPI
	Auth     ports.AuthAPI
	Cart     *cart.Cart
	Wishlist *wishlist.Wishlist
	Theme    *theme.Store
	Session  *session.Session
	Events   ports.EventPublisher
	Logger   ports.Logger
	Now      func() time.Time
}

// Outcome tells the caller where to navigate. An empty Navigate means stay.
type Outcome struct {
	Navigate string
	Notice   string
}

// Service is the storefront application layer.
type Service struct {
	products ports.ProductAPI
	auth     ports.AuthAPI
	cart     *cart.Cart
	wishlist *wishlist.Wishlist
	theme    *theme.Store
	session  *session.Session
	events   ports.EventPublisher
	logger   ports.Logger
	now      func() time.Time
}

// New wires a Service.
func New(deps Deps) (*Service, error) {
	switch {
	case deps.Products == nil:
		return nil, errors.New("storefront: product API is required")
	case deps.Auth == nil:
		return nil, errors.New("storefront: auth API is required")
	case deps.Theme == nil:
		return nil, errors.New("storefront: theme store is required")
	case deps.Session == nil:
		return nil, errors.New("storefront: session is required")
	}

	s := &Service{
		products: deps.Products,
		auth:     deps.Auth,
		cart:     deps.Cart,
		wishlist: deps.Wishlist,
		theme:    deps.Theme,
		session:  deps.Session,
		events:   deps.Events,
		logger:   deps.Logger,
		now:      deps.Now,
	}
	if s.cart == nil {
		s.cart = cart.New()
	}
	if s.wishlist == nil {
		s.wishlist = wishlist.New()
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s, nil
}

// Cart exposes the cart for rendering.
func (s *Service) Cart() *cart.Cart { return s.cart }

// Wishlist exposes the wishlist for rendering.
func (s *Service) Wishlist() *wishlist.Wishlist { return s.wishlist }

// Theme exposes the theme store.
func (s *Service) Theme() *theme.Store { return s.theme }

// Session exposes the login session.
func (s *Service) Session() *session.Session { return s.session }

// Products fetches the catalog.
func (s *Service) Products(ctx context.Context) ([]catalog.Product, error) {
	products, err := s.products.ListProducts(ctx)
	if err != nil {
		s.logError(ctx, "failed to fetch products", "error", err)
		return nil, err
	}
	s.logDebug(ctx, "fetched products", "count", len(products))
	return products, nil
}

// Browse fetches the catalog and applies the filter state to it.
func (s *Service) Browse(ctx context.Context, state catalog.FilterState) (catalog.Page, error) {
	products, err := s.Products(ctx)
	if err != nil {
		return catalog.Page{}, err
	}
	return catalog.Apply(products, state), nil
}

// Featured fetches the catalog and returns the home screen selection.
func (s *Service) Featured(ctx context.Context) ([]catalog.Product, error) {
	products, err := s.Products(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.Featured(products, catalog.FeaturedCount), nil
}

// Product fetches one product.
func (s *Service) Product(ctx context.Context, id string) (*catalog.Product, error) {
	product, err := s.products.GetProduct(ctx, id)
	if err != nil {
		s.logError(ctx, "failed to fetch product", "product_id", id, "error", err)
		return nil, err
	}
	return product, nil
}

// AddToCart adds quantity units of a product; quantity is clamped to 1.
func (s *Service) AddToCart(ctx context.Context, product catalog.Product, quantity int) Outcome {
	s.cart.AddN(cart.ItemFromProduct(product), quantity)
	s.publishCart(ctx, "add", product.ID)
	return Outcome{Notice: "Added to cart!"}
}

// BuyNow adds the product and goes to checkout. Logged-out users are sent to
// login and the cart is left untouched.
func (s *Service) BuyNow(ctx context.Context, product catalog.Product, quantity int) Outcome {
	if !s.session.LoggedIn() {
		return Outcome{Navigate: nav.Login(nav.Product(product.ID)), Notice: "Please log in to continue your purchase."}
	}
	s.cart.AddN(cart.ItemFromProduct(product), quantity)
	s.publishCart(ctx, "buy_now", product.ID)
	return Outcome{Navigate: nav.CheckoutPath}
}

// ProceedToCheckout is the cart screen's checkout action.
func (s *Service) ProceedToCheckout() Outcome {
	if !s.session.LoggedIn() {
		return Outcome{Navigate: nav.Login(nav.CheckoutPath), Notice: "Please log in to continue your purchase."}
	}
	return Outcome{Navigate: nav.CheckoutPath}
}

// UpdateQuantity sets a cart line's quantity, clamped to 1.
func (s *Service) UpdateQuantity(ctx context.Context, productID string, quantity int) {
	s.cart.UpdateQuantity(productID, quantity)
	s.publishCart(ctx, "update", productID)
}

// RemoveFromCart drops a cart line.
func (s *Service) RemoveFromCart(ctx context.Context, productID string) {
	s.cart.Remove(productID)
	s.publishCart(ctx, "remove", productID)
}

// ToggleWishlist saves or unsaves a product and reports the new state.
func (s *Service) ToggleWishlist(ctx context.Context, product catalog.Product) bool {
	saved := s.wishlist.Toggle(wishlist.EntryFromProduct(product))
	s.publishWishlist(ctx, product.ID, saved)
	return saved
}

// SaveToWishlist adds a product; saving twice is a no-op.
func (s *Service) SaveToWishlist(ctx context.Context, product catalog.Product) Outcome {
	if s.wishlist.Add(wishlist.EntryFromProduct(product)) {
		s.publishWishlist(ctx, product.ID, true)
	}
	return Outcome{Notice: "Added to wishlist!"}
}

// RemoveFromWishlist drops a saved product.
func (s *Service) RemoveFromWishlist(ctx context.Context, productID string) {
	s.wishlist.Remove(productID)
	s.publishWishlist(ctx, productID, false)
}

// MoveToCart adds a saved product to the cart, removes it from the wishlist
// and goes to the cart. Both steps always happen.
func (s *Service) MoveToCart(ctx context.Context, productID string) Outcome {
	entry, ok := s.wishlist.Get(productID)
	if !ok {
		return Outcome{}
	}
	s.cart.Add(entry.CartItem())
	s.wishlist.Remove(productID)
	s.publishCart(ctx, "move", productID)
	s.publishWishlist(ctx, productID, false)
	return Outcome{Navigate: nav.CartPath}
}

// PlaceOrder validates the checkout form and turns the cart into an order.
// No request is made; the cart is cleared and the UI goes home.
func (s *Service) PlaceOrder(ctx context.Context, form checkout.Form) (checkout.Order, Outcome, error) {
	if !s.session.LoggedIn() {
		return checkout.Order{}, Outcome{Navigate: nav.Login(nav.CheckoutPath)}, nil
	}

	order, err := checkout.Place(s.cart, form, s.now())
	if err != nil {
		return checkout.Order{}, Outcome{}, err
	}

	s.logInfo(ctx, "order placed", "order", order.Number, "items", order.ItemCount(), "total", order.Total.StringFixed(2))
	s.publish(ctx, ports.EventOrderPlaced, map[string]interface{}{
		"order":   order.Number,
		"items":   order.ItemCount(),
		"total":   order.Total.StringFixed(2),
		"payment": string(order.PaymentMethod),
	})
	s.publishCart(ctx, "clear", "")
	return order, Outcome{Navigate: nav.HomePath, Notice: "Order placed successfully!"}, nil
}

// Login validates the credentials and submits them. On success the session
// is persisted and the UI goes home. On failure nothing is stored and the UI
// stays put; the error carries the message to show.
func (s *Service) Login(ctx context.Context, creds auth.Credentials) (Outcome, error) {
	if err := creds.Validate(); err != nil {
		return Outcome{}, err
	}
	creds = creds.Normalize()

	resp, err := s.auth.Login(ctx, ports.LoginRequest{Email: creds.Email, Password: creds.Password})
	if err != nil {
		s.logWarn(ctx, "login failed", "email", creds.Email, "error", err)
		return Outcome{}, err
	}
	if err := s.session.Establish(resp.User, resp.Token); err != nil {
		return Outcome{}, fmt.Errorf("save session: %w", err)
	}

	s.logInfo(ctx, "logged in", "user_id", resp.User.ID)
	s.publish(ctx, ports.EventSessionStarted, map[string]interface{}{"user_id": resp.User.ID})
	return Outcome{Navigate: nav.HomePath, Notice: "Login successful! Welcome back."}, nil
}

// Register validates the form and creates the account. Success sends the
// user to login.
func (s *Service) Register(ctx context.Context, form auth.Registration) (Outcome, error) {
	if err := form.Validate(); err != nil {
		return Outcome{}, err
	}
	form = form.Normalize()

	err := s.auth.Register(ctx, ports.RegisterRequest{Name: form.Name, Email: form.Email, Password: form.Password})
	if err != nil {
		s.logWarn(ctx, "registration failed", "email", form.Email, "error", err)
		return Outcome{}, err
	}

	s.logInfo(ctx, "registered", "email", form.Email)
	return Outcome{Navigate: nav.LoginPath, Notice: "Registration successful! Please login to continue."}, nil
}

// Logout clears the session and goes to login.
func (s *Service) Logout(ctx context.Context) (Outcome, error) {
	if err := s.session.Logout(); err != nil {
		return Outcome{}, err
	}
	s.publish(ctx, ports.EventSessionEnded, nil)
	return Outcome{Navigate: nav.LoginPath}, nil
}

// ToggleTheme flips and persists the theme.
func (s *Service) ToggleTheme(ctx context.Context) (theme.Name, error) {
	name, err := s.theme.Toggle()
	if err != nil {
		s.logError(ctx, "failed to persist theme", "error", err)
		return name, err
	}
	s.publish(ctx, ports.EventThemeChanged, map[string]interface{}{"theme": string(name)})
	return name, nil
}

func (s *Service) publishCart(ctx context.Context, action, productID string) {
	s.publish(ctx, ports.EventCartUpdated, map[string]interface{}{
		"action":     action,
		"product_id": productID,
		"count":      s.cart.Count(),
		"total":      s.cart.Total().StringFixed(2),
	})
}

func (s *Service) publishWishlist(ctx context.Context, productID string, saved bool) {
	s.publish(ctx, ports.EventWishlistUpdated, map[string]interface{}{
		"product_id": productID,
		"saved":      saved,
		"count":      s.wishlist.Len(),
	})
}

func (s *Service) publish(ctx context.Context, eventType string, data map[string]interface{}) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, ports.NewEvent(eventType, data)); err != nil {
		s.logWarn(ctx, "failed to publish event", "event_type", eventType, "error", err)
	}
}

func (s *Service) logDebug(ctx context.Context, msg string, fields ...interface{}) {
	if s.logger != nil {
		s.logger.Debug(ctx, msg, fields...)
	}
}

func (s *Service) logInfo(ctx context.Context, msg string, fields ...interface{}) {
	if s.logger != nil {
		s.logger.Info(ctx, msg, fields...)
	}
}

func (s *Service) logWarn(ctx context.Context, msg string, fields ...interface{}) {
	if s.logger != nil {
		s.logger.Warn(ctx, msg, fields...)
	}
}

func (s *Service) logError(ctx context.Context, msg string, fields ...interface{}) {
	if s.logger != nil {
		s.logger.Error(ctx, msg, fields...)
	}
}
