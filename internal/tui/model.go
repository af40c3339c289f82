// Package tui is the interactive terminal storefront.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/shopmate/internal/application/storefront"
	"github.com/alexisbeaulieu97/shopmate/internal/domain/catalog"
	"github.com/alexisbeaulieu97/shopmate/internal/domain/checkout"
	"github.com/alexisbeaulieu97/shopmate/internal/nav"
	"github.com/alexisbeaulieu97/shopmate/internal/ports"
)

// Options configure the model.
type Options struct {
	// Context bounds every request the UI makes. Defaults to Background.
	Context context.Context
	// StartPath is the first route shown. Defaults to home.
	StartPath  string
	UseUnicode bool
	Logger     ports.Logger
}

// Model is the storefront program state.
type Model struct {
	svc    *storefront.Service
	ctx    context.Context
	logger ports.Logger

	// Routing
	route   nav.Route
	history []string

	// Catalog
	products        []catalog.Product
	productsLoaded  bool
	loadingProducts bool
	productsErr     string
	filter          catalog.FilterState
	search          textinput.Model
	searching       bool
	cursor          int

	// Product detail
	detailID       string
	detail         *catalog.Product
	loadingDetail  bool
	detailErr      string
	detailNotFound bool
	quantity       int

	// Forms
	loginForm    *form
	registerForm *form
	checkoutForm *form
	payment      checkout.PaymentMethod
	formErr      string
	submitting   bool
	lastOrder    *checkout.Order

	// Feedback
	notice string
	errMsg string

	// Components
	spinner spinner.Model
	pager   paginator.Model
	styles  Styles

	// Dimensions
	width  int
	height int

	useUnicode bool
}

// NewModel creates the storefront model.
func NewModel(svc *storefront.Service, opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	if !opts.UseUnicode {
		s.Spinner = spinner.Line
	}

	search := textinput.New()
	search.Placeholder = "Search products..."
	search.Prompt = "/ "
	search.CharLimit = 100

	pager := paginator.New()
	pager.Type = paginator.Dots
	pager.PerPage = catalog.PageSize
	if !opts.UseUnicode {
		pager.ActiveDot = "*"
		pager.InactiveDot = "."
	}

	styles := NewStyles(svc.Theme().Palette())
	s.Style = styles.Brand

	m := Model{
		svc:          svc,
		ctx:          ctx,
		logger:       opts.Logger,
		route:        nav.Resolve(nav.HomePath),
		filter:       catalog.DefaultFilterState(),
		search:       search,
		quantity:     1,
		loginForm:    newLoginForm(),
		registerForm: newRegisterForm(),
		checkoutForm: newCheckoutForm(),
		payment:      checkout.PaymentCard,
		spinner:      s,
		pager:        pager,
		styles:       styles,
		width:        80,
		height:       24,
		useUnicode:   opts.UseUnicode,
	}
	m.checkoutForm.showPayment(m.payment)

	start := opts.StartPath
	if start == "" {
		start = nav.HomePath
	}
	m.route = nav.Resolve(start)
	return m
}

// Init loads whatever the start route needs.
func (m Model) Init() tea.Cmd {
	return replaceRouteCmd(m.route.Path + encodeQuery(m.route))
}

// Screen returns the active screen.
func (m Model) Screen() nav.Screen {
	return m.route.Screen
}

// Route returns the active route.
func (m Model) Route() nav.Route {
	return m.route
}

// Filter returns the catalog filter state.
func (m Model) Filter() catalog.FilterState {
	return m.filter
}

// Notice returns the last confirmation message.
func (m Model) Notice() string {
	return m.notice
}

// FormError returns the inline error of the active form.
func (m Model) FormError() string {
	return m.formErr
}

// LastOrder returns the most recently placed order.
func (m Model) LastOrder() (checkout.Order, bool) {
	if m.lastOrder == nil {
		return checkout.Order{}, false
	}
	return *m.lastOrder, true
}

// currentPage applies the filter state to the fetched catalog.
func (m Model) currentPage() catalog.Page {
	return catalog.Apply(m.products, m.filter)
}

// featured returns the home screen products.
func (m Model) featured() []catalog.Product {
	return catalog.Featured(m.products, catalog.FeaturedCount)
}

// visibleProducts lists the products the cursor moves over on the current
// screen.
func (m Model) visibleProducts() []catalog.Product {
	switch m.route.Screen {
	case nav.ScreenHome:
		return m.featured()
	case nav.ScreenProducts:
		return m.currentPage().Products
	default:
		return nil
	}
}

func (m Model) selectedProduct() (catalog.Product, bool) {
	products := m.visibleProducts()
	if m.cursor < 0 || m.cursor >= len(products) {
		return catalog.Product{}, false
	}
	return products[m.cursor], true
}

func (m Model) listLen() int {
	switch m.route.Screen {
	case nav.ScreenCart:
		return m.svc.Cart().Len()
	case nav.ScreenWishlist:
		return m.svc.Wishlist().Len()
	default:
		return len(m.visibleProducts())
	}
}

func (m *Model) moveCursor(delta int) {
	n := m.listLen()
	if n == 0 {
		m.cursor = 0
		return
	}
	m.cursor = (m.cursor + delta + n) % n
}

func (m *Model) clampCursor() {
	n := m.listLen()
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func encodeQuery(r nav.Route) string {
	if len(r.Query) == 0 {
		return ""
	}
	return "?" + r.Query.Encode()
}
