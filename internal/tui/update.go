package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/shopmate/internal/domain/auth"
	"github.com/alexisbeaulieu97/shopmate/internal/domain/catalog"
	"github.com/alexisbeaulieu97/shopmate/internal/domain/checkout"
	"github.com/alexisbeaulieu97/shopmate/internal/nav"
	shoperrors "github.com/alexisbeaulieu97/shopmate/pkg/errors"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case navigateMsg:
		return m.navigate(msg.path, msg.replace)

	case productsLoadedMsg:
		m.loadingProducts = false
		m.productsLoaded = true
		m.productsErr = ""
		m.products = msg.products
		m.clampCursor()
		return m, nil

	case productsErrorMsg:
		m.loadingProducts = false
		m.productsErr = msg.err.Error()
		return m, nil

	case productLoadedMsg:
		if msg.id != m.detailID {
			return m, nil
		}
		m.loadingDetail = false
		m.detail = msg.product
		m.detailErr = ""
		m.detailNotFound = false
		return m, nil

	case productErrorMsg:
		if msg.id != m.detailID {
			return m, nil
		}
		m.loadingDetail = false
		m.detail = nil
		m.detailNotFound = msg.notFound
		if !msg.notFound {
			m.detailErr = msg.err.Error()
		}
		return m, nil

	case authDoneMsg:
		if !m.submitting || m.route.Screen != msg.form {
			return m, nil
		}
		m.submitting = false
		if msg.err != nil {
			fallback := auth.LoginFailedMessage
			if msg.form == nav.ScreenRegister {
				fallback = auth.RegisterFailedMessage
			}
			m.formErr = auth.FailureMessage(msg.err, fallback)
			return m, nil
		}
		m.formErr = ""
		next, cmd := m.navigate(msg.outcome.Navigate, false)
		nm := next.(Model)
		nm.notice = msg.outcome.Notice
		return nm, cmd
	}

	return m, nil
}

func (m Model) busy() bool {
	return m.loadingProducts || m.loadingDetail || m.submitting
}

// navigate switches to path and starts whatever loading the new screen needs.
func (m Model) navigate(path string, replace bool) (tea.Model, tea.Cmd) {
	if path == "" {
		return m, nil
	}
	route := nav.Resolve(path)

	if route.Screen == nav.ScreenCheckout && !m.svc.Session().LoggedIn() {
		route = nav.Resolve(nav.Login(nav.CheckoutPath))
	}

	if !replace && m.route.Path != "" {
		m.history = append(m.history, m.route.Path+encodeQuery(m.route))
	}
	m.route = route
	m.cursor = 0
	m.formErr = ""
	m.errMsg = ""
	m.searching = false
	m.search.Blur()

	var cmds []tea.Cmd
	switch route.Screen {
	case nav.ScreenHome, nav.ScreenProducts:
		if route.Screen == nav.ScreenProducts {
			if category := route.Query.Get("category"); category != "" {
				if c, ok := catalog.LookupCategory(category); ok {
					m.filter = m.filter.WithCategory(c.Name)
				}
			}
		}
		if !m.productsLoaded && !m.loadingProducts {
			cmds = append(cmds, m.loadProducts())
		}
	case nav.ScreenProduct:
		m.detailID = route.Param("id")
		m.detail = nil
		m.detailErr = ""
		m.detailNotFound = false
		m.quantity = 1
		m.loadingDetail = true
		cmds = append(cmds, fetchProductCmd(m.ctx, m.svc, m.detailID), m.spinner.Tick)
	case nav.ScreenLogin:
		m.loginForm.reset()
	case nav.ScreenRegister:
		m.registerForm.reset()
	case nav.ScreenCheckout:
		m.checkoutForm.showPayment(m.payment)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) loadProducts() tea.Cmd {
	m.loadingProducts = true
	m.productsErr = ""
	return tea.Batch(fetchProductsCmd(m.ctx, m.svc), m.spinner.Tick)
}

func (m Model) back() (tea.Model, tea.Cmd) {
	if len(m.history) == 0 {
		return m.navigate(nav.HomePath, true)
	}
	prev := m.history[len(m.history)-1]
	m.history = m.history[:len(m.history)-1]
	return m.navigate(prev, true)
}

// handleKeyPress routes key presses based on the current screen
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.route.Screen {
	case nav.ScreenLogin, nav.ScreenRegister, nav.ScreenCheckout:
		return m.handleFormKey(msg)
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}

	m.notice = ""

	switch key {
	case "q":
		return m, tea.Quit
	case "esc":
		if m.route.Screen == nav.ScreenProduct {
			return m.navigate(nav.ProductsPath, false)
		}
		return m.back()
	case "h":
		return m.navigate(nav.HomePath, false)
	case "p":
		return m.navigate(nav.ProductsPath, false)
	case "c":
		return m.navigate(nav.CartPath, false)
	case "w":
		return m.navigate(nav.WishlistPath, false)
	case "t":
		return m.toggleTheme()
	case "l":
		if m.svc.Session().LoggedIn() {
			outcome, err := m.svc.Logout(m.ctx)
			if err != nil {
				m.errMsg = err.Error()
				return m, nil
			}
			return m.navigate(outcome.Navigate, false)
		}
		return m.navigate(nav.LoginPath, false)
	case "up", "k":
		m.moveCursor(-1)
		return m, nil
	case "down", "j":
		m.moveCursor(1)
		return m, nil
	}

	switch m.route.Screen {
	case nav.ScreenHome:
		return m.handleHomeKey(key)
	case nav.ScreenProducts:
		return m.handleProductsKey(key)
	case nav.ScreenProduct:
		return m.handleDetailKey(key)
	case nav.ScreenCart:
		return m.handleCartKey(key)
	case nav.ScreenWishlist:
		return m.handleWishlistKey(key)
	}
	return m, nil
}

func (m Model) toggleTheme() (tea.Model, tea.Cmd) {
	name, err := m.svc.ToggleTheme(m.ctx)
	if err != nil {
		m.errMsg = fmt.Sprintf("Could not save theme: %v", err)
		return m, nil
	}
	m.styles = NewStyles(m.svc.Theme().Palette())
	m.spinner.Style = m.styles.Brand
	m.notice = fmt.Sprintf("Switched to %s mode", name)
	return m, nil
}

func (m Model) handleProductActions(key string) (tea.Model, tea.Cmd, bool) {
	product, ok := m.selectedProduct()
	switch key {
	case "enter":
		if ok {
			next, cmd := m.navigate(nav.Product(product.ID), false)
			return next, cmd, true
		}
	case "a":
		if ok {
			m.notice = m.svc.AddToCart(m.ctx, product, 1).Notice
			return m, nil, true
		}
	case "v":
		if ok {
			if m.svc.ToggleWishlist(m.ctx, product) {
				m.notice = "Added to wishlist!"
			} else {
				m.notice = "Removed from wishlist"
			}
			return m, nil, true
		}
	case "r":
		if m.productsErr != "" && !m.loadingProducts {
			cmd := m.loadProducts()
			return m, cmd, true
		}
	}
	return m, nil, false
}

func (m Model) handleHomeKey(key string) (tea.Model, tea.Cmd) {
	if next, cmd, handled := m.handleProductActions(key); handled {
		return next, cmd
	}

	categories := catalog.Categories()
	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		index := int(key[0] - '1')
		if index < len(categories) {
			return m.navigate(nav.Products(categories[index].Name), false)
		}
	}
	return m, nil
}

func (m Model) handleProductsKey(key string) (tea.Model, tea.Cmd) {
	if next, cmd, handled := m.handleProductActions(key); handled {
		return next, cmd
	}

	page := m.currentPage()
	switch key {
	case "/":
		m.searching = true
		cmd := m.search.Focus()
		return m, cmd
	case "left", "[":
		if page.HasPrev() {
			m.filter = m.filter.WithPage(m.filter.Page - 1)
			m.cursor = 0
		}
	case "right", "]":
		if page.HasNext() {
			m.filter = m.filter.WithPage(m.filter.Page + 1)
			m.cursor = 0
		}
	case "s":
		m.filter = m.filter.WithSort(m.filter.Sort.Next())
		m.cursor = 0
	case "f":
		m.filter = m.filter.WithCategory(nextCategory(m.filter.Category))
		m.cursor = 0
	case "g":
		if sub, ok := nextSubcategory(m.filter.Category, m.filter.Subcategory); ok {
			m.filter = m.filter.WithSubcategory(sub)
			m.cursor = 0
		}
	case "x":
		m.filter = m.filter.Cleared()
		m.search.Reset()
		m.cursor = 0
	}
	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc", "tab":
		m.searching = false
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != m.filter.Search {
		m.filter = m.filter.WithSearch(m.search.Value())
		m.cursor = 0
	}
	return m, cmd
}

func (m Model) handleDetailKey(key string) (tea.Model, tea.Cmd) {
	if m.detail == nil {
		if key == "r" && !m.loadingDetail && m.detailErr != "" {
			m.loadingDetail = true
			m.detailErr = ""
			return m, tea.Batch(fetchProductCmd(m.ctx, m.svc, m.detailID), m.spinner.Tick)
		}
		return m, nil
	}

	product := *m.detail
	switch key {
	case "+", "=":
		m.quantity++
	case "-", "_":
		if m.quantity > 1 {
			m.quantity--
		}
	case "a":
		m.notice = m.svc.AddToCart(m.ctx, product, m.quantity).Notice
	case "v":
		m.notice = m.svc.SaveToWishlist(m.ctx, product).Notice
	case "b":
		outcome := m.svc.BuyNow(m.ctx, product, m.quantity)
		next, cmd := m.navigate(outcome.Navigate, false)
		nm := next.(Model)
		nm.notice = outcome.Notice
		return nm, cmd
	}
	return m, nil
}

func (m Model) handleCartKey(key string) (tea.Model, tea.Cmd) {
	lines := m.svc.Cart().Lines()
	if key == "o" {
		if len(lines) == 0 {
			return m, nil
		}
		outcome := m.svc.ProceedToCheckout()
		next, cmd := m.navigate(outcome.Navigate, false)
		nm := next.(Model)
		nm.notice = outcome.Notice
		return nm, cmd
	}
	if m.cursor < 0 || m.cursor >= len(lines) {
		return m, nil
	}

	line := lines[m.cursor]
	switch key {
	case "+", "=":
		m.svc.UpdateQuantity(m.ctx, line.ProductID, line.Quantity+1)
	case "-", "_":
		m.svc.UpdateQuantity(m.ctx, line.ProductID, line.Quantity-1)
	case "d", "delete", "backspace":
		m.svc.RemoveFromCart(m.ctx, line.ProductID)
		m.clampCursor()
	case "enter":
		return m.navigate(nav.Product(line.ProductID), false)
	}
	return m, nil
}

func (m Model) handleWishlistKey(key string) (tea.Model, tea.Cmd) {
	entries := m.svc.Wishlist().Entries()
	if m.cursor < 0 || m.cursor >= len(entries) {
		return m, nil
	}

	entry := entries[m.cursor]
	switch key {
	case "m":
		outcome := m.svc.MoveToCart(m.ctx, entry.ProductID)
		return m.navigate(outcome.Navigate, false)
	case "d", "delete", "backspace":
		m.svc.RemoveFromWishlist(m.ctx, entry.ProductID)
		m.clampCursor()
	case "enter":
		return m.navigate(nav.Product(entry.ProductID), false)
	}
	return m, nil
}

func (m Model) activeForm() *form {
	switch m.route.Screen {
	case nav.ScreenLogin:
		return m.loginForm
	case nav.ScreenRegister:
		return m.registerForm
	default:
		return m.checkoutForm
	}
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.activeForm()
	if m.submitting {
		return m, nil
	}

	switch msg.String() {
	case "esc":
		return m.back()
	case "tab", "down":
		f.next()
		return m, nil
	case "shift+tab", "up":
		f.prev()
		return m, nil
	case "enter":
		return m.submit()
	case "ctrl+r":
		if m.route.Screen == nav.ScreenLogin {
			return m.navigate(nav.RegisterPath, false)
		}
	case "ctrl+l":
		if m.route.Screen == nav.ScreenRegister {
			return m.navigate(nav.LoginPath, false)
		}
	case "ctrl+p":
		if m.route.Screen == nav.ScreenCheckout {
			m.payment = m.payment.Next()
			f.showPayment(m.payment)
			return m, nil
		}
	}

	return m, f.update(msg)
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.submitting {
		return m, nil
	}

	switch m.route.Screen {
	case nav.ScreenLogin:
		creds := m.loginForm.credentials()
		if err := creds.Validate(); err != nil {
			m.formErr = errorMessage(err)
			return m, nil
		}
		m.formErr = ""
		m.submitting = true
		return m, tea.Batch(loginCmd(m.ctx, m.svc, creds), m.spinner.Tick)

	case nav.ScreenRegister:
		form := m.registerForm.registration()
		if err := form.Validate(); err != nil {
			m.formErr = errorMessage(err)
			return m, nil
		}
		m.formErr = ""
		m.submitting = true
		return m, tea.Batch(registerCmd(m.ctx, m.svc, form), m.spinner.Tick)

	case nav.ScreenCheckout:
		order, outcome, err := m.svc.PlaceOrder(m.ctx, m.checkoutForm.checkoutForm(m.payment))
		if err != nil {
			m.formErr = errorMessage(err)
			return m, nil
		}
		if order.Number != "" {
			m.lastOrder = &order
			m.checkoutForm.reset()
			m.payment = checkout.PaymentCard
			m.checkoutForm.showPayment(m.payment)
		}
		next, cmd := m.navigate(outcome.Navigate, false)
		nm := next.(Model)
		nm.notice = outcome.Notice
		return nm, cmd
	}
	return m, nil
}

func errorMessage(err error) string {
	if ve, ok := shoperrors.AsValidationError(err); ok {
		return ve.Message
	}
	return err.Error()
}

func nextCategory(current string) string {
	categories := catalog.Categories()
	for i, c := range categories {
		if c.Name == current {
			return categories[(i+1)%len(categories)].Name
		}
	}
	return catalog.CategoryAll
}

// nextSubcategory cycles through the current category's subcategories and
// back to none. It reports false when the category has none.
func nextSubcategory(category, current string) (string, bool) {
	c, ok := catalog.LookupCategory(category)
	if !ok || len(c.Subcategories) == 0 {
		return "", false
	}
	options := append([]string{""}, c.Subcategories...)
	for i, option := range options {
		if option == current {
			return options[(i+1)%len(options)], true
		}
	}
	return "", true
}
