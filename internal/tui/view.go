package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/shopmate/internal/domain/catalog"
	"github.com/alexisbeaulieu97/shopmate/internal/domain/checkout"
	"github.com/alexisbeaulieu97/shopmate/internal/nav"
	"github.com/alexisbeaulieu97/shopmate/internal/tui/components"
)

// NoProductsMessage is the empty state of the catalog.
const NoProductsMessage = "No products found"

// View renders the current model state
func (m Model) View() string {
	var content strings.Builder

	content.WriteString(m.renderHeader())
	content.WriteString("\n")

	if m.errMsg != "" {
		content.WriteString(m.alert(m.errMsg, components.AlertError))
		content.WriteString("\n")
	}
	if m.notice != "" {
		content.WriteString(m.styles.Notice.Render(m.notice))
		content.WriteString("\n\n")
	}

	switch m.route.Screen {
	case nav.ScreenProducts:
		content.WriteString(m.renderProducts())
	case nav.ScreenProduct:
		content.WriteString(m.renderDetail())
	case nav.ScreenCart:
		content.WriteString(m.renderCart())
	case nav.ScreenWishlist:
		content.WriteString(m.renderWishlist())
	case nav.ScreenCheckout:
		content.WriteString(m.renderCheckout())
	case nav.ScreenLogin:
		content.WriteString(m.renderLogin())
	case nav.ScreenRegister:
		content.WriteString(m.renderRegister())
	default:
		content.WriteString(m.renderHome())
	}

	content.WriteString("\n")
	content.WriteString(m.renderFooter())
	return content.String()
}

// renderHeader renders the brand, the navigation and the cart and wishlist
// counts.
func (m Model) renderHeader() string {
	p := m.styles.Palette

	item := func(label string, screen nav.Screen) string {
		if m.route.Screen == screen {
			return m.styles.NavActive.Render(label)
		}
		return m.styles.NavItem.Render(label)
	}

	cartBadge := components.NewBadge(fmt.Sprintf("%d", m.svc.Cart().Count())).WithVariant(components.BadgeAccent)
	wishBadge := components.NewBadge(fmt.Sprintf("%d", m.svc.Wishlist().Len())).WithVariant(components.BadgePrimary)

	account := item("Login", nav.ScreenLogin)
	if user, ok := m.svc.Session().Current(); ok {
		account = m.styles.Muted.Render(user.DisplayName()) + " " + m.styles.NavItem.Render("Logout")
	}

	mode := string(m.svc.Theme().Current())

	brand := m.styles.Brand.Render("ShopMate")
	if m.useUnicode {
		brand = m.styles.Brand.Render("🛍️  ShopMate")
	}

	line := strings.Join([]string{
		brand,
		item("Home", nav.ScreenHome),
		item("Products", nav.ScreenProducts),
		item("Cart", nav.ScreenCart) + " " + cartBadge.View(p),
		item("Wishlist", nav.ScreenWishlist) + " " + wishBadge.View(p),
		account,
		m.styles.Muted.Render("[" + mode + "]"),
	}, "  ")

	return m.styles.Header.Render(line)
}

func (m Model) renderFooter() string {
	var hints []string
	switch m.route.Screen {
	case nav.ScreenHome:
		hints = []string{"↑/↓ select", "enter view", "a add to cart", "v wishlist", "1-5 category"}
	case nav.ScreenProducts:
		if m.searching {
			hints = []string{"type to search", "enter/esc done"}
		} else {
			hints = []string{"↑/↓ select", "←/→ page", "/ search", "f category", "g subcategory", "s sort", "x clear", "a add", "v wishlist"}
		}
	case nav.ScreenProduct:
		hints = []string{"+/- quantity", "a add to cart", "b buy now", "v wishlist", "esc back"}
	case nav.ScreenCart:
		hints = []string{"↑/↓ select", "+/- quantity", "d remove", "o checkout"}
	case nav.ScreenWishlist:
		hints = []string{"↑/↓ select", "m move to cart", "d remove"}
	case nav.ScreenLogin:
		return m.styles.Footer.Render(strings.Join([]string{"tab next field", "enter sign in", "ctrl+r create account", "esc back"}, "  •  "))
	case nav.ScreenRegister:
		return m.styles.Footer.Render(strings.Join([]string{"tab next field", "enter register", "ctrl+l sign in", "esc back"}, "  •  "))
	case nav.ScreenCheckout:
		return m.styles.Footer.Render(strings.Join([]string{"tab next field", "ctrl+p payment method", "enter place order", "esc back"}, "  •  "))
	}

	if !m.useUnicode {
		for i, h := range hints {
			h = strings.ReplaceAll(h, "↑/↓", "up/down")
			hints[i] = strings.ReplaceAll(h, "←/→", "left/right")
		}
	}
	hints = append(hints, "h home", "p products", "c cart", "w wishlist", "t theme", "l login/logout", "q quit")
	return m.styles.Footer.Width(max(m.width, 20)).Render(strings.Join(hints, "  •  "))
}

func (m Model) renderHome() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Welcome to ShopMate"))
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("Discover amazing products at unbeatable prices."))
	b.WriteString("\n\n")

	if order, ok := m.LastOrder(); ok {
		b.WriteString(m.alert(fmt.Sprintf("Order %s placed: %d items, $%s. Delivery by %s.",
			shortOrderNumber(order), order.ItemCount(), order.Total.StringFixed(2),
			catalog.DeliveryDate(order.PlacedAt).Format("Mon, Jan 2")), components.AlertSuccess))
		b.WriteString("\n\n")
	}

	b.WriteString(m.styles.Subtitle.Render("Shop by Category"))
	b.WriteString("\n")
	for i, c := range catalog.Categories() {
		label := c.Name
		if m.useUnicode {
			label = c.Icon + " " + c.Name
		}
		b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, lipgloss.NewStyle().Foreground(lipgloss.Color(c.Color)).Render(label)))
	}
	b.WriteString("\n")

	b.WriteString(m.styles.Subtitle.Render("Featured Products"))
	b.WriteString("\n")
	b.WriteString(m.renderProductList(m.featured()))
	return b.String()
}

func (m Model) renderProducts() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Our Products"))
	b.WriteString("\n")

	var chips []string
	for _, c := range catalog.Categories() {
		if c.Name == m.filter.Category {
			chips = append(chips, m.styles.ActiveChip.Render(c.Name))
		} else {
			chips = append(chips, m.styles.Chip.Render(c.Name))
		}
	}
	b.WriteString(strings.Join(chips, " "))
	b.WriteString("\n")

	if c, ok := catalog.LookupCategory(m.filter.Category); ok && len(c.Subcategories) > 0 {
		subs := []string{m.chip("Any", m.filter.Subcategory == "")}
		for _, s := range c.Subcategories {
			subs = append(subs, m.chip(s, s == m.filter.Subcategory))
		}
		b.WriteString(strings.Join(subs, " "))
		b.WriteString("\n")
	}

	if m.searching || m.filter.Search != "" {
		b.WriteString(m.search.View())
	} else {
		b.WriteString(m.styles.Muted.Render("Press / to search"))
	}
	b.WriteString("   ")
	b.WriteString(m.styles.Muted.Render("Sort: " + m.filter.Sort.Label()))
	b.WriteString("\n\n")

	page := m.currentPage()
	if m.loadingProducts || m.productsErr != "" || page.Empty() {
		b.WriteString(m.renderProductList(page.Products))
		return b.String()
	}

	b.WriteString(m.renderProductList(page.Products))
	b.WriteString("\n")

	pager := m.pager
	pager.TotalPages = max(page.TotalPages, 1)
	pager.Page = page.Page - 1
	b.WriteString(pager.View())
	b.WriteString("  ")
	b.WriteString(m.styles.Muted.Render(fmt.Sprintf("Page %d of %d • %d products", page.Page, max(page.TotalPages, 1), page.Total)))
	return b.String()
}

func (m Model) chip(label string, active bool) string {
	if active {
		return m.styles.ActiveChip.Render(label)
	}
	return m.styles.Chip.Render(label)
}

// renderProductList renders products with the cursor, or the loading, error
// and empty states.
func (m Model) renderProductList(products []catalog.Product) string {
	switch {
	case m.loadingProducts:
		return m.spinner.View() + " Loading products..."
	case m.productsErr != "":
		return m.alert(m.productsErr, components.AlertError) + "\n" + m.styles.Muted.Render("Press r to retry")
	case len(products) == 0:
		hint := "Press x to clear filters"
		if m.route.Screen == nav.ScreenHome {
			hint = "Check back soon"
		}
		return m.styles.Empty.Render(NoProductsMessage + "\n" + hint)
	}

	rows := make([]string, 0, len(products))
	for i, p := range products {
		rows = append(rows, m.renderProductRow(p, i == m.cursor))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderProductRow(p catalog.Product, selected bool) string {
	heart := m.heart(m.svc.Wishlist().Contains(p.ID))

	line1 := fmt.Sprintf("%s %s  %s", heart, lipgloss.NewStyle().Bold(true).Render(truncate(p.Title, 48)), m.styles.Price.Render("$"+p.Price.StringFixed(2)))
	line2 := fmt.Sprintf("  %s  %s", m.styles.Category.Render(p.Category), m.stars(p.Rating))
	content := lipgloss.JoinVertical(lipgloss.Left, line1, line2)

	if selected {
		return m.styles.SelectedItem.Render(content)
	}
	return m.styles.Item.Render(content)
}

func (m Model) renderDetail() string {
	switch {
	case m.loadingDetail:
		return m.spinner.View() + " Loading..."
	case m.detailNotFound:
		return m.styles.Empty.Render("Product not found\nPress esc to go back to products")
	case m.detailErr != "":
		return m.alert(m.detailErr, components.AlertError) + "\n" + m.styles.Muted.Render("Press r to retry")
	case m.detail == nil:
		return m.spinner.View() + " Loading..."
	}

	p := *m.detail
	var b strings.Builder
	b.WriteString(m.styles.Title.Render(p.Title))
	b.WriteString("\n")
	b.WriteString(m.styles.Category.Render(p.Category))
	if p.Subcategory != "" {
		b.WriteString(m.styles.Muted.Render(" / " + p.Subcategory))
	}
	b.WriteString("\n")
	b.WriteString(components.NewRatingBar(p.Rating.Rate, p.Rating.Count, m.styles.Palette).View())
	b.WriteString("\n\n")
	b.WriteString(m.styles.Price.Render("$" + p.Price.StringFixed(2)))
	b.WriteString("\n\n")
	if p.Description != "" {
		b.WriteString(lipgloss.NewStyle().Width(min(max(m.width-4, 20), 80)).Render(p.Description))
		b.WriteString("\n\n")
	}
	b.WriteString(m.styles.Muted.Render("Free delivery by " + catalog.DeliveryDate(time.Now()).Format("Mon, Jan 2")))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Quantity: %s\n", m.styles.Subtitle.Render(fmt.Sprintf("- %d +", m.quantity))))
	if m.svc.Wishlist().Contains(p.ID) {
		b.WriteString(m.styles.Heart.Render(m.heart(true) + " In your wishlist"))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderCart() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Shopping Cart"))
	b.WriteString("\n")

	lines := m.svc.Cart().Lines()
	if len(lines) == 0 {
		b.WriteString(m.styles.Empty.Render("Your cart is empty\nPress p to continue shopping"))
		return b.String()
	}

	for i, line := range lines {
		content := lipgloss.JoinVertical(lipgloss.Left,
			fmt.Sprintf("%s  %s", lipgloss.NewStyle().Bold(true).Render(line.Title), m.styles.Price.Render("$"+line.Price.StringFixed(2))),
			fmt.Sprintf("  Qty: %d  Subtotal: $%s", line.Quantity, line.Subtotal().StringFixed(2)),
		)
		if i == m.cursor {
			b.WriteString(m.styles.SelectedItem.Render(content))
		} else {
			b.WriteString(m.styles.Item.Render(content))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Subtitle.Render(fmt.Sprintf("Items: %d", m.svc.Cart().Count())))
	b.WriteString("   ")
	b.WriteString(m.styles.Price.Render("Total: $" + m.svc.Cart().Total().StringFixed(2)))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Button.Render("o  Proceed to Checkout"))
	return b.String()
}

func (m Model) renderWishlist() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("My Wishlist"))
	b.WriteString("\n")

	entries := m.svc.Wishlist().Entries()
	if len(entries) == 0 {
		b.WriteString(m.styles.Empty.Render("Your wishlist is empty\nPress p to explore products"))
		return b.String()
	}

	for i, e := range entries {
		content := lipgloss.JoinVertical(lipgloss.Left,
			fmt.Sprintf("%s %s  %s", m.heart(true), lipgloss.NewStyle().Bold(true).Render(e.Title), m.styles.Price.Render("$"+e.Price.StringFixed(2))),
			"  "+m.styles.Muted.Render(truncate(e.Description, 60)),
		)
		if i == m.cursor {
			b.WriteString(m.styles.SelectedItem.Render(content))
		} else {
			b.WriteString(m.styles.Item.Render(content))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderCheckout() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Checkout"))
	b.WriteString("\n")

	if m.svc.Cart().IsEmpty() {
		b.WriteString(m.styles.Empty.Render(checkout.EmptyCartMessage + "\nPress esc to continue shopping"))
		return b.String()
	}

	b.WriteString(m.styles.Subtitle.Render("Order Summary"))
	b.WriteString("\n")
	b.WriteString(components.NewOrderSummary(m.svc.Cart().Lines(), m.svc.Cart().Total()).View(m.styles.Palette))
	b.WriteString("\n\n")

	b.WriteString(m.styles.Subtitle.Render("Shipping & Payment Details"))
	b.WriteString("\n")

	var methods []string
	for _, method := range checkout.PaymentMethods() {
		methods = append(methods, m.chip(method.Label(), method == m.payment))
	}
	b.WriteString("Payment Method: " + strings.Join(methods, " "))
	b.WriteString("\n\n")

	b.WriteString(m.checkoutForm.view(m.styles))
	b.WriteString(m.formFeedback())
	b.WriteString("\n")
	b.WriteString(m.styles.Button.Render("enter  Place Order"))
	return b.String()
}

func (m Model) renderLogin() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Welcome Back"))
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("Please enter your details to sign in"))
	b.WriteString("\n\n")
	b.WriteString(m.loginForm.view(m.styles))
	b.WriteString(m.formFeedback())
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("Don't have an account? Press ctrl+r to sign up"))
	return b.String()
}

func (m Model) renderRegister() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Create Account"))
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("Please fill in your details to sign up"))
	b.WriteString("\n\n")
	b.WriteString(m.registerForm.view(m.styles))
	b.WriteString(m.formFeedback())
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("Already have an account? Press ctrl+l to sign in"))
	return b.String()
}

func (m Model) formFeedback() string {
	switch {
	case m.submitting:
		return m.spinner.View() + " Submitting...\n"
	case m.formErr != "":
		return m.alert(m.formErr, components.AlertError) + "\n"
	default:
		return ""
	}
}

func (m Model) alert(message string, variant components.AlertVariant) string {
	return components.NewAlert(message).WithVariant(variant).WithASCII(!m.useUnicode).View(m.styles.Palette)
}

func (m Model) heart(saved bool) string {
	switch {
	case saved && m.useUnicode:
		return m.styles.Heart.Render("♥")
	case saved:
		return m.styles.Heart.Render("<3")
	case m.useUnicode:
		return m.styles.Muted.Render("♡")
	default:
		return "  "
	}
}

func (m Model) stars(r catalog.Rating) string {
	if !m.useUnicode {
		return m.styles.Stars.Render(fmt.Sprintf("%.1f/5", r.Rate))
	}
	return m.styles.Stars.Render(r.Stars()) + m.styles.Muted.Render(fmt.Sprintf(" %.1f", r.Rate))
}

func shortOrderNumber(o checkout.Order) string {
	if len(o.Number) > 8 {
		return "#" + strings.ToUpper(o.Number[:8])
	}
	return "#" + o.Number
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-3]) + "..."
}
