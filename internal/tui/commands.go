package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/shopmate/internal/application/storefront"
	"github.com/alexisbeaulieu97/shopmate/internal/domain/auth"
	"github.com/alexisbeaulieu97/shopmate/internal/nav"
	shoperrors "github.com/alexisbeaulieu97/shopmate/pkg/errors"
)

// fetchProductsCmd loads the catalog once. There is no retry; the user
// presses r to try again.
func fetchProductsCmd(ctx context.Context, svc *storefront.Service) tea.Cmd {
	return func() tea.Msg {
		products, err := svc.Products(ctx)
		if err != nil {
			return productsErrorMsg{err: err}
		}
		return productsLoadedMsg{products: products}
	}
}

// fetchProductCmd loads one product for the detail screen.
func fetchProductCmd(ctx context.Context, svc *storefront.Service, id string) tea.Cmd {
	return func() tea.Msg {
		product, err := svc.Product(ctx, id)
		if err != nil {
			return productErrorMsg{id: id, err: err, notFound: shoperrors.IsNotFound(err)}
		}
		return productLoadedMsg{id: id, product: product}
	}
}

// loginCmd submits the login form.
func loginCmd(ctx context.Context, svc *storefront.Service, creds auth.Credentials) tea.Cmd {
	return func() tea.Msg {
		outcome, err := svc.Login(ctx, creds)
		return authDoneMsg{form: nav.ScreenLogin, outcome: outcome, err: err}
	}
}

// registerCmd submits the registration form.
func registerCmd(ctx context.Context, svc *storefront.Service, form auth.Registration) tea.Cmd {
	return func() tea.Msg {
		outcome, err := svc.Register(ctx, form)
		return authDoneMsg{form: nav.ScreenRegister, outcome: outcome, err: err}
	}
}

// replaceRouteCmd switches routes on the next update without recording
// history.
func replaceRouteCmd(path string) tea.Cmd {
	return func() tea.Msg {
		return navigateMsg{path: path, replace: true}
	}
}
