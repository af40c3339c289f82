package tui

import (
	"github.com/alexisbeaulieu97/shopmate/internal/application/storefront"
	"github.com/alexisbeaulieu97/shopmate/internal/domain/catalog"
	"github.com/alexisbeaulieu97/shopmate/internal/nav"
)

// productsLoadedMsg carries the fetched catalog.
type productsLoadedMsg struct {
	products []catalog.Product
}

// productsErrorMsg reports a failed catalog fetch.
type productsErrorMsg struct {
	err error
}

// productLoadedMsg carries one fetched product.
type productLoadedMsg struct {
	id      string
	product *catalog.Product
}

// productErrorMsg reports a failed product fetch. notFound marks a 404.
type productErrorMsg struct {
	id       string
	err      error
	notFound bool
}

// authDoneMsg reports a finished login or registration. form is the screen
// that submitted it.
type authDoneMsg struct {
	form    nav.Screen
	outcome storefront.Outcome
	err     error
}

// navigateMsg asks the model to switch routes. replace skips the history
// entry.
type navigateMsg struct {
	path    string
	replace bool
}
