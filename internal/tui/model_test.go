package tui

import (
	"context"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/shopmate/internal/application/storefront"
	"github.com/alexisbeaulieu97/shopmate/internal/domain/catalog"
	"github.com/alexisbeaulieu97/shopmate/internal/domain/session"
	"github.com/alexisbeaulieu97/shopmate/internal/domain/theme"
	"github.com/alexisbeaulieu97/shopmate/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/shopmate/internal/infrastructure/storage"
	"github.com/alexisbeaulieu97/shopmate/internal/ports"
	shoperrors "github.com/alexisbeaulieu97/shopmate/pkg/errors"
)

type fakeProducts struct {
	products []catalog.Product
	err      error
}

func (f *fakeProducts) ListProducts(context.Context) ([]catalog.Product, error) {
	return f.products, f.err
}

func (f *fakeProducts) GetProduct(_ context.Context, id string) (*catalog.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, shoperrors.NewNotFoundError("product", id, nil)
}

type fakeAuth struct {
	mu     sync.Mutex
	err    error
	logins int
}

func (f *fakeAuth) Login(_ context.Context, req ports.LoginRequest) (*ports.LoginResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logins++
	if f.err != nil {
		return nil, f.err
	}
	return &ports.LoginResponse{User: session.User{ID: "u1", Name: "Ada", Email: req.Email}, Token: "tok"}, nil
}

func (f *fakeAuth) Register(context.Context, ports.RegisterRequest) error {
	return f.err
}

type harness struct {
	svc      *storefront.Service
	auth     *fakeAuth
	products *fakeProducts
	store    *storage.MemoryStore
}

func sampleProducts() []catalog.Product {
	mk := func(id, title, price, category string) catalog.Product {
		return catalog.Product{ID: id, Title: title, Price: decimal.RequireFromString(price), Category: category, Rating: catalog.Rating{Rate: 4.2, Count: 10}}
	}
	return []catalog.Product{
		mk("p1", "Phone", "499.00", "Electronics"),
		mk("p2", "Dress", "59.90", "Fashion"),
		mk("p3", "Ring", "120.00", "Jewelry"),
		mk("p4", "Laptop", "999.99", "Electronics"),
		mk("p5", "Bag", "35.00", "Accessories"),
	}
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	store := storage.NewMemoryStore()
	h := &harness{auth: &fakeAuth{}, products: &fakeProducts{products: sampleProducts()}, store: store}
	svc, err := storefront.New(storefront.Deps{
		Products: h.products,
		Auth:     h.auth,
		Theme:    theme.Load(store),
		Session:  session.Open(store),
		Logger:   logging.NewNoOpLogger(),
	})
	require.NoError(t, err)
	h.svc = svc
	return h
}

// start builds a model and drives it to path with the catalog loaded.
func (h *harness) start(t *testing.T, path string) Model {
	t.Helper()
	m := NewModel(h.svc, Options{StartPath: path})
	m = update(t, m, navigateMsg{path: path, replace: true})
	return update(t, m, productsLoadedMsg{products: h.products.products})
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		m = update(t, m, keyMsg(k))
	}
	return m
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+p":
		return tea.KeyMsg{Type: tea.KeyCtrlP}
	case "ctrl+r":
		return tea.KeyMsg{Type: tea.KeyCtrlR}
	case "ctrl+l":
		return tea.KeyMsg{Type: tea.KeyCtrlL}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}
