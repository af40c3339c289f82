package ports

import (
	"context"

	"github.com/alexisbeaulieu97/shopmate/internal/domain/catalog"
	"github.com/alexisbeaulieu97/shopmate/internal/domain/session"
)

// ProductAPI fetches the catalog from the external product service. Each call
// is a single request: no retries and no client-side deadline beyond ctx.
type ProductAPI interface {
	ListProducts(ctx context.Context) ([]catalog.Product, error)
	GetProduct(ctx context.Context, id string) (*catalog.Product, error)
}

// AuthAPI submits credentials to the external auth service.
type AuthAPI interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	Register(ctx context.Context, req RegisterRequest) error
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the success body of POST /auth/login.
type LoginResponse struct {
	User  session.User `json:"user"`
	Token string       `json:"token"`
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
