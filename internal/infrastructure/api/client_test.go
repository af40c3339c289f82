package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/shopmate/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/shopmate/internal/ports"
	shoperrors "github.com/alexisbeaulieu97/shopmate/pkg/errors"
)

type fakeService struct {
	hits     atomic.Int32
	products string
	status   int
	body     string
}

func (f *fakeService) router(t *testing.T) http.Handler {
	t.Helper()
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			f.hits.Add(1)
			next.ServeHTTP(w, req)
		})
	})

	r.Get("/api/products", func(w http.ResponseWriter, _ *http.Request) {
		if f.status != 0 {
			w.WriteHeader(f.status)
			_, _ = w.Write([]byte(f.body))
			return
		}
		_, _ = w.Write([]byte(f.products))
	})
	r.Get("/api/products/{id}", func(w http.ResponseWriter, req *http.Request) {
		if chi.URLParam(req, "id") != "p1" {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"Product not found"}`))
			return
		}
		_, _ = w.Write([]byte(`{"_id":"p1","title":"Lamp","price":19.99,"rating":{"rate":4.5,"count":10}}`))
	})
	r.Post("/auth/login", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
		var body ports.LoginRequest
		require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		if body.Password != "right" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"Invalid credentials"}`))
			return
		}
		_, _ = w.Write([]byte(`{"user":{"_id":"u1","name":"Ada","email":"` + body.Email + `"},"token":"tok-1"}`))
	})
	r.Post("/auth/register", func(w http.ResponseWriter, req *http.Request) {
		var body ports.RegisterRequest
		require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		if body.Email == "taken@example.com" {
			w.WriteHeader(http.StatusConflict)
			_, _ = w.Write([]byte(`{"message":"User already exists"}`))
			return
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"message":"ok"}`))
	})
	return r
}

func newTestClient(t *testing.T, svc *fakeService) *Client {
	t.Helper()
	server := httptest.NewServer(svc.router(t))
	t.Cleanup(server.Close)

	client, err := New(Options{BaseURL: server.URL + "/", Logger: logging.NewNoOpLogger()})
	require.NoError(t, err)
	return client
}

func TestNew_RejectsBadBaseURL(t *testing.T) {
	_, err := New(Options{})
	require.Error(t, err)

	_, err = New(Options{BaseURL: "localhost:5000"})
	var ve *shoperrors.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "api_url", ve.Field)
}

func TestListProducts(t *testing.T) {
	svc := &fakeService{products: `[{"id":"a","title":"A","price":10,"rating":4},{"id":"b","title":"B","price":"5.50","category":"Fashion"}]`}
	client := newTestClient(t, svc)

	products, err := client.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "All", products[0].Category)
	assert.Equal(t, 4.0, products[0].Rating.Rate)
	assert.Equal(t, "5.5", products[1].Price.String())
}

func TestListProducts_EmptyBodyIsEmptySlice(t *testing.T) {
	client := newTestClient(t, &fakeService{products: `null`})
	products, err := client.ListProducts(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestListProducts_ServerErrorIsNotRetried(t *testing.T) {
	svc := &fakeService{status: http.StatusServiceUnavailable, body: `{"message":"maintenance"}`}
	client := newTestClient(t, svc)

	_, err := client.ListProducts(context.Background())
	apiErr, ok := shoperrors.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.Status)
	assert.Equal(t, "maintenance", apiErr.Message)
	assert.Equal(t, int32(1), svc.hits.Load())
}

func TestListProducts_BadJSON(t *testing.T) {
	client := newTestClient(t, &fakeService{products: `{"not":"an array"`})
	_, err := client.ListProducts(context.Background())
	require.Error(t, err)
	_, isAPI := shoperrors.AsAPIError(err)
	assert.False(t, isAPI)
}

func TestListProducts_NonJSONErrorBody(t *testing.T) {
	client := newTestClient(t, &fakeService{status: http.StatusBadGateway, body: "<html>bad gateway</html>"})
	_, err := client.ListProducts(context.Background())
	apiErr, ok := shoperrors.AsAPIError(err)
	require.True(t, ok)
	assert.Empty(t, apiErr.Message)
}

func TestGetProduct(t *testing.T) {
	client := newTestClient(t, &fakeService{})

	product, err := client.GetProduct(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "p1", product.ID)
	assert.Equal(t, 10, product.Rating.Count)

	_, err = client.GetProduct(context.Background(), "missing")
	assert.True(t, shoperrors.IsNotFound(err))

	_, err = client.GetProduct(context.Background(), " ")
	_, isValidation := shoperrors.AsValidationError(err)
	assert.True(t, isValidation)
}

func TestLogin(t *testing.T) {
	client := newTestClient(t, &fakeService{})

	resp, err := client.Login(context.Background(), ports.LoginRequest{Email: "ada@example.com", Password: "right"})
	require.NoError(t, err)
	assert.Equal(t, "u1", resp.User.ID)
	assert.Equal(t, "tok-1", resp.Token)

	_, err = client.Login(context.Background(), ports.LoginRequest{Email: "ada@example.com", Password: "wrong"})
	apiErr, ok := shoperrors.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "Invalid credentials", apiErr.Message)
}

func TestRegister(t *testing.T) {
	client := newTestClient(t, &fakeService{})

	require.NoError(t, client.Register(context.Background(), ports.RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "x"}))

	err := client.Register(context.Background(), ports.RegisterRequest{Email: "taken@example.com"})
	apiErr, ok := shoperrors.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, "User already exists", apiErr.Message)
}

func TestCancelledContext(t *testing.T) {
	svc := &fakeService{products: `[]`}
	client := newTestClient(t, svc)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.ListProducts(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	_, isAPI := shoperrors.AsAPIError(err)
	assert.False(t, isAPI)
}
