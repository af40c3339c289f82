// Package api talks to the external product and auth service over HTTP.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/alexisbeaulieu97/shopmate/internal/domain/catalog"
	"github.com/alexisbeaulieu97/shopmate/internal/ports"
	shoperrors "github.com/alexisbeaulieu97/shopmate/pkg/errors"
)

// Endpoint paths relative to the base URL.
const (
	productsPath = "/api/products"
	loginPath    = "/auth/login"
	registerPath = "/auth/register"
)

const maxErrorBody = 1 << 20

// Options configure a Client.
type Options struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     ports.Logger
}

// Client issues exactly one request per call. It never retries and sets no
// deadline of its own; callers cancel through the context.
type Client struct {
	base   *url.URL
	http   *http.Client
	logger ports.Logger
}

var (
	_ ports.ProductAPI = (*Client)(nil)
	_ ports.AuthAPI    = (*Client)(nil)
)

// New builds a client for the service rooted at opts.BaseURL.
func New(opts Options) (*Client, error) {
	raw := strings.TrimSpace(opts.BaseURL)
	if raw == "" {
		return nil, shoperrors.NewValidationError("api_url", "API base URL is required", nil)
	}
	base, err := url.Parse(strings.TrimSuffix(raw, "/"))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, shoperrors.NewValidationError("api_url", fmt.Sprintf("invalid API base URL %q", raw), err)
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{base: base, http: httpClient, logger: opts.Logger}, nil
}

// BaseURL returns the service root the client was built with.
func (c *Client) BaseURL() string {
	return c.base.String()
}

// ListProducts fetches the whole catalog.
func (c *Client) ListProducts(ctx context.Context) ([]catalog.Product, error) {
	var products []catalog.Product
	if err := c.do(ctx, http.MethodGet, productsPath, nil, &products); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	if products == nil {
		products = []catalog.Product{}
	}
	return products, nil
}

// GetProduct fetches one product. A 404 becomes a NotFoundError.
func (c *Client) GetProduct(ctx context.Context, id string) (*catalog.Product, error) {
	if strings.TrimSpace(id) == "" {
		return nil, shoperrors.NewValidationError("id", "product id is required", nil)
	}

	var product catalog.Product
	err := c.do(ctx, http.MethodGet, productsPath+"/"+url.PathEscape(id), nil, &product)
	if err != nil {
		if apiErr, ok := shoperrors.AsAPIError(err); ok && apiErr.Status == http.StatusNotFound {
			return nil, shoperrors.NewNotFoundError("product", id, err)
		}
		return nil, fmt.Errorf("get product %s: %w", id, err)
	}
	return &product, nil
}

// Login submits credentials and returns the user record and token.
func (c *Client) Login(ctx context.Context, req ports.LoginRequest) (*ports.LoginResponse, error) {
	var resp ports.LoginResponse
	if err := c.do(ctx, http.MethodPost, loginPath, req, &resp); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	return &resp, nil
}

// Register creates an account. The response body is not used.
func (c *Client) Register(ctx context.Context, req ports.RegisterRequest) error {
	if err := c.do(ctx, http.MethodPost, registerPath, req, nil); err != nil {
		return fmt.Errorf("register: %w", err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	endpoint := c.base.String() + path

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("create %s request: %w", method, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.debug(ctx, "api request", "method", method, "path", path)

	resp, err := c.http.Do(req)
	if err != nil {
		c.warn(ctx, "api request failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.debug(ctx, "api response", "method", method, "path", path, "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return parseErrorResponse(resp, strings.TrimPrefix(path, "/"))
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

// parseErrorResponse reads the "message" field of a JSON error body when
// there is one.
func parseErrorResponse(resp *http.Response, endpoint string) error {
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return shoperrors.NewAPIError(endpoint, resp.StatusCode, "")
	}

	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(raw, &payload) == nil {
		msg := payload.Message
		if msg == "" {
			msg = payload.Error
		}
		return shoperrors.NewAPIError(endpoint, resp.StatusCode, strings.TrimSpace(msg))
	}
	return shoperrors.NewAPIError(endpoint, resp.StatusCode, "")
}

func (c *Client) debug(ctx context.Context, msg string, fields ...interface{}) {
	if c.logger != nil {
		c.logger.Debug(ctx, msg, fields...)
	}
}

func (c *Client) warn(ctx context.Context, msg string, fields ...interface{}) {
	if c.logger != nil {
		c.logger.Warn(ctx, msg, fields...)
	}
}
