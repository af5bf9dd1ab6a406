package routes

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"storefront-gateway/internal/cart"
	"storefront-gateway/internal/collections"
	"storefront-gateway/internal/customer"
	"storefront-gateway/internal/products"
	"storefront-gateway/pkg/config"
	"storefront-gateway/pkg/logger"
)

type stubCartService struct{}

func (stubCartService) Get(ctx context.Context, cartID string) (*cart.Cart, error) {
	return &cart.Cart{ID: cartID}, nil
}

func (stubCartService) Create(ctx context.Context, input cart.CreateInput) (*cart.Cart, error) {
	return &cart.Cart{ID: "gid://shopify/Cart/new"}, nil
}

func (stubCartService) AddLines(ctx context.Context, cartID string, lines []cart.LineInput) (*cart.Cart, error) {
	panic("unimplemented")
}

func (stubCartService) RemoveLines(ctx context.Context, cartID string, lineIDs []string) (*cart.Cart, error) {
	return &cart.Cart{ID: cartID}, nil
}

func (stubCartService) UpdateLines(ctx context.Context, cartID string, lines []cart.LineUpdateInput) (*cart.Cart, error) {
	panic("unimplemented")
}

func (stubCartService) AddSingleItem(ctx context.Context, cartID, variantID string, quantity int) (*cart.Cart, error) {
	return &cart.Cart{ID: cartID}, nil
}

func (stubCartService) UpdateSingleItem(ctx context.Context, cartID, lineID string, quantity int) (*cart.Cart, error) {
	return &cart.Cart{ID: cartID}, nil
}

func (stubCartService) CheckoutURL(ctx context.Context, cartID string) (string, error) {
	return "https://demo-store.myshopify.com/checkout/1", nil
}

type stubCustomerService struct{}

func (stubCustomerService) Register(ctx context.Context, input customer.RegisterInput) (*customer.Customer, error) {
	return &customer.Customer{Email: input.Email}, nil
}

func (stubCustomerService) Login(ctx context.Context, email, password string) (*customer.AccessToken, error) {
	return &customer.AccessToken{Token: "tok-123"}, nil
}

func (stubCustomerService) Logout(ctx context.Context, accessToken string) error {
	return nil
}

func (stubCustomerService) Get(ctx context.Context, accessToken string) (*customer.Customer, error) {
	return &customer.Customer{ID: "gid://shopify/Customer/1"}, nil
}

func (stubCustomerService) Orders(ctx context.Context, accessToken string, first int) ([]customer.Order, error) {
	return []customer.Order{}, nil
}

type stubProductService struct{}

func (stubProductService) GetByHandle(ctx context.Context, handle string) (*products.Product, error) {
	return &products.Product{Handle: handle}, nil
}

func (stubProductService) List(ctx context.Context, opts products.ListOptions) (*products.ListResult, error) {
	return &products.ListResult{}, nil
}

func (stubProductService) Search(ctx context.Context, query string, opts products.ListOptions) (*products.ListResult, error) {
	return &products.ListResult{}, nil
}

type stubCollectionService struct{}

func (stubCollectionService) List(ctx context.Context, opts collections.ListOptions) (*collections.ListResult, error) {
	return &collections.ListResult{}, nil
}

func (stubCollectionService) GetByHandle(ctx context.Context, handle string, opts collections.ProductPageOptions) (*collections.Collection, error) {
	return &collections.Collection{Handle: handle}, nil
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: "test", Port: "0"},
		Shopify: config.ShopifyConfig{
			StoreDomain: "demo-store.myshopify.com",
			AccessToken: "token",
			APIVersion:  "2024-04",
		},
		CORS: config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
	}
}

func newTestRouter(registry *prometheus.Registry) http.Handler {
	logg := logger.New(logger.Options{ServiceName: "test-routing", Level: logger.ParseLevel("debug"), Output: io.Discard})
	return NewRouter(
		testConfig(),
		logg,
		nil, // redis disabled; rate limiting inert
		registry,
		stubCartService{},
		stubCustomerService{},
		stubProductService{},
		stubCollectionService{},
	)
}

func TestHealthLive(t *testing.T) {
	router := newTestRouter(nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}

func TestRouteTable(t *testing.T) {
	router := newTestRouter(nil)

	cases := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{http.MethodGet, "/api/cart?cartId=gid://shopify/Cart/1", "", http.StatusOK},
		{http.MethodPost, "/api/cart/create", `{}`, http.StatusCreated},
		{http.MethodPost, "/api/cart/add", `{"cartId":"c","itemId":"v","quantity":1}`, http.StatusOK},
		{http.MethodPost, "/api/cart/update", `{"cartId":"c","lineId":"l","quantity":0}`, http.StatusOK},
		{http.MethodPost, "/api/cart/remove", `{"cartId":"c","lineIds":["l"]}`, http.StatusOK},
		{http.MethodPost, "/api/checkout/create", `{"cartId":"c"}`, http.StatusOK},
		{http.MethodPost, "/api/customers/register", `{"email":"jo@example.com","password":"hunter22"}`, http.StatusCreated},
		{http.MethodPost, "/api/customers/login", `{"email":"jo@example.com","password":"hunter22"}`, http.StatusOK},
		{http.MethodGet, "/api/products", "", http.StatusOK},
		{http.MethodGet, "/api/products/tee", "", http.StatusOK},
		{http.MethodGet, "/api/collections", "", http.StatusOK},
		{http.MethodGet, "/api/collections/summer", "", http.StatusOK},
	}

	for _, tc := range cases {
		var body io.Reader
		if tc.body != "" {
			body = strings.NewReader(tc.body)
		}
		req := httptest.NewRequest(tc.method, tc.path, body)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != tc.want {
			t.Fatalf("%s %s: expected %d got %d (%s)", tc.method, tc.path, tc.want, resp.Code, resp.Body.String())
		}
	}
}

func TestBearerRoutesRequireToken(t *testing.T) {
	router := newTestRouter(nil)

	for _, path := range []string{"/api/customers/account", "/api/orders"} {
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, path, nil))
		if resp.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401 without token got %d", path, resp.Code)
		}

		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Authorization", "Bearer tok-123")
		resp = httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("%s: expected 200 with token got %d", path, resp.Code)
		}
	}
}

// Wrong method on a known path must produce the JSON envelope, not chi's
// plain-text default.
func TestMethodNotAllowedUsesEnvelope(t *testing.T) {
	router := newTestRouter(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/cart/create", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405 got %d", resp.Code)
	}
	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("405 response must be JSON: %v", err)
	}
	if body["success"] != false {
		t.Fatalf("unexpected envelope %v", body)
	}
}

func TestUnknownRouteUsesEnvelope(t *testing.T) {
	router := newTestRouter(nil)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/nope", nil))

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("404 response must be JSON: %v", err)
	}
	if body["success"] != false {
		t.Fatalf("unexpected envelope %v", body)
	}
}

func TestMetricsEndpointMountedWithRegistry(t *testing.T) {
	registry := prometheus.NewRegistry()
	router := newTestRouter(registry)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	withoutRegistry := newTestRouter(nil)
	resp = httptest.NewRecorder()
	withoutRegistry.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 without registry got %d", resp.Code)
	}
}
