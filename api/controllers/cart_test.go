package controllers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	cartsvc "storefront-gateway/internal/cart"
	pkgerrors "storefront-gateway/pkg/errors"
	"storefront-gateway/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Level: logger.ParseLevel("debug"), Output: io.Discard})
}

type stubCartService struct {
	cart        *cartsvc.Cart
	checkoutURL string
	err         error

	gotCartID   string
	gotVariant  string
	gotLineID   string
	gotQuantity int
	gotLineIDs  []string
	gotInput    cartsvc.CreateInput
}

func (s *stubCartService) Get(ctx context.Context, cartID string) (*cartsvc.Cart, error) {
	s.gotCartID = cartID
	return s.cart, s.err
}

func (s *stubCartService) Create(ctx context.Context, input cartsvc.CreateInput) (*cartsvc.Cart, error) {
	s.gotInput = input
	return s.cart, s.err
}

func (s *stubCartService) AddLines(ctx context.Context, cartID string, lines []cartsvc.LineInput) (*cartsvc.Cart, error) {
	panic("unimplemented")
}

func (s *stubCartService) RemoveLines(ctx context.Context, cartID string, lineIDs []string) (*cartsvc.Cart, error) {
	s.gotCartID = cartID
	s.gotLineIDs = lineIDs
	return s.cart, s.err
}

func (s *stubCartService) UpdateLines(ctx context.Context, cartID string, lines []cartsvc.LineUpdateInput) (*cartsvc.Cart, error) {
	panic("unimplemented")
}

func (s *stubCartService) AddSingleItem(ctx context.Context, cartID, variantID string, quantity int) (*cartsvc.Cart, error) {
	s.gotCartID = cartID
	s.gotVariant = variantID
	s.gotQuantity = quantity
	return s.cart, s.err
}

func (s *stubCartService) UpdateSingleItem(ctx context.Context, cartID, lineID string, quantity int) (*cartsvc.Cart, error) {
	s.gotCartID = cartID
	s.gotLineID = lineID
	s.gotQuantity = quantity
	return s.cart, s.err
}

func (s *stubCartService) CheckoutURL(ctx context.Context, cartID string) (string, error) {
	s.gotCartID = cartID
	return s.checkoutURL, s.err
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return body
}

func TestCartFetch(t *testing.T) {
	logg := testLogger()

	t.Run("missing cartId", func(t *testing.T) {
		rec := httptest.NewRecorder()
		CartFetch(&stubCartService{}, logg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/cart", nil))
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 without cartId, got %d", rec.Code)
		}
	})

	t.Run("unknown cart", func(t *testing.T) {
		stub := &stubCartService{err: pkgerrors.New(pkgerrors.CodeNotFound, "cart not found")}
		rec := httptest.NewRecorder()
		CartFetch(stub, logg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/cart?cartId=gone", nil))
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		body := decodeBody(t, rec)
		if body["success"] != false || body["message"] != "cart not found" {
			t.Fatalf("unexpected body %v", body)
		}
	})

	t.Run("success", func(t *testing.T) {
		stub := &stubCartService{cart: &cartsvc.Cart{ID: "gid://shopify/Cart/1"}}
		rec := httptest.NewRecorder()
		CartFetch(stub, logg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/cart?cartId=gid://shopify/Cart/1", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		body := decodeBody(t, rec)
		if body["success"] != true {
			t.Fatalf("unexpected envelope %v", body)
		}
		if body["cart"].(map[string]any)["id"] != "gid://shopify/Cart/1" {
			t.Fatalf("cart must sit at the top level, got %v", body)
		}
	})
}

func TestCartCreate(t *testing.T) {
	logg := testLogger()

	t.Run("created with buyer identity", func(t *testing.T) {
		stub := &stubCartService{cart: &cartsvc.Cart{ID: "gid://shopify/Cart/1"}}
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/cart/create",
			strings.NewReader(`{"customerAccessToken":"tok-1","lines":[{"merchandiseId":"gid://shopify/ProductVariant/9","quantity":2}]}`))
		CartCreate(stub, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", rec.Code)
		}
		if stub.gotInput.BuyerIdentity == nil || stub.gotInput.BuyerIdentity.CustomerAccessToken != "tok-1" {
			t.Fatalf("buyer identity not forwarded: %+v", stub.gotInput)
		}
		if len(stub.gotInput.Lines) != 1 || stub.gotInput.Lines[0].Quantity != 2 {
			t.Fatalf("lines not forwarded: %+v", stub.gotInput.Lines)
		}
	})

	t.Run("anonymous empty body", func(t *testing.T) {
		stub := &stubCartService{cart: &cartsvc.Cart{ID: "gid://shopify/Cart/2"}}
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/cart/create", strings.NewReader(`{}`))
		CartCreate(stub, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", rec.Code)
		}
		if stub.gotInput.BuyerIdentity != nil {
			t.Fatalf("anonymous create must not carry buyer identity: %+v", stub.gotInput)
		}
	})

	t.Run("zero quantity line rejected", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/cart/create",
			strings.NewReader(`{"lines":[{"merchandiseId":"gid://shopify/ProductVariant/9","quantity":0}]}`))
		CartCreate(&stubCartService{}, logg).ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestCartAddItem(t *testing.T) {
	logg := testLogger()

	t.Run("success", func(t *testing.T) {
		stub := &stubCartService{cart: &cartsvc.Cart{ID: "gid://shopify/Cart/1"}}
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/cart/add",
			strings.NewReader(`{"cartId":"gid://shopify/Cart/1","itemId":"gid://shopify/ProductVariant/9","quantity":3}`))
		CartAddItem(stub, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if stub.gotVariant != "gid://shopify/ProductVariant/9" || stub.gotQuantity != 3 {
			t.Fatalf("unexpected forwarded values %+v", stub)
		}
	})

	t.Run("sold out maps to 400", func(t *testing.T) {
		stub := &stubCartService{err: pkgerrors.New(pkgerrors.CodeUserError, "Merchandise is sold out")}
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/cart/add",
			strings.NewReader(`{"cartId":"c","itemId":"v","quantity":1}`))
		CartAddItem(stub, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		body := decodeBody(t, rec)
		if body["message"] != "Merchandise is sold out" {
			t.Fatalf("upstream user error message must pass through, got %v", body["message"])
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/cart/add", strings.NewReader(`{"cartId":"c"}`))
		CartAddItem(&stubCartService{}, logg).ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestCartUpdateItem(t *testing.T) {
	logg := testLogger()

	// Quantity zero is a valid update; it removes the line upstream.
	t.Run("zero quantity accepted", func(t *testing.T) {
		stub := &stubCartService{cart: &cartsvc.Cart{ID: "gid://shopify/Cart/1"}}
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/cart/update",
			strings.NewReader(`{"cartId":"gid://shopify/Cart/1","lineId":"line-1","quantity":0}`))
		CartUpdateItem(stub, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if stub.gotLineID != "line-1" || stub.gotQuantity != 0 {
			t.Fatalf("unexpected forwarded values %+v", stub)
		}
	})

	t.Run("missing quantity rejected", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/cart/update",
			strings.NewReader(`{"cartId":"c","lineId":"line-1"}`))
		CartUpdateItem(&stubCartService{}, logg).ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestCartRemoveItems(t *testing.T) {
	logg := testLogger()

	stub := &stubCartService{cart: &cartsvc.Cart{ID: "gid://shopify/Cart/1"}}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/cart/remove",
		strings.NewReader(`{"cartId":"gid://shopify/Cart/1","lineIds":["line-1","line-2"]}`))
	CartRemoveItems(stub, logg).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(stub.gotLineIDs) != 2 {
		t.Fatalf("line ids not forwarded: %+v", stub.gotLineIDs)
	}
}

func TestCheckoutCreate(t *testing.T) {
	logg := testLogger()

	t.Run("success", func(t *testing.T) {
		stub := &stubCartService{checkoutURL: "https://demo-store.myshopify.com/checkout/1"}
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/checkout/create",
			strings.NewReader(`{"cartId":"gid://shopify/Cart/1"}`))
		CheckoutCreate(stub, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		body := decodeBody(t, rec)
		if body["checkoutUrl"] != "https://demo-store.myshopify.com/checkout/1" {
			t.Fatalf("unexpected body %v", body)
		}
	})

	t.Run("unknown cart", func(t *testing.T) {
		stub := &stubCartService{err: pkgerrors.New(pkgerrors.CodeNotFound, "cart not found")}
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/checkout/create",
			strings.NewReader(`{"cartId":"gone"}`))
		CheckoutCreate(stub, logg).ServeHTTP(rec, req)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}
