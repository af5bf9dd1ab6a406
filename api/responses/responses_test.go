package responses

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	pkgerrors "storefront-gateway/pkg/errors"
)

func TestWriteSuccessPlacesEntityAtTopLevel(t *testing.T) {
	w := httptest.NewRecorder()
	WriteSuccessStatus(w, http.StatusCreated, "cart created", map[string]any{
		"cart": map[string]string{"id": "gid://shopify/Cart/1"},
	})

	if got := w.Code; got != http.StatusCreated {
		t.Fatalf("expected status 201 but got %d", got)
	}

	var body map[string]any
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode envelope: %v", err)
	}
	if body["success"] != true {
		t.Fatalf("expected success=true, got %v", body["success"])
	}
	if body["message"] != "cart created" {
		t.Fatalf("unexpected message %v", body["message"])
	}
	if body["cart"].(map[string]any)["id"] != "gid://shopify/Cart/1" {
		t.Fatalf("entity must sit at the top level, got %v", body)
	}
}

func TestWriteSuccessOmitsEmptyMessage(t *testing.T) {
	w := httptest.NewRecorder()
	WriteSuccess(w, "", map[string]any{"products": []string{}})

	var body map[string]any
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode envelope: %v", err)
	}
	if _, present := body["message"]; present {
		t.Fatal("empty message must be omitted")
	}
}

func TestWriteErrorMapsTypedError(t *testing.T) {
	w := httptest.NewRecorder()
	err := pkgerrors.New(pkgerrors.CodeValidation, "bad input").
		WithDetails(map[string]string{"field": "demo"})
	WriteError(context.Background(), nil, w, err)

	if got := w.Code; got != http.StatusBadRequest {
		t.Fatalf("expected status 400 but got %d", got)
	}

	var body map[string]any
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode envelope: %v", err)
	}
	if body["success"] != false {
		t.Fatalf("expected success=false, got %v", body["success"])
	}
	if body["message"] != "bad input" {
		t.Fatalf("unexpected message %v", body["message"])
	}
	if body["errors"] == nil {
		t.Fatal("expected details in public payload")
	}
}

func TestWriteErrorDefaultsToInternalForUntrustedErrors(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(context.Background(), nil, w, errors.New("boom"))

	if got := w.Code; got != http.StatusInternalServerError {
		t.Fatalf("expected status 500 but got %d", got)
	}

	var body map[string]any
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode envelope: %v", err)
	}
	if body["message"] != "internal server error" {
		t.Fatalf("raw error text must not leak, got %v", body["message"])
	}
	if _, present := body["errors"]; present {
		t.Fatal("details must be omitted for internal errors")
	}
}

func TestWriteErrorHidesUpstreamMessageDetail(t *testing.T) {
	w := httptest.NewRecorder()
	err := pkgerrors.New(pkgerrors.CodeUpstream, "post https://internal: connection refused")
	WriteError(context.Background(), nil, w, err)

	if got := w.Code; got != http.StatusInternalServerError {
		t.Fatalf("expected status 500 but got %d", got)
	}

	var body map[string]any
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode envelope: %v", err)
	}
	if body["message"] != "storefront api request failed" {
		t.Fatalf("upstream internals must not leak, got %v", body["message"])
	}
}
