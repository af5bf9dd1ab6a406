package validators

import (
	"net/http/httptest"
	"strings"
	"testing"

	pkgerrors "storefront-gateway/pkg/errors"
)

func TestDecodeJSONBodyRejectsUnknownFields(t *testing.T) {
	t.Parallel()

	type payload struct {
		Email string `json:"email" validate:"required,email"`
	}

	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"email":"jo@example.com","extra":true}`))
	var dest payload
	err := DecodeJSONBody(r, &dest)
	if !pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDecodeJSONBodyReportsFieldMessagesByJSONName(t *testing.T) {
	t.Parallel()

	type payload struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
	}

	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"email":"not-an-email","password":"short"}`))
	var dest payload
	err := DecodeJSONBody(r, &dest)

	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	details, ok := typed.Details().(map[string]string)
	if !ok {
		t.Fatalf("expected field details, got %#v", typed.Details())
	}
	if details["email"] != "must be a valid email" {
		t.Fatalf("unexpected email message %q", details["email"])
	}
	if details["password"] != "must be at least 8" {
		t.Fatalf("unexpected password message %q", details["password"])
	}
}

func TestDecodeJSONBodyAcceptsValidPayload(t *testing.T) {
	t.Parallel()

	type payload struct {
		Email string `json:"email" validate:"required,email"`
	}

	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"email":"jo@example.com"}`))
	var dest payload
	if err := DecodeJSONBody(r, &dest); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dest.Email != "jo@example.com" {
		t.Fatalf("unexpected decode %+v", dest)
	}
}

func TestParseQueryInt(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest("GET", "/?first=10", nil)
	value, err := ParseQueryInt(r, "first", 20, 1, 100)
	if err != nil || value != 10 {
		t.Fatalf("unexpected result %d, %v", value, err)
	}

	r = httptest.NewRequest("GET", "/", nil)
	value, err = ParseQueryInt(r, "first", 20, 1, 100)
	if err != nil || value != 20 {
		t.Fatalf("expected default, got %d, %v", value, err)
	}

	r = httptest.NewRequest("GET", "/?first=abc", nil)
	if _, err = ParseQueryInt(r, "first", 20, 1, 100); !pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}

	r = httptest.NewRequest("GET", "/?first=500", nil)
	if _, err = ParseQueryInt(r, "first", 20, 1, 100); !pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected range error, got %v", err)
	}
}

func TestBearerToken(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("Authorization", "Bearer tok-123")
	if got := BearerToken(r); got != "tok-123" {
		t.Fatalf("unexpected token %q", got)
	}

	r.Header.Set("Authorization", "Basic dXNlcg==")
	if got := BearerToken(r); got != "" {
		t.Fatalf("non-bearer scheme must yield empty token, got %q", got)
	}

	r.Header.Del("Authorization")
	if got := BearerToken(r); got != "" {
		t.Fatalf("missing header must yield empty token, got %q", got)
	}
}
