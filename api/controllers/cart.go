package controllers

import (
	"net/http"
	"strings"

	"storefront-gateway/api/responses"
	"storefront-gateway/api/validators"
	cartsvc "storefront-gateway/internal/cart"
	pkgerrors "storefront-gateway/pkg/errors"
	"storefront-gateway/pkg/logger"
)

// CartFetch resolves the cart named by the cartId query parameter.
func CartFetch(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		cartID := strings.TrimSpace(r.URL.Query().Get("cartId"))
		if cartID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "cartId is required"))
			return
		}

		cart, err := svc.Get(r.Context(), cartID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, "", map[string]any{"cart": cart})
	}
}

type createCartRequest struct {
	CustomerAccessToken string            `json:"customerAccessToken,omitempty"`
	Lines               []cartLinePayload `json:"lines,omitempty" validate:"omitempty,dive"`
}

type cartLinePayload struct {
	MerchandiseID string `json:"merchandiseId" validate:"required"`
	Quantity      int    `json:"quantity" validate:"required,min=1"`
}

// CartCreate creates a cart, optionally seeded with lines and attached to a
// logged-in customer. Responds 201 with the new cart.
func CartCreate(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		var payload createCartRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input := cartsvc.CreateInput{}
		if payload.CustomerAccessToken != "" {
			input.BuyerIdentity = &cartsvc.BuyerIdentity{CustomerAccessToken: payload.CustomerAccessToken}
		}
		for _, line := range payload.Lines {
			input.Lines = append(input.Lines, cartsvc.LineInput{
				MerchandiseID: line.MerchandiseID,
				Quantity:      line.Quantity,
			})
		}

		cart, err := svc.Create(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, "cart created", map[string]any{"cart": cart})
	}
}

type addToCartRequest struct {
	CartID   string `json:"cartId" validate:"required"`
	ItemID   string `json:"itemId" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
}

func CartAddItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		var payload addToCartRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		cart, err := svc.AddSingleItem(r.Context(), payload.CartID, payload.ItemID, payload.Quantity)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, "item added to cart", map[string]any{"cart": cart})
	}
}

// Quantity has no minimum here: zero passes through and removes the line.
type updateCartRequest struct {
	CartID   string `json:"cartId" validate:"required"`
	LineID   string `json:"lineId" validate:"required"`
	Quantity *int   `json:"quantity" validate:"required,min=0"`
}

func CartUpdateItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		var payload updateCartRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		cart, err := svc.UpdateSingleItem(r.Context(), payload.CartID, payload.LineID, *payload.Quantity)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, "cart updated", map[string]any{"cart": cart})
	}
}

type removeFromCartRequest struct {
	CartID  string   `json:"cartId" validate:"required"`
	LineIDs []string `json:"lineIds" validate:"required,min=1"`
}

func CartRemoveItems(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		var payload removeFromCartRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		cart, err := svc.RemoveLines(r.Context(), payload.CartID, payload.LineIDs)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, "items removed from cart", map[string]any{"cart": cart})
	}
}
