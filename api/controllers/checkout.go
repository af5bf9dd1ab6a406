package controllers

import (
	"net/http"

	"storefront-gateway/api/responses"
	"storefront-gateway/api/validators"
	cartsvc "storefront-gateway/internal/cart"
	pkgerrors "storefront-gateway/pkg/errors"
	"storefront-gateway/pkg/logger"
)

type checkoutRequest struct {
	CartID string `json:"cartId" validate:"required"`
}

// CheckoutCreate hands the buyer off to the platform's hosted checkout. No
// checkout object is created here; the cart already carries its URL.
func CheckoutCreate(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		var payload checkoutRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		url, err := svc.CheckoutURL(r.Context(), payload.CartID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, "", map[string]any{"checkoutUrl": url})
	}
}
