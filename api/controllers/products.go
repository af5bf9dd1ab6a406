package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"storefront-gateway/api/responses"
	"storefront-gateway/api/validators"
	productsvc "storefront-gateway/internal/products"
	pkgerrors "storefront-gateway/pkg/errors"
	"storefront-gateway/pkg/logger"
)

// ProductList serves the catalog listing. A q parameter turns the listing
// into a search over the same page shape.
func ProductList(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		first, err := validators.ParseQueryInt(r, "first", 0, 1, 100)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		opts := productsvc.ListOptions{
			First:   first,
			After:   strings.TrimSpace(r.URL.Query().Get("after")),
			SortKey: strings.TrimSpace(r.URL.Query().Get("sortKey")),
		}
		if raw := strings.TrimSpace(r.URL.Query().Get("reverse")); raw != "" {
			reverse, err := validators.ParseQueryBool(r, "reverse", false)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			opts.Reverse = &reverse
		}

		var result *productsvc.ListResult
		if query := strings.TrimSpace(r.URL.Query().Get("q")); query != "" {
			result, err = svc.Search(r.Context(), query, opts)
		} else {
			result, err = svc.List(r.Context(), opts)
		}
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, "", map[string]any{
			"products": result.Products,
			"pageInfo": result.PageInfo,
		})
	}
}

func ProductDetail(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		handle := chi.URLParam(r, "handle")
		product, err := svc.GetByHandle(r.Context(), handle)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, "", map[string]any{"product": product})
	}
}
