package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"storefront-gateway/api/responses"
	"storefront-gateway/api/validators"
	collectionsvc "storefront-gateway/internal/collections"
	pkgerrors "storefront-gateway/pkg/errors"
	"storefront-gateway/pkg/logger"
)

func CollectionList(svc collectionsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "collection service unavailable"))
			return
		}

		first, err := validators.ParseQueryInt(r, "first", 0, 1, 100)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.List(r.Context(), collectionsvc.ListOptions{
			First: first,
			After: strings.TrimSpace(r.URL.Query().Get("after")),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, "", map[string]any{
			"collections": result.Collections,
			"pageInfo":    result.PageInfo,
		})
	}
}

func CollectionDetail(svc collectionsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "collection service unavailable"))
			return
		}

		first, err := validators.ParseQueryInt(r, "first", 0, 1, 100)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		reverse, err := validators.ParseQueryBool(r, "reverse", false)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		handle := chi.URLParam(r, "handle")
		collection, err := svc.GetByHandle(r.Context(), handle, collectionsvc.ProductPageOptions{
			First:   first,
			After:   strings.TrimSpace(r.URL.Query().Get("after")),
			SortKey: strings.TrimSpace(r.URL.Query().Get("sortKey")),
			Reverse: reverse,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, "", map[string]any{"collection": collection})
	}
}
