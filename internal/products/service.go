package products

import (
	"context"
	"fmt"

	"storefront-gateway/internal/shopify"
	pkgerrors "storefront-gateway/pkg/errors"
)

type graphClient interface {
	Query(ctx context.Context, document string, variables map[string]any, out any) error
}

// Service exposes read-only catalog access.
type Service interface {
	GetByHandle(ctx context.Context, handle string) (*Product, error)
	List(ctx context.Context, opts ListOptions) (*ListResult, error)
	Search(ctx context.Context, query string, opts ListOptions) (*ListResult, error)
}

const (
	defaultPageSize = 20
	defaultSortKey  = "CREATED_AT"
)

// ListOptions selects a page of the catalog. Zero values fall back to the
// storefront defaults: newest first, twenty per page.
type ListOptions struct {
	First   int
	After   string
	SortKey string
	Reverse *bool
	Query   string
}

type ListResult struct {
	Products []Product        `json:"products"`
	PageInfo shopify.PageInfo `json:"pageInfo"`
}

type service struct {
	client graphClient
}

func NewService(client graphClient) (Service, error) {
	if client == nil {
		return nil, fmt.Errorf("storefront client required")
	}
	return &service{client: client}, nil
}

func (s *service) GetByHandle(ctx context.Context, handle string) (*Product, error) {
	if handle == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product handle is required")
	}

	var out struct {
		Product *shopify.ProductPayload `json:"productByHandle"`
	}
	if err := s.client.Query(ctx, shopify.GetProductByHandleQuery, map[string]any{"handle": handle}, &out); err != nil {
		return nil, err
	}
	if out.Product == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	return Normalize(out.Product), nil
}

func (s *service) List(ctx context.Context, opts ListOptions) (*ListResult, error) {
	first := opts.First
	if first <= 0 {
		first = defaultPageSize
	}
	sortKey := opts.SortKey
	if sortKey == "" {
		sortKey = defaultSortKey
	}
	reverse := true
	if opts.Reverse != nil {
		reverse = *opts.Reverse
	}

	variables := map[string]any{
		"first":   first,
		"sortKey": sortKey,
		"reverse": reverse,
	}
	if opts.After != "" {
		variables["after"] = opts.After
	}
	if opts.Query != "" {
		variables["query"] = opts.Query
	}

	var out struct {
		Products shopify.Connection[shopify.ProductPayload] `json:"products"`
	}
	if err := s.client.Query(ctx, shopify.GetProductsQuery, variables, &out); err != nil {
		return nil, err
	}

	result := &ListResult{
		Products: make([]Product, 0, len(out.Products.Edges)),
		PageInfo: out.Products.PageInfo,
	}
	for _, payload := range shopify.Nodes(out.Products) {
		payload := payload
		result.Products = append(result.Products, *Normalize(&payload))
	}
	return result, nil
}

// Search is List with a mandatory query string.
func (s *service) Search(ctx context.Context, query string, opts ListOptions) (*ListResult, error) {
	if query == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "search query is required")
	}
	opts.Query = query
	return s.List(ctx, opts)
}
