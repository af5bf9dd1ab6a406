package collections

import (
	"context"
	"fmt"
	"time"

	"storefront-gateway/internal/products"
	"storefront-gateway/internal/shopify"
	pkgerrors "storefront-gateway/pkg/errors"
)

type graphClient interface {
	Query(ctx context.Context, document string, variables map[string]any, out any) error
}

// Service exposes read-only access to merchandised collections. Products
// inside a collection reuse the catalog normalization so the two surfaces
// never drift apart.
type Service interface {
	List(ctx context.Context, opts ListOptions) (*ListResult, error)
	GetByHandle(ctx context.Context, handle string, opts ProductPageOptions) (*Collection, error)
}

const (
	defaultPageSize = 20

	// Collection product pages default to the merchandiser's ordering proxy.
	defaultProductSortKey = "BEST_SELLING"
)

type Collection struct {
	ID              string             `json:"id"`
	Title           string             `json:"title"`
	Handle          string             `json:"handle"`
	Description     string             `json:"description"`
	DescriptionHTML string             `json:"descriptionHtml"`
	Image           *shopify.Image     `json:"image,omitempty"`
	UpdatedAt       time.Time          `json:"updatedAt"`
	ProductsCount   int                `json:"productsCount,omitempty"`
	Products        []products.Product `json:"products,omitempty"`
	ProductPageInfo *shopify.PageInfo  `json:"productPageInfo,omitempty"`
}

type ListOptions struct {
	First int
	After string
}

type ListResult struct {
	Collections []Collection     `json:"collections"`
	PageInfo    shopify.PageInfo `json:"pageInfo"`
}

// ProductPageOptions selects the page of products inside a single collection.
type ProductPageOptions struct {
	First   int
	After   string
	SortKey string
	Reverse bool
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

func (s *service) List(ctx context.Context, opts ListOptions) (*ListResult, error) {
	first := opts.First
	if first <= 0 {
		first = defaultPageSize
	}
	variables := map[string]any{"first": first}
	if opts.After != "" {
		variables["after"] = opts.After
	}

	var out struct {
		Collections shopify.Connection[shopify.CollectionPayload] `json:"collections"`
	}
	if err := s.client.Query(ctx, shopify.GetCollectionsQuery, variables, &out); err != nil {
		return nil, err
	}

	result := &ListResult{
		Collections: make([]Collection, 0, len(out.Collections.Edges)),
		PageInfo:    out.Collections.PageInfo,
	}
	for _, payload := range shopify.Nodes(out.Collections) {
		result.Collections = append(result.Collections, normalize(payload))
	}
	return result, nil
}

func (s *service) GetByHandle(ctx context.Context, handle string, opts ProductPageOptions) (*Collection, error) {
	if handle == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "collection handle is required")
	}

	first := opts.First
	if first <= 0 {
		first = defaultPageSize
	}
	sortKey := opts.SortKey
	if sortKey == "" {
		sortKey = defaultProductSortKey
	}
	variables := map[string]any{
		"handle":  handle,
		"first":   first,
		"sortKey": sortKey,
		"reverse": opts.Reverse,
	}
	if opts.After != "" {
		variables["after"] = opts.After
	}

	var out struct {
		Collection *shopify.CollectionPayload `json:"collectionByHandle"`
	}
	if err := s.client.Query(ctx, shopify.GetCollectionByHandleQuery, variables, &out); err != nil {
		return nil, err
	}
	if out.Collection == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "collection not found")
	}

	collection := normalize(*out.Collection)
	pageInfo := out.Collection.Products.PageInfo
	collection.ProductPageInfo = &pageInfo
	return &collection, nil
}

func normalize(payload shopify.CollectionPayload) Collection {
	collection := Collection{
		ID:              payload.ID,
		Title:           payload.Title,
		Handle:          payload.Handle,
		Description:     payload.Description,
		DescriptionHTML: payload.DescriptionHTML,
		Image:           payload.Image,
		UpdatedAt:       payload.UpdatedAt,
		ProductsCount:   payload.ProductsCount,
	}
	for _, product := range shopify.Nodes(payload.Products) {
		product := product
		collection.Products = append(collection.Products, *products.Normalize(&product))
	}
	return collection
}
