package shopify

import (
	"time"

	"github.com/shopspring/decimal"
)

// PageInfo is the cursor-pagination shape returned on every connection.
type PageInfo struct {
	HasNextPage     bool   `json:"hasNextPage"`
	HasPreviousPage bool   `json:"hasPreviousPage"`
	StartCursor     string `json:"startCursor"`
	EndCursor       string `json:"endCursor"`
}

type Edge[T any] struct {
	Node   T      `json:"node"`
	Cursor string `json:"cursor"`
}

type Connection[T any] struct {
	Edges    []Edge[T] `json:"edges"`
	PageInfo PageInfo  `json:"pageInfo"`
}

// Nodes flattens a connection into the ordered list of nodes, dropping cursors.
func Nodes[T any](c Connection[T]) []T {
	if len(c.Edges) == 0 {
		return nil
	}
	nodes := make([]T, 0, len(c.Edges))
	for _, edge := range c.Edges {
		nodes = append(nodes, edge.Node)
	}
	return nodes
}

// Money is a MoneyV2 value. Shopify serializes amounts as decimal strings.
type Money struct {
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode"`
}

type Image struct {
	URL     string `json:"url"`
	AltText string `json:"altText"`
	Width   int    `json:"width,omitempty"`
	Height  int    `json:"height,omitempty"`
}

type SelectedOption struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// UserError is an application-level rejection returned inside a successful
// GraphQL response, distinct from top-level GraphQL errors.
type UserError struct {
	Code    string   `json:"code,omitempty"`
	Field   []string `json:"field,omitempty"`
	Message string   `json:"message"`
}

// --- Cart payloads -----------------------------------------------------------

type CartPayload struct {
	ID            string                      `json:"id"`
	CheckoutURL   string                      `json:"checkoutUrl"`
	CreatedAt     time.Time                   `json:"createdAt"`
	UpdatedAt     time.Time                   `json:"updatedAt"`
	Lines         Connection[CartLinePayload] `json:"lines"`
	Cost          CartCostPayload             `json:"cost"`
	TotalQuantity int                         `json:"totalQuantity"`
}

type CartLinePayload struct {
	ID          string             `json:"id"`
	Quantity    int                `json:"quantity"`
	Merchandise MerchandisePayload `json:"merchandise"`
}

type MerchandisePayload struct {
	ID      string                `json:"id"`
	Title   string                `json:"title"`
	Image   *Image                `json:"image"`
	PriceV2 Money                 `json:"priceV2"`
	Product MerchandiseProductRef `json:"product"`
}

type MerchandiseProductRef struct {
	Title  string `json:"title"`
	Handle string `json:"handle"`
}

type CartCostPayload struct {
	TotalAmount    Money  `json:"totalAmount"`
	SubtotalAmount Money  `json:"subtotalAmount"`
	TotalTaxAmount *Money `json:"totalTaxAmount"`
}

// CartMutationPayload is the shared shape of cartCreate/cartLinesAdd/
// cartLinesRemove/cartLinesUpdate responses.
type CartMutationPayload struct {
	Cart       *CartPayload `json:"cart"`
	UserErrors []UserError  `json:"userErrors"`
}

// --- Customer payloads -------------------------------------------------------

type AddressPayload struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Company   string `json:"company"`
	Address1  string `json:"address1"`
	Address2  string `json:"address2"`
	City      string `json:"city"`
	Province  string `json:"province"`
	Country   string `json:"country"`
	Zip       string `json:"zip"`
	Phone     string `json:"phone"`
}

type CustomerPayload struct {
	ID             string                     `json:"id"`
	Email          string                     `json:"email"`
	FirstName      string                     `json:"firstName"`
	LastName       string                     `json:"lastName"`
	DisplayName    string                     `json:"displayName"`
	Phone          string                     `json:"phone"`
	DefaultAddress *AddressPayload            `json:"defaultAddress"`
	Addresses      Connection[AddressPayload] `json:"addresses"`
	Orders         Connection[OrderPayload]   `json:"orders"`
}

type AccessTokenPayload struct {
	AccessToken string    `json:"accessToken"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

type CustomerCreatePayload struct {
	Customer           *CustomerPayload `json:"customer"`
	CustomerUserErrors []UserError      `json:"customerUserErrors"`
}

type AccessTokenCreatePayload struct {
	CustomerAccessToken *AccessTokenPayload `json:"customerAccessToken"`
	CustomerUserErrors  []UserError         `json:"customerUserErrors"`
}

type AccessTokenRevokePayload struct {
	DeletedAccessToken           string      `json:"deletedAccessToken"`
	DeletedCustomerAccessTokenID string      `json:"deletedCustomerAccessTokenId"`
	UserErrors                   []UserError `json:"userErrors"`
}

// --- Order payloads ----------------------------------------------------------

type OrderPayload struct {
	ID                string                           `json:"id"`
	OrderNumber       int                              `json:"orderNumber"`
	Name              string                           `json:"name"`
	ProcessedAt       time.Time                        `json:"processedAt"`
	FinancialStatus   string                           `json:"financialStatus"`
	FulfillmentStatus string                           `json:"fulfillmentStatus"`
	TotalPriceV2      Money                            `json:"totalPriceV2"`
	LineItems         Connection[OrderLineItemPayload] `json:"lineItems"`
}

type OrderLineItemPayload struct {
	Title    string               `json:"title"`
	Quantity int                  `json:"quantity"`
	Variant  *OrderVariantPayload `json:"variant"`
}

type OrderVariantPayload struct {
	Title   string `json:"title"`
	Image   *Image `json:"image"`
	PriceV2 *Money `json:"priceV2"`
}

// --- Product payloads --------------------------------------------------------

type ProductPayload struct {
	ID              string                     `json:"id"`
	Title           string                     `json:"title"`
	Handle          string                     `json:"handle"`
	Description     string                     `json:"description"`
	DescriptionHTML string                     `json:"descriptionHtml"`
	Vendor          string                     `json:"vendor"`
	ProductType     string                     `json:"productType"`
	Tags            []string                   `json:"tags"`
	FeaturedImage   *Image                     `json:"featuredImage"`
	Images          Connection[Image]          `json:"images"`
	Options         []ProductOptionPayload     `json:"options"`
	Variants        Connection[VariantPayload] `json:"variants"`
}

type ProductOptionPayload struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

type VariantPayload struct {
	ID                string           `json:"id"`
	Title             string           `json:"title"`
	SKU               string           `json:"sku"`
	AvailableForSale  bool             `json:"availableForSale"`
	QuantityAvailable int              `json:"quantityAvailable"`
	PriceV2           Money            `json:"priceV2"`
	CompareAtPriceV2  *Money           `json:"compareAtPriceV2"`
	SelectedOptions   []SelectedOption `json:"selectedOptions"`
	Image             *Image           `json:"image"`
}

// --- Collection payloads -----------------------------------------------------

type CollectionPayload struct {
	ID              string                     `json:"id"`
	Title           string                     `json:"title"`
	Handle          string                     `json:"handle"`
	Description     string                     `json:"description"`
	DescriptionHTML string                     `json:"descriptionHtml"`
	Image           *Image                     `json:"image"`
	UpdatedAt       time.Time                  `json:"updatedAt"`
	ProductsCount   int                        `json:"productsCount"`
	Products        Connection[ProductPayload] `json:"products"`
}
