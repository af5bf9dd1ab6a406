package products

import (
	"storefront-gateway/internal/shopify"
)

// Product is the catalog projection returned to handlers. The convenience
// price and availability fields mirror the first variant so simple listing
// pages never have to walk the variants slice.
type Product struct {
	ID              string           `json:"id"`
	Title           string           `json:"title"`
	Handle          string           `json:"handle"`
	Description     string           `json:"description"`
	DescriptionHTML string           `json:"descriptionHtml"`
	Vendor          string           `json:"vendor"`
	ProductType     string           `json:"productType"`
	Tags            []string         `json:"tags"`
	FeaturedImage   *shopify.Image   `json:"featuredImage,omitempty"`
	Images          []shopify.Image  `json:"images"`
	Options         []Option         `json:"options"`
	Variants        []Variant        `json:"variants"`
	Price           *shopify.Money   `json:"price,omitempty"`
	CompareAtPrice  *shopify.Money   `json:"compareAtPrice,omitempty"`
	Available       bool             `json:"available"`
	Stock           int              `json:"stock"`
	VariantID       string           `json:"variantId,omitempty"`
}

type Option struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

type Variant struct {
	ID                string                   `json:"id"`
	Title             string                   `json:"title"`
	SKU               string                   `json:"sku,omitempty"`
	Available         bool                     `json:"available"`
	QuantityAvailable int                      `json:"quantityAvailable"`
	Price             shopify.Money            `json:"price"`
	CompareAtPrice    *shopify.Money           `json:"compareAtPrice,omitempty"`
	SelectedOptions   []shopify.SelectedOption `json:"selectedOptions"`
	Image             *shopify.Image           `json:"image,omitempty"`
}

// Normalize flattens a product payload into the handler-facing shape. A
// variant without its own image inherits the product's first gallery image,
// not the featured image; the two can differ when merchandisers reorder the
// gallery.
func Normalize(payload *shopify.ProductPayload) *Product {
	if payload == nil {
		return nil
	}
	product := &Product{
		ID:              payload.ID,
		Title:           payload.Title,
		Handle:          payload.Handle,
		Description:     payload.Description,
		DescriptionHTML: payload.DescriptionHTML,
		Vendor:          payload.Vendor,
		ProductType:     payload.ProductType,
		Tags:            payload.Tags,
		FeaturedImage:   payload.FeaturedImage,
		Images:          shopify.Nodes(payload.Images),
	}
	for _, option := range payload.Options {
		product.Options = append(product.Options, Option{Name: option.Name, Values: option.Values})
	}

	var fallbackImage *shopify.Image
	if len(product.Images) > 0 {
		fallbackImage = &product.Images[0]
	}
	for _, payload := range shopify.Nodes(payload.Variants) {
		variant := Variant{
			ID:                payload.ID,
			Title:             payload.Title,
			SKU:               payload.SKU,
			Available:         payload.AvailableForSale,
			QuantityAvailable: payload.QuantityAvailable,
			Price:             payload.PriceV2,
			CompareAtPrice:    payload.CompareAtPriceV2,
			SelectedOptions:   payload.SelectedOptions,
			Image:             payload.Image,
		}
		if variant.Image == nil {
			variant.Image = fallbackImage
		}
		product.Variants = append(product.Variants, variant)
	}

	// Products with zero variants exist transiently while a listing is being
	// drafted; they normalize without convenience pricing.
	if len(product.Variants) > 0 {
		first := product.Variants[0]
		product.Price = &first.Price
		product.CompareAtPrice = first.CompareAtPrice
		product.Available = first.Available
		product.Stock = first.QuantityAvailable
		product.VariantID = first.ID
	}
	return product
}
