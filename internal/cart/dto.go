package cart

import (
	"time"

	"storefront-gateway/internal/shopify"
)

// Cart is the flattened projection returned to handlers. The platform owns
// the cart itself; this value is fetched, shaped and discarded per request.
type Cart struct {
	ID            string    `json:"id"`
	CheckoutURL   string    `json:"checkoutUrl"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
	Lines         []Line    `json:"lines"`
	Cost          Cost      `json:"cost"`
	TotalQuantity int       `json:"totalQuantity"`
}

type Line struct {
	ID          string      `json:"id"`
	Quantity    int         `json:"quantity"`
	Merchandise Merchandise `json:"merchandise"`
}

type Merchandise struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	Image         *shopify.Image `json:"image,omitempty"`
	Price         shopify.Money  `json:"price"`
	ProductTitle  string         `json:"productTitle"`
	ProductHandle string         `json:"productHandle"`
}

type Cost struct {
	Subtotal shopify.Money  `json:"subtotal"`
	Tax      *shopify.Money `json:"tax,omitempty"`
	Total    shopify.Money  `json:"total"`
}

// CreateInput builds the CartInput variable for cartCreate. Omitting the
// buyer identity creates an anonymous cart.
type CreateInput struct {
	BuyerIdentity *BuyerIdentity
	Lines         []LineInput
}

type BuyerIdentity struct {
	CustomerAccessToken string
}

type LineInput struct {
	MerchandiseID string
	Quantity      int
}

type LineUpdateInput struct {
	ID       string
	Quantity int
}

func normalize(payload *shopify.CartPayload) *Cart {
	if payload == nil {
		return nil
	}
	cart := &Cart{
		ID:            payload.ID,
		CheckoutURL:   payload.CheckoutURL,
		CreatedAt:     payload.CreatedAt,
		UpdatedAt:     payload.UpdatedAt,
		TotalQuantity: payload.TotalQuantity,
		Cost: Cost{
			Subtotal: payload.Cost.SubtotalAmount,
			Tax:      payload.Cost.TotalTaxAmount,
			Total:    payload.Cost.TotalAmount,
		},
	}
	for _, line := range shopify.Nodes(payload.Lines) {
		cart.Lines = append(cart.Lines, Line{
			ID:       line.ID,
			Quantity: line.Quantity,
			Merchandise: Merchandise{
				ID:            line.Merchandise.ID,
				Title:         line.Merchandise.Title,
				Image:         line.Merchandise.Image,
				Price:         line.Merchandise.PriceV2,
				ProductTitle:  line.Merchandise.Product.Title,
				ProductHandle: line.Merchandise.Product.Handle,
			},
		})
	}
	return cart
}
