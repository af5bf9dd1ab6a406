package customer

import (
	"time"

	"storefront-gateway/internal/shopify"
)

// Customer is the account projection returned to handlers. Like every other
// entity here it is owned upstream and reshaped per request.
type Customer struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	DisplayName    string    `json:"displayName"`
	Phone          string    `json:"phone,omitempty"`
	DefaultAddress *Address  `json:"defaultAddress,omitempty"`
	Addresses      []Address `json:"addresses,omitempty"`
	Orders         []Order   `json:"orders,omitempty"`
}

type Address struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Company   string `json:"company,omitempty"`
	Address1  string `json:"address1"`
	Address2  string `json:"address2,omitempty"`
	City      string `json:"city"`
	Province  string `json:"province,omitempty"`
	Country   string `json:"country"`
	Zip       string `json:"zip"`
	Phone     string `json:"phone,omitempty"`
}

type Order struct {
	ID                string          `json:"id"`
	OrderNumber       int             `json:"orderNumber"`
	Name              string          `json:"name"`
	ProcessedAt       time.Time       `json:"processedAt"`
	FinancialStatus   string          `json:"financialStatus"`
	FulfillmentStatus string          `json:"fulfillmentStatus"`
	TotalPrice        shopify.Money   `json:"totalPrice"`
	LineItems         []OrderLineItem `json:"lineItems"`
}

type OrderLineItem struct {
	Title    string        `json:"title"`
	Quantity int           `json:"quantity"`
	Variant  *OrderVariant `json:"variant,omitempty"`
}

type OrderVariant struct {
	Title string         `json:"title"`
	Image *shopify.Image `json:"image,omitempty"`
	Price *shopify.Money `json:"price,omitempty"`
}

// AccessToken is the opaque session credential minted at login. The gateway
// never inspects it, only forwards it.
type AccessToken struct {
	Token     string    `json:"accessToken"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
}

func normalizeCustomer(payload *shopify.CustomerPayload) *Customer {
	if payload == nil {
		return nil
	}
	out := &Customer{
		ID:          payload.ID,
		Email:       payload.Email,
		FirstName:   payload.FirstName,
		LastName:    payload.LastName,
		DisplayName: payload.DisplayName,
		Phone:       payload.Phone,
	}
	if payload.DefaultAddress != nil {
		addr := normalizeAddress(*payload.DefaultAddress)
		out.DefaultAddress = &addr
	}
	for _, addr := range shopify.Nodes(payload.Addresses) {
		out.Addresses = append(out.Addresses, normalizeAddress(addr))
	}
	for _, order := range shopify.Nodes(payload.Orders) {
		out.Orders = append(out.Orders, normalizeOrder(order))
	}
	return out
}

func normalizeAddress(payload shopify.AddressPayload) Address {
	return Address{
		ID:        payload.ID,
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		Company:   payload.Company,
		Address1:  payload.Address1,
		Address2:  payload.Address2,
		City:      payload.City,
		Province:  payload.Province,
		Country:   payload.Country,
		Zip:       payload.Zip,
		Phone:     payload.Phone,
	}
}

func normalizeOrder(payload shopify.OrderPayload) Order {
	order := Order{
		ID:                payload.ID,
		OrderNumber:       payload.OrderNumber,
		Name:              payload.Name,
		ProcessedAt:       payload.ProcessedAt,
		FinancialStatus:   payload.FinancialStatus,
		FulfillmentStatus: payload.FulfillmentStatus,
		TotalPrice:        payload.TotalPriceV2,
	}
	for _, item := range shopify.Nodes(payload.LineItems) {
		line := OrderLineItem{Title: item.Title, Quantity: item.Quantity}
		if item.Variant != nil {
			line.Variant = &OrderVariant{
				Title: item.Variant.Title,
				Image: item.Variant.Image,
				Price: item.Variant.PriceV2,
			}
		}
		order.LineItems = append(order.LineItems, line)
	}
	return order
}
