package cart

import (
	"context"
	"fmt"

	"storefront-gateway/internal/shopify"
	pkgerrors "storefront-gateway/pkg/errors"
)

type graphClient interface {
	Query(ctx context.Context, document string, variables map[string]any, out any) error
	Mutate(ctx context.Context, document string, variables map[string]any, out any) error
}

// Service exposes the cart pass-through operations. Each call is one fixed
// document plus one upstream round trip; line batches within a mutation are
// applied atomically by the platform, not by this service.
type Service interface {
	Get(ctx context.Context, cartID string) (*Cart, error)
	Create(ctx context.Context, input CreateInput) (*Cart, error)
	AddLines(ctx context.Context, cartID string, lines []LineInput) (*Cart, error)
	RemoveLines(ctx context.Context, cartID string, lineIDs []string) (*Cart, error)
	UpdateLines(ctx context.Context, cartID string, lines []LineUpdateInput) (*Cart, error)
	AddSingleItem(ctx context.Context, cartID, variantID string, quantity int) (*Cart, error)
	UpdateSingleItem(ctx context.Context, cartID, lineID string, quantity int) (*Cart, error)
	CheckoutURL(ctx context.Context, cartID string) (string, error)
}

type service struct {
	client graphClient
}

// NewService constructs the cart service.
func NewService(client graphClient) (Service, error) {
	if client == nil {
		return nil, fmt.Errorf("storefront client required")
	}
	return &service{client: client}, nil
}

// Get resolves a cart by id. A null cart in a successful response means the
// identifier no longer resolves upstream; that is a not-found, never a
// transport error.
func (s *service) Get(ctx context.Context, cartID string) (*Cart, error) {
	var out struct {
		Cart *shopify.CartPayload `json:"cart"`
	}
	if err := s.client.Query(ctx, shopify.GetCartQuery, map[string]any{"cartId": cartID}, &out); err != nil {
		return nil, err
	}
	if out.Cart == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "cart not found")
	}
	return normalize(out.Cart), nil
}

func (s *service) Create(ctx context.Context, input CreateInput) (*Cart, error) {
	cartInput := map[string]any{}
	if input.BuyerIdentity != nil && input.BuyerIdentity.CustomerAccessToken != "" {
		cartInput["buyerIdentity"] = map[string]any{
			"customerAccessToken": input.BuyerIdentity.CustomerAccessToken,
		}
	}
	if len(input.Lines) > 0 {
		cartInput["lines"] = lineInputsToVariables(input.Lines)
	}

	var out struct {
		Payload shopify.CartMutationPayload `json:"cartCreate"`
	}
	if err := s.client.Mutate(ctx, shopify.CreateCartMutation, map[string]any{"input": cartInput}, &out); err != nil {
		return nil, err
	}
	return cartFromMutation(out.Payload)
}

func (s *service) AddLines(ctx context.Context, cartID string, lines []LineInput) (*Cart, error) {
	if len(lines) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "at least one line is required")
	}
	var out struct {
		Payload shopify.CartMutationPayload `json:"cartLinesAdd"`
	}
	variables := map[string]any{
		"cartId": cartID,
		"lines":  lineInputsToVariables(lines),
	}
	if err := s.client.Mutate(ctx, shopify.AddToCartMutation, variables, &out); err != nil {
		return nil, err
	}
	return cartFromMutation(out.Payload)
}

func (s *service) RemoveLines(ctx context.Context, cartID string, lineIDs []string) (*Cart, error) {
	if len(lineIDs) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "at least one line id is required")
	}
	var out struct {
		Payload shopify.CartMutationPayload `json:"cartLinesRemove"`
	}
	variables := map[string]any{
		"cartId":  cartID,
		"lineIds": lineIDs,
	}
	if err := s.client.Mutate(ctx, shopify.RemoveFromCartMutation, variables, &out); err != nil {
		return nil, err
	}
	return cartFromMutation(out.Payload)
}

// UpdateLines passes quantities through unchanged, including zero: the
// pinned platform behavior for quantity 0 is line removal.
func (s *service) UpdateLines(ctx context.Context, cartID string, lines []LineUpdateInput) (*Cart, error) {
	if len(lines) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "at least one line is required")
	}
	updates := make([]map[string]any, 0, len(lines))
	for _, line := range lines {
		updates = append(updates, map[string]any{
			"id":       line.ID,
			"quantity": line.Quantity,
		})
	}
	var out struct {
		Payload shopify.CartMutationPayload `json:"cartLinesUpdate"`
	}
	variables := map[string]any{
		"cartId": cartID,
		"lines":  updates,
	}
	if err := s.client.Mutate(ctx, shopify.UpdateCartMutation, variables, &out); err != nil {
		return nil, err
	}
	return cartFromMutation(out.Payload)
}

func (s *service) AddSingleItem(ctx context.Context, cartID, variantID string, quantity int) (*Cart, error) {
	return s.AddLines(ctx, cartID, []LineInput{{MerchandiseID: variantID, Quantity: quantity}})
}

func (s *service) UpdateSingleItem(ctx context.Context, cartID, lineID string, quantity int) (*Cart, error) {
	return s.UpdateLines(ctx, cartID, []LineUpdateInput{{ID: lineID, Quantity: quantity}})
}

// CheckoutURL supports the checkout hand-off: the platform cart already
// carries its hosted checkout URL, so no separate checkout object is created.
func (s *service) CheckoutURL(ctx context.Context, cartID string) (string, error) {
	cart, err := s.Get(ctx, cartID)
	if err != nil {
		return "", err
	}
	return cart.CheckoutURL, nil
}

func lineInputsToVariables(lines []LineInput) []map[string]any {
	out := make([]map[string]any, 0, len(lines))
	for _, line := range lines {
		out = append(out, map[string]any{
			"merchandiseId": line.MerchandiseID,
			"quantity":      line.Quantity,
		})
	}
	return out
}

// cartFromMutation applies the two-level error check shared by every cart
// mutation: transport/GraphQL errors abort before this point, then a
// non-empty userErrors list aborts with the first message.
func cartFromMutation(payload shopify.CartMutationPayload) (*Cart, error) {
	if len(payload.UserErrors) > 0 {
		return nil, pkgerrors.New(pkgerrors.CodeUserError, payload.UserErrors[0].Message).
			WithDetails(payload.UserErrors)
	}
	if payload.Cart == nil {
		return nil, pkgerrors.New(pkgerrors.CodeUpstream, "storefront returned no cart")
	}
	return normalize(payload.Cart), nil
}
