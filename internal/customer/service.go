package customer

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

// Service proxies account operations to the platform. The gateway holds no
// account state of its own: passwords and sessions both live upstream, and
// the access token returned by Login is opaque to every other operation.
type Service interface {
	Register(ctx context.Context, input RegisterInput) (*Customer, error)
	Login(ctx context.Context, email, password string) (*AccessToken, error)
	Logout(ctx context.Context, accessToken string) error
	Get(ctx context.Context, accessToken string) (*Customer, error)
	Orders(ctx context.Context, accessToken string, first int) ([]Order, error)
}

const defaultOrderPageSize = 10

type service struct {
	client graphClient
}

func NewService(client graphClient) (Service, error) {
	if client == nil {
		return nil, fmt.Errorf("storefront client required")
	}
	return &service{client: client}, nil
}

// Register creates an account. Policy rejections such as a taken email or a
// weak password come back as customerUserErrors inside a successful response
// and map to a client error, not an upstream failure.
func (s *service) Register(ctx context.Context, input RegisterInput) (*Customer, error) {
	if input.Email == "" || input.Password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email and password are required")
	}

	customerInput := map[string]any{
		"email":    input.Email,
		"password": input.Password,
	}
	if input.FirstName != "" {
		customerInput["firstName"] = input.FirstName
	}
	if input.LastName != "" {
		customerInput["lastName"] = input.LastName
	}
	if input.Phone != "" {
		customerInput["phone"] = input.Phone
	}

	var out struct {
		Payload shopify.CustomerCreatePayload `json:"customerCreate"`
	}
	if err := s.client.Mutate(ctx, shopify.CreateCustomerMutation, map[string]any{"input": customerInput}, &out); err != nil {
		return nil, err
	}
	if len(out.Payload.CustomerUserErrors) > 0 {
		return nil, pkgerrors.New(pkgerrors.CodeUserError, out.Payload.CustomerUserErrors[0].Message).
			WithDetails(out.Payload.CustomerUserErrors)
	}
	if out.Payload.Customer == nil {
		return nil, pkgerrors.New(pkgerrors.CodeUpstream, "storefront returned no customer")
	}
	return normalizeCustomer(out.Payload.Customer), nil
}

// Login exchanges credentials for an access token. Rejected credentials come
// back as customerUserErrors inside a successful response; they map to
// unauthorized, carrying the platform's first message through.
func (s *service) Login(ctx context.Context, email, password string) (*AccessToken, error) {
	if email == "" || password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email and password are required")
	}

	var out struct {
		Payload shopify.AccessTokenCreatePayload `json:"customerAccessTokenCreate"`
	}
	variables := map[string]any{
		"input": map[string]any{
			"email":    email,
			"password": password,
		},
	}
	if err := s.client.Mutate(ctx, shopify.CreateAccessTokenMutation, variables, &out); err != nil {
		return nil, err
	}
	if len(out.Payload.CustomerUserErrors) > 0 {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, out.Payload.CustomerUserErrors[0].Message).
			WithDetails(out.Payload.CustomerUserErrors)
	}
	if out.Payload.CustomerAccessToken == nil {
		return nil, pkgerrors.New(pkgerrors.CodeUpstream, "storefront returned no access token")
	}
	return &AccessToken{
		Token:     out.Payload.CustomerAccessToken.AccessToken,
		ExpiresAt: out.Payload.CustomerAccessToken.ExpiresAt,
	}, nil
}

// Logout revokes the token upstream. Revoking an already-dead token reports
// success: the session is gone either way.
func (s *service) Logout(ctx context.Context, accessToken string) error {
	if accessToken == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "access token is required")
	}

	var out struct {
		Payload shopify.AccessTokenRevokePayload `json:"customerAccessTokenRevoke"`
	}
	variables := map[string]any{"customerAccessToken": accessToken}
	if err := s.client.Mutate(ctx, shopify.RevokeAccessTokenMutation, variables, &out); err != nil {
		if pkgerrors.IsCode(reclassifyTokenError(err), pkgerrors.CodeUnauthorized) {
			return nil
		}
		return err
	}
	return nil
}

func (s *service) Get(ctx context.Context, accessToken string) (*Customer, error) {
	if accessToken == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "access token is required")
	}

	var out struct {
		Customer *shopify.CustomerPayload `json:"customer"`
	}
	variables := map[string]any{"customerAccessToken": accessToken}
	if err := s.client.Query(ctx, shopify.GetCustomerQuery, variables, &out); err != nil {
		return nil, reclassifyTokenError(err)
	}
	// A null customer inside a successful response is the other way the
	// platform reports a dead token.
	if out.Customer == nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "session ended, please log in again")
	}
	return normalizeCustomer(out.Customer), nil
}

// Orders lists the customer's most recent orders. A null customer here means
// the token resolved to nobody; unlike Get this is reported as an empty list
// so storefront order pages degrade quietly instead of bouncing to login.
func (s *service) Orders(ctx context.Context, accessToken string, first int) ([]Order, error) {
	if accessToken == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "access token is required")
	}
	if first <= 0 {
		first = defaultOrderPageSize
	}

	var out struct {
		Customer *struct {
			Orders shopify.Connection[shopify.OrderPayload] `json:"orders"`
		} `json:"customer"`
	}
	variables := map[string]any{
		"customerAccessToken": accessToken,
		"first":               first,
	}
	if err := s.client.Query(ctx, shopify.GetCustomerOrdersQuery, variables, &out); err != nil {
		return nil, reclassifyTokenError(err)
	}
	if out.Customer == nil {
		return []Order{}, nil
	}

	orders := make([]Order, 0, len(out.Customer.Orders.Edges))
	for _, payload := range shopify.Nodes(out.Customer.Orders) {
		orders = append(orders, normalizeOrder(payload))
	}
	return orders, nil
}
