package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	pkgerrors "storefront-gateway/pkg/errors"
	"storefront-gateway/pkg/metrics"
)

const accessTokenHeader = "X-Shopify-Storefront-Access-Token"

// Config carries the three values every Storefront API call needs.
type Config struct {
	StoreDomain string
	AccessToken string
	APIVersion  string
}

func (c Config) endpointURL() string {
	return fmt.Sprintf("https://%s/api/%s/graphql.json", c.StoreDomain, c.APIVersion)
}

// GraphQLError is one entry of the top-level errors array in a GraphQL response.
type GraphQLError struct {
	Message   string          `json:"message"`
	Locations []ErrorLocation `json:"locations,omitempty"`
	Path      []any           `json:"path,omitempty"`
}

type ErrorLocation struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// Client is the single point of contact with the Storefront GraphQL endpoint.
// Every call is one POST with no retries; the config mutex only exists for
// UpdateConfig, which is never exercised in normal request flow.
type Client struct {
	mu       sync.RWMutex
	cfg      Config
	endpoint string
	http     *http.Client
	upstream *metrics.UpstreamMetrics
}

// NewClient validates the configuration and builds the endpoint URL.
func NewClient(cfg Config, upstream *metrics.UpstreamMetrics) (*Client, error) {
	if cfg.StoreDomain == "" || cfg.AccessToken == "" {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "storefront configuration is missing required fields")
	}
	if cfg.APIVersion == "" {
		cfg.APIVersion = "2024-04"
	}
	return &Client{
		cfg:      cfg,
		endpoint: cfg.endpointURL(),
		http: &http.Client{
			Timeout: 20 * time.Second,
		},
		upstream: upstream,
	}, nil
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type graphQLEnvelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []GraphQLError  `json:"errors"`
}

// Query issues one POST and decodes the data payload into out when non-nil.
// Failures come back as typed upstream errors: transport problems carry the
// underlying cause, GraphQL errors carry the first error message plus the raw
// list as details. A response with a non-empty errors array is a failure even
// when data is also present.
func (c *Client) Query(ctx context.Context, document string, variables map[string]any, out any) error {
	operation := operationName(document)
	start := time.Now()
	err := c.do(ctx, document, variables, out)
	c.upstream.ObserveDuration(operation, time.Since(start))
	if err != nil {
		c.upstream.IncFailure(operation)
		return err
	}
	c.upstream.IncSuccess(operation)
	return nil
}

// Mutate is an alias of Query; GraphQL has no transport distinction between the two.
func (c *Client) Mutate(ctx context.Context, document string, variables map[string]any, out any) error {
	return c.Query(ctx, document, variables, out)
}

func (c *Client) do(ctx context.Context, document string, variables map[string]any, out any) error {
	if variables == nil {
		variables = map[string]any{}
	}
	body, err := json.Marshal(graphQLRequest{Query: document, Variables: variables})
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "marshal graphql request")
	}

	c.mu.RLock()
	endpoint := c.endpoint
	token := c.cfg.AccessToken
	c.mu.RUnlock()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create storefront request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(accessTokenHeader, token)

	resp, err := c.http.Do(req)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeUpstream, err, "storefront request failed")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeUpstream, err, "read storefront response")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return pkgerrors.New(pkgerrors.CodeUpstream, fmt.Sprintf("storefront returned status %s", resp.Status))
	}

	var envelope graphQLEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeUpstream, err, "decode storefront response")
	}
	if len(envelope.Errors) > 0 {
		return pkgerrors.New(pkgerrors.CodeUpstream, envelope.Errors[0].Message).WithDetails(envelope.Errors)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeUpstream, err, "decode storefront data")
	}
	return nil
}

// BatchRequest is one independent query within a BatchQuery fan-out.
type BatchRequest struct {
	Document  string
	Variables map[string]any
}

// BatchQuery runs the requests concurrently and joins. There is no
// cross-cancellation: every request runs to completion even if an early one
// fails. The returned slice is index-aligned with requests; failed entries
// are nil. Overall success requires every sub-query to succeed, and on
// failure all collected errors are combined.
func (c *Client) BatchQuery(ctx context.Context, requests []BatchRequest) ([]json.RawMessage, error) {
	results := make([]json.RawMessage, len(requests))
	errs := make([]error, len(requests))

	var g errgroup.Group
	for i, req := range requests {
		i, req := i, req
		g.Go(func() error {
			var raw json.RawMessage
			if err := c.Query(ctx, req.Document, req.Variables, &raw); err != nil {
				errs[i] = err
				return nil
			}
			results[i] = raw
			return nil
		})
	}
	_ = g.Wait()

	if combined := multierr.Combine(errs...); combined != nil {
		return results, pkgerrors.Wrap(pkgerrors.CodeUpstream, combined, "batch query failed")
	}
	return results, nil
}

// GetConfig returns a copy of the active configuration.
func (c *Client) GetConfig() Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cfg
}

// UpdateConfig swaps the active configuration and rebuilds the endpoint URL.
func (c *Client) UpdateConfig(cfg Config) error {
	if cfg.StoreDomain == "" || cfg.AccessToken == "" {
		return pkgerrors.New(pkgerrors.CodeInternal, "storefront configuration is missing required fields")
	}
	if cfg.APIVersion == "" {
		cfg.APIVersion = "2024-04"
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cfg = cfg
	c.endpoint = cfg.endpointURL()
	return nil
}

// operationName extracts the named operation from a document for metrics and
// log labels.
func operationName(document string) string {
	fields := strings.Fields(document)
	for i, field := range fields {
		if field != "query" && field != "mutation" {
			continue
		}
		if i+1 >= len(fields) {
			break
		}
		name := fields[i+1]
		if idx := strings.IndexAny(name, "({"); idx >= 0 {
			name = name[:idx]
		}
		if name != "" {
			return name
		}
	}
	return "anonymous"
}
