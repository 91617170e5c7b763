package graphql

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PizzaHomicide/lumix/internal/log"
	"github.com/google/uuid"
	"github.com/machinebox/graphql"
)

// Client is the generic client for making queries to the profile GraphQL API
type Client struct {
	client    *graphql.Client
	authToken string
}

// NewClient creates a client for the given endpoint.  An empty token sends unauthenticated requests.
func NewClient(endpoint, authToken string, httpClient *http.Client) (*Client, error) {
	if endpoint == "" {
		return nil, fmt.Errorf("GraphQL endpoint is empty")
	}

	var opts []graphql.ClientOption
	if httpClient != nil {
		opts = append(opts, graphql.WithHTTPClient(httpClient))
	}

	return &Client{
		client:    graphql.NewClient(endpoint, opts...),
		authToken: authToken,
	}, nil
}

func (c *Client) Query(ctx context.Context, query string, variables map[string]interface{}, result interface{}) error {
	req := graphql.NewRequest(query)

	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)
	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	for key, value := range variables {
		req.Var(key, value)
	}

	log.Trace("Running GraphQL query", "request_id", requestID)
	if err := c.client.Run(ctx, req, result); err != nil {
		if isNetworkError(err) {
			return NetworkError{Err: err}
		}
		return err
	}
	return nil
}

// NetworkError means the API could not be reached at all, as opposed to the API rejecting the request
type NetworkError struct {
	Err error
}

func (e NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e NetworkError) Unwrap() error {
	return e.Err
}

func isNetworkError(err error) bool {
	var netErr *url.Error
	if !errors.As(err, &netErr) {
		return false
	}
	return netErr.Timeout() ||
		strings.Contains(err.Error(), "connection refused") ||
		strings.Contains(err.Error(), "no such host") ||
		strings.Contains(err.Error(), "i/o timeout")
}
