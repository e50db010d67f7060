package crowdin

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/tidwall/gjson"
	"golang.org/x/oauth2"
)

var (
	// ErrUnexpectedResponse is returned when the API answers with a body
	// that does not have the shape a query expects
	ErrUnexpectedResponse = errors.New("unexpected crowdin api response")

	// ErrNoProjects is returned by the usage query when the viewer has no project
	ErrNoProjects = errors.New("crowdin viewer has no projects")
)

// APIError carries the first entry of a GraphQL errors array.
// Later entries are dropped.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return "crowdin api: " + e.Message
}

// Client talks to the Crowdin GraphQL endpoint on behalf of one access token per call
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient creates a client for the GraphQL endpoint.
// httpClient is the base client the bearer transport wraps; nil uses http.DefaultClient.
func NewClient(endpoint string, httpClient *http.Client) *Client {
	return &Client{
		endpoint:   endpoint,
		httpClient: httpClient,
	}
}

// authorizedClient returns an HTTP client that sends "Authorization: Bearer <token>"
func (c *Client) authorizedClient(ctx context.Context, accessToken string) *http.Client {
	if c.httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	}
	return oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: accessToken,
		TokenType:   "Bearer",
	}))
}

// Query posts a GraphQL query and returns its data field
func (c *Client) Query(ctx context.Context, accessToken string, query string) (gjson.Result, error) {
	payload, err := json.Marshal(map[string]string{"query": query})
	if err != nil {
		return gjson.Result{}, fmt.Errorf("failed to encode query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return gjson.Result{}, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.authorizedClient(ctx, accessToken).Do(req)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("failed to read response body: %w", err)
	}

	if !gjson.ValidBytes(body) {
		return gjson.Result{}, fmt.Errorf("%w: status %d, body is not JSON", ErrUnexpectedResponse, resp.StatusCode)
	}

	if errs := gjson.GetBytes(body, "errors"); errs.IsArray() {
		if list := errs.Array(); len(list) > 0 {
			return gjson.Result{}, &APIError{Message: list[0].Get("message").String()}
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return gjson.Result{}, fmt.Errorf("%w: status %d", ErrUnexpectedResponse, resp.StatusCode)
	}

	data := gjson.GetBytes(body, "data")
	if !data.IsObject() {
		return gjson.Result{}, fmt.Errorf("%w: missing data", ErrUnexpectedResponse)
	}

	return data, nil
}
