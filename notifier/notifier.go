package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/aitsys/crowdin-handover/models"
)

// ErrHandoverRejected is returned when the notifier answers with a non-2xx status
var ErrHandoverRejected = errors.New("handover rejected")

// Client posts handover payloads to the Pycord Support API
type Client struct {
	uri        string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a notifier client. A nil httpClient uses http.DefaultClient.
func NewClient(uri, apiKey string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		uri:        uri,
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

// Handover sends the payload with the AITSYS authorization scheme
func (c *Client) Handover(ctx context.Context, payload models.HandoverPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode handover payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.uri, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build handover request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "AITSYS "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("handover request failed: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: status %d", ErrHandoverRejected, resp.StatusCode)
	}
	return nil
}
