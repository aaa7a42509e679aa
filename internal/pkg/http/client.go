package http

import (
	"context"
	"encoding/json"
	"fmt"
	nethttp "net/http"
	"time"
)

// Client is a generic HTTP client for communicating with collaborator services
type Client struct {
	BaseURL    string
	HTTPClient *nethttp.Client
}

// NewClient creates a new HTTP client
func NewClient(serviceURL string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		BaseURL: serviceURL,
		HTTPClient: &nethttp.Client{
			Timeout: timeout,
		},
	}
}

// GetJSON performs a GET request and decodes the JSON response into result
func (c *Client) GetJSON(ctx context.Context, endpoint string, result interface{}) error {
	req, err := nethttp.NewRequestWithContext(ctx, nethttp.MethodGet, c.BaseURL+endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}
