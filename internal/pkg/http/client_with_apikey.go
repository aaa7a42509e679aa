package http

import (
	"bytes"
	"context"
	"fmt"
	nethttp "net/http"
	"time"
)

const (
	// DefaultTimeout for HTTP requests
	DefaultTimeout = 30 * time.Second
	// APIKeyHeader is the header name for API key
	APIKeyHeader = "X-API-Key"
)

// APIKeyClient is an HTTP client with API key authentication
type APIKeyClient struct {
	client  *nethttp.Client
	apiKey  string
	baseURL string
}

// NewAPIKeyClient creates a new HTTP client with API key authentication
func NewAPIKeyClient(baseURL, apiKey string) *APIKeyClient {
	return &APIKeyClient{
		client: &nethttp.Client{
			Timeout: DefaultTimeout,
		},
		apiKey:  apiKey,
		baseURL: baseURL,
	}
}

// SetTimeout sets the HTTP client timeout
func (c *APIKeyClient) SetTimeout(timeout time.Duration) {
	c.client.Timeout = timeout
}

// PutBytes performs a PUT request with a raw body and content type
func (c *APIKeyClient) PutBytes(ctx context.Context, endpoint string, body []byte, contentType string) error {
	req, err := nethttp.NewRequestWithContext(ctx, nethttp.MethodPut, c.baseURL+endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set(APIKeyHeader, c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	return nil
}

// Delete performs a DELETE request with API key authentication
func (c *APIKeyClient) Delete(ctx context.Context, endpoint string) error {
	req, err := nethttp.NewRequestWithContext(ctx, nethttp.MethodDelete, c.baseURL+endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set(APIKeyHeader, c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	return nil
}
