// Package platform implements the HTTP surface towards commerce
// platforms: delivering queued write requests and minting tokens.
package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/retailpoint/possync/internal/models"
	"github.com/retailpoint/possync/pkg/api"
)

// DeliveryResult carries what the platform reported back for an accepted
// write. PlatformID stays empty when the platform does not echo an ID.
type DeliveryResult struct {
	PlatformID string
}

// Client is the HTTP client for one commerce platform
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a new platform client
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// carry the bearer token across redirects
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// Deliver sends a queued request to its target endpoint using the given
// access token
func (c *Client) Deliver(ctx context.Context, token string, req *models.QueuedRequest) (*DeliveryResult, error) {
	if req.Method == "" || req.Target == "" {
		return nil, fmt.Errorf("%w: request must have method and target", ErrInvalid)
	}

	var resp api.DeliveryResponse
	path := "/" + strings.TrimPrefix(req.Target, "/")
	if err := c.doRaw(ctx, req.Method, path, token, req.Payload, &resp); err != nil {
		return nil, fmt.Errorf("delivery request failed: %w", err)
	}

	return &DeliveryResult{PlatformID: resp.ID}, nil
}

// RefreshToken exchanges a refresh credential at the token endpoint
func (c *Client) RefreshToken(ctx context.Context, req api.RefreshRequest) (*api.TokenResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal refresh request: %w", err)
	}

	var resp api.TokenResponse
	if err := c.doRaw(ctx, http.MethodPost, "/oauth/token", "", body, &resp); err != nil {
		return nil, fmt.Errorf("token refresh request failed: %w", err)
	}
	return &resp, nil
}

// doRaw performs an HTTP request with an already-serialized JSON body
func (c *Client) doRaw(ctx context.Context, method, path, token string, body []byte, result any) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if len(body) > 0 {
		bodyReader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if len(body) > 0 {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Message != "" {
			return &APIError{StatusCode: resp.StatusCode, Message: errResp.Message}
		}
		return &APIError{StatusCode: resp.StatusCode, Message: string(respBody)}
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
