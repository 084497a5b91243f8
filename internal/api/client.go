// Package api implements the HTTP client for the interview backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/nvoloshin/prepterm/internal/model"
)

const defaultTimeout = 60 * time.Second

// Client talks to the interview backend. Authenticated requests carry the
// bearer token; anonymous requests are keyed by the local session id.
type Client struct {
	baseURL         string
	token           string
	refreshToken    string
	onTokens        func(model.TokenPair)
	sessionID       string
	region          string
	experienceYears int
	httpClient      *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithToken attaches a bearer token to every request.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithSessionID attaches the anonymous session id to every request.
func WithSessionID(id string) Option {
	return func(c *Client) { c.sessionID = id }
}

// WithRefresh enables transparent token refresh: a 401 response triggers one
// refresh-token exchange and a single retry. onTokens receives each new pair
// so the caller can persist it.
func WithRefresh(refreshToken string, onTokens func(model.TokenPair)) Option {
	return func(c *Client) {
		c.refreshToken = refreshToken
		c.onTokens = onTokens
	}
}

// WithProfile attaches the user profile used for peer comparison cohorts.
func WithProfile(region string, experienceYears int) Option {
	return func(c *Client) {
		c.region = region
		c.experienceYears = experienceYears
	}
}

// WithHTTPClient overrides the underlying HTTP client, for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient constructs a backend client for the given base URL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	status, err := c.send(ctx, method, path, payload, out)
	if status != http.StatusUnauthorized || c.refreshToken == "" || path == refreshPath {
		return err
	}
	if rerr := c.exchangeRefreshToken(ctx); rerr != nil {
		return err
	}
	_, err = c.send(ctx, method, path, payload, out)
	return err
}

func (c *Client) exchangeRefreshToken(ctx context.Context) error {
	req := refreshRequest{RefreshToken: c.refreshToken}
	var resp tokenResponse
	if _, err := c.send(ctx, http.MethodPost, refreshPath, req, &resp); err != nil {
		return err
	}
	c.token = resp.AccessToken
	if resp.RefreshToken != "" {
		c.refreshToken = resp.RefreshToken
	}
	if c.onTokens != nil {
		c.onTokens(model.TokenPair{Access: c.token, Refresh: c.refreshToken})
	}
	return nil
}

func (c *Client) send(ctx context.Context, method, path string, payload, out any) (int, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return 0, fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if c.sessionID != "" {
		req.Header.Set("X-Session-ID", c.sessionID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			// Best-effort body close.
			_ = cerr
		}
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp.StatusCode, fmt.Errorf("backend error: status %d: %s", resp.StatusCode, truncateBody(data))
	}
	if out == nil {
		return resp.StatusCode, nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return resp.StatusCode, fmt.Errorf("failed to decode response: %w", err)
	}
	return resp.StatusCode, nil
}

func truncateBody(data []byte) string {
	const limit = 256
	if len(data) > limit {
		return string(data[:limit]) + "..."
	}
	return string(data)
}
