// Package github implements the HTTPClient port used to reach the GitHub REST API
// and to download release assets.
package github

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.trai.ch/hassdeps/internal/build"
	"go.trai.ch/hassdeps/internal/core/domain"
	"go.trai.ch/zerr"
)

const acceptHeader = "application/vnd.github+json"

// Client implements ports.HTTPClient on top of net/http.
type Client struct {
	httpClient *http.Client
	apiHost    string
	token      string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

// WithToken authenticates requests sent to the API host.
func WithToken(token string) Option {
	return func(cl *Client) {
		cl.token = token
	}
}

// NewClient creates a Client for the API rooted at apiURL.
func NewClient(apiURL string, timeout time.Duration, opts ...Option) *Client {
	if timeout <= 0 {
		timeout = domain.DefaultHTTPTimeout
	}

	c := &Client{
		httpClient: &http.Client{Timeout: timeout},
	}
	if u, err := url.Parse(apiURL); err == nil {
		c.apiHost = u.Host
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetJSON fetches rawURL and decodes a 2xx response body into v.
func (c *Client) GetJSON(ctx context.Context, rawURL string, v any) (int, error) {
	status, body, err := c.get(ctx, rawURL)
	if err != nil {
		return 0, err
	}
	if status < 200 || status > 299 {
		return status, nil
	}

	if err := json.Unmarshal(body, v); err != nil {
		return status, zerr.With(errors.Join(domain.ErrSourceUnavailable, zerr.Wrap(err, "failed to decode response")), "url", rawURL)
	}
	return status, nil
}

// GetBytes fetches rawURL and returns the response body as is.
func (c *Client) GetBytes(ctx context.Context, rawURL string) (int, []byte, error) {
	return c.get(ctx, rawURL)
}

func (c *Client) get(ctx context.Context, rawURL string) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return 0, nil, zerr.With(errors.Join(domain.ErrSourceUnavailable, zerr.Wrap(err, "failed to build request")), "url", rawURL)
	}
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("User-Agent", "hass-deps/"+build.Version)
	// Release downloads redirect to other hosts; the token stays with the API.
	if c.token != "" && req.URL.Host == c.apiHost {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, zerr.With(errors.Join(domain.ErrSourceUnavailable, zerr.Wrap(err, "request failed")), "url", rawURL)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, zerr.With(errors.Join(domain.ErrSourceUnavailable, zerr.Wrap(err, "failed to read response")), "url", rawURL)
	}

	return resp.StatusCode, body, nil
}
