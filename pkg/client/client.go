// Package client is the Go data layer for the issue tracker API. It adds
// the behavior board frontends rely on: request timeouts with a distinct
// unavailable error, bounded retries for reads, and a short-lived cache
// that is invalidated by writes.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const (
	defaultTimeout    = 10 * time.Second
	defaultRetries    = 2
	defaultRetryDelay = 1 * time.Second
	cacheTTL          = 30 * time.Second

	issuesCacheKey       = "issues"
	projectsCacheKey     = "projects"
	commentsCacheKeyBase = "comments:"
)

// ErrBackendUnavailable is returned when the API does not respond within
// the request timeout, as opposed to responding with an error.
var ErrBackendUnavailable = errors.New("backend is not responding")

// APIError is an error response from the API
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d %s: %s", e.StatusCode, e.Code, e.Message)
}

type errorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Client talks to the issue tracker API
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      *gocache.Cache
	retries    int
	retryDelay time.Duration
}

// Option customizes the client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// WithTimeout sets the per-request timeout
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = timeout }
}

// WithRetries sets how many times reads are retried and the delay between
// attempts
func WithRetries(retries int, delay time.Duration) Option {
	return func(c *Client) {
		c.retries = retries
		c.retryDelay = delay
	}
}

// New creates a client for the API at baseURL
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		cache:      gocache.New(cacheTTL, cacheTTL),
		retries:    defaultRetries,
		retryDelay: defaultRetryDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// get performs a GET with retries and decodes the response into out
func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	var lastErr error
	for attempt := 0; attempt <= c.retries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(c.retryDelay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		lastErr = c.do(ctx, http.MethodGet, path, nil, out)
		if lastErr == nil {
			return nil
		}
		// Client errors are definitive, only transport faults and
		// server errors are worth retrying
		var apiErr *APIError
		if errors.As(lastErr, &apiErr) && apiErr.StatusCode < 500 {
			return lastErr
		}
	}
	return lastErr
}

// do performs one HTTP exchange
func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
		}
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var envelope errorEnvelope
		if decodeErr := json.NewDecoder(resp.Body).Decode(&envelope); decodeErr == nil {
			apiErr.Code = envelope.Error.Code
			apiErr.Message = envelope.Error.Message
		}
		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func (c *Client) cacheGet(key string, out interface{}) bool {
	cached, ok := c.cache.Get(key)
	if !ok {
		return false
	}
	payload, ok := cached.([]byte)
	if !ok {
		return false
	}
	return json.Unmarshal(payload, out) == nil
}

func (c *Client) cacheSet(key string, value interface{}) {
	payload, err := json.Marshal(value)
	if err != nil {
		return
	}
	c.cache.Set(key, payload, cacheTTL)
}
