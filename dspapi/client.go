// Package dspapi talks to the DSP-API: it retrieves the ontologies, lists and
// licenses of a project and submits graphs to the SHACL validation endpoint.
//
// GET requests are retried on transient failures. The validation request is
// never retried; any failure there is fatal.
package dspapi

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const defaultMaxResponseSize = 64 * 1024 * 1024 // 64MB

// Client is a DSP-API client bound to one server.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	shaclClient *http.Client
	retryConfig RetryConfig
	maxBody     int64
	logger      *slog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets the HTTP client used for GET requests.
func WithHTTPClient(c *http.Client) ClientOption {
	return func(client *Client) {
		client.httpClient = c
	}
}

// WithSHACLTimeout sets the timeout of the validation request.
func WithSHACLTimeout(d time.Duration) ClientOption {
	return func(client *Client) {
		client.shaclClient = &http.Client{Timeout: d}
	}
}

// WithRetryConfig sets the retry configuration.
func WithRetryConfig(cfg RetryConfig) ClientOption {
	return func(client *Client) {
		client.retryConfig = cfg
	}
}

// WithMaxResponseSize caps the number of bytes read from a response body.
func WithMaxResponseSize(n int64) ClientOption {
	return func(client *Client) {
		client.maxBody = n
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(client *Client) {
		client.logger = logger
	}
}

// NewClient creates a client for the API at baseURL, e.g. http://0.0.0.0:3333.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		httpClient:  &http.Client{Timeout: 60 * time.Second},
		shaclClient: &http.Client{Timeout: 5 * time.Minute},
		retryConfig: DefaultRetryConfig(),
		maxBody:     defaultMaxResponseSize,
		logger:      slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	if c.maxBody <= 0 {
		c.maxBody = defaultMaxResponseSize
	}

	return c
}

// BaseURL returns the server the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) endpoint(path string) string {
	return c.baseURL + "/" + strings.TrimPrefix(path, "/")
}

// get fetches url with retry. label names the request in error messages.
func (c *Client) get(ctx context.Context, url, accept, label string) ([]byte, error) {
	var lastErr error

	for attempt := 1; attempt <= c.retryConfig.MaxAttempts; attempt++ {
		body, err := c.doGet(ctx, url, accept, label)
		if err == nil {
			return body, nil
		}

		lastErr = err

		if IsFatal(err) {
			c.logger.Error("API request failed", "request", label, "error", err)
			return nil, err
		}

		if attempt < c.retryConfig.MaxAttempts {
			backoff := c.retryConfig.backoff(attempt)
			c.logger.Debug("Request failed, retrying",
				"request", label,
				"attempt", attempt,
				"max_attempts", c.retryConfig.MaxAttempts,
				"backoff", backoff,
				"error", err)

			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}
	}

	c.logger.Error("API request failed after retries", "request", label, "error", lastErr)
	return nil, lastErr
}

func (c *Client) doGet(ctx context.Context, url, accept, label string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, NewFatalError(fmt.Errorf("create HTTP request: %w", err))
	}
	if accept != "" {
		req.Header.Set("Accept", accept)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, NewTransientError(fmt.Errorf("HTTP request failed: %w", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return nil, NewTransientError(fmt.Errorf("read response body: %w", err))
	}
	if int64(len(body)) > c.maxBody {
		return nil, NewFatalError(&ResponseTooLargeError{Request: "GET " + label, Limit: c.maxBody})
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, classifyHTTPError("GET "+label, resp.StatusCode, body)
	}
	return body, nil
}
