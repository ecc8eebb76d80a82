// Package http provides HTTP implementations of the flightbag service
// interfaces against aviationweather.gov, aviationapi.com, and the FAA
// d-TPP chart repository.
package http

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/flightbag/flightbag"
)

// DefaultTimeout is the default timeout for API requests.
const DefaultTimeout = 10 * time.Second

// defaultHostRPS limits requests per host. The CLI makes at most a few
// requests per invocation; the limiter exists so identifier-fallback
// retries stay polite.
const defaultHostRPS = 4

// userAgent identifies the tool to the upstream APIs, which reject
// anonymous clients.
const userAgent = "flightbag/1.0"

// Client wraps an http.Client with the request conventions shared by
// the API services: a common User-Agent, a request timeout, and a
// per-host rate limiter.
type Client struct {
	httpClient *http.Client
	timeout    time.Duration
	limiter    *HostLimiter
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the timeout for API requests.
// Defaults to DefaultTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithHostLimit sets the per-host request rate.
func WithHostLimit(rps float64) Option {
	return func(c *Client) {
		c.limiter = NewHostLimiter(rps)
	}
}

// NewClient creates a Client for the API services.
func NewClient(opts ...Option) *Client {
	c := &Client{
		timeout: DefaultTimeout,
		limiter: NewHostLimiter(defaultHostRPS),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.httpClient = &http.Client{
		Timeout: c.timeout,
	}

	return c
}

// get performs a GET against the URL and returns the response body and
// status code. Transport failures map to EUNAVAILABLE; non-2xx statuses
// are returned to the caller, which decides whether they mean "no data"
// or an upstream fault.
func (c *Client) get(ctx context.Context, rawURL string) ([]byte, int, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, 0, flightbag.Errorf(flightbag.EINVALID, "invalid URL %q", rawURL)
	}
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx, u.Host); err != nil {
			return nil, 0, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, flightbag.Errorf(flightbag.EUNAVAILABLE, "request to %s failed: %v", u.Host, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, flightbag.Errorf(flightbag.EUNAVAILABLE, "reading response from %s: %v", u.Host, err)
	}

	return body, resp.StatusCode, nil
}
