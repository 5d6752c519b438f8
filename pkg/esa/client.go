// Package esa provides a typed client for the esa.io team-wiki REST API.
// It maps each endpoint to a method, injects bearer-token authentication,
// encodes query and body payloads per HTTP verb, and transparently retries
// rate-limited exchanges using the server's Retry-After hint.
package esa

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const (
	// defaultBaseURL is the fixed origin of the hosted esa API.
	defaultBaseURL = "https://api.esa.io"

	// apiVersion prefixes every endpoint path.
	apiVersion = "/v1"

	// teamPlaceholder is the literal token in path templates that is
	// replaced by the effective team name before dispatch.
	teamPlaceholder = ":team_name"

	// defaultRetryAfter is the wait applied when a 429 response carries
	// no usable Retry-After header.
	defaultRetryAfter = 60 * time.Second
)

// Client is a session against the esa API. It holds the access token and
// an optional default team that team-scoped methods fall back to when no
// team is passed explicitly. A Client is safe for concurrent use; the
// default team is read once at the start of each call, so a concurrent
// SetDefaultTeam does not affect calls already in flight.
type Client struct {
	token      string
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger

	// rateLimitRetries bounds the number of wait-and-retry cycles per
	// call. Zero means retry until the server stops rate limiting.
	rateLimitRetries uint

	// retryDelay maps the server's Retry-After hint to the actual wait.
	// Tests use it to compress waits to something measurable.
	retryDelay func(time.Duration) time.Duration

	mu          sync.Mutex
	defaultTeam string
}

// ClientOption configures a Client at construction time.
type ClientOption func(*Client)

// WithDefaultTeam sets the team that team-scoped methods use when no team
// is passed explicitly.
func WithDefaultTeam(team string) ClientOption {
	return func(c *Client) {
		c.defaultTeam = team
	}
}

// WithHTTPClient replaces the underlying HTTP client, for example to set
// timeouts or a custom transport.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger attaches a zerolog logger for per-exchange diagnostics.
// Logging is advisory; the default logger discards everything.
func WithLogger(logger zerolog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRateLimitRetries bounds how many times a single call waits and
// retries on 429 before the rate-limit response surfaces as an APIError.
// Zero retries until the server stops rate limiting, which matches the
// service's documented client behavior.
func WithRateLimitRetries(n uint) ClientOption {
	return func(c *Client) {
		c.rateLimitRetries = n
	}
}

// WithRetryDelayFunc overrides how the server's Retry-After hint maps to
// the actual wait between rate-limit retries.
func WithRetryDelayFunc(f func(suggested time.Duration) time.Duration) ClientOption {
	return func(c *Client) {
		if f != nil {
			c.retryDelay = f
		}
	}
}

// NewClient creates a Client authenticated with the given access token.
// The API origin is fixed; only behavior is configurable via options.
func NewClient(token string, opts ...ClientOption) (*Client, error) {
	if token == "" {
		return nil, fmt.Errorf("esa: access token is required")
	}

	c := &Client{
		token:      token,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{},
		logger:     zerolog.Nop(),
		retryDelay: func(suggested time.Duration) time.Duration { return suggested },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// SetDefaultTeam changes the team that team-scoped methods fall back to.
// The update applies to calls issued afterwards; in-flight calls keep the
// team they resolved at start.
func (c *Client) SetDefaultTeam(team string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.defaultTeam = team
}

// DefaultTeam returns the currently configured default team.
func (c *Client) DefaultTeam() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.defaultTeam
}

// resolveTeam returns the effective team for one call: the explicit
// override when present, otherwise the session default.
func (c *Client) resolveTeam(override string) string {
	if override != "" {
		return override
	}
	return c.DefaultTeam()
}
