// Package http provides a configurable HTTP client built on retryablehttp from
// HashiCorp. It exposes functional options for timeouts, retry behavior and
// session cookies.
package http

import (
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// config holds internal settings for the HTTP client.
type config struct {
	timeout      time.Duration  // maximum duration for a single HTTP request
	retryWaitMin time.Duration  // minimum delay between retry attempts
	retryWaitMax time.Duration  // maximum delay between retry attempts
	retryMax     int            // maximum number of retry attempts
	jar          http.CookieJar // session cookie storage, nil disables cookies
	passthrough  bool           // hand the last response back instead of a "giving up" error
}

// Option defines a functional option for configuring the HTTP client.
type Option func(*config)

// NewClient creates and returns a retryablehttp.Client configured with
// the provided options. If no options are given, default values are used:
//
//   - timeout:      5 seconds
//   - retryWaitMin: 1 second
//   - retryWaitMax: 5 seconds
//   - retryMax:     2 retries
//   - cookies:      disabled
//   - passthrough:  disabled
func NewClient(opts ...Option) *retryablehttp.Client {
	cfg := config{
		timeout:      5 * time.Second,
		retryWaitMin: 1 * time.Second,
		retryWaitMax: 5 * time.Second,
		retryMax:     2,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	client := retryablehttp.NewClient()
	client.Logger = nil
	client.HTTPClient.Timeout = cfg.timeout
	client.HTTPClient.Jar = cfg.jar
	client.RetryWaitMin = cfg.retryWaitMin
	client.RetryWaitMax = cfg.retryWaitMax
	client.RetryMax = cfg.retryMax
	if cfg.passthrough {
		client.ErrorHandler = retryablehttp.PassthroughErrorHandler
	}
	return client
}

// WithTimeout sets the maximum duration allowed for a single HTTP request.
// Default: 5 seconds.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// WithRetryWaitMin sets the minimum delay between retry attempts.
// Default: 1 second.
func WithRetryWaitMin(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMin = d
	}
}

// WithRetryWaitMax sets the maximum delay between retry attempts.
// Default: 5 seconds.
func WithRetryWaitMax(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMax = d
	}
}

// WithRetryMax sets the maximum number of retry attempts for failed requests.
// Zero performs exactly one attempt.
// Default: 2 retries.
func WithRetryMax(n int) Option {
	return func(c *config) {
		c.retryMax = n
	}
}

// WithCookieJar stores and replays session cookies across requests.
func WithCookieJar(jar http.CookieJar) Option {
	return func(c *config) {
		c.jar = jar
	}
}

// WithPassthroughErrors makes the client return the last response as-is
// once retries are exhausted, so callers can read rejection bodies
// (e.g. a 500 carrying a message) instead of receiving a closed body.
func WithPassthroughErrors() Option {
	return func(c *config) {
		c.passthrough = true
	}
}
