// Package http implements the ledger endpoints consumed by ledgerwatch over
// the session-authenticated HTTP API of the ledger server.
//
// The client never retries: retry policy belongs to its callers. Every
// failure is reported as either a ledger.ErrTransport (no usable response) or
// a *ledger.ApplicationError (the server rejected the request).
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/gabapcia/ledgerwatch/internal/ledger"
	"github.com/gabapcia/ledgerwatch/internal/pkg/logger"
	"github.com/gabapcia/ledgerwatch/internal/pkg/telemetry"
	transporthttp "github.com/gabapcia/ledgerwatch/internal/pkg/transport/http"
)

// RequestIDHeader carries the id generated for every request.
const RequestIDHeader = "X-Request-ID"

const loginPath = "/login"

// ErrLoginRejected is returned when the server keeps the client on the login
// page after submitting credentials.
var ErrLoginRejected = errors.New("login rejected")

type errorBody struct {
	Message string `json:"message"`
}

type instruments struct {
	requests metric.Int64Counter
	duration metric.Float64Histogram
}

type client struct {
	baseURL *url.URL
	conn    *retryablehttp.Client
	limiter *rate.Limiter
	tracer  trace.Tracer
	metrics instruments
}

type config struct {
	timeout time.Duration
	limit   rate.Limit
	burst   int
}

type Option func(*config)

// WithTimeout bounds a single request. Default: 5 seconds.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// WithRateLimit caps outgoing requests to rps per second. A non-positive rps
// disables the limiter.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *config) {
		if rps <= 0 {
			c.limit = rate.Inf
			return
		}
		c.limit, c.burst = rate.Limit(rps), max(burst, 1)
	}
}

// NewClient returns a client for the ledger served at baseURL. The client
// keeps session cookies, so Login must be called first on servers that
// require a session.
func NewClient(baseURL string, opts ...Option) (*client, error) {
	cfg := config{
		timeout: 5 * time.Second,
		limit:   rate.Inf,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	u, err := url.Parse(strings.TrimSuffix(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid ledger url: %w", err)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}

	meter := telemetry.Meter()
	requests, err := meter.Int64Counter("ledgerwatch.ledger.requests",
		metric.WithDescription("Requests sent to the ledger, by operation and outcome."),
	)
	if err != nil {
		return nil, err
	}

	duration, err := meter.Float64Histogram("ledgerwatch.ledger.request.duration",
		metric.WithDescription("Duration of ledger requests."),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	return &client{
		baseURL: u,
		conn: transporthttp.NewClient(
			transporthttp.WithTimeout(cfg.timeout),
			transporthttp.WithRetryMax(0),
			transporthttp.WithCookieJar(jar),
			transporthttp.WithPassthroughErrors(),
		),
		limiter: rate.NewLimiter(cfg.limit, cfg.burst),
		tracer:  telemetry.Tracer(),
		metrics: instruments{requests: requests, duration: duration},
	}, nil
}

// Login opens a session with the given credentials.
func (c *client) Login(ctx context.Context, username, password string) error {
	form := url.Values{"username": {username}, "password": {password}}
	res, err := c.send(ctx, "login", http.MethodPost, loginPath, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusBadRequest {
		return applicationError(res)
	}

	if res.Request.URL.Path == loginPath {
		return fmt.Errorf("%w for user %q", ErrLoginRejected, username)
	}

	logger.Info(ctx, "ledger session opened", "ledger.user", username)
	return nil
}

// do sends a JSON request and decodes a successful response into out.
func (c *client) do(ctx context.Context, operation, method, path string, in, out any) error {
	var (
		body        io.Reader
		contentType string
	)
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body, contentType = bytes.NewReader(data), "application/json"
	}

	res, err := c.send(ctx, operation, method, path, contentType, body)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return applicationError(res)
	}

	// an expired session lands on the login page instead of the resource
	if res.Request.URL.Path == loginPath && path != loginPath {
		return &ledger.ApplicationError{StatusCode: http.StatusUnauthorized, Message: "login required"}
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %s %s: %w", ledger.ErrMalformedResponse, method, path, err)
	}

	return nil
}

// send performs one traced, rate limited request. The caller closes the body.
func (c *client) send(ctx context.Context, operation, method, path, contentType string, body io.Reader) (*http.Response, error) {
	ctx, span := c.tracer.Start(ctx, "ledger."+operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.path", path),
		),
	)
	defer span.End()

	start := time.Now()
	outcome := "ok"
	defer func() {
		attrs := metric.WithAttributes(
			attribute.String("operation", operation),
			attribute.String("outcome", outcome),
		)
		c.metrics.requests.Add(ctx, 1, attrs)
		c.metrics.duration.Record(ctx, time.Since(start).Seconds(), attrs)
	}()

	if err := c.limiter.Wait(ctx); err != nil {
		outcome = "transport_error"
		span.RecordError(err)
		span.SetStatus(codes.Error, "rate limiter")
		return nil, fmt.Errorf("%w: %s %s: %w", ledger.ErrTransport, method, path, err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, c.baseURL.JoinPath(path).String(), body)
	if err != nil {
		return nil, err
	}

	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeader, requestID)
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	span.SetAttributes(attribute.String("http.request.id", requestID))

	res, err := c.conn.Do(req)
	if err != nil {
		outcome = "transport_error"
		span.RecordError(err)
		span.SetStatus(codes.Error, "no response")
		logger.Debug(ctx, "ledger request failed", "ledger.operation", operation, "http.request.id", requestID, "error", err)
		return nil, fmt.Errorf("%w: %s %s: %w", ledger.ErrTransport, method, path, err)
	}

	span.SetAttributes(attribute.Int("http.response.status_code", res.StatusCode))
	if res.StatusCode >= http.StatusBadRequest {
		outcome = "rejected"
		span.SetStatus(codes.Error, res.Status)
	}

	return res, nil
}

// applicationError reads the server message of a rejecting response. A body
// without a message still yields an application failure.
func applicationError(res *http.Response) error {
	var body errorBody
	_ = json.NewDecoder(io.LimitReader(res.Body, 64<<10)).Decode(&body)

	return &ledger.ApplicationError{StatusCode: res.StatusCode, Message: body.Message}
}
