// Package retry provides a configurable retry mechanism for operations that may
// fail temporarily or need to be repeated until an expected state is observed.
// It wraps the retry-go package from Avast and exposes a simple interface with
// functional options.
//
// Exponential backoff is the default delay strategy. Polling loops that must
// wait a constant interval between observations use WithFixedDelay, and
// WithRetryIf restricts which errors are worth another attempt.
//
// Basic usage:
//
//	r := retry.New()
//	err := r.Execute(ctx, func() error {
//	    return someOperation()
//	})
//
// Bounded polling:
//
//	r := retry.New(
//	    retry.WithAttempts(21),
//	    retry.WithDelay(1500*time.Millisecond),
//	    retry.WithFixedDelay(),
//	    retry.WithRetryIf(func(err error) bool { return errors.Is(err, errNotYet) }),
//	)
package retry

import (
	"context"
	"time"

	retry "github.com/avast/retry-go/v4"
)

// Retry defines the interface for retry operations.
type Retry interface {
	// Execute runs operation until it succeeds, the configured number of
	// attempts is exhausted, the retry predicate rejects the error, or ctx is
	// done. It returns nil on success and the last error otherwise (or every
	// error joined when WithLastErrorOnly(false) is set).
	Execute(ctx context.Context, operation func() error) error
}

// Timer produces the channels the retrier waits on between attempts.
// It matches the After method of time-like clocks so tests can inject
// a mock clock.
type Timer interface {
	After(d time.Duration) <-chan time.Time
}

// config holds internal settings for the retry mechanism.
type config struct {
	attempts    uint                    // maximum number of attempts, including the first one
	delay       time.Duration           // base delay between attempts
	maxDelay    time.Duration           // maximum delay between attempts
	lastErrOnly bool                    // whether to return only the last error
	fixedDelay  bool                    // wait exactly delay between attempts instead of backing off
	retryIf     func(error) bool        // decides whether an error deserves another attempt
	onRetry     func(n uint, err error) // called before waiting for attempt n+1
	timer       Timer                   // source of the wait channels, nil means real time
}

// Option defines a functional option for configuring the retry mechanism.
type Option func(*config)

// retrier implements the Retry interface using the retry-go package.
type retrier struct {
	cfg config
}

// Compile-time assertion that retrier implements Retry interface
var _ Retry = (*retrier)(nil)

// New creates and returns a Retry implementation configured with
// the provided options.
//
// Default configuration:
//   - attempts:    3 (1 initial attempt + 2 retries)
//   - delay:       1 second
//   - maxDelay:    5 seconds
//   - lastErrOnly: true
//   - delay type:  exponential backoff
//   - retryIf:     every error is retried
func New(opts ...Option) Retry {
	cfg := config{
		attempts:    3,
		delay:       1 * time.Second,
		maxDelay:    5 * time.Second,
		lastErrOnly: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &retrier{
		cfg: cfg,
	}
}

// Execute implements the Retry interface.
func (r *retrier) Execute(ctx context.Context, operation func() error) error {
	delayType := retry.BackOffDelay
	if r.cfg.fixedDelay {
		delayType = retry.FixedDelay
	}

	options := []retry.Option{
		retry.Attempts(r.cfg.attempts),
		retry.Delay(r.cfg.delay),
		retry.MaxDelay(r.cfg.maxDelay),
		retry.DelayType(delayType),
		retry.LastErrorOnly(r.cfg.lastErrOnly),
		retry.Context(ctx),
	}

	if r.cfg.retryIf != nil {
		options = append(options, retry.RetryIf(r.cfg.retryIf))
	}

	if r.cfg.onRetry != nil {
		options = append(options, retry.OnRetry(r.cfg.onRetry))
	}

	if r.cfg.timer != nil {
		options = append(options, retry.WithTimer(r.cfg.timer))
	}

	return retry.Do(operation, options...)
}

// WithAttempts sets the maximum number of attempts (including the initial attempt).
// Default: 3.
func WithAttempts(n uint) Option {
	return func(c *config) {
		c.attempts = n
	}
}

// WithDelay sets the base delay between attempts. With exponential backoff
// this is the first delay; with WithFixedDelay it is every delay.
// Default: 1 second.
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// WithMaxDelay caps the delay between attempts.
// Default: 5 seconds.
func WithMaxDelay(d time.Duration) Option {
	return func(c *config) {
		c.maxDelay = d
	}
}

// WithLastErrorOnly sets whether to return only the last error.
// Default: true.
func WithLastErrorOnly(b bool) Option {
	return func(c *config) {
		c.lastErrOnly = b
	}
}

// WithFixedDelay makes the retrier wait exactly the configured delay between
// attempts instead of backing off exponentially.
func WithFixedDelay() Option {
	return func(c *config) {
		c.fixedDelay = true
	}
}

// WithRetryIf sets the predicate deciding whether an error is retried.
// Errors rejected by the predicate end Execute immediately.
func WithRetryIf(f func(error) bool) Option {
	return func(c *config) {
		c.retryIf = f
	}
}

// WithOnRetry registers a callback invoked after each failed attempt that
// will be retried. n is the zero-based number of the failed attempt.
func WithOnRetry(f func(n uint, err error)) Option {
	return func(c *config) {
		c.onRetry = f
	}
}

// WithTimer replaces the real-time wait between attempts.
func WithTimer(t Timer) Option {
	return func(c *config) {
		c.timer = t
	}
}
