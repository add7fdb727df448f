// Package notify implements the single transient notification slot.
//
// At most one toast is visible at any instant. Showing a new toast stops the
// dismissal timer of the previous one before arming its own, so exactly one
// dismissal timer is ever pending. Notifications never fail: the center is
// the last resort for reporting the failures of every other component.
package notify

import (
	"context"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
)

// DefaultDuration is how long a toast stays visible unless superseded.
const DefaultDuration = 3000 * time.Millisecond

// Severity classifies a toast.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	default:
		return "info"
	}
}

// Toast is an ephemeral message bounded by the dismissal timer.
type Toast struct {
	ID       string    `json:"id"`
	Text     string    `json:"text"`
	Severity Severity  `json:"severity"`
	ShownAt  time.Time `json:"shown_at"`
}

// Display renders and removes toasts. Calls are serialized by the Center;
// implementations must not call back into it.
type Display interface {
	ShowToast(ctx context.Context, toast Toast)
	HideToast(ctx context.Context, id string)
}

// Notifier is the reporting surface used by the other components.
type Notifier interface {
	Notify(ctx context.Context, text string, severity Severity)
	Info(ctx context.Context, text string)
	Error(ctx context.Context, text string)
}

// Center owns the visible toast and its dismissal timer. mu guards the toast
// state only; display calls run under displayMu, taken before mu is released
// so the display sees changes in the order they were made.
type Center struct {
	mu        sync.Mutex
	displayMu sync.Mutex
	current   *Toast
	timer    *clock.Timer
	display  Display
	clock    clock.Clock
	duration time.Duration
}

var _ Notifier = (*Center)(nil)

type config struct {
	clock    clock.Clock
	duration time.Duration
}

type Option func(*config)

func New(display Display, opts ...Option) *Center {
	cfg := config{
		clock:    clock.New(),
		duration: DefaultDuration,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Center{
		display:  display,
		clock:    cfg.clock,
		duration: cfg.duration,
	}
}

// WithClock replaces the wall clock driving the dismissal timer.
func WithClock(c clock.Clock) Option {
	return func(cfg *config) {
		cfg.clock = c
	}
}

// WithDuration sets how long a toast stays visible.
func WithDuration(d time.Duration) Option {
	return func(cfg *config) {
		cfg.duration = d
	}
}

// Notify shows text immediately, replacing the visible toast and cancelling
// its pending dismissal.
func (c *Center) Notify(ctx context.Context, text string, severity Severity) {
	c.mu.Lock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}

	toast := Toast{
		ID:       uuid.NewString(),
		Text:     text,
		Severity: severity,
		ShownAt:  c.clock.Now(),
	}
	c.current = &toast

	dismissCtx := context.WithoutCancel(ctx)
	c.timer = c.clock.AfterFunc(c.duration, func() {
		c.dismiss(dismissCtx, toast.ID)
	})

	c.displayMu.Lock()
	c.mu.Unlock()
	defer c.displayMu.Unlock()

	c.display.ShowToast(ctx, toast)
}

func (c *Center) Info(ctx context.Context, text string) {
	c.Notify(ctx, text, SeverityInfo)
}

func (c *Center) Error(ctx context.Context, text string) {
	c.Notify(ctx, text, SeverityError)
}

// Current returns the visible toast, if any.
func (c *Center) Current() (Toast, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == nil {
		return Toast{}, false
	}
	return *c.current, true
}

// dismiss hides the toast identified by id unless it was already superseded.
// A stopped timer can still race its callback, hence the id check.
func (c *Center) dismiss(ctx context.Context, id string) {
	c.mu.Lock()
	if c.current == nil || c.current.ID != id {
		c.mu.Unlock()
		return
	}

	c.current = nil
	c.timer = nil

	c.displayMu.Lock()
	c.mu.Unlock()
	defer c.displayMu.Unlock()

	c.display.HideToast(ctx, id)
}
