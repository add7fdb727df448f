// Package mining confirms that an accepted mining request landed in the
// ledger.
//
// The mine endpoint only acknowledges the request. Completion is observed by
// polling the chain until its newest block carries a reward transaction, a
// poll fails, or the retry budget runs out:
//
//	Idle -> Polling -> Confirmed | TimedOut | Failed
//
// Every call to Confirm runs an independent instance of this machine. A second
// confirmation never cancels or joins a running one.
package mining

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/gabapcia/ledgerwatch/internal/ledger"
	"github.com/gabapcia/ledgerwatch/internal/notify"
	"github.com/gabapcia/ledgerwatch/internal/pkg/logger"
	"github.com/gabapcia/ledgerwatch/internal/pkg/resilience/retry"
)

const (
	// DefaultBudget is the number of re-polls after the first one.
	DefaultBudget = 20

	// DefaultDelay separates two polls.
	DefaultDelay = 1500 * time.Millisecond
)

const (
	TextConfirmed = "Block successfully mined!"
	TextTimedOut  = "Mining timed out. Please try again."
	TextFailed    = "Error checking mining status"
)

// errNotConfirmed marks a poll that succeeded without observing the reward.
var errNotConfirmed = errors.New("newest block has no reward")

type State int

const (
	StateIdle State = iota
	StatePolling
	StateConfirmed
	StateTimedOut
	StateFailed
)

func (s State) String() string {
	switch s {
	case StatePolling:
		return "polling"
	case StateConfirmed:
		return "confirmed"
	case StateTimedOut:
		return "timed_out"
	case StateFailed:
		return "failed"
	default:
		return "idle"
	}
}

// Polling is the record of one confirmation run.
type Polling struct {
	Attempts  int       // re-polls performed so far
	Budget    int       // maximum number of re-polls
	StartedAt time.Time // first poll
	Deadline  time.Time // when the last re-poll is due
}

// Outcome is the terminal state of a confirmation run.
type Outcome struct {
	State   State
	Polling Polling
	Block   ledger.Block // newest block, set when confirmed
	Err     error        // set when timed out or failed
}

type ChainReader interface {
	Chain(ctx context.Context) (ledger.Chain, error)
}

type Refresher interface {
	RefreshAll(ctx context.Context)
}

// Loop runs confirmation instances. It holds no per-run state.
type Loop struct {
	chain     ChainReader
	refresher Refresher
	notifier  notify.Notifier

	clock  clock.Clock
	budget int
	delay  time.Duration
}

type config struct {
	clock  clock.Clock
	budget int
	delay  time.Duration
}

type Option func(*config)

func New(chain ChainReader, refresher Refresher, notifier notify.Notifier, opts ...Option) *Loop {
	cfg := config{
		clock:  clock.New(),
		budget: DefaultBudget,
		delay:  DefaultDelay,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Loop{
		chain:     chain,
		refresher: refresher,
		notifier:  notifier,
		clock:     cfg.clock,
		budget:    cfg.budget,
		delay:     cfg.delay,
	}
}

func WithClock(c clock.Clock) Option {
	return func(cfg *config) {
		cfg.clock = c
	}
}

// WithBudget sets how many re-polls follow the first one.
func WithBudget(n int) Option {
	return func(cfg *config) {
		cfg.budget = n
	}
}

func WithDelay(d time.Duration) Option {
	return func(cfg *config) {
		cfg.delay = d
	}
}

// Confirm polls the chain until the mining reward shows up, then refreshes
// every view. It blocks until a terminal state is reached and reports it
// through the notifier exactly once.
func (l *Loop) Confirm(ctx context.Context) Outcome {
	p := Polling{Budget: l.budget, StartedAt: l.clock.Now()}
	p.Deadline = p.StartedAt.Add(time.Duration(l.budget) * l.delay)

	ctx = logger.Derive(ctx, "mining.started_at", p.StartedAt, "mining.budget", p.Budget)
	logger.Debug(ctx, "mining confirmation polling")

	var (
		polls  int
		newest ledger.Block
	)
	r := retry.New(
		retry.WithAttempts(uint(l.budget)+1),
		retry.WithDelay(l.delay),
		retry.WithMaxDelay(l.delay),
		retry.WithFixedDelay(),
		retry.WithTimer(l.clock),
		retry.WithRetryIf(func(err error) bool { return errors.Is(err, errNotConfirmed) }),
	)
	err := r.Execute(ctx, func() error {
		p.Attempts = polls
		polls++

		chain, err := l.chain.Chain(ctx)
		if err != nil {
			return err
		}

		last, ok := chain.Last()
		if !ok || !last.HasReward() {
			logger.Debug(ctx, "mining reward not observed yet", "mining.attempt", p.Attempts)
			return errNotConfirmed
		}

		newest = last
		return nil
	})

	switch {
	case err == nil:
		logger.Info(ctx, "mining confirmed", "block.index", newest.Index, "mining.attempt", p.Attempts)
		l.refresher.RefreshAll(ctx)
		l.notifier.Info(ctx, TextConfirmed)
		return Outcome{State: StateConfirmed, Polling: p, Block: newest}

	case errors.Is(err, errNotConfirmed):
		err = fmt.Errorf("%w: no reward after %d polls", ledger.ErrObservationTimeout, polls)
		logger.Warn(ctx, "mining confirmation timed out", "error", err)
		l.notifier.Error(ctx, TextTimedOut)
		return Outcome{State: StateTimedOut, Polling: p, Err: err}

	default:
		logger.Error(ctx, "mining confirmation failed", "error", err, "mining.attempt", p.Attempts)
		l.notifier.Error(ctx, TextFailed)
		return Outcome{State: StateFailed, Polling: p, Err: err}
	}
}
