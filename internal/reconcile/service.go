// Package reconcile keeps the balance, pending transaction, chain and stats
// views consistent with the ledger. Views are refreshed on startup, on demand
// after user actions, and on a fixed interval once the startup refresh has
// settled.
package reconcile

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"golang.org/x/sync/errgroup"

	"github.com/gabapcia/ledgerwatch/internal/ledger"
	"github.com/gabapcia/ledgerwatch/internal/notify"
	"github.com/gabapcia/ledgerwatch/internal/pkg/logger"
	"github.com/gabapcia/ledgerwatch/internal/pkg/x/chflow"
	"github.com/gabapcia/ledgerwatch/internal/session"
	"github.com/gabapcia/ledgerwatch/internal/view"
)

var ErrServiceAlreadyStarted = errors.New("service already started")

// DefaultInterval is the period of timer-driven refreshes.
const DefaultInterval = 10000 * time.Millisecond

// Notifications raised by failed refresh branches.
const (
	TextBalanceFailed      = "Failed to fetch balance"
	TextTransactionsFailed = "Failed to load transactions"
	TextChainFailed        = "Failed to load blockchain"
)

// Ledger is the read side of the ledger used by the scheduler.
type Ledger interface {
	Balance(ctx context.Context) (ledger.Balance, error)
	PendingTransactions(ctx context.Context) ([]ledger.Transaction, error)
	Chain(ctx context.Context) (ledger.Chain, error)
	CurrentUser(ctx context.Context) (ledger.CurrentUser, error)
}

// Views receives the models refreshed by the scheduler.
type Views interface {
	UpdateBalance(ctx context.Context, v view.BalanceView)
	UpdateTransactions(ctx context.Context, v view.TransactionsView)
	UpdateChain(ctx context.Context, v view.ChainView)
	UpdateBlockSelector(ctx context.Context, v view.SelectorView)
	UpdateStats(ctx context.Context, v view.StatsView)
}

type Service interface {
	// Start runs the startup sequence and arms the periodic refresh. It
	// blocks until the startup refresh settles.
	Start(ctx context.Context) error

	// RefreshAll refreshes every view concurrently. Failures are reported
	// through the notifier, one per failed branch.
	RefreshAll(ctx context.Context)

	Close()
}

type closeFunc func()

type service struct {
	mu        sync.Mutex
	isStarted bool
	closeFunc closeFunc

	ledger   Ledger
	views    Views
	notifier notify.Notifier
	session  *session.State

	clock    clock.Clock
	interval time.Duration
}

var _ Service = (*service)(nil)

func (s *service) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.isStarted {
		s.mu.Unlock()
		return ErrServiceAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)
	ticker := s.clock.Ticker(s.interval)
	done := make(chan struct{})

	s.closeFunc = func() {
		cancel()
		ticker.Stop()
		<-done
	}
	s.isStarted = true
	s.mu.Unlock()

	go s.runTicker(ctx, ticker.C, done)

	s.initialize(ctx)
	return nil
}

func (s *service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closeFunc != nil {
		s.closeFunc()
	}
	s.isStarted = false
	s.closeFunc = nil
}

// initialize loads the current user, runs the first refresh and leaves the
// initializing phase whatever the outcome.
func (s *service) initialize(ctx context.Context) {
	defer func() {
		if s.session.FinishInitialization() {
			logger.Info(ctx, "startup refresh settled", "user", s.session.Username())
		}
	}()

	user, err := s.ledger.CurrentUser(ctx)
	if err != nil {
		logger.Warn(ctx, "could not load current user", "error", err)
	} else if err := s.session.SetUsername(user.Username); err != nil {
		logger.Warn(ctx, "current user already known", "error", err)
	}

	s.RefreshAll(ctx)
}

// runTicker refreshes on every tick until ctx is done. Ticks received while
// the session is initializing are dropped.
func (s *service) runTicker(ctx context.Context, ticks <-chan time.Time, done chan<- struct{}) {
	defer close(done)

	for {
		if _, ok := chflow.Receive(ctx, ticks); !ok {
			return
		}

		if s.session.Initializing() {
			logger.Debug(ctx, "periodic refresh skipped during startup")
			continue
		}

		s.RefreshAll(ctx)
	}
}

func (s *service) RefreshAll(ctx context.Context) {
	var (
		g       errgroup.Group
		balance ledger.Balance
		pending []ledger.Transaction
		chain   ledger.Chain
	)

	g.Go(func() (err error) {
		balance, err = s.refreshBalance(ctx)
		return err
	})
	g.Go(func() (err error) {
		pending, err = s.refreshTransactions(ctx)
		return err
	})
	g.Go(func() (err error) {
		chain, err = s.refreshChain(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return
	}

	s.views.UpdateStats(ctx, view.RenderStats(balance, pending, chain, s.session.Username()))
}

func (s *service) refreshBalance(ctx context.Context) (ledger.Balance, error) {
	balance, err := s.ledger.Balance(ctx)
	if err != nil {
		logger.Error(ctx, "balance refresh failed", "error", err)
		s.notifier.Error(ctx, TextBalanceFailed)
		return ledger.Balance{}, err
	}

	s.views.UpdateBalance(ctx, view.RenderBalance(balance))
	return balance, nil
}

func (s *service) refreshTransactions(ctx context.Context) ([]ledger.Transaction, error) {
	pending, err := s.ledger.PendingTransactions(ctx)
	if err != nil {
		logger.Error(ctx, "pending transactions refresh failed", "error", err)
		s.views.UpdateTransactions(ctx, view.TransactionsError())
		s.notifier.Error(ctx, TextTransactionsFailed)
		return nil, err
	}

	s.views.UpdateTransactions(ctx, view.RenderTransactions(pending, s.session.Username()))
	return pending, nil
}

func (s *service) refreshChain(ctx context.Context) (ledger.Chain, error) {
	chain, err := s.ledger.Chain(ctx)
	if err != nil {
		logger.Error(ctx, "chain refresh failed", "error", err)
		s.notifier.Error(ctx, TextChainFailed)
		return nil, err
	}

	s.views.UpdateChain(ctx, view.RenderChain(chain))
	s.views.UpdateBlockSelector(ctx, view.RenderBlockSelector(chain))
	return chain, nil
}

type config struct {
	clock    clock.Clock
	interval time.Duration
}

type Option func(*config)

func New(l Ledger, views Views, notifier notify.Notifier, state *session.State, opts ...Option) *service {
	cfg := config{
		clock:    clock.New(),
		interval: DefaultInterval,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		ledger:   l,
		views:    views,
		notifier: notifier,
		session:  state,
		clock:    cfg.clock,
		interval: cfg.interval,
	}
}

func WithClock(c clock.Clock) Option {
	return func(cfg *config) {
		cfg.clock = c
	}
}

func WithInterval(d time.Duration) Option {
	return func(cfg *config) {
		cfg.interval = d
	}
}
