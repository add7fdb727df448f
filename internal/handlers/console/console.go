// Package console renders the dashboard views to a terminal with lipgloss.
//
// Console implements view.Sink: every update replaces the model of its view
// and schedules a redraw. Redraw requests are coalesced, so a burst of
// updates from one refresh produces a single frame.
package console

import (
	"context"
	"io"
	"sync"

	"github.com/gabapcia/ledgerwatch/internal/notify"
	"github.com/gabapcia/ledgerwatch/internal/pkg/logger"
	"github.com/gabapcia/ledgerwatch/internal/pkg/x/chflow"
	"github.com/gabapcia/ledgerwatch/internal/view"
)

// clearScreen moves the cursor home and clears the terminal.
const clearScreen = "\x1b[H\x1b[2J"

// state is the latest model of every view.
type state struct {
	toast        *notify.Toast
	balance      view.BalanceView
	transactions view.TransactionsView
	chain        view.ChainView
	selector     view.SelectorView
	stats        *view.StatsView
	detail       view.BlockDetailView
	attempts     view.AttemptsView
	submit       view.ControlView
	mine         view.ControlView
	cue          string
}

type Console struct {
	out   io.Writer
	width int
	clear bool

	mu    sync.Mutex
	state state

	redraw chan struct{}
}

var _ view.Sink = (*Console)(nil)

type config struct {
	width int
	clear bool
}

type Option func(*config)

// WithWidth sets the frame width in cells. Default: 100.
func WithWidth(w int) Option {
	return func(c *config) {
		if w > 0 {
			c.width = w
		}
	}
}

// WithoutClear appends frames instead of redrawing the screen in place.
func WithoutClear() Option {
	return func(c *config) {
		c.clear = false
	}
}

func New(out io.Writer, opts ...Option) *Console {
	cfg := config{width: 100, clear: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Console{
		out:   out,
		width: cfg.width,
		clear: cfg.clear,
		state: state{
			balance:      view.BalanceView{Amount: "-"},
			transactions: view.TransactionsView{Rows: []view.PendingRow{}},
			chain:        view.ChainView{Blocks: []view.BlockRow{}},
			detail:       view.ClearedBlockDetail(),
			attempts:     view.AttemptsCollapsed(),
			submit:       view.SubmitIdle(),
			mine:         view.MineIdle(),
		},
		redraw: make(chan struct{}, 1),
	}
}

// Run draws a frame for every coalesced redraw request until ctx is done.
func (c *Console) Run(ctx context.Context) {
	for {
		if _, ok := chflow.Receive(ctx, c.redraw); !ok {
			return
		}

		if err := c.Draw(); err != nil {
			logger.Warn(ctx, "failed to draw the dashboard", "error", err)
		}
	}
}

// Draw writes the current frame. The transaction cue is shown in one frame
// only.
func (c *Console) Draw() error {
	c.mu.Lock()
	frame := render(c.state, c.width)
	c.state.cue = ""
	c.mu.Unlock()

	if c.clear {
		frame = clearScreen + frame
	}

	_, err := io.WriteString(c.out, frame+"\n")
	return err
}

// Render returns the current frame without drawing it.
func (c *Console) Render() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return render(c.state, c.width)
}

func (c *Console) update(f func(*state)) {
	c.mu.Lock()
	f(&c.state)
	c.mu.Unlock()

	chflow.TrySend(c.redraw, struct{}{})
}

func (c *Console) ShowToast(_ context.Context, toast notify.Toast) {
	c.update(func(s *state) { s.toast = &toast })
}

func (c *Console) HideToast(_ context.Context, id string) {
	c.update(func(s *state) {
		if s.toast != nil && s.toast.ID == id {
			s.toast = nil
		}
	})
}

func (c *Console) UpdateBalance(_ context.Context, v view.BalanceView) {
	c.update(func(s *state) { s.balance = v })
}

func (c *Console) UpdateTransactions(_ context.Context, v view.TransactionsView) {
	c.update(func(s *state) { s.transactions = v })
}

func (c *Console) UpdateChain(_ context.Context, v view.ChainView) {
	c.update(func(s *state) { s.chain = v })
}

func (c *Console) UpdateBlockSelector(_ context.Context, v view.SelectorView) {
	c.update(func(s *state) { s.selector = v })
}

func (c *Console) UpdateStats(_ context.Context, v view.StatsView) {
	c.update(func(s *state) { s.stats = &v })
}

func (c *Console) UpdateBlockDetail(_ context.Context, v view.BlockDetailView) {
	c.update(func(s *state) { s.detail = v })
}

func (c *Console) UpdateAllAttempts(_ context.Context, v view.AttemptsView) {
	c.update(func(s *state) { s.attempts = v })
}

func (c *Console) UpdateSubmitControl(_ context.Context, v view.ControlView) {
	c.update(func(s *state) { s.submit = v })
}

func (c *Console) UpdateMineControl(_ context.Context, v view.ControlView) {
	c.update(func(s *state) { s.mine = v })
}

// ResetTransactionForm only redraws: the send command is the console's form
// and keeps no draft.
func (c *Console) ResetTransactionForm(context.Context) {
	c.update(func(*state) {})
}

func (c *Console) Celebrate(_ context.Context, v view.CueView) {
	c.update(func(s *state) { s.cue = v.Text })
}
