// Package viewtest provides an in-memory view.Sink for tests.
package viewtest

import (
	"context"
	"sync"

	"github.com/gabapcia/ledgerwatch/internal/notify"
	"github.com/gabapcia/ledgerwatch/internal/view"
)

// Frame is the history of models received by a Recorder.
type Frame struct {
	Toasts         []notify.Toast
	Hidden         []string
	Balances       []view.BalanceView
	Transactions   []view.TransactionsView
	Chains         []view.ChainView
	Selectors      []view.SelectorView
	Stats          []view.StatsView
	BlockDetails   []view.BlockDetailView
	AllAttempts    []view.AttemptsView
	SubmitControls []view.ControlView
	MineControls   []view.ControlView
	FormResets     int
	Cues           []view.CueView

	// Events lists every call in arrival order, by method name.
	Events []string
}

// Recorder keeps every model it receives. It is safe for concurrent use.
type Recorder struct {
	mu sync.Mutex
	Frame
}

var _ view.Sink = (*Recorder)(nil)

func New() *Recorder {
	return &Recorder{}
}

// Snapshot returns a copy safe to inspect while updates keep arriving.
func (r *Recorder) Snapshot() Frame {
	r.mu.Lock()
	defer r.mu.Unlock()

	return Frame{
		Toasts:         append([]notify.Toast(nil), r.Toasts...),
		Hidden:         append([]string(nil), r.Hidden...),
		Balances:       append([]view.BalanceView(nil), r.Balances...),
		Transactions:   append([]view.TransactionsView(nil), r.Transactions...),
		Chains:         append([]view.ChainView(nil), r.Chains...),
		Selectors:      append([]view.SelectorView(nil), r.Selectors...),
		Stats:          append([]view.StatsView(nil), r.Stats...),
		BlockDetails:   append([]view.BlockDetailView(nil), r.BlockDetails...),
		AllAttempts:    append([]view.AttemptsView(nil), r.AllAttempts...),
		SubmitControls: append([]view.ControlView(nil), r.SubmitControls...),
		MineControls:   append([]view.ControlView(nil), r.MineControls...),
		FormResets:     r.FormResets,
		Cues:           append([]view.CueView(nil), r.Cues...),
		Events:         append([]string(nil), r.Events...),
	}
}

// ToastTexts returns the text of every shown toast, in order.
func (r *Recorder) ToastTexts() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	texts := make([]string, 0, len(r.Toasts))
	for _, t := range r.Toasts {
		texts = append(texts, t.Text)
	}
	return texts
}

func (r *Recorder) record(event string, f func()) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f()
	r.Events = append(r.Events, event)
}

func (r *Recorder) ShowToast(_ context.Context, toast notify.Toast) {
	r.record("ShowToast", func() { r.Toasts = append(r.Toasts, toast) })
}

func (r *Recorder) HideToast(_ context.Context, id string) {
	r.record("HideToast", func() { r.Hidden = append(r.Hidden, id) })
}

func (r *Recorder) UpdateBalance(_ context.Context, v view.BalanceView) {
	r.record("UpdateBalance", func() { r.Balances = append(r.Balances, v) })
}

func (r *Recorder) UpdateTransactions(_ context.Context, v view.TransactionsView) {
	r.record("UpdateTransactions", func() { r.Transactions = append(r.Transactions, v) })
}

func (r *Recorder) UpdateChain(_ context.Context, v view.ChainView) {
	r.record("UpdateChain", func() { r.Chains = append(r.Chains, v) })
}

func (r *Recorder) UpdateBlockSelector(_ context.Context, v view.SelectorView) {
	r.record("UpdateBlockSelector", func() { r.Selectors = append(r.Selectors, v) })
}

func (r *Recorder) UpdateStats(_ context.Context, v view.StatsView) {
	r.record("UpdateStats", func() { r.Stats = append(r.Stats, v) })
}

func (r *Recorder) UpdateBlockDetail(_ context.Context, v view.BlockDetailView) {
	r.record("UpdateBlockDetail", func() { r.BlockDetails = append(r.BlockDetails, v) })
}

func (r *Recorder) UpdateAllAttempts(_ context.Context, v view.AttemptsView) {
	r.record("UpdateAllAttempts", func() { r.AllAttempts = append(r.AllAttempts, v) })
}

func (r *Recorder) UpdateSubmitControl(_ context.Context, v view.ControlView) {
	r.record("UpdateSubmitControl", func() { r.SubmitControls = append(r.SubmitControls, v) })
}

func (r *Recorder) UpdateMineControl(_ context.Context, v view.ControlView) {
	r.record("UpdateMineControl", func() { r.MineControls = append(r.MineControls, v) })
}

func (r *Recorder) ResetTransactionForm(_ context.Context) {
	r.record("ResetTransactionForm", func() { r.FormResets++ })
}

func (r *Recorder) Celebrate(_ context.Context, v view.CueView) {
	r.record("Celebrate", func() { r.Cues = append(r.Cues, v) })
}
