package view

import (
	"context"

	"github.com/gabapcia/ledgerwatch/internal/notify"
)

// Sink receives view models as the components produce them. Each method
// replaces the previous model of the same view.
type Sink interface {
	notify.Display

	UpdateBalance(ctx context.Context, v BalanceView)
	UpdateTransactions(ctx context.Context, v TransactionsView)
	UpdateChain(ctx context.Context, v ChainView)
	UpdateBlockSelector(ctx context.Context, v SelectorView)
	UpdateStats(ctx context.Context, v StatsView)
	UpdateBlockDetail(ctx context.Context, v BlockDetailView)
	UpdateAllAttempts(ctx context.Context, v AttemptsView)
	UpdateSubmitControl(ctx context.Context, v ControlView)
	UpdateMineControl(ctx context.Context, v ControlView)
	ResetTransactionForm(ctx context.Context)
	Celebrate(ctx context.Context, v CueView)
}

// multiSink fans every update out to several sinks, in order.
type multiSink []Sink

var _ Sink = multiSink(nil)

// Multi returns a Sink delivering every update to each of sinks.
func Multi(sinks ...Sink) Sink {
	return multiSink(sinks)
}

func (m multiSink) ShowToast(ctx context.Context, toast notify.Toast) {
	for _, s := range m {
		s.ShowToast(ctx, toast)
	}
}

func (m multiSink) HideToast(ctx context.Context, id string) {
	for _, s := range m {
		s.HideToast(ctx, id)
	}
}

func (m multiSink) UpdateBalance(ctx context.Context, v BalanceView) {
	for _, s := range m {
		s.UpdateBalance(ctx, v)
	}
}

func (m multiSink) UpdateTransactions(ctx context.Context, v TransactionsView) {
	for _, s := range m {
		s.UpdateTransactions(ctx, v)
	}
}

func (m multiSink) UpdateChain(ctx context.Context, v ChainView) {
	for _, s := range m {
		s.UpdateChain(ctx, v)
	}
}

func (m multiSink) UpdateBlockSelector(ctx context.Context, v SelectorView) {
	for _, s := range m {
		s.UpdateBlockSelector(ctx, v)
	}
}

func (m multiSink) UpdateStats(ctx context.Context, v StatsView) {
	for _, s := range m {
		s.UpdateStats(ctx, v)
	}
}

func (m multiSink) UpdateBlockDetail(ctx context.Context, v BlockDetailView) {
	for _, s := range m {
		s.UpdateBlockDetail(ctx, v)
	}
}

func (m multiSink) UpdateAllAttempts(ctx context.Context, v AttemptsView) {
	for _, s := range m {
		s.UpdateAllAttempts(ctx, v)
	}
}

func (m multiSink) UpdateSubmitControl(ctx context.Context, v ControlView) {
	for _, s := range m {
		s.UpdateSubmitControl(ctx, v)
	}
}

func (m multiSink) UpdateMineControl(ctx context.Context, v ControlView) {
	for _, s := range m {
		s.UpdateMineControl(ctx, v)
	}
}

func (m multiSink) ResetTransactionForm(ctx context.Context) {
	for _, s := range m {
		s.ResetTransactionForm(ctx)
	}
}

func (m multiSink) Celebrate(ctx context.Context, v CueView) {
	for _, s := range m {
		s.Celebrate(ctx, v)
	}
}
