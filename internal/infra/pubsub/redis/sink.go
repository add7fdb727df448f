package redis

import (
	"context"

	"github.com/gabapcia/ledgerwatch/internal/notify"
	"github.com/gabapcia/ledgerwatch/internal/view"
)

var _ view.Sink = (*client)(nil)

func (c *client) ShowToast(ctx context.Context, toast notify.Toast) {
	c.publish(ctx, KindToast, toast)
}

func (c *client) HideToast(ctx context.Context, id string) {
	c.publish(ctx, KindToastHidden, map[string]string{"id": id})
}

func (c *client) UpdateBalance(ctx context.Context, v view.BalanceView) {
	c.publish(ctx, KindBalance, v)
}

func (c *client) UpdateTransactions(ctx context.Context, v view.TransactionsView) {
	c.publish(ctx, KindTransactions, v)
}

func (c *client) UpdateChain(ctx context.Context, v view.ChainView) {
	c.publish(ctx, KindChain, v)
}

func (c *client) UpdateBlockSelector(ctx context.Context, v view.SelectorView) {
	c.publish(ctx, KindBlockSelector, v)
}

func (c *client) UpdateStats(ctx context.Context, v view.StatsView) {
	c.publish(ctx, KindStats, v)
}

func (c *client) UpdateBlockDetail(ctx context.Context, v view.BlockDetailView) {
	c.publish(ctx, KindBlockDetail, v)
}

func (c *client) UpdateAllAttempts(ctx context.Context, v view.AttemptsView) {
	c.publish(ctx, KindAllAttempts, v)
}

func (c *client) UpdateSubmitControl(ctx context.Context, v view.ControlView) {
	c.publish(ctx, KindSubmitControl, v)
}

func (c *client) UpdateMineControl(ctx context.Context, v view.ControlView) {
	c.publish(ctx, KindMineControl, v)
}

func (c *client) ResetTransactionForm(ctx context.Context) {
	c.publish(ctx, KindFormReset, nil)
}

func (c *client) Celebrate(ctx context.Context, v view.CueView) {
	c.publish(ctx, KindCue, v)
}
