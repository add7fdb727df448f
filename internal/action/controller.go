// Package action handles the two user actions with side effects: submitting a
// transaction and requesting mining. It keeps the busy state of each control
// and always hands the control back, whatever the outcome.
package action

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/gabapcia/ledgerwatch/internal/ledger"
	"github.com/gabapcia/ledgerwatch/internal/mining"
	"github.com/gabapcia/ledgerwatch/internal/notify"
	"github.com/gabapcia/ledgerwatch/internal/pkg/logger"
	"github.com/gabapcia/ledgerwatch/internal/view"
)

var ErrInvalidAmount = errors.New("invalid amount")

const (
	TextSubmitted      = "Transaction created successfully"
	TextSubmitFailed   = "Failed to create transaction"
	TextInvalidAmount  = "Please enter a valid amount"
	TextMiningAccepted = "Mining started"
	TextMiningFailed   = "Mining failed"
)

type Ledger interface {
	SubmitTransaction(ctx context.Context, req ledger.TransactionRequest) (ledger.Acknowledgement, error)
	Mine(ctx context.Context) (ledger.Acknowledgement, error)
}

// Controls receives the state of the action controls.
type Controls interface {
	UpdateSubmitControl(ctx context.Context, v view.ControlView)
	UpdateMineControl(ctx context.Context, v view.ControlView)
	ResetTransactionForm(ctx context.Context)
	Celebrate(ctx context.Context, v view.CueView)
}

type Refresher interface {
	RefreshAll(ctx context.Context)
}

type Confirmer interface {
	Confirm(ctx context.Context) mining.Outcome
}

type Controller interface {
	// SubmitTransaction parses amount and sends the transaction. Failures are
	// notified and returned.
	SubmitTransaction(ctx context.Context, recipient, amount string) error

	// RequestMining asks the ledger to mine and, once accepted, confirms the
	// new block in the background.
	RequestMining(ctx context.Context) error

	// Wait blocks until every background confirmation has ended.
	Wait()
}

type controller struct {
	ledger    Ledger
	controls  Controls
	refresher Refresher
	confirmer Confirmer
	notifier  notify.Notifier

	confirmations sync.WaitGroup
	activeMining  atomic.Int32
}

var _ Controller = (*controller)(nil)

func New(l Ledger, controls Controls, refresher Refresher, confirmer Confirmer, notifier notify.Notifier) *controller {
	return &controller{
		ledger:    l,
		controls:  controls,
		refresher: refresher,
		confirmer: confirmer,
		notifier:  notifier,
	}
}

// ParseAmount reads a decimal amount. It is the only client-side check made
// on a transaction.
func ParseAmount(s string) (float64, error) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return amount, nil
}

func (c *controller) SubmitTransaction(ctx context.Context, recipient, amount string) error {
	value, err := ParseAmount(amount)
	if err != nil {
		c.notifier.Error(ctx, TextInvalidAmount)
		return err
	}

	c.controls.UpdateSubmitControl(ctx, view.SubmitBusy())
	defer c.controls.UpdateSubmitControl(ctx, view.SubmitIdle())

	ack, err := c.ledger.SubmitTransaction(ctx, ledger.TransactionRequest{Recipient: recipient, Amount: value})
	if err != nil {
		logger.Error(ctx, "transaction submission failed", "tx.recipient", recipient, "tx.amount", value, "error", err)
		c.notifier.Error(ctx, ledger.MessageOf(err, TextSubmitFailed))
		return err
	}

	c.notifier.Info(ctx, messageOr(ack.Message, TextSubmitted))
	c.controls.ResetTransactionForm(ctx)
	c.refresher.RefreshAll(ctx)
	c.controls.Celebrate(ctx, view.TransactionCue())
	return nil
}

func (c *controller) RequestMining(ctx context.Context) error {
	c.activeMining.Add(1)
	c.controls.UpdateMineControl(ctx, view.MineBusy())

	ack, err := c.ledger.Mine(ctx)
	if err != nil {
		logger.Error(ctx, "mining request failed", "error", err)
		c.notifier.Error(ctx, ledger.MessageOf(err, TextMiningFailed))
		c.releaseMineControl(ctx)
		return err
	}

	c.notifier.Info(ctx, messageOr(ack.Message, TextMiningAccepted))

	// confirmation outlives the caller, it only ends on a terminal state
	loopCtx := context.WithoutCancel(ctx)
	c.confirmations.Add(1)
	go func() {
		defer c.confirmations.Done()
		defer c.releaseMineControl(loopCtx)

		outcome := c.confirmer.Confirm(loopCtx)
		logger.Debug(loopCtx, "mining confirmation ended", "mining.state", outcome.State.String())
	}()

	return nil
}

func (c *controller) Wait() {
	c.confirmations.Wait()
}

// releaseMineControl restores the idle mine control once no request or
// confirmation is running anymore.
func (c *controller) releaseMineControl(ctx context.Context) {
	if c.activeMining.Add(-1) == 0 {
		c.controls.UpdateMineControl(ctx, view.MineIdle())
	}
}

func messageOr(message, fallback string) string {
	if message == "" {
		return fallback
	}
	return message
}
